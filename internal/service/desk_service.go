package service

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/frontdeskhq/frontdesk/internal/billing"
	"github.com/frontdeskhq/frontdesk/internal/ledger"
	"github.com/frontdeskhq/frontdesk/internal/middleware"
)

// DeskService handles the front-desk operations for an authenticated
// guest: booking rooms, ordering food, checkout and payment.
type DeskService struct {
	ledger *ledger.Ledger
	engine *billing.Engine
}

// NewDeskService creates a new front-desk service.
func NewDeskService(l *ledger.Ledger, e *billing.Engine) *DeskService {
	return &DeskService{ledger: l, engine: e}
}

// ListRooms returns the bookable room types and their prices.
func (s *DeskService) ListRooms(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"rooms": roomCatalog})
}

// ListMenu returns the food menu.
func (s *DeskService) ListMenu(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{"items": foodMenu})
}

type bookingRequest struct {
	RoomType string `json:"room_type"`
}

type bookingResponse struct {
	RoomType string `json:"room_type"`
	Cost     int64  `json:"cost"`
}

// BookRoom records a room booking charge for the authenticated guest.
func (s *DeskService) BookRoom(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	var req bookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}

	cost, ok := roomPrice(req.RoomType)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown room type: "+req.RoomType)
		return
	}

	if err := s.ledger.RecordBooking(r.Context(), username, req.RoomType, cost); err != nil {
		slog.Error("Booking failed", "username", username, "room_type", req.RoomType, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to book room")
		return
	}

	slog.Info("Room booked", "username", username, "room_type", req.RoomType, "cost", cost)
	writeJSON(w, http.StatusCreated, bookingResponse{RoomType: req.RoomType, Cost: cost})
}

type orderRequest struct {
	Items []string `json:"items"`
}

type orderResponse struct {
	Items []string `json:"items"`
	Total int64    `json:"total"`
}

// OrderFood totals the selected menu items and records a food charge for
// the authenticated guest. An empty selection is rejected before the
// ledger is called.
func (s *DeskService) OrderFood(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	var req orderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid payload")
		return
	}
	if len(req.Items) == 0 {
		writeError(w, http.StatusBadRequest, "please select at least one item")
		return
	}

	var total int64
	for _, name := range req.Items {
		price, ok := itemPrice(name)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown menu item: "+name)
			return
		}
		total += price
	}

	if err := s.ledger.RecordFoodOrder(r.Context(), username, total); err != nil {
		slog.Error("Food order failed", "username", username, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to place food order")
		return
	}

	slog.Info("Food ordered", "username", username, "items", len(req.Items), "total", total)
	writeJSON(w, http.StatusCreated, orderResponse{Items: req.Items, Total: total})
}

type billResponse struct {
	Outstanding bool  `json:"outstanding"`
	RoomTotal   int64 `json:"room_total"`
	FoodTotal   int64 `json:"food_total"`
	GrandTotal  int64 `json:"grand_total"`
}

// GetBill computes the guest's current bill. outstanding=false signals
// "no outstanding charges" rather than a zero bill.
func (s *DeskService) GetBill(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	bill, err := s.engine.Checkout(r.Context(), username)
	if err != nil {
		slog.Error("Checkout failed", "username", username, "error", err)
		writeError(w, http.StatusInternalServerError, "failed to calculate bill")
		return
	}

	writeJSON(w, http.StatusOK, billResponse{
		Outstanding: bill.Outstanding(),
		RoomTotal:   bill.RoomTotal,
		FoodTotal:   bill.FoodTotal,
		GrandTotal:  bill.GrandTotal,
	})
}

type settleResponse struct {
	Cleared          bool  `json:"cleared"`
	RoomLinesCleared int64 `json:"room_lines_cleared"`
	FoodLinesCleared int64 `json:"food_lines_cleared"`
}

// Settle marks all of the guest's outstanding charges as paid. cleared=false
// means there were no outstanding payments to be made.
func (s *DeskService) Settle(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	summary, err := s.engine.Settle(r.Context(), username)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "payment failed")
		return
	}

	writeJSON(w, http.StatusOK, settleResponse{
		Cleared:          summary.Cleared(),
		RoomLinesCleared: summary.RoomLinesCleared,
		FoodLinesCleared: summary.FoodLinesCleared,
	})
}
