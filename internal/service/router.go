package service

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/frontdeskhq/frontdesk/internal/auth"
	"github.com/frontdeskhq/frontdesk/internal/middleware"
)

// NewRouter wires the HTTP shell: public auth and catalog routes, guarded
// desk routes, health and metrics.
func NewRouter(authSvc *AuthService, deskSvc *DeskService, jwtManager *auth.JWTManager) http.Handler {
	r := chi.NewRouter()

	r.Use(
		chimw.RealIP,
		chimw.Recoverer,
		middleware.Logging,
		middleware.Metrics,
	)

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Post("/auth/register", authSvc.Register)
		r.Post("/auth/login", authSvc.Login)

		r.Get("/rooms", deskSvc.ListRooms)
		r.Get("/menu", deskSvc.ListMenu)

		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireAuth(jwtManager))

			r.Post("/bookings", deskSvc.BookRoom)
			r.Post("/orders", deskSvc.OrderFood)
			r.Get("/bill", deskSvc.GetBill)
			r.Post("/bill/settle", deskSvc.Settle)
		})
	})

	return r
}
