package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frontdeskhq/frontdesk/internal/models"
	"github.com/frontdeskhq/frontdesk/internal/storage"
)

// CreateCharge persists a new charge line to the database.
func (s *SQLiteStore) CreateCharge(ctx context.Context, line *models.ChargeLine) error {
	if line.ID == "" {
		line.ID = uuid.New().String()
	}
	if line.CreatedAt == 0 {
		line.CreatedAt = time.Now().Unix()
	}

	var roomType interface{}
	if line.RoomType != "" {
		roomType = line.RoomType
	}

	_, err := s.db.ExecContext(ctx,
		`INSERT INTO charges (id, username, category, room_type, amount, paid, created_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		line.ID, line.Username, string(line.Category), roomType, line.Amount, line.Paid, line.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert charge: %w", err)
	}

	return nil
}

// UnpaidCharges returns all unpaid charge lines for a user, oldest first.
func (s *SQLiteStore) UnpaidCharges(ctx context.Context, username string) ([]*models.ChargeLine, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, username, category, room_type, amount, paid, created_at
		 FROM charges WHERE username = ? AND paid = 0 ORDER BY created_at, id`,
		username,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query unpaid charges: %w", err)
	}
	defer rows.Close()

	var lines []*models.ChargeLine
	for rows.Next() {
		line := &models.ChargeLine{}
		var category string
		var roomType sql.NullString

		if err := rows.Scan(&line.ID, &line.Username, &category, &roomType,
			&line.Amount, &line.Paid, &line.CreatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan charge: %w", err)
		}

		line.Category = models.ChargeCategory(category)
		if roomType.Valid {
			line.RoomType = roomType.String
		}

		lines = append(lines, line)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate charges: %w", err)
	}

	return lines, nil
}

// SettleCharges runs apply inside a single transaction. Updates made
// through the ChargeUpdater are committed only if apply returns nil.
func (s *SQLiteStore) SettleCharges(ctx context.Context, username string, apply func(tx storage.ChargeUpdater) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := apply(&chargeTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// chargeTx implements storage.ChargeUpdater over an open transaction.
type chargeTx struct {
	tx *sql.Tx
}

// MarkPaid flips every unpaid charge of the given category to paid.
func (c *chargeTx) MarkPaid(ctx context.Context, category models.ChargeCategory, username string) (int64, error) {
	res, err := c.tx.ExecContext(ctx,
		"UPDATE charges SET paid = 1 WHERE username = ? AND category = ? AND paid = 0",
		username, string(category),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark %s charges paid: %w", category, err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to count cleared %s charges: %w", category, err)
	}

	return n, nil
}
