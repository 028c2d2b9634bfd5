package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/frontdeskhq/frontdesk/internal/models"
	"github.com/frontdeskhq/frontdesk/internal/storage"
)

// CreateCharge persists a new charge line to the database.
func (s *PostgresStore) CreateCharge(ctx context.Context, line *models.ChargeLine) error {
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

	_, err := s.pool.Exec(ctx,
		`INSERT INTO charges (id, username, category, room_type, amount, paid, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		line.ID, line.Username, string(line.Category), roomType, line.Amount, line.Paid, line.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to insert charge: %w", err)
	}

	return nil
}

// UnpaidCharges returns all unpaid charge lines for a user, oldest first.
func (s *PostgresStore) UnpaidCharges(ctx context.Context, username string) ([]*models.ChargeLine, error) {
	rows, err := s.pool.Query(ctx,
		`SELECT id, username, category, room_type, amount, paid, created_at
		 FROM charges WHERE username = $1 AND NOT paid ORDER BY created_at, id`,
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
func (s *PostgresStore) SettleCharges(ctx context.Context, username string, apply func(tx storage.ChargeUpdater) error) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx)

	if err := apply(&chargeTx{tx: tx}); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// chargeTx implements storage.ChargeUpdater over an open transaction.
type chargeTx struct {
	tx pgx.Tx
}

// MarkPaid flips every unpaid charge of the given category to paid.
func (c *chargeTx) MarkPaid(ctx context.Context, category models.ChargeCategory, username string) (int64, error) {
	tag, err := c.tx.Exec(ctx,
		"UPDATE charges SET paid = TRUE WHERE username = $1 AND category = $2 AND NOT paid",
		username, string(category),
	)
	if err != nil {
		return 0, fmt.Errorf("failed to mark %s charges paid: %w", category, err)
	}

	return tag.RowsAffected(), nil
}
