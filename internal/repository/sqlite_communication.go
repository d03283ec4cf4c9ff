package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/handyops/proserve/internal/domain"
)

// SQLiteCommunicationRepo implements CommunicationRepo using a SQLite database.
type SQLiteCommunicationRepo struct {
	db *sql.DB
}

// NewSQLiteCommunicationRepo creates a new SQLiteCommunicationRepo.
func NewSQLiteCommunicationRepo(db *sql.DB) *SQLiteCommunicationRepo {
	return &SQLiteCommunicationRepo{db: db}
}

func (r *SQLiteCommunicationRepo) Create(ctx context.Context, c *domain.Communication) error {
	query := `INSERT INTO communications (id, client_id, type, direction, subject, message, date)
		VALUES (?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.ClientID,
		string(c.Type),
		string(c.Direction),
		c.Subject,
		c.Message,
		c.Date.Format(time.RFC3339),
	)
	if err != nil {
		return storeErr("inserting communication", err)
	}
	return nil
}

// ListByClient returns the client's communications, newest first.
func (r *SQLiteCommunicationRepo) ListByClient(ctx context.Context, clientID string) ([]*domain.Communication, error) {
	query := `SELECT id, client_id, type, direction, subject, message, date
		FROM communications WHERE client_id = ? ORDER BY date DESC, id`
	rows, err := r.db.QueryContext(ctx, query, clientID)
	if err != nil {
		return nil, storeErr("listing communications", err)
	}
	defer rows.Close()

	var comms []*domain.Communication
	for rows.Next() {
		var c domain.Communication
		var typeStr, directionStr, dateStr string
		if err := rows.Scan(&c.ID, &c.ClientID, &typeStr, &directionStr, &c.Subject, &c.Message, &dateStr); err != nil {
			return nil, storeErr("scanning communication", err)
		}
		c.Type = domain.CommunicationType(typeStr)
		c.Direction = domain.CommunicationDirection(directionStr)
		c.Date, err = time.Parse(time.RFC3339, dateStr)
		if err != nil {
			return nil, fmt.Errorf("parsing communication date: %w", err)
		}
		comms = append(comms, &c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating communications", err)
	}
	return comms, nil
}

func (r *SQLiteCommunicationRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM communications WHERE id = ?`, id)
	if err != nil {
		return storeErr("deleting communication", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("communication: %w", ErrNotFound)
	}
	return nil
}
