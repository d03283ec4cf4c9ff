package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/handyops/proserve/internal/domain"
)

// clientColumns is the canonical SELECT column list for clients.
const clientColumns = `id, name, company, email, phone, address, status,
		total_jobs, total_spent, client_since, last_contact, created_at, updated_at`

// SQLiteClientRepo implements ClientRepo using a SQLite database.
type SQLiteClientRepo struct {
	db *sql.DB
}

// NewSQLiteClientRepo creates a new SQLiteClientRepo.
func NewSQLiteClientRepo(db *sql.DB) *SQLiteClientRepo {
	return &SQLiteClientRepo{db: db}
}

func (r *SQLiteClientRepo) Create(ctx context.Context, c *domain.Client) error {
	query := `INSERT INTO clients (id, name, company, email, phone, address, status,
		total_jobs, total_spent, client_since, last_contact, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID,
		c.Name,
		c.Company,
		c.Email,
		c.Phone,
		c.Address,
		string(c.Status),
		c.TotalJobs,
		c.TotalSpent,
		c.ClientSince.Format(time.RFC3339),
		c.LastContact.Format(time.RFC3339),
		c.CreatedAt.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return storeErr("inserting client", err)
	}
	return nil
}

func (r *SQLiteClientRepo) GetByID(ctx context.Context, id string) (*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients WHERE id = ?`
	row := r.db.QueryRowContext(ctx, query, id)
	c, err := scanClientFrom(row)
	if err == sql.ErrNoRows {
		return nil, fmt.Errorf("client: %w", ErrNotFound)
	}
	return c, err
}

func (r *SQLiteClientRepo) List(ctx context.Context) ([]*domain.Client, error) {
	query := `SELECT ` + clientColumns + ` FROM clients ORDER BY name`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, storeErr("listing clients", err)
	}
	defer rows.Close()

	var clients []*domain.Client
	for rows.Next() {
		c, err := scanClientFrom(rows)
		if err != nil {
			return nil, err
		}
		clients = append(clients, c)
	}
	if err := rows.Err(); err != nil {
		return nil, storeErr("iterating clients", err)
	}
	return clients, nil
}

func (r *SQLiteClientRepo) Update(ctx context.Context, c *domain.Client) error {
	query := `UPDATE clients SET name = ?, company = ?, email = ?, phone = ?, address = ?,
		status = ?, total_jobs = ?, total_spent = ?, client_since = ?, last_contact = ?, updated_at = ?
		WHERE id = ?`
	res, err := r.db.ExecContext(ctx, query,
		c.Name,
		c.Company,
		c.Email,
		c.Phone,
		c.Address,
		string(c.Status),
		c.TotalJobs,
		c.TotalSpent,
		c.ClientSince.Format(time.RFC3339),
		c.LastContact.Format(time.RFC3339),
		c.UpdatedAt.Format(time.RFC3339),
		c.ID,
	)
	if err != nil {
		return storeErr("updating client", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("client: %w", ErrNotFound)
	}
	return nil
}

func (r *SQLiteClientRepo) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = ?`, id)
	if err != nil {
		return storeErr("deleting client", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("client: %w", ErrNotFound)
	}
	return nil
}

type clientScanner interface {
	Scan(dest ...any) error
}

func scanClientFrom(sc clientScanner) (*domain.Client, error) {
	var c domain.Client
	var statusStr, sinceStr, lastContactStr, createdAtStr, updatedAtStr string

	err := sc.Scan(
		&c.ID, &c.Name, &c.Company, &c.Email, &c.Phone, &c.Address, &statusStr,
		&c.TotalJobs, &c.TotalSpent, &sinceStr, &lastContactStr, &createdAtStr, &updatedAtStr,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, storeErr("scanning client", err)
	}

	c.Status = domain.ClientStatus(statusStr)

	var parseErr error
	c.ClientSince, parseErr = time.Parse(time.RFC3339, sinceStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing client_since: %w", parseErr)
	}
	c.LastContact, parseErr = time.Parse(time.RFC3339, lastContactStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing last_contact: %w", parseErr)
	}
	c.CreatedAt, parseErr = time.Parse(time.RFC3339, createdAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing created_at: %w", parseErr)
	}
	c.UpdatedAt, parseErr = time.Parse(time.RFC3339, updatedAtStr)
	if parseErr != nil {
		return nil, fmt.Errorf("parsing updated_at: %w", parseErr)
	}
	return &c, nil
}
