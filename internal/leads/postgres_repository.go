package leads

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// leadsDB defines the database surface needed by PostgresRepository.
type leadsDB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// PostgresRepository stores leads in the relational database.
type PostgresRepository struct {
	db leadsDB
}

// NewPostgresRepository initializes a repo backed by pgxpool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	if pool == nil {
		panic("leads: pgx pool required")
	}
	return &PostgresRepository{db: pool}
}

// NewPostgresRepositoryWithDB allows injecting a mock database for testing.
func NewPostgresRepositoryWithDB(db leadsDB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const leadColumns = `id, email, first_name, last_name, phone, location, project_type, message, source, customer_type, created_at`

// Create inserts a new row. ID and created_at come from the database,
// never from the caller.
func (r *PostgresRepository) Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error) {
	id := uuid.New()
	query := `
		INSERT INTO leads (id, email, first_name, last_name, phone, location, project_type, message, source, customer_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at
	`
	var createdAt time.Time
	if err := r.db.QueryRow(ctx, query,
		id,
		req.Email,
		req.FirstName,
		req.LastName,
		req.Phone,
		req.Location,
		req.ProjectType,
		req.Message,
		req.Source,
		req.CustomerType,
	).Scan(&createdAt); err != nil {
		return nil, fmt.Errorf("leads: insert failed: %w", err)
	}

	return &Lead{
		ID:           id.String(),
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Phone:        req.Phone,
		Location:     req.Location,
		ProjectType:  req.ProjectType,
		Message:      req.Message,
		Source:       req.Source,
		CustomerType: req.CustomerType,
		CreatedAt:    createdAt,
	}, nil
}

// ListAll returns every lead, newest first.
func (r *PostgresRepository) ListAll(ctx context.Context) ([]*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("leads: list failed: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

// ListSince returns leads created at or after the given time, newest first.
func (r *PostgresRepository) ListSince(ctx context.Context, since time.Time) ([]*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads WHERE created_at >= $1 ORDER BY created_at DESC`
	rows, err := r.db.Query(ctx, query, since)
	if err != nil {
		return nil, fmt.Errorf("leads: list since failed: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

// ListMostRecent returns at most n leads, newest first.
func (r *PostgresRepository) ListMostRecent(ctx context.Context, n int) ([]*Lead, error) {
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1`
	rows, err := r.db.Query(ctx, query, n)
	if err != nil {
		return nil, fmt.Errorf("leads: list recent failed: %w", err)
	}
	defer rows.Close()
	return scanLeads(rows)
}

func scanLeads(rows pgx.Rows) ([]*Lead, error) {
	out := []*Lead{}
	for rows.Next() {
		var lead Lead
		if err := rows.Scan(
			&lead.ID,
			&lead.Email,
			&lead.FirstName,
			&lead.LastName,
			&lead.Phone,
			&lead.Location,
			&lead.ProjectType,
			&lead.Message,
			&lead.Source,
			&lead.CustomerType,
			&lead.CreatedAt,
		); err != nil {
			return nil, fmt.Errorf("leads: scan failed: %w", err)
		}
		out = append(out, &lead)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("leads: rows failed: %w", err)
	}
	return out, nil
}
