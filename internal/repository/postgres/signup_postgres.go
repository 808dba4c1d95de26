package postgres

import (
	"context"
	"database/sql"
	"time"

	"signupapi/internal/model"
	"signupapi/internal/repository"
)

// SignupPostgres is a PostgreSQL implementation of repository.SignupRepository.
// It uses database/sql with parameterized queries and contains no business logic.
type SignupPostgres struct {
	db *sql.DB
}

// NewSignupPostgres creates a new SignupPostgres repository.
func NewSignupPostgres(db *sql.DB) *SignupPostgres {
	return &SignupPostgres{db: db}
}

var _ repository.SignupRepository = (*SignupPostgres)(nil)

// Create inserts a new signup row and returns the stored record.
func (r *SignupPostgres) Create(ctx context.Context, s *model.Signup) (*model.Signup, error) {
	const q = `
		INSERT INTO signups (id, name, email, created_at)
		VALUES ($1, $2, $3, $4)
		RETURNING id, name, email, created_at
	`
	row := r.db.QueryRowContext(ctx, q,
		s.ID,
		s.Name,
		s.Email,
		s.CreatedAt,
	)
	var out model.Signup
	if err := row.Scan(
		&out.ID,
		&out.Name,
		&out.Email,
		&out.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &out, nil
}

// FindByID fetches a single signup by its ID.
func (r *SignupPostgres) FindByID(ctx context.Context, id string) (*model.Signup, error) {
	const q = `
		SELECT id, name, email, created_at
		FROM signups
		WHERE id = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, q, id))
}

// FindByEmail fetches a single signup by its email address.
func (r *SignupPostgres) FindByEmail(ctx context.Context, email string) (*model.Signup, error) {
	const q = `
		SELECT id, name, email, created_at
		FROM signups
		WHERE email = $1
	`
	return r.scanOne(r.db.QueryRowContext(ctx, q, email))
}

// List returns signups using LIMIT/OFFSET pagination and a total count.
func (r *SignupPostgres) List(ctx context.Context, pq repository.PageQuery) (*repository.PageResult[model.Signup], error) {
	// Count total rows
	const qCount = `SELECT COUNT(*) FROM signups`
	var total int
	if err := r.db.QueryRowContext(ctx, qCount).Scan(&total); err != nil {
		return nil, err
	}

	// Fetch page
	const qList = `
		SELECT id, name, email, created_at
		FROM signups
		ORDER BY created_at DESC, id DESC
		LIMIT $1 OFFSET $2
	`
	rows, err := r.db.QueryContext(ctx, qList, pq.Limit, pq.Offset)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items, err := scanAll(rows)
	if err != nil {
		return nil, err
	}

	return &repository.PageResult[model.Signup]{
		Items: items,
		Total: total,
	}, nil
}

// CreatedBetween returns signups created within [from, to), oldest first.
func (r *SignupPostgres) CreatedBetween(ctx context.Context, from, to time.Time) ([]model.Signup, error) {
	const q = `
		SELECT id, name, email, created_at
		FROM signups
		WHERE created_at >= $1 AND created_at < $2
		ORDER BY created_at ASC, id ASC
	`
	rows, err := r.db.QueryContext(ctx, q, from, to)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	return scanAll(rows)
}

func (r *SignupPostgres) scanOne(row *sql.Row) (*model.Signup, error) {
	var s model.Signup
	if err := row.Scan(
		&s.ID,
		&s.Name,
		&s.Email,
		&s.CreatedAt,
	); err != nil {
		return nil, err
	}
	return &s, nil
}

func scanAll(rows *sql.Rows) ([]model.Signup, error) {
	items := make([]model.Signup, 0)
	for rows.Next() {
		var s model.Signup
		if err := rows.Scan(
			&s.ID,
			&s.Name,
			&s.Email,
			&s.CreatedAt,
		); err != nil {
			return nil, err
		}
		items = append(items, s)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
