package repository

import (
	"context"
	"time"

	"signupapi/internal/model"
)

// SignupRepository defines data access for signup records using SQL queries only.
// No business logic here — strictly persistence operations.
type SignupRepository interface {
	// Create inserts a new signup record.
	// The caller should provide required fields (e.g., ID, CreatedAt) according to the database schema defaults.
	// Returns the stored signup (may include values set by the DB).
	Create(ctx context.Context, s *model.Signup) (*model.Signup, error)

	// FindByID returns a signup by its ID.
	FindByID(ctx context.Context, id string) (*model.Signup, error)

	// FindByEmail returns a signup by its email address.
	FindByEmail(ctx context.Context, email string) (*model.Signup, error)

	// List returns a paginated list of signups and total rows count.
	List(ctx context.Context, pq PageQuery) (*PageResult[model.Signup], error)

	// CreatedBetween returns all signups with created_at in [from, to), oldest first.
	CreatedBetween(ctx context.Context, from, to time.Time) ([]model.Signup, error)
}

// PageQuery holds limit/offset pagination parameters.
type PageQuery struct {
	Limit  int
	Offset int
}

// PageResult is a generic pagination result wrapper.
// T is typically a model type.
type PageResult[T any] struct {
	Items []T
	Total int
}
