package service

import (
	"context"
	"database/sql"
	"errors"
	"net/mail"
	"strings"
	"time"

	"github.com/google/uuid"

	"signupapi/internal/model"
	"signupapi/internal/repository"
)

var (
	ErrIDRequired   = errors.New("id is required")
	ErrNameRequired = errors.New("name is required")
	ErrEmailInvalid = errors.New("email is invalid")
	ErrEmailTaken   = errors.New("email already registered")
	ErrNotFound     = errors.New("signup not found")
)

// SignupListResult is the service-level DTO for paginated signups.
type SignupListResult struct {
	Items []model.Signup `json:"data"`
	Total int            `json:"total"`
}

// SignupService defines the use cases for handling signups.
type SignupService interface {
	// Create validates the form input, rejects duplicate emails, and persists a new signup.
	Create(ctx context.Context, name, email string) (*model.Signup, error)

	// List returns signups using limit/offset and a total count.
	List(ctx context.Context, limit, offset int) (*SignupListResult, error)

	// Get returns a single signup by its ID.
	Get(ctx context.Context, id string) (*model.Signup, error)
}

// signupService is a concrete implementation of SignupService.
type signupService struct {
	repo repository.SignupRepository
}

// NewSignupService constructs a new SignupService.
func NewSignupService(repo repository.SignupRepository) SignupService {
	return &signupService{repo: repo}
}

func (s *signupService) Create(ctx context.Context, name, email string) (*model.Signup, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrNameRequired
	}

	email = strings.ToLower(strings.TrimSpace(email))
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, ErrEmailInvalid
	}

	// Reject duplicates up front; the unique index on email remains the
	// backstop against concurrent inserts.
	existing, err := s.repo.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}
	if existing != nil {
		return nil, ErrEmailTaken
	}

	rec := &model.Signup{
		ID:        uuid.New().String(),
		Name:      name,
		Email:     email,
		CreatedAt: time.Now().UTC(),
	}
	return s.repo.Create(ctx, rec)
}

// List returns paginated signups without exposing repository types.
func (s *signupService) List(ctx context.Context, limit, offset int) (*SignupListResult, error) {
	if limit <= 0 {
		limit = 10
	}
	if offset < 0 {
		offset = 0
	}

	res, err := s.repo.List(ctx, repository.PageQuery{Limit: limit, Offset: offset})
	if err != nil {
		return nil, err
	}
	return &SignupListResult{Items: res.Items, Total: res.Total}, nil
}

// Get returns a signup by ID.
func (s *signupService) Get(ctx context.Context, id string) (*model.Signup, error) {
	if id == "" {
		return nil, ErrIDRequired
	}
	rec, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return rec, nil
}
