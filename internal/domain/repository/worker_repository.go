package repository

import (
	"context"

	"staffing/internal/domain/entity"
	"staffing/internal/errors"

	"github.com/google/uuid"
)

// ErrWorkerNotFound is returned when no worker profile matches the lookup.
var ErrWorkerNotFound = errors.New("worker profile not found")

// WorkerRepository persists worker profiles.
type WorkerRepository interface {
	// FindByID retrieves a worker profile by its own ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkerProfile, error)

	// FindByUserID retrieves the worker profile attached to a user.
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.WorkerProfile, error)

	// IncrementLateCancellations adds one to the worker's late-cancellation counter.
	IncrementLateCancellations(ctx context.Context, id uuid.UUID) error

	// UpdateTier writes total hours and tier unconditionally.
	UpdateTier(ctx context.Context, id uuid.UUID, totalHours float64, tier entity.Tier) error

	// UpdateRating writes the average rating (nil clears it) and the review count.
	UpdateRating(ctx context.Context, id uuid.UUID, average *float64, count int) error
}
