package repository

import (
	"context"

	"staffing/internal/domain/entity"
	"staffing/internal/errors"

	"github.com/google/uuid"
)

// ErrJobPostingNotFound is returned when no job posting matches the lookup.
var ErrJobPostingNotFound = errors.New("job posting not found")

// JobPostingRepository persists job postings.
type JobPostingRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JobPosting, error)

	// ReopenSlot increments the open-slot counter by one and clears the filled flag.
	// Returns ErrJobPostingNotFound when no row was updated.
	ReopenSlot(ctx context.Context, id uuid.UUID) error
}
