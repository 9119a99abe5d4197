package repository

import (
	"context"

	"staffing/internal/domain/entity"
	"staffing/internal/errors"

	"github.com/google/uuid"
)

// ErrHotelNotFound is returned when no hotel profile matches the lookup.
var ErrHotelNotFound = errors.New("hotel profile not found")

// HotelRepository persists hotel profiles.
type HotelRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.HotelProfile, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.HotelProfile, error)
	UpdateTier(ctx context.Context, id uuid.UUID, totalHours float64, tier entity.Tier) error
	UpdateRating(ctx context.Context, id uuid.UUID, average *float64, count int) error
}
