package repository

import (
	"context"

	"staffing/internal/domain/entity"
	"staffing/internal/errors"

	"github.com/google/uuid"
)

// ErrShiftNotFound is returned when no shift matches the lookup.
var ErrShiftNotFound = errors.New("shift not found")

// RatingStats is the aggregate of non-null ratings over completed shifts.
type RatingStats struct {
	Average *float64 // nil when Count is zero
	Count   int
}

// ShiftRepository persists shifts and answers the aggregate queries of the tier engine.
type ShiftRepository interface {
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error)

	// DeleteOwned deletes the shift only if it belongs to workerID.
	// deleted is false when no row matched, e.g. a concurrent cancellation won.
	DeleteOwned(ctx context.Context, id, workerID uuid.UUID) (deleted bool, err error)

	// MarkCompleted flags the shift as completed with its worked hours.
	MarkCompleted(ctx context.Context, id uuid.UUID, totalHours float64) error

	// SetWorkerRating stores the rating a hotel gave the worker on this shift.
	SetWorkerRating(ctx context.Context, id uuid.UUID, rating int) error

	// SetHotelRating stores the rating a worker gave the hotel on this shift.
	SetHotelRating(ctx context.Context, id uuid.UUID, rating int) error

	// SumCompletedHoursByWorker totals hours over completed shifts; 0 when there are none.
	SumCompletedHoursByWorker(ctx context.Context, workerID uuid.UUID) (float64, error)

	// SumCompletedHoursByHotel totals hours over completed shifts; 0 when there are none.
	SumCompletedHoursByHotel(ctx context.Context, hotelID uuid.UUID) (float64, error)

	// WorkerRatingStats aggregates worker ratings over the worker's completed shifts.
	WorkerRatingStats(ctx context.Context, workerID uuid.UUID) (RatingStats, error)

	// HotelRatingStats aggregates hotel ratings over the hotel's completed shifts.
	HotelRatingStats(ctx context.Context, hotelID uuid.UUID) (RatingStats, error)
}
