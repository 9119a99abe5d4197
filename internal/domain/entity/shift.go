package entity

import (
	"time"

	"github.com/google/uuid"
)

// Shift is a confirmed assignment of one worker to one job posting.
// A cancelled shift is deleted, not archived.
type Shift struct {
	ID           uuid.UUID
	WorkerID     uuid.UUID
	HotelID      uuid.UUID
	JobPostingID uuid.UUID
	StartTime    time.Time
	IsCompleted  bool
	TotalHours   float64
	WorkerRating *int // Rating the hotel gave the worker.
	HotelRating  *int // Rating the worker gave the hotel.
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// IsLateCancellation reports whether cancelling at now falls inside the late
// window before start. The comparison is strict: exactly window ahead is not late.
func IsLateCancellation(start, now time.Time, window time.Duration) bool {
	return start.Sub(now) < window
}
