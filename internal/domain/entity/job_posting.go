package entity

import (
	"time"

	"github.com/google/uuid"
)

// JobPosting is a shift opportunity published by a hotel with a finite number of open slots.
type JobPosting struct {
	ID         uuid.UUID
	HotelID    uuid.UUID
	Title      string
	StartTime  time.Time
	EndTime    time.Time
	HourlyRate float64
	SlotsOpen  int
	IsFilled   bool
	CreatedAt  time.Time
	UpdatedAt  time.Time
}
