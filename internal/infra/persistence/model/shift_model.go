package model

import (
	"time"

	"github.com/google/uuid"
)

// ShiftModel mirrors the 'shifts' table. Rows are hard-deleted on cancellation.
type ShiftModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	WorkerID     uuid.UUID `gorm:"type:uuid;index:idx_shifts_worker_completed,priority:1;not null"`
	HotelID      uuid.UUID `gorm:"type:uuid;index:idx_shifts_hotel_completed,priority:1;not null"`
	JobPostingID uuid.UUID `gorm:"type:uuid;index;not null"`
	StartTime    time.Time `gorm:"not null"`
	IsCompleted  bool      `gorm:"not null;default:false;index:idx_shifts_worker_completed,priority:2;index:idx_shifts_hotel_completed,priority:2"`
	TotalHours   float64   `gorm:"not null;default:0"`
	WorkerRating *int
	HotelRating  *int
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// TableName explicitly sets the table name for GORM.
func (ShiftModel) TableName() string {
	return "shifts"
}
