package model

import (
	"time"

	"github.com/google/uuid"
)

// JobPostingModel mirrors the 'job_postings' table.
type JobPostingModel struct {
	ID         uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	HotelID    uuid.UUID `gorm:"type:uuid;index;not null"`
	Title      string    `gorm:"type:varchar(200);not null"`
	StartTime  time.Time `gorm:"not null"`
	EndTime    time.Time `gorm:"not null"`
	HourlyRate float64   `gorm:"not null"`
	SlotsOpen  int       `gorm:"not null;default:1"`
	IsFilled   bool      `gorm:"not null;default:false"`
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// TableName explicitly sets the table name for GORM.
func (JobPostingModel) TableName() string {
	return "job_postings"
}
