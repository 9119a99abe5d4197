package model

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationModel mirrors the 'applications' table.
type ApplicationModel struct {
	ID                 uuid.UUID  `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	JobPostingID       uuid.UUID  `gorm:"type:uuid;index:idx_applications_lookup,priority:1;not null"`
	WorkerID           uuid.UUID  `gorm:"type:uuid;index:idx_applications_lookup,priority:2;not null"`
	Status             string     `gorm:"type:varchar(16);index:idx_applications_lookup,priority:3;not null"`
	CancellationReason *string    `gorm:"type:text"`
	CancelledAt        *time.Time `gorm:"type:timestamp with time zone"`
	IsLateCancellation bool       `gorm:"not null;default:false"`
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// TableName explicitly sets the table name for GORM.
func (ApplicationModel) TableName() string {
	return "applications"
}
