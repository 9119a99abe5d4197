package model

import (
	"time"

	"github.com/google/uuid"
)

// WorkerProfileModel mirrors the 'worker_profiles' table. UserID references users.id.
type WorkerProfileModel struct {
	ID                    uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID                uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FirstName             string    `gorm:"type:varchar(100)"`
	LastName              string    `gorm:"type:varchar(100)"`
	IsVerified            bool      `gorm:"not null;default:false"`
	LateCancellationCount int       `gorm:"not null;default:0"`
	TotalHoursWorked      float64   `gorm:"not null;default:0"`
	Tier                  string    `gorm:"type:varchar(16);not null;default:'SILVER'"`
	AverageRating         *float64
	ReviewCount           int `gorm:"not null;default:0"`
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// TableName explicitly sets the table name for GORM.
func (WorkerProfileModel) TableName() string {
	return "worker_profiles"
}

// HotelProfileModel mirrors the 'hotel_profiles' table. UserID references users.id.
type HotelProfileModel struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID          uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	BusinessName    string    `gorm:"type:varchar(200);not null"`
	IsVerified      bool      `gorm:"not null;default:false"`
	IsBanned        bool      `gorm:"not null;default:false"`
	BanReason       *string   `gorm:"type:text"`
	TotalHoursHired float64   `gorm:"not null;default:0"`
	Tier            string    `gorm:"type:varchar(16);not null;default:'SILVER'"`
	AverageRating   *float64
	ReviewCount     int `gorm:"not null;default:0"`
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// TableName explicitly sets the table name for GORM.
func (HotelProfileModel) TableName() string {
	return "hotel_profiles"
}
