// Package model holds the GORM persistence models. They are mapped to domain
// entities by the postgres package and never leave the infrastructure layer.
package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel mirrors the 'users' table. PostgreSQL generates UUIDs via uuid_generate_v7().
type UserModel struct {
	ID           uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	Email        string    `gorm:"type:varchar(255);unique;not null"`
	PasswordHash string    `gorm:"type:varchar(255);not null"`
	Role         string    `gorm:"type:varchar(16);not null"`
	CreatedAt    time.Time
	UpdatedAt    time.Time

	AdminProfile  *AdminProfileModel  `gorm:"foreignKey:UserID"`
	WorkerProfile *WorkerProfileModel `gorm:"foreignKey:UserID"`
	HotelProfile  *HotelProfileModel  `gorm:"foreignKey:UserID"`
}

// TableName explicitly sets the table name for GORM.
func (UserModel) TableName() string {
	return "users"
}

// AdminProfileModel mirrors the 'admin_profiles' table.
type AdminProfileModel struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v7()"`
	UserID    uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`
	FullName  string    `gorm:"type:varchar(100)"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (AdminProfileModel) TableName() string {
	return "admin_profiles"
}
