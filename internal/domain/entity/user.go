// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is a login identity. Exactly one of the profile pointers is set, matching Role.
type User struct {
	ID            uuid.UUID      // The Global Unique Identifier (GUID) for the user.
	Email         string         // Login identifier.
	PasswordHash  string         // bcrypt hash of the password.
	Role          Role           // ADMIN, WORKER or HOTEL.
	AdminProfile  *AdminProfile  // Set when Role is ADMIN.
	WorkerProfile *WorkerProfile // Set when Role is WORKER.
	HotelProfile  *HotelProfile  // Set when Role is HOTEL.
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// AdminProfile holds data specific to the admin role.
type AdminProfile struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	FullName  string
	UpdatedAt time.Time
}

// WorkerProfile holds data specific to the worker role.
type WorkerProfile struct {
	ID                    uuid.UUID
	UserID                uuid.UUID
	FirstName             string
	LastName              string
	IsVerified            bool
	LateCancellationCount int      // Incremented on every late cancellation.
	TotalHoursWorked      float64  // Sum of hours over completed shifts, recomputed by the tier engine.
	Tier                  Tier     // Derived from TotalHoursWorked, never set directly.
	AverageRating         *float64 // Mean of ratings hotels gave this worker; nil until the first rating.
	ReviewCount           int
	UpdatedAt             time.Time
}

// HotelProfile holds data specific to the hotel role.
type HotelProfile struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	BusinessName    string
	IsVerified      bool
	IsBanned        bool
	BanReason       *string
	TotalHoursHired float64
	Tier            Tier
	AverageRating   *float64
	ReviewCount     int
	UpdatedAt       time.Time
}
