package entity

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus is the lifecycle state of a worker's application.
type ApplicationStatus string

const (
	ApplicationStatusPending   ApplicationStatus = "PENDING"
	ApplicationStatusAccepted  ApplicationStatus = "ACCEPTED"
	ApplicationStatusRejected  ApplicationStatus = "REJECTED"
	ApplicationStatusCancelled ApplicationStatus = "CANCELLED"
)

// Application is a worker's request to take a job posting.
type Application struct {
	ID                 uuid.UUID
	JobPostingID       uuid.UUID
	WorkerID           uuid.UUID
	Status             ApplicationStatus
	CancellationReason *string
	CancelledAt        *time.Time
	IsLateCancellation bool
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

// CancellationRecord is what gets written onto the application when its shift is cancelled.
type CancellationRecord struct {
	Reason      *string
	CancelledAt time.Time
	IsLate      bool
}
