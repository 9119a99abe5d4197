package service

import (
	"context"
	"time"
)

// Event types published by the staffing core.
const (
	EventTypeShiftCancelled = "shift.cancelled"
	EventTypeTierChanged    = "tier.changed"

	// EventTypeTierRecomputeRequested asks the event worker to recompute one subject's tier and rating.
	EventTypeTierRecomputeRequested = "tier.recompute_requested"
)

// Subject types carried by tier events.
const (
	SubjectWorker = "worker"
	SubjectHotel  = "hotel"
)

// Event is the envelope sent to the message queue.
type Event struct {
	ID         string    `json:"id"`
	Type       string    `json:"type"`
	RequestID  string    `json:"request_id,omitempty"` // For distributed tracing
	OccurredAt time.Time `json:"occurred_at"`
	Payload    any       `json:"payload"`
}

// ShiftCancelledPayload describes a committed worker cancellation.
type ShiftCancelledPayload struct {
	ShiftID            string  `json:"shift_id"`
	WorkerID           string  `json:"worker_id"`
	HotelID            string  `json:"hotel_id"`
	JobPostingID       string  `json:"job_posting_id"`
	IsLateCancellation bool    `json:"is_late_cancellation"`
	Reason             *string `json:"reason,omitempty"`
}

// TierChangedPayload describes a tier recompute that changed the label.
type TierChangedPayload struct {
	SubjectType  string  `json:"subject_type"` // "worker" or "hotel"
	SubjectID    string  `json:"subject_id"`
	PreviousTier string  `json:"previous_tier"`
	NewTier      string  `json:"new_tier"`
	TotalHours   float64 `json:"total_hours"`
	Promoted     bool    `json:"promoted"`
}

// TierRecomputePayload names the worker or hotel to recompute.
type TierRecomputePayload struct {
	SubjectType string `json:"subject_type"`
	SubjectID   string `json:"subject_id"`
}

// EventPublisher publishes domain events to a message queue.
type EventPublisher interface {
	Publish(ctx context.Context, event *Event) error

	// Close releases any resources held by the publisher
	Close() error
}
