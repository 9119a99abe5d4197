// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Messages returned to the worker after a cancellation.
const (
	MessageShiftCancelled     = "Shift cancelled successfully"
	MessageLateShiftCancelled = "Shift cancelled. A late cancellation violation has been recorded."
)

// CancelShiftInput is a worker's request to drop a shift.
type CancelShiftInput struct {
	ShiftID uuid.UUID
	Reason  *string

	// ClientClaimsLate is the caller's own view of lateness. It is advisory only:
	// lateness is always recomputed from the shift start and the server clock.
	ClientClaimsLate *bool
}

// CancelShiftResult is the outcome of a committed cancellation.
type CancelShiftResult struct {
	Cancelled        bool
	LateCancellation bool
	Message          string
}

// CancellationUsecase handles worker-initiated shift cancellations.
type CancellationUsecase interface {
	// CancelShift deletes the shift, reopens its posting slot, records a late
	// violation when due and cancels the accepted application, all in one transaction.
	CancelShift(ctx context.Context, userID uuid.UUID, input *CancelShiftInput) (*CancelShiftResult, error)
}
