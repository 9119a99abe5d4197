package usecase

import (
	"context"

	"github.com/google/uuid"
)

// Shift completion and rating bounds.
const (
	MaxShiftHours = 24
	MinRating     = 1
	MaxRating     = 5
)

// CompleteShiftInput is a hotel confirming the hours worked on a shift.
type CompleteShiftInput struct {
	ShiftID    uuid.UUID
	TotalHours float64
}

// CompleteShiftResult carries the worker tier recompute triggered by the completion.
type CompleteShiftResult struct {
	ShiftID    uuid.UUID
	TotalHours float64
	WorkerTier WorkerTierResult
}

// RateShiftInput is one side rating the other on a completed shift.
type RateShiftInput struct {
	ShiftID uuid.UUID
	Rating  int
}

// ShiftUsecase covers the post-booking lifecycle of a shift.
type ShiftUsecase interface {
	// CompleteShift marks the hotel's shift completed and recomputes both tiers in the same transaction.
	CompleteShift(ctx context.Context, hotelUserID uuid.UUID, input *CompleteShiftInput) (*CompleteShiftResult, error)

	// RateWorker stores the hotel's rating of the worker and returns the worker's new average.
	RateWorker(ctx context.Context, hotelUserID uuid.UUID, input *RateShiftInput) (*float64, error)

	// RateHotel stores the worker's rating of the hotel and returns the hotel's new average.
	RateHotel(ctx context.Context, workerUserID uuid.UUID, input *RateShiftInput) (*float64, error)
}
