package usecase

import (
	"context"

	"staffing/internal/domain/entity"

	"github.com/google/uuid"
)

// WorkerTierResult reports a worker tier recompute.
type WorkerTierResult struct {
	PreviousTier entity.Tier
	NewTier      entity.Tier
	TotalHours   float64
	Promoted     bool
}

// TierUsecase recomputes tiers and ratings from completed shifts.
type TierUsecase interface {
	UpdateWorkerTier(ctx context.Context, workerID uuid.UUID) (*WorkerTierResult, error)

	// UpdateHotelTier is fire-and-forget: no promotion signal is returned.
	UpdateHotelTier(ctx context.Context, hotelID uuid.UUID) error

	// RecalculateWorkerRating returns nil when the worker has no ratings yet.
	RecalculateWorkerRating(ctx context.Context, workerID uuid.UUID) (*float64, error)
	RecalculateHotelRating(ctx context.Context, hotelID uuid.UUID) (*float64, error)

	// GetWorkerTierProgress reports progress for the worker profile attached to userID.
	GetWorkerTierProgress(ctx context.Context, userID uuid.UUID) (*entity.TierProgress, error)
}
