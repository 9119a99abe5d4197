package impl

import (
	"context"

	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/domain/service"
	"staffing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// The helpers below run inside a caller-owned transaction so a recompute can
// share the boundary of the event that triggered it (e.g. shift completion).

func updateWorkerTierTx(ctx context.Context, repos repository.RepositoryFactory, workerID uuid.UUID) (*usecase.WorkerTierResult, tierChange, error) {
	worker, err := repos.WorkerRepo().FindByID(ctx, workerID)
	if err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, tierChange{}, errors.Wrap(domainerrors.ErrWorkerNotFound, "worker profile not found")
		}

		return nil, tierChange{}, errors.Wrap(err, "failed to find worker profile")
	}

	totalHours, err := repos.ShiftRepo().SumCompletedHoursByWorker(ctx, workerID)
	if err != nil {
		return nil, tierChange{}, errors.Wrap(err, "failed to sum worker hours")
	}

	newTier := entity.CalculateTier(totalHours)
	if err := repos.WorkerRepo().UpdateTier(ctx, workerID, totalHours, newTier); err != nil {
		return nil, tierChange{}, errors.Wrap(err, "failed to update worker tier")
	}

	change := tierChange{
		subjectType: service.SubjectWorker,
		subjectID:   workerID,
		previous:    worker.Tier,
		next:        newTier,
		totalHours:  totalHours,
	}

	return &usecase.WorkerTierResult{
		PreviousTier: worker.Tier,
		NewTier:      newTier,
		TotalHours:   totalHours,
		Promoted:     entity.IsPromotion(worker.Tier, newTier),
	}, change, nil
}

func updateHotelTierTx(ctx context.Context, repos repository.RepositoryFactory, hotelID uuid.UUID) (tierChange, error) {
	hotel, err := repos.HotelRepo().FindByID(ctx, hotelID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return tierChange{}, errors.Wrap(domainerrors.ErrHotelNotFound, "hotel profile not found")
		}

		return tierChange{}, errors.Wrap(err, "failed to find hotel profile")
	}

	totalHours, err := repos.ShiftRepo().SumCompletedHoursByHotel(ctx, hotelID)
	if err != nil {
		return tierChange{}, errors.Wrap(err, "failed to sum hotel hours")
	}

	newTier := entity.CalculateTier(totalHours)
	if err := repos.HotelRepo().UpdateTier(ctx, hotelID, totalHours, newTier); err != nil {
		return tierChange{}, errors.Wrap(err, "failed to update hotel tier")
	}

	return tierChange{
		subjectType: service.SubjectHotel,
		subjectID:   hotelID,
		previous:    hotel.Tier,
		next:        newTier,
		totalHours:  totalHours,
	}, nil
}

// recalculateWorkerRatingTx persists mean and count; the mean stays nil when there are no ratings.
func recalculateWorkerRatingTx(ctx context.Context, repos repository.RepositoryFactory, workerID uuid.UUID) (*float64, error) {
	if _, err := repos.WorkerRepo().FindByID(ctx, workerID); err != nil {
		if errors.Is(err, repository.ErrWorkerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrWorkerNotFound, "worker profile not found")
		}

		return nil, errors.Wrap(err, "failed to find worker profile")
	}

	stats, err := repos.ShiftRepo().WorkerRatingStats(ctx, workerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate worker ratings")
	}

	if err := repos.WorkerRepo().UpdateRating(ctx, workerID, stats.Average, stats.Count); err != nil {
		return nil, errors.Wrap(err, "failed to update worker rating")
	}

	return stats.Average, nil
}

func recalculateHotelRatingTx(ctx context.Context, repos repository.RepositoryFactory, hotelID uuid.UUID) (*float64, error) {
	if _, err := repos.HotelRepo().FindByID(ctx, hotelID); err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHotelNotFound, "hotel profile not found")
		}

		return nil, errors.Wrap(err, "failed to find hotel profile")
	}

	stats, err := repos.ShiftRepo().HotelRatingStats(ctx, hotelID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to aggregate hotel ratings")
	}

	if err := repos.HotelRepo().UpdateRating(ctx, hotelID, stats.Average, stats.Count); err != nil {
		return nil, errors.Wrap(err, "failed to update hotel rating")
	}

	return stats.Average, nil
}
