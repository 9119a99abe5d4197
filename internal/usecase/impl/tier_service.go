package impl

import (
	"context"
	"log/slog"

	deliverycontext "staffing/internal/delivery/context"
	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/domain/service"
	"staffing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// tierService implements the TierUsecase interface.
type tierService struct {
	txManager repository.TransactionManager
	events    eventEmitter
	logger    *slog.Logger
}

// NewTierService is the constructor for tierService.
func NewTierService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	clock service.Clock,
	logger *slog.Logger,
) usecase.TierUsecase {
	return &tierService{
		txManager: txManager,
		events:    eventEmitter{publisher: publisher, clock: clock},
		logger:    logger,
	}
}

func (srv *tierService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// UpdateWorkerTier recomputes the worker's hours and tier from completed shifts.
// Hours and tier are written even when unchanged, so repeated calls converge.
func (srv *tierService) UpdateWorkerTier(ctx context.Context, workerID uuid.UUID) (*usecase.WorkerTierResult, error) {
	var (
		result *usecase.WorkerTierResult
		change tierChange
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		result, change, err = updateWorkerTierTx(ctx, repoFactory, workerID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update worker tier", slog.Any("error", err), slog.Any("worker_id", workerID))

		return nil, errors.Wrap(err, "failed to update worker tier")
	}

	srv.log(ctx).Info("Worker tier recomputed",
		slog.Any("worker_id", workerID),
		slog.String("previous_tier", result.PreviousTier.String()),
		slog.String("new_tier", result.NewTier.String()),
		slog.Float64("total_hours", result.TotalHours),
		slog.Bool("promoted", result.Promoted),
	)
	srv.events.emitTierChanges(ctx, srv.log(ctx), change)

	return result, nil
}

func (srv *tierService) UpdateHotelTier(ctx context.Context, hotelID uuid.UUID) error {
	var change tierChange

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		change, err = updateHotelTierTx(ctx, repoFactory, hotelID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to update hotel tier", slog.Any("error", err), slog.Any("hotel_id", hotelID))

		return errors.Wrap(err, "failed to update hotel tier")
	}

	srv.log(ctx).Info("Hotel tier recomputed",
		slog.Any("hotel_id", hotelID),
		slog.String("tier", change.next.String()),
		slog.Float64("total_hours", change.totalHours),
	)
	srv.events.emitTierChanges(ctx, srv.log(ctx), change)

	return nil
}

func (srv *tierService) RecalculateWorkerRating(ctx context.Context, workerID uuid.UUID) (*float64, error) {
	var average *float64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		average, err = recalculateWorkerRatingTx(ctx, repoFactory, workerID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to recalculate worker rating", slog.Any("error", err), slog.Any("worker_id", workerID))

		return nil, errors.Wrap(err, "failed to recalculate worker rating")
	}

	return average, nil
}

func (srv *tierService) RecalculateHotelRating(ctx context.Context, hotelID uuid.UUID) (*float64, error) {
	var average *float64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		average, err = recalculateHotelRatingTx(ctx, repoFactory, hotelID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to recalculate hotel rating", slog.Any("error", err), slog.Any("hotel_id", hotelID))

		return nil, errors.Wrap(err, "failed to recalculate hotel rating")
	}

	return average, nil
}

// GetWorkerTierProgress reads the stored hours of the caller's worker profile.
func (srv *tierService) GetWorkerTierProgress(ctx context.Context, userID uuid.UUID) (*entity.TierProgress, error) {
	var worker *entity.WorkerProfile

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		worker, err = repoFactory.WorkerRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return errors.Wrap(domainerrors.ErrWorkerNotFound, "worker profile not found")
			}

			return errors.Wrap(err, "failed to find worker profile")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to get tier progress")
	}

	progress := entity.TierProgressFor(worker.TotalHoursWorked)

	return &progress, nil
}
