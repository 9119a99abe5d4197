package impl

import (
	"context"
	"fmt"
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

// shiftService implements the ShiftUsecase interface.
type shiftService struct {
	txManager repository.TransactionManager
	events    eventEmitter
	logger    *slog.Logger
}

// NewShiftService is the constructor for shiftService.
func NewShiftService(
	txManager repository.TransactionManager,
	publisher service.EventPublisher,
	clock service.Clock,
	logger *slog.Logger,
) usecase.ShiftUsecase {
	return &shiftService{
		txManager: txManager,
		events:    eventEmitter{publisher: publisher, clock: clock},
		logger:    logger,
	}
}

func (srv *shiftService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CompleteShift records the worked hours and recomputes both tiers inside the
// completion transaction, so the aggregates never lag the shift that fed them.
func (srv *shiftService) CompleteShift(
	ctx context.Context,
	hotelUserID uuid.UUID,
	input *usecase.CompleteShiftInput,
) (*usecase.CompleteShiftResult, error) {
	if input == nil || input.ShiftID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("shift id is required"), "invalid complete request")
	}
	if input.TotalHours <= 0 || input.TotalHours > usecase.MaxShiftHours {
		return nil, errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("totalHours must be in (0, %d]", usecase.MaxShiftHours)),
			"invalid complete request",
		)
	}

	var (
		workerResult *usecase.WorkerTierResult
		workerChange tierChange
		hotelChange  tierChange
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hotel, err := findHotelByUser(ctx, repoFactory, hotelUserID)
		if err != nil {
			return err
		}

		shift, err := findShiftOwnedBy(ctx, repoFactory, input.ShiftID, func(s *entity.Shift) bool { return s.HotelID == hotel.ID })
		if err != nil {
			return err
		}
		if shift.IsCompleted {
			return errors.Wrap(domainerrors.ErrShiftAlreadyCompleted, "shift already completed")
		}

		if err := repoFactory.ShiftRepo().MarkCompleted(ctx, shift.ID, input.TotalHours); err != nil {
			if errors.Is(err, repository.ErrShiftNotFound) {
				return errors.Wrap(domainerrors.ErrShiftAlreadyCompleted, "shift completed concurrently")
			}

			return errors.Wrap(err, "failed to complete shift")
		}

		workerResult, workerChange, err = updateWorkerTierTx(ctx, repoFactory, shift.WorkerID)
		if err != nil {
			return err
		}

		hotelChange, err = updateHotelTierTx(ctx, repoFactory, hotel.ID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to complete shift", slog.Any("error", err), slog.Any("shift_id", input.ShiftID))

		return nil, errors.Wrap(err, "failed to complete shift")
	}

	srv.log(ctx).Info("Shift completed",
		slog.Any("shift_id", input.ShiftID),
		slog.Float64("total_hours", input.TotalHours),
		slog.String("worker_tier", workerResult.NewTier.String()),
		slog.String("hotel_tier", hotelChange.next.String()),
	)
	srv.events.emitTierChanges(ctx, srv.log(ctx), workerChange, hotelChange)

	return &usecase.CompleteShiftResult{
		ShiftID:    input.ShiftID,
		TotalHours: input.TotalHours,
		WorkerTier: *workerResult,
	}, nil
}

// RateWorker lets the hotel that ran a completed shift rate its worker. Re-rating overwrites.
func (srv *shiftService) RateWorker(ctx context.Context, hotelUserID uuid.UUID, input *usecase.RateShiftInput) (*float64, error) {
	if err := validateRating(input); err != nil {
		return nil, err
	}

	var average *float64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		hotel, err := findHotelByUser(ctx, repoFactory, hotelUserID)
		if err != nil {
			return err
		}

		shift, err := findShiftOwnedBy(ctx, repoFactory, input.ShiftID, func(s *entity.Shift) bool { return s.HotelID == hotel.ID })
		if err != nil {
			return err
		}
		if !shift.IsCompleted {
			return errors.Wrap(domainerrors.ErrShiftNotCompleted, "shift not completed")
		}

		if err := repoFactory.ShiftRepo().SetWorkerRating(ctx, shift.ID, input.Rating); err != nil {
			return errors.Wrap(err, "failed to store worker rating")
		}

		average, err = recalculateWorkerRatingTx(ctx, repoFactory, shift.WorkerID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to rate worker", slog.Any("error", err), slog.Any("shift_id", input.ShiftID))

		return nil, errors.Wrap(err, "failed to rate worker")
	}

	return average, nil
}

// RateHotel lets the worker of a completed shift rate the hotel. Re-rating overwrites.
func (srv *shiftService) RateHotel(ctx context.Context, workerUserID uuid.UUID, input *usecase.RateShiftInput) (*float64, error) {
	if err := validateRating(input); err != nil {
		return nil, err
	}

	var average *float64

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		worker, err := repoFactory.WorkerRepo().FindByUserID(ctx, workerUserID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return errors.Wrap(domainerrors.ErrWorkerNotFound, "worker profile not found")
			}

			return errors.Wrap(err, "failed to find worker profile")
		}

		shift, err := findShiftOwnedBy(ctx, repoFactory, input.ShiftID, func(s *entity.Shift) bool { return s.WorkerID == worker.ID })
		if err != nil {
			return err
		}
		if !shift.IsCompleted {
			return errors.Wrap(domainerrors.ErrShiftNotCompleted, "shift not completed")
		}

		if err := repoFactory.ShiftRepo().SetHotelRating(ctx, shift.ID, input.Rating); err != nil {
			return errors.Wrap(err, "failed to store hotel rating")
		}

		average, err = recalculateHotelRatingTx(ctx, repoFactory, shift.HotelID)

		return err
	})
	if err != nil {
		srv.log(ctx).Error("Failed to rate hotel", slog.Any("error", err), slog.Any("shift_id", input.ShiftID))

		return nil, errors.Wrap(err, "failed to rate hotel")
	}

	return average, nil
}

func validateRating(input *usecase.RateShiftInput) error {
	if input == nil || input.ShiftID == uuid.Nil {
		return errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("shift id is required"), "invalid rating request")
	}
	if input.Rating < usecase.MinRating || input.Rating > usecase.MaxRating {
		return errors.Wrap(
			domainerrors.ErrValidationFailed.WithDetails(fmt.Sprintf("rating must be between %d and %d", usecase.MinRating, usecase.MaxRating)),
			"invalid rating request",
		)
	}

	return nil
}

func findHotelByUser(ctx context.Context, repoFactory repository.RepositoryFactory, userID uuid.UUID) (*entity.HotelProfile, error) {
	hotel, err := repoFactory.HotelRepo().FindByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrHotelNotFound) {
			return nil, errors.Wrap(domainerrors.ErrHotelNotFound, "hotel profile not found")
		}

		return nil, errors.Wrap(err, "failed to find hotel profile")
	}

	return hotel, nil
}

// findShiftOwnedBy hides shifts the caller does not own behind the same NotFound as missing ones.
func findShiftOwnedBy(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	shiftID uuid.UUID,
	owns func(*entity.Shift) bool,
) (*entity.Shift, error) {
	shift, err := repoFactory.ShiftRepo().FindByID(ctx, shiftID)
	if err != nil {
		if errors.Is(err, repository.ErrShiftNotFound) {
			return nil, errors.Wrap(domainerrors.ErrShiftNotFound, "shift not found")
		}

		return nil, errors.Wrap(err, "failed to find shift")
	}
	if !owns(shift) {
		return nil, errors.Wrap(domainerrors.ErrShiftNotFound, "shift belongs to another party")
	}

	return shift, nil
}
