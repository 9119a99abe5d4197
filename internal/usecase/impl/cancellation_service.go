package impl

import (
	"context"
	"log/slog"
	"time"

	"staffing/config"
	deliverycontext "staffing/internal/delivery/context"
	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/domain/service"
	"staffing/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const defaultLateWindow = 24 * time.Hour

// cancellationService implements the CancellationUsecase interface.
type cancellationService struct {
	txManager  repository.TransactionManager
	clock      service.Clock
	events     eventEmitter
	lateWindow time.Duration
	logger     *slog.Logger
}

// NewCancellationService is the constructor for cancellationService.
func NewCancellationService(
	txManager repository.TransactionManager,
	clock service.Clock,
	publisher service.EventPublisher,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.CancellationUsecase {
	lateWindow := defaultLateWindow
	if cfg != nil && cfg.Cancellation != nil && cfg.Cancellation.LateWindow > 0 {
		lateWindow = cfg.Cancellation.LateWindow
	}

	return &cancellationService{
		txManager:  txManager,
		clock:      clock,
		events:     eventEmitter{publisher: publisher, clock: clock},
		lateWindow: lateWindow,
		logger:     logger,
	}
}

func (srv *cancellationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// CancelShift runs the ownership checks and the four writes in one transaction.
// The guarded delete is the serialization point: when two requests race, the
// loser deletes nothing and rolls back with NotFound before touching the slot counter.
func (srv *cancellationService) CancelShift(
	ctx context.Context,
	userID uuid.UUID,
	input *usecase.CancelShiftInput,
) (*usecase.CancelShiftResult, error) {
	if input == nil || input.ShiftID == uuid.Nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails("shift id is required"), "invalid cancel request")
	}

	logger := srv.log(ctx).With(slog.Any("shift_id", input.ShiftID), slog.Any("user_id", userID))
	now := srv.clock.Now()

	var (
		shift  *entity.Shift
		worker *entity.WorkerProfile
		isLate bool
	)

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error

		// 1. Resolve the caller's worker profile
		worker, err = repoFactory.WorkerRepo().FindByUserID(ctx, userID)
		if err != nil {
			if errors.Is(err, repository.ErrWorkerNotFound) {
				return errors.Wrap(domainerrors.ErrWorkerNotFound, "worker profile not found")
			}

			return errors.Wrap(err, "failed to find worker profile")
		}

		// 2. The shift must exist and belong to the caller; both failures look the same
		shift, err = repoFactory.ShiftRepo().FindByID(ctx, input.ShiftID)
		if err != nil {
			if errors.Is(err, repository.ErrShiftNotFound) {
				return errors.Wrap(domainerrors.ErrShiftNotFound, "shift not found")
			}

			return errors.Wrap(err, "failed to find shift")
		}
		if shift.WorkerID != worker.ID {
			return errors.Wrap(domainerrors.ErrShiftNotFound, "shift belongs to another worker")
		}

		isLate = entity.IsLateCancellation(shift.StartTime, now, srv.lateWindow)

		return srv.applyCancellation(ctx, repoFactory, shift, worker, input.Reason, now, isLate)
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			logger.Info("Shift cancellation rejected", slog.Any("error", err))

			return nil, err
		}

		logger.Error("Shift cancellation failed", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrCancellationFailed, err.Error())
	}

	if input.ClientClaimsLate != nil && *input.ClientClaimsLate != isLate {
		logger.Info("Client lateness hint disagrees with server",
			slog.Bool("client_late", *input.ClientClaimsLate),
			slog.Bool("server_late", isLate),
		)
	}

	logger.Info("Shift cancelled",
		slog.Any("worker_id", worker.ID),
		slog.Any("job_posting_id", shift.JobPostingID),
		slog.Bool("late", isLate),
	)

	srv.events.emit(ctx, logger, service.EventTypeShiftCancelled, service.ShiftCancelledPayload{
		ShiftID:            shift.ID.String(),
		WorkerID:           worker.ID.String(),
		HotelID:            shift.HotelID.String(),
		JobPostingID:       shift.JobPostingID.String(),
		IsLateCancellation: isLate,
		Reason:             input.Reason,
	})

	message := usecase.MessageShiftCancelled
	if isLate {
		message = usecase.MessageLateShiftCancelled
	}

	return &usecase.CancelShiftResult{
		Cancelled:        true,
		LateCancellation: isLate,
		Message:          message,
	}, nil
}

func (srv *cancellationService) applyCancellation(
	ctx context.Context,
	repoFactory repository.RepositoryFactory,
	shift *entity.Shift,
	worker *entity.WorkerProfile,
	reason *string,
	now time.Time,
	isLate bool,
) error {
	deleted, err := repoFactory.ShiftRepo().DeleteOwned(ctx, shift.ID, worker.ID)
	if err != nil {
		return errors.Wrap(err, "failed to delete shift")
	}
	if !deleted {
		return errors.Wrap(domainerrors.ErrShiftNotFound, "shift already cancelled")
	}

	if err := repoFactory.JobPostingRepo().ReopenSlot(ctx, shift.JobPostingID); err != nil {
		return errors.Wrap(err, "failed to reopen job posting slot")
	}

	if isLate {
		if err := repoFactory.WorkerRepo().IncrementLateCancellations(ctx, worker.ID); err != nil {
			return errors.Wrap(err, "failed to record late cancellation")
		}
	}

	affected, err := repoFactory.ApplicationRepo().CancelLatestAccepted(ctx, shift.JobPostingID, worker.ID, entity.CancellationRecord{
		Reason:      reason,
		CancelledAt: now,
		IsLate:      isLate,
	})
	if err != nil {
		return errors.Wrap(err, "failed to cancel application")
	}
	if affected == 0 {
		srv.log(ctx).Warn("No accepted application found for cancelled shift",
			slog.Any("job_posting_id", shift.JobPostingID),
			slog.Any("worker_id", worker.ID),
		)
	}

	return nil
}
