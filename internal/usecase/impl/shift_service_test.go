package impl

import (
	"context"
	"testing"
	"time"

	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/domain/service"
	"staffing/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type shiftFixture struct {
	*repoFixture

	service     usecase.ShiftUsecase
	hotelUserID uuid.UUID
	hotel       *entity.HotelProfile
	worker      *entity.WorkerProfile
}

func createTestShiftService(t *testing.T) *shiftFixture {
	t.Helper()

	repos := newRepoFixture(t)
	clock := fixedClock{now: time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)}
	hotelUserID := uuid.New()

	return &shiftFixture{
		repoFixture: repos,
		service:     NewShiftService(repos.txManager, repos.publisher, clock, newDiscardLogger()),
		hotelUserID: hotelUserID,
		hotel:       &entity.HotelProfile{ID: uuid.New(), UserID: hotelUserID, Tier: entity.TierSilver},
		worker:      &entity.WorkerProfile{ID: uuid.New(), UserID: uuid.New(), Tier: entity.TierSilver},
	}
}

func (fx *shiftFixture) shift(completed bool) *entity.Shift {
	return &entity.Shift{
		ID:           uuid.New(),
		WorkerID:     fx.worker.ID,
		HotelID:      fx.hotel.ID,
		JobPostingID: uuid.New(),
		IsCompleted:  completed,
	}
}

func TestShiftService_CompleteShift(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	shift := fx.shift(false)

	fx.onExecute(ctx)
	fx.hotelRepo.EXPECT().FindByUserID(ctx, fx.hotelUserID).Return(fx.hotel, nil)
	fx.shiftRepo.EXPECT().FindByID(ctx, shift.ID).Return(shift, nil)
	fx.shiftRepo.EXPECT().MarkCompleted(ctx, shift.ID, 8.0).Return(nil)
	fx.workerRepo.EXPECT().FindByID(ctx, fx.worker.ID).Return(fx.worker, nil)
	fx.shiftRepo.EXPECT().SumCompletedHoursByWorker(ctx, fx.worker.ID).Return(52.0, nil)
	fx.workerRepo.EXPECT().UpdateTier(ctx, fx.worker.ID, 52.0, entity.TierGold).Return(nil)
	fx.hotelRepo.EXPECT().FindByID(ctx, fx.hotel.ID).Return(fx.hotel, nil)
	fx.shiftRepo.EXPECT().SumCompletedHoursByHotel(ctx, fx.hotel.ID).Return(8.0, nil)
	fx.hotelRepo.EXPECT().UpdateTier(ctx, fx.hotel.ID, 8.0, entity.TierSilver).Return(nil)
	fx.expectEvent(service.EventTypeTierChanged, func(e *service.Event) bool {
		payload, ok := e.Payload.(service.TierChangedPayload)

		return ok && payload.SubjectType == "worker" && payload.Promoted
	})

	result, err := fx.service.CompleteShift(ctx, fx.hotelUserID, &usecase.CompleteShiftInput{ShiftID: shift.ID, TotalHours: 8})

	require.NoError(t, err)
	assert.Equal(t, shift.ID, result.ShiftID)
	assert.Equal(t, entity.TierGold, result.WorkerTier.NewTier)
	assert.True(t, result.WorkerTier.Promoted)
}

func TestShiftService_CompleteShift_InvalidHours(t *testing.T) {
	tests := []struct {
		name  string
		hours float64
	}{
		{name: "zero", hours: 0},
		{name: "negative", hours: -2},
		{name: "more than a day", hours: 24.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fx := createTestShiftService(t)

			_, err := fx.service.CompleteShift(context.Background(), fx.hotelUserID, &usecase.CompleteShiftInput{
				ShiftID:    uuid.New(),
				TotalHours: tt.hours,
			})

			assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
		})
	}
}

func TestShiftService_CompleteShift_AlreadyCompleted(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	shift := fx.shift(true)

	fx.onExecute(ctx)
	fx.hotelRepo.EXPECT().FindByUserID(ctx, fx.hotelUserID).Return(fx.hotel, nil)
	fx.shiftRepo.EXPECT().FindByID(ctx, shift.ID).Return(shift, nil)

	_, err := fx.service.CompleteShift(ctx, fx.hotelUserID, &usecase.CompleteShiftInput{ShiftID: shift.ID, TotalHours: 8})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrShiftAlreadyCompleted)
	assert.ErrorIs(t, err, domainerrors.ErrConflict)
}

func TestShiftService_CompleteShift_OtherHotelsShift(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	shift := fx.shift(false)
	shift.HotelID = uuid.New()

	fx.onExecute(ctx)
	fx.hotelRepo.EXPECT().FindByUserID(ctx, fx.hotelUserID).Return(fx.hotel, nil)
	fx.shiftRepo.EXPECT().FindByID(ctx, shift.ID).Return(shift, nil)

	_, err := fx.service.CompleteShift(ctx, fx.hotelUserID, &usecase.CompleteShiftInput{ShiftID: shift.ID, TotalHours: 8})

	assert.ErrorIs(t, err, domainerrors.ErrShiftNotFound)
}

func TestShiftService_RateWorker(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	shift := fx.shift(true)
	average := floatPtr(4)

	fx.onExecute(ctx)
	fx.hotelRepo.EXPECT().FindByUserID(ctx, fx.hotelUserID).Return(fx.hotel, nil)
	fx.shiftRepo.EXPECT().FindByID(ctx, shift.ID).Return(shift, nil)
	fx.shiftRepo.EXPECT().SetWorkerRating(ctx, shift.ID, 4).Return(nil)
	fx.workerRepo.EXPECT().FindByID(ctx, fx.worker.ID).Return(fx.worker, nil)
	fx.shiftRepo.EXPECT().WorkerRatingStats(ctx, fx.worker.ID).Return(repository.RatingStats{Average: average, Count: 1}, nil)
	fx.workerRepo.EXPECT().UpdateRating(ctx, fx.worker.ID, average, 1).Return(nil)

	got, err := fx.service.RateWorker(ctx, fx.hotelUserID, &usecase.RateShiftInput{ShiftID: shift.ID, Rating: 4})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 4, *got, 0.0001)
}

func TestShiftService_RateWorker_RequiresCompletedShift(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	shift := fx.shift(false)

	fx.onExecute(ctx)
	fx.hotelRepo.EXPECT().FindByUserID(ctx, fx.hotelUserID).Return(fx.hotel, nil)
	fx.shiftRepo.EXPECT().FindByID(ctx, shift.ID).Return(shift, nil)

	_, err := fx.service.RateWorker(ctx, fx.hotelUserID, &usecase.RateShiftInput{ShiftID: shift.ID, Rating: 5})

	assert.ErrorIs(t, err, domainerrors.ErrShiftNotCompleted)
}

func TestShiftService_RateWorker_RatingOutOfRange(t *testing.T) {
	for _, rating := range []int{0, 6, -1} {
		fx := createTestShiftService(t)

		_, err := fx.service.RateWorker(context.Background(), fx.hotelUserID, &usecase.RateShiftInput{ShiftID: uuid.New(), Rating: rating})

		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "rating %d", rating)
	}
}

func TestShiftService_RateHotel(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	shift := fx.shift(true)
	average := floatPtr(2.5)

	fx.onExecute(ctx)
	fx.workerRepo.EXPECT().FindByUserID(ctx, fx.worker.UserID).Return(fx.worker, nil)
	fx.shiftRepo.EXPECT().FindByID(ctx, shift.ID).Return(shift, nil)
	fx.shiftRepo.EXPECT().SetHotelRating(ctx, shift.ID, 2).Return(nil)
	fx.hotelRepo.EXPECT().FindByID(ctx, fx.hotel.ID).Return(fx.hotel, nil)
	fx.shiftRepo.EXPECT().HotelRatingStats(ctx, fx.hotel.ID).Return(repository.RatingStats{Average: average, Count: 2}, nil)
	fx.hotelRepo.EXPECT().UpdateRating(ctx, fx.hotel.ID, average, 2).Return(nil)

	got, err := fx.service.RateHotel(ctx, fx.worker.UserID, &usecase.RateShiftInput{ShiftID: shift.ID, Rating: 2})

	require.NoError(t, err)
	require.NotNil(t, got)
	assert.InDelta(t, 2.5, *got, 0.0001)
}

func TestShiftService_RateHotel_OtherWorkersShift(t *testing.T) {
	fx := createTestShiftService(t)
	ctx := context.Background()
	shift := fx.shift(true)
	shift.WorkerID = uuid.New()

	fx.onExecute(ctx)
	fx.workerRepo.EXPECT().FindByUserID(ctx, fx.worker.UserID).Return(fx.worker, nil)
	fx.shiftRepo.EXPECT().FindByID(ctx, shift.ID).Return(shift, nil)

	_, err := fx.service.RateHotel(ctx, fx.worker.UserID, &usecase.RateShiftInput{ShiftID: shift.ID, Rating: 3})

	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
