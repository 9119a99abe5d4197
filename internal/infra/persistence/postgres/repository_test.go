package postgres

import (
	"context"
	"testing"
	"time"

	"staffing/internal/domain/entity"
	"staffing/internal/domain/repository"
	"staffing/internal/errors"
	"staffing/internal/infra/persistence/model"
	"staffing/internal/infra/persistence/sqlitetest"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type seed struct {
	db *gorm.DB
}

func (s seed) worker(t *testing.T) model.WorkerProfileModel {
	t.Helper()

	userID := uuid.New()
	require.NoError(t, s.db.Create(&model.UserModel{
		ID:           userID,
		Email:        userID.String() + "@example.com",
		PasswordHash: "hash",
		Role:         string(entity.RoleWorker),
	}).Error)

	worker := model.WorkerProfileModel{ID: uuid.New(), UserID: userID, FirstName: "Ana", LastName: "Lee", Tier: "SILVER"}
	require.NoError(t, s.db.Create(&worker).Error)

	return worker
}

func (s seed) hotel(t *testing.T) model.HotelProfileModel {
	t.Helper()

	hotel := model.HotelProfileModel{ID: uuid.New(), UserID: uuid.New(), BusinessName: "Grand", Tier: "SILVER"}
	require.NoError(t, s.db.Create(&hotel).Error)

	return hotel
}

func (s seed) posting(t *testing.T, hotelID uuid.UUID, slots int, filled bool) model.JobPostingModel {
	t.Helper()

	start := time.Now().UTC().Add(48 * time.Hour)
	posting := model.JobPostingModel{
		ID:         uuid.New(),
		HotelID:    hotelID,
		Title:      "Banquet server",
		StartTime:  start,
		EndTime:    start.Add(8 * time.Hour),
		HourlyRate: 22.5,
		SlotsOpen:  slots,
		IsFilled:   filled,
	}
	require.NoError(t, s.db.Create(&posting).Error)

	return posting
}

func (s seed) shift(t *testing.T, workerID, hotelID, postingID uuid.UUID, completed bool, hours float64, workerRating *int) model.ShiftModel {
	t.Helper()

	shift := model.ShiftModel{
		ID:           uuid.New(),
		WorkerID:     workerID,
		HotelID:      hotelID,
		JobPostingID: postingID,
		StartTime:    time.Now().UTC().Add(48 * time.Hour),
		IsCompleted:  completed,
		TotalHours:   hours,
		WorkerRating: workerRating,
	}
	require.NoError(t, s.db.Create(&shift).Error)

	return shift
}

func (s seed) application(t *testing.T, postingID, workerID uuid.UUID, status entity.ApplicationStatus, createdAt time.Time) model.ApplicationModel {
	t.Helper()

	app := model.ApplicationModel{
		ID:           uuid.New(),
		JobPostingID: postingID,
		WorkerID:     workerID,
		Status:       string(status),
		CreatedAt:    createdAt,
	}
	require.NoError(t, s.db.Create(&app).Error)

	return app
}

func intPtr(v int) *int { return &v }

func TestShiftRepository_DeleteOwned(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	worker := s.worker(t)
	hotel := s.hotel(t)
	posting := s.posting(t, hotel.ID, 0, true)
	shift := s.shift(t, worker.ID, hotel.ID, posting.ID, false, 0, nil)
	repo := NewShiftRepository(db)

	deleted, err := repo.DeleteOwned(ctx, shift.ID, uuid.New())
	require.NoError(t, err)
	assert.False(t, deleted, "another worker's shift must not be deleted")

	_, err = repo.FindByID(ctx, shift.ID)
	require.NoError(t, err)

	deleted, err = repo.DeleteOwned(ctx, shift.ID, worker.ID)
	require.NoError(t, err)
	assert.True(t, deleted)

	deleted, err = repo.DeleteOwned(ctx, shift.ID, worker.ID)
	require.NoError(t, err)
	assert.False(t, deleted, "second delete sees zero rows")

	_, err = repo.FindByID(ctx, shift.ID)
	assert.ErrorIs(t, err, repository.ErrShiftNotFound)
}

func TestShiftRepository_MarkCompleted(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	worker := s.worker(t)
	hotel := s.hotel(t)
	posting := s.posting(t, hotel.ID, 0, true)
	shift := s.shift(t, worker.ID, hotel.ID, posting.ID, false, 0, nil)
	repo := NewShiftRepository(db)

	require.NoError(t, repo.MarkCompleted(ctx, shift.ID, 7.5))

	got, err := repo.FindByID(ctx, shift.ID)
	require.NoError(t, err)
	assert.True(t, got.IsCompleted)
	assert.InDelta(t, 7.5, got.TotalHours, 1e-9)

	err = repo.MarkCompleted(ctx, shift.ID, 8)
	assert.ErrorIs(t, err, repository.ErrShiftNotFound, "completed shifts are not completed again")
}

func TestShiftRepository_SumCompletedHours(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	worker := s.worker(t)
	hotel := s.hotel(t)
	posting := s.posting(t, hotel.ID, 0, true)
	s.shift(t, worker.ID, hotel.ID, posting.ID, true, 8, nil)
	s.shift(t, worker.ID, hotel.ID, posting.ID, true, 4.5, nil)
	s.shift(t, worker.ID, hotel.ID, posting.ID, false, 10, nil)
	repo := NewShiftRepository(db)

	total, err := repo.SumCompletedHoursByWorker(ctx, worker.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, total, 1e-9)

	total, err = repo.SumCompletedHoursByHotel(ctx, hotel.ID)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, total, 1e-9)

	total, err = repo.SumCompletedHoursByWorker(ctx, uuid.New())
	require.NoError(t, err)
	assert.Zero(t, total)
}

func TestShiftRepository_WorkerRatingStats(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	worker := s.worker(t)
	hotel := s.hotel(t)
	posting := s.posting(t, hotel.ID, 0, true)
	repo := NewShiftRepository(db)

	stats, err := repo.WorkerRatingStats(ctx, worker.ID)
	require.NoError(t, err)
	assert.Nil(t, stats.Average, "no ratings means no average, not zero")
	assert.Zero(t, stats.Count)

	s.shift(t, worker.ID, hotel.ID, posting.ID, true, 8, intPtr(4))
	s.shift(t, worker.ID, hotel.ID, posting.ID, true, 8, intPtr(5))
	s.shift(t, worker.ID, hotel.ID, posting.ID, true, 8, nil)
	s.shift(t, worker.ID, hotel.ID, posting.ID, false, 0, intPtr(1))

	stats, err = repo.WorkerRatingStats(ctx, worker.ID)
	require.NoError(t, err)
	require.NotNil(t, stats.Average)
	assert.InDelta(t, 4.5, *stats.Average, 1e-9)
	assert.Equal(t, 2, stats.Count)
}

func TestShiftRepository_HotelRating(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	worker := s.worker(t)
	hotel := s.hotel(t)
	posting := s.posting(t, hotel.ID, 0, true)
	shift := s.shift(t, worker.ID, hotel.ID, posting.ID, true, 6, nil)
	repo := NewShiftRepository(db)

	require.NoError(t, repo.SetHotelRating(ctx, shift.ID, 3))

	stats, err := repo.HotelRatingStats(ctx, hotel.ID)
	require.NoError(t, err)
	require.NotNil(t, stats.Average)
	assert.InDelta(t, 3.0, *stats.Average, 1e-9)
	assert.Equal(t, 1, stats.Count)

	assert.ErrorIs(t, repo.SetWorkerRating(ctx, uuid.New(), 5), repository.ErrShiftNotFound)
}

func TestJobPostingRepository_ReopenSlot(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	hotel := s.hotel(t)
	posting := s.posting(t, hotel.ID, 0, true)
	repo := NewJobPostingRepository(db)

	require.NoError(t, repo.ReopenSlot(ctx, posting.ID))

	got, err := repo.FindByID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SlotsOpen)
	assert.False(t, got.IsFilled)

	require.NoError(t, repo.ReopenSlot(ctx, posting.ID))
	got, err = repo.FindByID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.SlotsOpen)

	assert.ErrorIs(t, repo.ReopenSlot(ctx, uuid.New()), repository.ErrJobPostingNotFound)
}

func TestWorkerRepository_Counters(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	worker := s.worker(t)
	repo := NewWorkerRepository(db)

	require.NoError(t, repo.IncrementLateCancellations(ctx, worker.ID))
	require.NoError(t, repo.IncrementLateCancellations(ctx, worker.ID))
	assert.ErrorIs(t, repo.IncrementLateCancellations(ctx, uuid.New()), repository.ErrWorkerNotFound)

	require.NoError(t, repo.UpdateTier(ctx, worker.ID, 120, entity.TierGold))
	avg := 4.25
	require.NoError(t, repo.UpdateRating(ctx, worker.ID, &avg, 4))

	got, err := repo.FindByUserID(ctx, worker.UserID)
	require.NoError(t, err)
	assert.Equal(t, 2, got.LateCancellationCount)
	assert.Equal(t, entity.TierGold, got.Tier)
	assert.InDelta(t, 120, got.TotalHoursWorked, 1e-9)
	require.NotNil(t, got.AverageRating)
	assert.InDelta(t, 4.25, *got.AverageRating, 1e-9)
	assert.Equal(t, 4, got.ReviewCount)

	require.NoError(t, repo.UpdateRating(ctx, worker.ID, nil, 0))
	got, err = repo.FindByID(ctx, worker.ID)
	require.NoError(t, err)
	assert.Nil(t, got.AverageRating)

	_, err = repo.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrWorkerNotFound)
}

func TestApplicationRepository_CancelLatestAccepted(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	worker := s.worker(t)
	hotel := s.hotel(t)
	posting := s.posting(t, hotel.ID, 0, true)
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	older := s.application(t, posting.ID, worker.ID, entity.ApplicationStatusAccepted, base)
	newer := s.application(t, posting.ID, worker.ID, entity.ApplicationStatusAccepted, base.Add(time.Hour))
	pending := s.application(t, posting.ID, worker.ID, entity.ApplicationStatusPending, base.Add(2*time.Hour))
	repo := NewApplicationRepository(db)

	reason := "sick"
	cancelledAt := base.Add(24 * time.Hour)
	affected, err := repo.CancelLatestAccepted(ctx, posting.ID, worker.ID, entity.CancellationRecord{
		Reason:      &reason,
		CancelledAt: cancelledAt,
		IsLate:      true,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(1), affected)

	load := func(id uuid.UUID) model.ApplicationModel {
		var app model.ApplicationModel
		require.NoError(t, db.First(&app, "id = ?", id).Error)

		return app
	}

	got := load(newer.ID)
	assert.Equal(t, string(entity.ApplicationStatusCancelled), got.Status)
	assert.True(t, got.IsLateCancellation)
	require.NotNil(t, got.CancellationReason)
	assert.Equal(t, "sick", *got.CancellationReason)
	require.NotNil(t, got.CancelledAt)
	assert.WithinDuration(t, cancelledAt, *got.CancelledAt, time.Second)

	assert.Equal(t, string(entity.ApplicationStatusAccepted), load(older.ID).Status)
	assert.Equal(t, string(entity.ApplicationStatusPending), load(pending.ID).Status)

	affected, err = repo.CancelLatestAccepted(ctx, posting.ID, uuid.New(), entity.CancellationRecord{CancelledAt: cancelledAt})
	require.NoError(t, err)
	assert.Zero(t, affected)
}

func TestUserRepository_FindByEmail(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	worker := s.worker(t)
	repo := NewUserRepository(db)

	user, err := repo.FindByEmail(ctx, worker.UserID.String()+"@example.com")
	require.NoError(t, err)
	assert.Equal(t, entity.RoleWorker, user.Role)
	require.NotNil(t, user.WorkerProfile)
	assert.Equal(t, worker.ID, user.WorkerProfile.ID)
	assert.Nil(t, user.HotelProfile)

	_, err = repo.FindByEmail(ctx, "nobody@example.com")
	assert.ErrorIs(t, err, repository.ErrUserNotFound)
}

func TestTransactionManager_Execute(t *testing.T) {
	db := sqlitetest.Open(t)
	s := seed{db: db}
	ctx := context.Background()

	hotel := s.hotel(t)
	posting := s.posting(t, hotel.ID, 0, true)
	tm := NewTransactionManager(db)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		require.NoError(t, f.JobPostingRepo().ReopenSlot(ctx, posting.ID))

		return boom
	})
	require.ErrorIs(t, err, boom)

	got, err := NewJobPostingRepository(db).FindByID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, 0, got.SlotsOpen, "rolled back")

	err = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
		return f.JobPostingRepo().ReopenSlot(ctx, posting.ID)
	})
	require.NoError(t, err)

	got, err = NewJobPostingRepository(db).FindByID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SlotsOpen, "committed")

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(f repository.RepositoryFactory) error {
			_ = f.JobPostingRepo().ReopenSlot(ctx, posting.ID)
			panic("handler bug")
		})
	})

	got, err = NewJobPostingRepository(db).FindByID(ctx, posting.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, got.SlotsOpen, "rolled back on panic")
}
