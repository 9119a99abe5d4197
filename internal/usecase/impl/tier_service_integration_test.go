package impl

import (
	"context"
	"testing"
	"time"

	"staffing/internal/domain/entity"
	"staffing/internal/domain/service"
	"staffing/internal/infra/persistence/model"
	"staffing/internal/infra/persistence/postgres"
	"staffing/internal/infra/persistence/sqlitetest"
	mockService "staffing/internal/mocks/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestTierService_Integration_RecomputeIsIdempotent(t *testing.T) {
	db := sqlitetest.Open(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	b := bookShift(t, db, now.Add(-120*time.Hour))
	require.NoError(t, db.Model(&model.ShiftModel{}).Where("id = ?", b.shiftID).
		Updates(map[string]any{"is_completed": true, "total_hours": 100}).Error)

	publisher := mockService.NewMockEventPublisher(t)
	var published []*service.Event
	publisher.EXPECT().Publish(mock.Anything, mock.Anything).
		Run(func(_ context.Context, event *service.Event) { published = append(published, event) }).
		Return(nil)

	srv := NewTierService(postgres.NewTransactionManager(db), publisher, fixedClock{now: now}, newDiscardLogger())
	ctx := context.Background()

	first, err := srv.UpdateWorkerTier(ctx, b.workerID)
	require.NoError(t, err)
	assert.Equal(t, entity.TierSilver, first.PreviousTier)
	assert.Equal(t, entity.TierGold, first.NewTier)
	assert.True(t, first.Promoted)

	second, err := srv.UpdateWorkerTier(ctx, b.workerID)
	require.NoError(t, err)
	assert.Equal(t, entity.TierGold, second.PreviousTier)
	assert.Equal(t, entity.TierGold, second.NewTier)
	assert.InDelta(t, 100, second.TotalHours, 0.0001)
	assert.False(t, second.Promoted)

	var worker model.WorkerProfileModel
	require.NoError(t, db.First(&worker, "id = ?", b.workerID).Error)
	assert.Equal(t, "GOLD", worker.Tier)
	assert.InDelta(t, 100, worker.TotalHoursWorked, 0.0001)

	require.Len(t, published, 1, "only the SILVER to GOLD change is announced")
	assert.Equal(t, service.EventTypeTierChanged, published[0].Type)
}

func TestTierService_Integration_DemotionIsNotPromotion(t *testing.T) {
	db := sqlitetest.Open(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	b := bookShift(t, db, now.Add(-120*time.Hour))
	require.NoError(t, db.Model(&model.ShiftModel{}).Where("id = ?", b.shiftID).
		Updates(map[string]any{"is_completed": true, "total_hours": 100}).Error)

	srv := NewTierService(postgres.NewTransactionManager(db), nil, fixedClock{now: now}, newDiscardLogger())
	ctx := context.Background()

	_, err := srv.UpdateWorkerTier(ctx, b.workerID)
	require.NoError(t, err)

	require.NoError(t, db.Model(&model.ShiftModel{}).Where("id = ?", b.shiftID).Update("total_hours", 40).Error)

	result, err := srv.UpdateWorkerTier(ctx, b.workerID)
	require.NoError(t, err)
	assert.Equal(t, entity.TierGold, result.PreviousTier)
	assert.Equal(t, entity.TierSilver, result.NewTier)
	assert.InDelta(t, 40, result.TotalHours, 0.0001)
	assert.False(t, result.Promoted)

	var worker model.WorkerProfileModel
	require.NoError(t, db.First(&worker, "id = ?", b.workerID).Error)
	assert.Equal(t, "SILVER", worker.Tier)
}

func TestTierService_Integration_NoRatingsLeavesAverageNil(t *testing.T) {
	db := sqlitetest.Open(t)
	now := time.Date(2026, 6, 1, 12, 0, 0, 0, time.UTC)
	b := bookShift(t, db, now.Add(-120*time.Hour))
	require.NoError(t, db.Model(&model.ShiftModel{}).Where("id = ?", b.shiftID).
		Updates(map[string]any{"is_completed": true, "total_hours": 8}).Error)

	srv := NewTierService(postgres.NewTransactionManager(db), nil, fixedClock{now: now}, newDiscardLogger())

	average, err := srv.RecalculateWorkerRating(context.Background(), b.workerID)
	require.NoError(t, err)
	assert.Nil(t, average)

	var worker model.WorkerProfileModel
	require.NoError(t, db.First(&worker, "id = ?", b.workerID).Error)
	assert.Nil(t, worker.AverageRating)
	assert.Zero(t, worker.ReviewCount)
}
