package postgres

import (
	"context"

	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type shiftRepository struct {
	db *gorm.DB
}

// NewShiftRepository is the constructor for shiftRepository.
func NewShiftRepository(db *gorm.DB) repository.ShiftRepository {
	return &shiftRepository{db: db}
}

func (repo *shiftRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Shift, error) {
	var shiftM model.ShiftModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&shiftM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrShiftNotFound
		}

		return nil, errors.Wrap(err, "failed to find shift")
	}

	return toShiftDomain(&shiftM), nil
}

// DeleteOwned is the serialization point for concurrent cancellations:
// only one DELETE can match the row, every other caller sees zero rows.
func (repo *shiftRepository) DeleteOwned(ctx context.Context, id, workerID uuid.UUID) (bool, error) {
	result := repo.db.WithContext(ctx).
		Where("id = ? AND worker_id = ?", id, workerID).
		Delete(&model.ShiftModel{})
	if result.Error != nil {
		return false, domainerrors.NewDatabaseExecuteError(result.Error, "failed to delete shift")
	}

	return result.RowsAffected > 0, nil
}

func (repo *shiftRepository) MarkCompleted(ctx context.Context, id uuid.UUID, totalHours float64) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShiftModel{}).
		Where("id = ? AND is_completed = ?", id, false).
		Updates(map[string]any{
			"is_completed": true,
			"total_hours":  totalHours,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to complete shift")
	}
	if result.RowsAffected == 0 {
		return repository.ErrShiftNotFound
	}

	return nil
}

func (repo *shiftRepository) SetWorkerRating(ctx context.Context, id uuid.UUID, rating int) error {
	return repo.setRating(ctx, id, "worker_rating", rating)
}

func (repo *shiftRepository) SetHotelRating(ctx context.Context, id uuid.UUID, rating int) error {
	return repo.setRating(ctx, id, "hotel_rating", rating)
}

func (repo *shiftRepository) setRating(ctx context.Context, id uuid.UUID, column string, rating int) error {
	result := repo.db.WithContext(ctx).
		Model(&model.ShiftModel{}).
		Where("id = ?", id).
		Update(column, rating)
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to store "+column)
	}
	if result.RowsAffected == 0 {
		return repository.ErrShiftNotFound
	}

	return nil
}

func (repo *shiftRepository) SumCompletedHoursByWorker(ctx context.Context, workerID uuid.UUID) (float64, error) {
	return repo.sumCompletedHours(ctx, "worker_id", workerID)
}

func (repo *shiftRepository) SumCompletedHoursByHotel(ctx context.Context, hotelID uuid.UUID) (float64, error) {
	return repo.sumCompletedHours(ctx, "hotel_id", hotelID)
}

func (repo *shiftRepository) sumCompletedHours(ctx context.Context, ownerColumn string, ownerID uuid.UUID) (float64, error) {
	var total float64
	err := repo.db.WithContext(ctx).
		Model(&model.ShiftModel{}).
		Select("COALESCE(SUM(total_hours), 0)").
		Where(ownerColumn+" = ? AND is_completed = ?", ownerID, true).
		Scan(&total).Error
	if err != nil {
		return 0, errors.Wrapf(err, "failed to sum completed hours by %s", ownerColumn)
	}

	return total, nil
}

type ratingAggregate struct {
	Average *float64
	Count   int64
}

func (repo *shiftRepository) WorkerRatingStats(ctx context.Context, workerID uuid.UUID) (repository.RatingStats, error) {
	return repo.ratingStats(ctx, "worker_rating", "worker_id", workerID)
}

func (repo *shiftRepository) HotelRatingStats(ctx context.Context, hotelID uuid.UUID) (repository.RatingStats, error) {
	return repo.ratingStats(ctx, "hotel_rating", "hotel_id", hotelID)
}

// ratingStats aggregates non-null ratings over completed shifts. AVG over no rows is NULL,
// which leaves Average nil.
func (repo *shiftRepository) ratingStats(ctx context.Context, ratingColumn, ownerColumn string, ownerID uuid.UUID) (repository.RatingStats, error) {
	var agg ratingAggregate
	err := repo.db.WithContext(ctx).
		Model(&model.ShiftModel{}).
		Select("AVG("+ratingColumn+") AS average, COUNT("+ratingColumn+") AS count").
		Where(ownerColumn+" = ? AND is_completed = ? AND "+ratingColumn+" IS NOT NULL", ownerID, true).
		Scan(&agg).Error
	if err != nil {
		return repository.RatingStats{}, errors.Wrapf(err, "failed to aggregate %s", ratingColumn)
	}
	if agg.Count == 0 {
		return repository.RatingStats{}, nil
	}

	return repository.RatingStats{Average: agg.Average, Count: int(agg.Count)}, nil
}

func toShiftDomain(data *model.ShiftModel) *entity.Shift {
	return &entity.Shift{
		ID:           data.ID,
		WorkerID:     data.WorkerID,
		HotelID:      data.HotelID,
		JobPostingID: data.JobPostingID,
		StartTime:    data.StartTime,
		IsCompleted:  data.IsCompleted,
		TotalHours:   data.TotalHours,
		WorkerRating: data.WorkerRating,
		HotelRating:  data.HotelRating,
		CreatedAt:    data.CreatedAt,
		UpdatedAt:    data.UpdatedAt,
	}
}
