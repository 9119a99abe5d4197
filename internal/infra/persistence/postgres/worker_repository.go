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

// workerRepository implements repository.WorkerRepository using GORM.
type workerRepository struct {
	db *gorm.DB
}

// NewWorkerRepository is the constructor for workerRepository.
func NewWorkerRepository(db *gorm.DB) repository.WorkerRepository {
	return &workerRepository{db: db}
}

func (repo *workerRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.WorkerProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *workerRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.WorkerProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *workerRepository) findOne(ctx context.Context, query string, arg any) (*entity.WorkerProfile, error) {
	var workerM model.WorkerProfileModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&workerM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrWorkerNotFound
		}

		return nil, errors.Wrap(err, "failed to find worker profile")
	}

	return toWorkerProfileDomain(&workerM), nil
}

// IncrementLateCancellations bumps the counter in SQL so concurrent increments never get lost.
func (repo *workerRepository) IncrementLateCancellations(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.WorkerProfileModel{}).
		Where("id = ?", id).
		UpdateColumn("late_cancellation_count", gorm.Expr("late_cancellation_count + ?", 1))
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to increment late cancellations")
	}
	if result.RowsAffected == 0 {
		return repository.ErrWorkerNotFound
	}

	return nil
}

func (repo *workerRepository) UpdateTier(ctx context.Context, id uuid.UUID, totalHours float64, tier entity.Tier) error {
	err := repo.db.WithContext(ctx).
		Model(&model.WorkerProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_hours_worked": totalHours,
			"tier":               tier.String(),
		}).Error
	if err != nil {
		if isCheckConstraintViolation(err) {
			return errors.Wrapf(err, "tier %q rejected by schema", tier)
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update worker tier")
	}

	return nil
}

func (repo *workerRepository) UpdateRating(ctx context.Context, id uuid.UUID, average *float64, count int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.WorkerProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": average,
			"review_count":   count,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update worker rating")
	}

	return nil
}

func toWorkerProfileDomain(data *model.WorkerProfileModel) *entity.WorkerProfile {
	if data == nil {
		return nil
	}

	return &entity.WorkerProfile{
		ID:                    data.ID,
		UserID:                data.UserID,
		FirstName:             data.FirstName,
		LastName:              data.LastName,
		IsVerified:            data.IsVerified,
		LateCancellationCount: data.LateCancellationCount,
		TotalHoursWorked:      data.TotalHoursWorked,
		Tier:                  entity.Tier(data.Tier),
		AverageRating:         data.AverageRating,
		ReviewCount:           data.ReviewCount,
		UpdatedAt:             data.UpdatedAt,
	}
}
