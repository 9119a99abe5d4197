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

type jobPostingRepository struct {
	db *gorm.DB
}

// NewJobPostingRepository is the constructor for jobPostingRepository.
func NewJobPostingRepository(db *gorm.DB) repository.JobPostingRepository {
	return &jobPostingRepository{db: db}
}

func (repo *jobPostingRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JobPosting, error) {
	var postingM model.JobPostingModel
	if err := repo.db.WithContext(ctx).Where("id = ?", id).First(&postingM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrJobPostingNotFound
		}

		return nil, errors.Wrap(err, "failed to find job posting")
	}

	return toJobPostingDomain(&postingM), nil
}

// ReopenSlot increments slots_open in SQL and clears is_filled in the same statement.
func (repo *jobPostingRepository) ReopenSlot(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).
		Model(&model.JobPostingModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"slots_open": gorm.Expr("slots_open + ?", 1),
			"is_filled":  false,
		})
	if result.Error != nil {
		return domainerrors.NewDatabaseExecuteError(result.Error, "failed to reopen job posting slot")
	}
	if result.RowsAffected == 0 {
		return repository.ErrJobPostingNotFound
	}

	return nil
}

func toJobPostingDomain(data *model.JobPostingModel) *entity.JobPosting {
	return &entity.JobPosting{
		ID:         data.ID,
		HotelID:    data.HotelID,
		Title:      data.Title,
		StartTime:  data.StartTime,
		EndTime:    data.EndTime,
		HourlyRate: data.HourlyRate,
		SlotsOpen:  data.SlotsOpen,
		IsFilled:   data.IsFilled,
		CreatedAt:  data.CreatedAt,
		UpdatedAt:  data.UpdatedAt,
	}
}
