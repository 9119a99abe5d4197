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

type hotelRepository struct {
	db *gorm.DB
}

// NewHotelRepository is the constructor for hotelRepository.
func NewHotelRepository(db *gorm.DB) repository.HotelRepository {
	return &hotelRepository{db: db}
}

func (repo *hotelRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.HotelProfile, error) {
	return repo.findOne(ctx, "id = ?", id)
}

func (repo *hotelRepository) FindByUserID(ctx context.Context, userID uuid.UUID) (*entity.HotelProfile, error) {
	return repo.findOne(ctx, "user_id = ?", userID)
}

func (repo *hotelRepository) findOne(ctx context.Context, query string, arg any) (*entity.HotelProfile, error) {
	var hotelM model.HotelProfileModel
	if err := repo.db.WithContext(ctx).Where(query, arg).First(&hotelM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrHotelNotFound
		}

		return nil, errors.Wrap(err, "failed to find hotel profile")
	}

	return toHotelProfileDomain(&hotelM), nil
}

func (repo *hotelRepository) UpdateTier(ctx context.Context, id uuid.UUID, totalHours float64, tier entity.Tier) error {
	err := repo.db.WithContext(ctx).
		Model(&model.HotelProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"total_hours_hired": totalHours,
			"tier":              tier.String(),
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update hotel tier")
	}

	return nil
}

func (repo *hotelRepository) UpdateRating(ctx context.Context, id uuid.UUID, average *float64, count int) error {
	err := repo.db.WithContext(ctx).
		Model(&model.HotelProfileModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"average_rating": average,
			"review_count":   count,
		}).Error
	if err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "failed to update hotel rating")
	}

	return nil
}

func toHotelProfileDomain(data *model.HotelProfileModel) *entity.HotelProfile {
	if data == nil {
		return nil
	}

	return &entity.HotelProfile{
		ID:              data.ID,
		UserID:          data.UserID,
		BusinessName:    data.BusinessName,
		IsVerified:      data.IsVerified,
		IsBanned:        data.IsBanned,
		BanReason:       data.BanReason,
		TotalHoursHired: data.TotalHoursHired,
		Tier:            entity.Tier(data.Tier),
		AverageRating:   data.AverageRating,
		ReviewCount:     data.ReviewCount,
		UpdatedAt:       data.UpdatedAt,
	}
}
