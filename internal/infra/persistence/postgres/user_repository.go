package postgres

import (
	"context"

	"staffing/internal/domain/entity"
	"staffing/internal/domain/repository"
	"staffing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements repository.UserRepository using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository returns the repository as a domain interface, bound to db.
// db may be the root handle or a transaction.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by ID together with its role profile.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel
	err := repo.withProfiles(ctx).Where("id = ?", id).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by email address together with its role profile.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	err := repo.withProfiles(ctx).Where("email = ?", email).First(&userM).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

func (repo *userRepository) withProfiles(ctx context.Context) *gorm.DB {
	return repo.db.WithContext(ctx).
		Preload("AdminProfile").
		Preload("WorkerProfile").
		Preload("HotelProfile")
}

// --- Mapper Functions ---

func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:            data.ID,
		Email:         data.Email,
		PasswordHash:  data.PasswordHash,
		Role:          entity.Role(data.Role),
		AdminProfile:  toAdminProfileDomain(data.AdminProfile),
		WorkerProfile: toWorkerProfileDomain(data.WorkerProfile),
		HotelProfile:  toHotelProfileDomain(data.HotelProfile),
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

func toAdminProfileDomain(data *model.AdminProfileModel) *entity.AdminProfile {
	if data == nil {
		return nil
	}

	return &entity.AdminProfile{
		ID:        data.ID,
		UserID:    data.UserID,
		FullName:  data.FullName,
		UpdatedAt: data.UpdatedAt,
	}
}
