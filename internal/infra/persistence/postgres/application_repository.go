package postgres

import (
	"context"

	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type applicationRepository struct {
	db *gorm.DB
}

// NewApplicationRepository is the constructor for applicationRepository.
func NewApplicationRepository(db *gorm.DB) repository.ApplicationRepository {
	return &applicationRepository{db: db}
}

// CancelLatestAccepted picks the newest ACCEPTED application of the pair and flips it to CANCELLED.
// The update re-checks the status so a concurrent writer cannot have it cancelled twice.
func (repo *applicationRepository) CancelLatestAccepted(
	ctx context.Context,
	jobPostingID, workerID uuid.UUID,
	record entity.CancellationRecord,
) (int64, error) {
	accepted := string(entity.ApplicationStatusAccepted)

	var latest model.ApplicationModel
	found := repo.db.WithContext(ctx).
		Where("job_posting_id = ? AND worker_id = ? AND status = ?", jobPostingID, workerID, accepted).
		Order("created_at DESC").
		Limit(1).
		Find(&latest)
	if found.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(found.Error, "failed to find accepted application")
	}
	if found.RowsAffected == 0 {
		return 0, nil
	}

	result := repo.db.WithContext(ctx).
		Model(&model.ApplicationModel{}).
		Where("id = ? AND status = ?", latest.ID, accepted).
		Updates(map[string]any{
			"status":               string(entity.ApplicationStatusCancelled),
			"cancellation_reason":  record.Reason,
			"cancelled_at":         record.CancelledAt,
			"is_late_cancellation": record.IsLate,
		})
	if result.Error != nil {
		return 0, domainerrors.NewDatabaseExecuteError(result.Error, "failed to cancel application")
	}

	return result.RowsAffected, nil
}
