package repository

import (
	"context"

	"staffing/internal/domain/entity"

	"github.com/google/uuid"
)

// ApplicationRepository persists worker applications.
type ApplicationRepository interface {
	// CancelLatestAccepted moves the most recent ACCEPTED application of the
	// worker for the posting to CANCELLED. Zero affected rows is not an error.
	CancelLatestAccepted(ctx context.Context, jobPostingID, workerID uuid.UUID, record entity.CancellationRecord) (int64, error)
}
