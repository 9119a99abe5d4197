// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
// In GORM a transaction is also a *gorm.DB, so the plain constructors are reused.
type gormRepositoryFactory struct {
	tx *gorm.DB
}

func (f *gormRepositoryFactory) UserRepo() repository.UserRepository {
	return NewUserRepository(f.tx)
}

func (f *gormRepositoryFactory) WorkerRepo() repository.WorkerRepository {
	return NewWorkerRepository(f.tx)
}

func (f *gormRepositoryFactory) HotelRepo() repository.HotelRepository {
	return NewHotelRepository(f.tx)
}

func (f *gormRepositoryFactory) JobPostingRepo() repository.JobPostingRepository {
	return NewJobPostingRepository(f.tx)
}

func (f *gormRepositoryFactory) ShiftRepo() repository.ShiftRepository {
	return NewShiftRepository(f.tx)
}

func (f *gormRepositoryFactory) ApplicationRepo() repository.ApplicationRepository {
	return NewApplicationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs fn within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			// The business error is the meaningful one; keep it matchable.
			return errors.Join(err, errors.Wrap(rbErr, "transaction rollback failed"))
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		if isSerializationFailure(err) {
			return domainerrors.ErrTransactionFailed.WrapMessage("concurrent update, retry the request")
		}

		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
