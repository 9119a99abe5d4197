package repository

import "context"

// TransactionManager runs use-case work inside a single database transaction
// without the use case depending on a specific driver.
type TransactionManager interface {
	// Execute runs fn within a transaction. If fn returns an error or panics
	// the transaction is rolled back, otherwise it is committed.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory hands out repositories bound to the current transaction.
type RepositoryFactory interface {
	UserRepo() UserRepository
	WorkerRepo() WorkerRepository
	HotelRepo() HotelRepository
	JobPostingRepo() JobPostingRepository
	ShiftRepo() ShiftRepository
	ApplicationRepo() ApplicationRepository
}
