package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"staffing/config"
	"staffing/internal/domain/repository"
	"staffing/internal/domain/service"
	mockRepo "staffing/internal/mocks/repository"
	mockService "staffing/internal/mocks/service"

	"github.com/stretchr/testify/mock"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Auth:         &config.AuthConfig{BcryptCost: 4, AccessTTL: 15 * time.Minute},
		Cancellation: &config.CancellationConfig{LateWindow: 24 * time.Hour},
	}
}

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time { return c.now }

// repoFixture wires one mock of every repository behind a mock factory.
// Only the expectations a test sets are allowed, so an unexpected write fails the test.
type repoFixture struct {
	txManager   *mockRepo.MockTransactionManager
	factory     *mockRepo.MockRepositoryFactory
	userRepo    *mockRepo.MockUserRepository
	workerRepo  *mockRepo.MockWorkerRepository
	hotelRepo   *mockRepo.MockHotelRepository
	postingRepo *mockRepo.MockJobPostingRepository
	shiftRepo   *mockRepo.MockShiftRepository
	appRepo     *mockRepo.MockApplicationRepository
	publisher   *mockService.MockEventPublisher
}

func newRepoFixture(t *testing.T) *repoFixture {
	t.Helper()

	fx := &repoFixture{
		txManager:   mockRepo.NewMockTransactionManager(t),
		factory:     mockRepo.NewMockRepositoryFactory(t),
		userRepo:    mockRepo.NewMockUserRepository(t),
		workerRepo:  mockRepo.NewMockWorkerRepository(t),
		hotelRepo:   mockRepo.NewMockHotelRepository(t),
		postingRepo: mockRepo.NewMockJobPostingRepository(t),
		shiftRepo:   mockRepo.NewMockShiftRepository(t),
		appRepo:     mockRepo.NewMockApplicationRepository(t),
		publisher:   mockService.NewMockEventPublisher(t),
	}

	fx.factory.EXPECT().UserRepo().Return(fx.userRepo).Maybe()
	fx.factory.EXPECT().WorkerRepo().Return(fx.workerRepo).Maybe()
	fx.factory.EXPECT().HotelRepo().Return(fx.hotelRepo).Maybe()
	fx.factory.EXPECT().JobPostingRepo().Return(fx.postingRepo).Maybe()
	fx.factory.EXPECT().ShiftRepo().Return(fx.shiftRepo).Maybe()
	fx.factory.EXPECT().ApplicationRepo().Return(fx.appRepo).Maybe()

	return fx
}

// onExecute runs the use case's transaction body against the mock factory and
// returns whatever the body returned, like the real manager does.
func (fx *repoFixture) onExecute(ctx context.Context) {
	fx.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(fx.factory)
		}).
		Once()
}

func (fx *repoFixture) expectEvent(eventType string, check func(*service.Event) bool) {
	fx.publisher.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e *service.Event) bool {
			return e.Type == eventType && (check == nil || check(e))
		})).
		Return(nil).
		Once()
}

func floatPtr(v float64) *float64 { return &v }
