package impl

import (
	"context"
	"testing"

	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/usecase"
	mockService "staffing/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sessionFixture struct {
	*repoFixture

	hasher  *mockService.MockPasswordHasher
	tokens  *mockService.MockTokenService
	service usecase.SessionUsecase
}

func createTestSessionService(t *testing.T) *sessionFixture {
	t.Helper()

	repos := newRepoFixture(t)
	hasher := mockService.NewMockPasswordHasher(t)
	tokens := mockService.NewMockTokenService(t)

	return &sessionFixture{
		repoFixture: repos,
		hasher:      hasher,
		tokens:      tokens,
		service:     NewSessionService(repos.txManager, hasher, tokens, newTestConfig(), newDiscardLogger()),
	}
}

func TestSessionService_Login(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "ana@example.com", PasswordHash: "hash", Role: entity.RoleWorker}

	fx.onExecute(ctx)
	fx.userRepo.EXPECT().FindByEmail(ctx, "ana@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.tokens.EXPECT().GenerateAccessToken(user.ID, []string{"WORKER"}).Return("signed-token", nil)

	result, err := fx.service.Login(ctx, "  Ana@Example.com ", "secret")

	require.NoError(t, err)
	assert.Equal(t, "signed-token", result.AccessToken)
	assert.Equal(t, "Bearer", result.TokenType)
	assert.Equal(t, int64(900), result.ExpiresIn)
	assert.Equal(t, user.ID, result.UserID)
	assert.Equal(t, entity.RoleWorker, result.Role)
}

func TestSessionService_Login_UnknownEmail(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()

	fx.onExecute(ctx)
	fx.userRepo.EXPECT().FindByEmail(ctx, "nobody@example.com").Return(nil, repository.ErrUserNotFound)

	_, err := fx.service.Login(ctx, "nobody@example.com", "secret")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_WrongPassword(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hash", Role: entity.RoleHotel}

	fx.onExecute(ctx)
	fx.userRepo.EXPECT().FindByEmail(ctx, "hotel@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("wrong", "hash").Return(false)

	_, err := fx.service.Login(ctx, "hotel@example.com", "wrong")

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestSessionService_Login_TokenFailure(t *testing.T) {
	fx := createTestSessionService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), PasswordHash: "hash", Role: entity.RoleAdmin}

	fx.onExecute(ctx)
	fx.userRepo.EXPECT().FindByEmail(ctx, "admin@example.com").Return(user, nil)
	fx.hasher.EXPECT().Check("secret", "hash").Return(true)
	fx.tokens.EXPECT().GenerateAccessToken(user.ID, []string{"ADMIN"}).Return("", errors.New("signing key unavailable"))

	_, err := fx.service.Login(ctx, "admin@example.com", "secret")

	assert.ErrorIs(t, err, domainerrors.ErrTokenIssueFailed)
}
