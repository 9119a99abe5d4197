package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"staffing/config"
	deliverycontext "staffing/internal/delivery/context"
	"staffing/internal/domain/entity"
	domainerrors "staffing/internal/domain/errors"
	"staffing/internal/domain/repository"
	"staffing/internal/domain/service"
	"staffing/internal/usecase"

	"github.com/pkg/errors"
)

const (
	tokenTypeBearer  = "Bearer"
	defaultAccessTTL = 15 * time.Minute
)

// sessionService implements the SessionUsecase interface.
type sessionService struct {
	txManager    repository.TransactionManager
	hasher       service.PasswordHasher
	tokenService service.TokenService
	accessTTL    time.Duration
	logger       *slog.Logger
}

// NewSessionService is the constructor for sessionService.
func NewSessionService(
	txManager repository.TransactionManager,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.SessionUsecase {
	accessTTL := defaultAccessTTL
	if cfg != nil && cfg.Auth != nil && cfg.Auth.AccessTTL > 0 {
		accessTTL = cfg.Auth.AccessTTL
	}

	return &sessionService{
		txManager:    txManager,
		hasher:       hasher,
		tokenService: tokenService,
		accessTTL:    accessTTL,
		logger:       logger,
	}
}

func (srv *sessionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.Logger(ctx, srv.logger)
}

// Login verifies the password and issues an access token carrying the user's role.
// Unknown email and wrong password produce the same error.
func (srv *sessionService) Login(ctx context.Context, email, password string) (*usecase.LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var user *entity.User
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var err error
		user, err = repoFactory.UserRepo().FindByEmail(ctx, email)
		if err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
			}

			return errors.Wrap(err, "failed to find user")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "login failed")
	}

	if !srv.hasher.Check(password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}
	if !user.Role.IsValid() {
		return nil, errors.Wrapf(domainerrors.ErrForbidden, "user has unknown role %q", user.Role)
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, []string{user.Role.String()})
	if err != nil {
		srv.log(ctx).Error("Failed to issue access token", slog.Any("error", err), slog.Any("user_id", user.ID))

		return nil, errors.Wrap(domainerrors.ErrTokenIssueFailed, err.Error())
	}

	srv.log(ctx).Info("User logged in", slog.Any("user_id", user.ID), slog.String("role", user.Role.String()))

	return &usecase.LoginResult{
		AccessToken: token,
		TokenType:   tokenTypeBearer,
		ExpiresIn:   int64(srv.accessTTL.Seconds()),
		UserID:      user.ID,
		Role:        user.Role,
	}, nil
}
