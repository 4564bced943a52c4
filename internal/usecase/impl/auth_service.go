// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "ticketdesk/internal/delivery/context"
	"ticketdesk/internal/domain/entity"
	domainerrors "ticketdesk/internal/domain/errors"
	"ticketdesk/internal/domain/repository"
	"ticketdesk/internal/domain/service"
	"ticketdesk/internal/errors"
	"ticketdesk/internal/infra/metrics"
	"ticketdesk/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// decoyPassword is hashed once at construction. Unknown emails are checked against that hash,
// so a miss costs one derivation with the configured parameters like a wrong password.
const decoyPassword = "ticketdesk-decoy-password"

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	recorder     metrics.Recorder
	logger       *slog.Logger
	decoyHash    string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Recorder     metrics.Recorder `optional:"true"`
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	recorder := params.Recorder
	if recorder == nil {
		recorder = metrics.Nop{}
	}

	decoyHash, err := params.Hasher.Hash(context.Background(), decoyPassword)
	if err != nil {
		return nil, errors.Wrap(err, "hash login decoy")
	}

	return &authService{
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		recorder:     recorder,
		logger:       params.Logger,
		decoyHash:    decoyHash,
	}, nil
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register validates the password, hashes it and stores the identity.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		srv.recorder.ObserveAuthAttempt(metrics.OperationRegister, metrics.ResultInvalid)
		srv.log(ctx).Warn("Password rejected by policy", slog.Any("error", err))

		return nil, errors.Wrap(domainerrors.ErrValidationFailed.WithDetails(detailsOf(err)), "password does not meet security requirements")
	}

	hash, err := srv.hasher.Hash(ctx, input.Password)
	if err != nil {
		srv.recorder.ObserveAuthAttempt(metrics.OperationRegister, metrics.ResultError)
		srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrPasswordHashFailed, "hash password: %v", err)
	}

	user, err := srv.userRepo.Create(ctx, input.Email, hash)
	if err != nil {
		if domainerrors.IsKind(err, domainerrors.KindConflict) {
			srv.recorder.ObserveAuthAttempt(metrics.OperationRegister, metrics.ResultConflict)
			srv.log(ctx).Info("Registration for an existing email")

			return nil, errors.Wrap(domainerrors.ErrEmailAlreadyRegistered, "create identity")
		}

		srv.recorder.ObserveAuthAttempt(metrics.OperationRegister, metrics.ResultError)
		srv.log(ctx).Error("Failed to store identity", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrStore, "create identity: %v", err)
	}

	srv.recorder.ObserveAuthAttempt(metrics.OperationRegister, metrics.ResultSuccess)
	srv.log(ctx).Debug("Registration completed", slog.Any("userID", user.ID))

	return &usecase.RegisterOutput{User: user.Public()}, nil
}

// Login verifies the credentials and mints a token for the identity.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if domainerrors.IsKind(err, domainerrors.KindNotFound) {
			srv.hasher.Check(ctx, input.Password, srv.decoyHash)
			srv.recorder.ObserveAuthAttempt(metrics.OperationLogin, metrics.ResultRejected)

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "unknown email")
		}

		srv.recorder.ObserveAuthAttempt(metrics.OperationLogin, metrics.ResultError)
		srv.log(ctx).Error("Failed to look up identity", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrStore, "find identity: %v", err)
	}

	if !srv.hasher.Check(ctx, input.Password, user.PasswordHash) {
		srv.recorder.ObserveAuthAttempt(metrics.OperationLogin, metrics.ResultRejected)
		srv.log(ctx).Info("Password mismatch", slog.Any("userID", user.ID))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "password mismatch")
	}

	token, err := srv.tokenService.Mint(user.ID.String())
	if err != nil {
		srv.recorder.ObserveAuthAttempt(metrics.OperationLogin, metrics.ResultError)
		srv.log(ctx).Error("Failed to mint token", slog.Any("error", err))

		return nil, errors.Wrapf(domainerrors.ErrConfig, "mint token: %v", err)
	}

	srv.recorder.ObserveAuthAttempt(metrics.OperationLogin, metrics.ResultSuccess)

	return &usecase.LoginOutput{
		Token: token,
		User: usecase.LoginUser{
			ID:    user.ID,
			Email: user.Email,
			Role:  user.Role,
		},
	}, nil
}

// Authenticate validates a bearer token.
func (srv *authService) Authenticate(_ context.Context, token string) (*entity.SessionClaims, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		return nil, errors.Wrap(err, "validate bearer token")
	}

	return claims, nil
}

// Me loads the identity behind an authenticated request.
func (srv *authService) Me(ctx context.Context, userID uuid.UUID) (*entity.PublicUser, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if domainerrors.IsKind(err, domainerrors.KindNotFound) {
			srv.recorder.ObserveAuthAttempt(metrics.OperationMe, metrics.ResultRejected)

			return nil, errors.Wrap(domainerrors.ErrUnauthorized, "token subject no longer exists")
		}

		srv.recorder.ObserveAuthAttempt(metrics.OperationMe, metrics.ResultError)

		return nil, errors.Wrapf(domainerrors.ErrStore, "find identity: %v", err)
	}

	srv.recorder.ObserveAuthAttempt(metrics.OperationMe, metrics.ResultSuccess)

	return user.Public(), nil
}

// detailsOf returns the client-safe detail of an application error, if any.
func detailsOf(err error) string {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		if appErr.Details() != "" {
			return appErr.Details()
		}

		return appErr.Message()
	}

	return ""
}
