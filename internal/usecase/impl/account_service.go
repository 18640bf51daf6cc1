// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"time"

	"doorman/config"
	deliverycontext "doorman/internal/delivery/context"
	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/repository"
	"doorman/internal/domain/service"
	"doorman/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const defaultStoreTimeout = 5 * time.Second

// accountService implements the AccountUsecase interface. It is stateless
// and safely reentrant; all durable state lives behind the repository.
type accountService struct {
	txManager    repository.TransactionManager
	accountRepo  repository.AccountRepository
	hasher       service.PasswordHasher
	storeTimeout time.Duration
	logger       *slog.Logger
}

// AccountServiceParams holds dependencies for AccountService, injected by Fx.
type AccountServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	AccountRepo repository.AccountRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAccountService is the constructor for accountService. It receives all dependencies as interfaces.
func NewAccountService(params AccountServiceParams) usecase.AccountUsecase {
	storeTimeout := defaultStoreTimeout
	if params.Config != nil && params.Config.Auth != nil && params.Config.Auth.StoreTimeout > 0 {
		storeTimeout = params.Config.Auth.StoreTimeout
	}

	return &accountService{
		txManager:    params.TxManager,
		accountRepo:  params.AccountRepo,
		hasher:       params.Hasher,
		storeTimeout: storeTimeout,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *accountService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Signup orchestrates the complete registration process.
func (srv *accountService) Signup(ctx context.Context, input *usecase.SignupInput) error {
	if input == nil || input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" {
		srv.log(ctx).Warn("Signup rejected, incomplete payload")

		return domainerrors.ErrMissingFields.WrapMessage("signup payload incomplete")
	}

	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	storeCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	err := srv.txManager.Execute(storeCtx, func(repoFactory repository.RepositoryFactory) error {
		accountRepo := repoFactory.AccountRepo()

		// Existence pre-check by exact-match email. This check-then-insert is
		// not atomic; the unique index on email remains the source of truth
		// and a violation at insert time maps to the same duplicate error.
		_, findErr := accountRepo.FindByEmail(storeCtx, input.Email)
		if findErr == nil {
			return domainerrors.ErrEmailExists.WrapMessage("email already registered")
		}
		if !errors.Is(findErr, repository.ErrAccountNotFound) {
			return errors.Wrap(findErr, "failed to check existing email")
		}

		passwordHash, hashErr := srv.hasher.Hash(input.Password)
		if hashErr != nil {
			srv.log(ctx).Error("Failed to hash password during registration", slog.Any("error", hashErr))

			return domainerrors.ErrRegistrationFailed.WrapMessage("failed to hash password")
		}

		newAccount := &entity.Account{
			Name:         input.Name,
			Email:        input.Email,
			Phone:        input.Phone,
			PasswordHash: passwordHash,
		}

		return accountRepo.Create(storeCtx, newAccount)
	})

	if err != nil {
		return srv.translateSignupError(ctx, input.Email, err)
	}

	srv.log(ctx).Info("Registered", slog.String("email", input.Email))

	return nil
}

// translateSignupError maps store outcomes onto the signup error taxonomy.
// Internal detail stays in the logs; the caller only ever sees the
// documented duplicate-email or generic registration failure.
func (srv *accountService) translateSignupError(ctx context.Context, email string, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		srv.log(ctx).Warn("Registration rejected", slog.String("email", email), slog.String("code", appErr.ErrorCode()))

		return err
	}

	if errors.Is(err, repository.ErrDuplicateEmail) {
		// Lost the check-then-insert race; the index caught it.
		srv.log(ctx).Warn("Registration rejected by unique index", slog.String("email", email))

		return domainerrors.ErrEmailExists.WrapMessage("email unique index violated at insert")
	}

	srv.log(ctx).Error("Failed to execute registration transaction", slog.String("email", email), slog.Any("error", err))

	return domainerrors.ErrRegistrationFailed.WrapMessage("failed to persist account")
}

// Login orchestrates the authentication process.
func (srv *accountService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	if input == nil {
		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("login payload missing")
	}

	srv.log(ctx).Debug("Starting login", slog.String("email", input.Email))

	storeCtx, cancel := context.WithTimeout(ctx, srv.storeTimeout)
	defer cancel()

	// Single read, direct repository instance.
	account, err := srv.accountRepo.FindByEmail(storeCtx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrAccountNotFound) {
			srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

			return nil, domainerrors.ErrInvalidCredentials.WrapMessage("unknown email")
		}

		srv.log(ctx).Error("Failed to load account for login", slog.String("email", input.Email), slog.Any("error", err))

		return nil, domainerrors.ErrLoginFailed.WrapMessage("failed to load account")
	}

	// Check password outside the store call (bcrypt is CPU-bound).
	if !srv.hasher.Check(input.Password, account.PasswordHash) {
		srv.log(ctx).Warn("Login failed", slog.String("email", input.Email))

		return nil, domainerrors.ErrInvalidCredentials.WrapMessage("password mismatch")
	}

	srv.log(ctx).Info("User logged in successfully", slog.Any("accountID", account.ID))

	return &usecase.LoginOutput{Account: account}, nil
}
