package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"doorman/config"
	"doorman/internal/domain/entity"
	domainerrors "doorman/internal/domain/errors"
	"doorman/internal/domain/repository"
	"doorman/internal/infra/auth"
	"doorman/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

// fakeAccountRepo is an in-memory AccountRepository. Errors can be forced
// per call to simulate store failures and lost uniqueness races.
type fakeAccountRepo struct {
	byEmail map[string]*entity.Account

	findErr   error
	createErr error

	findCalls   int
	createCalls int
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{byEmail: make(map[string]*entity.Account)}
}

func (r *fakeAccountRepo) FindByEmail(_ context.Context, email string) (*entity.Account, error) {
	r.findCalls++
	if r.findErr != nil {
		return nil, r.findErr
	}
	account, ok := r.byEmail[email]
	if !ok {
		return nil, repository.ErrAccountNotFound
	}

	return account, nil
}

func (r *fakeAccountRepo) Create(_ context.Context, account *entity.Account) error {
	r.createCalls++
	if r.createErr != nil {
		return r.createErr
	}
	if _, ok := r.byEmail[account.Email]; ok {
		return repository.ErrDuplicateEmail
	}
	for _, existing := range r.byEmail {
		if existing.Phone == account.Phone {
			return repository.ErrDuplicatePhone
		}
	}
	r.byEmail[account.Email] = account

	return nil
}

// fakeTxManager runs the callback directly against the fake repo; the
// service's transactional seam is exercised without a database.
type fakeTxManager struct {
	repo *fakeAccountRepo
}

func (tm *fakeTxManager) Execute(_ context.Context, fn func(repository.RepositoryFactory) error) error {
	return fn(tm)
}

func (tm *fakeTxManager) AccountRepo() repository.AccountRepository {
	return tm.repo
}

type accountServiceFixtures struct {
	service usecase.AccountUsecase
	repo    *fakeAccountRepo
}

func createTestAccountService(t *testing.T) accountServiceFixtures {
	t.Helper()

	repo := newFakeAccountRepo()
	service := NewAccountService(AccountServiceParams{
		TxManager:   &fakeTxManager{repo: repo},
		AccountRepo: repo,
		Hasher:      auth.NewBcryptHasherWithCost(bcrypt.MinCost),
		Config:      &config.Config{Auth: &config.AuthConfig{BcryptCost: bcrypt.MinCost}},
		Logger:      slog.New(slog.NewTextHandler(io.Discard, nil)),
	})

	return accountServiceFixtures{service: service, repo: repo}
}

func validSignup() *usecase.SignupInput {
	return &usecase.SignupInput{
		Name:     "Ann",
		Email:    "a@x.com",
		Phone:    "111",
		Password: "pw1",
	}
}

func TestAccountService_Signup_Success(t *testing.T) {
	fx := createTestAccountService(t)

	err := fx.service.Signup(context.Background(), validSignup())
	require.NoError(t, err)

	stored := fx.repo.byEmail["a@x.com"]
	require.NotNil(t, stored)
	assert.Equal(t, "Ann", stored.Name)
	assert.Equal(t, "111", stored.Phone)
	assert.NotEmpty(t, stored.PasswordHash)
	assert.NotEqual(t, "pw1", stored.PasswordHash)
}

func TestAccountService_Signup_MissingFields(t *testing.T) {
	fx := createTestAccountService(t)

	inputs := []*usecase.SignupInput{
		nil,
		{Email: "a@x.com", Phone: "111", Password: "pw1"},
		{Name: "Ann", Phone: "111", Password: "pw1"},
		{Name: "Ann", Email: "a@x.com", Password: "pw1"},
		{Name: "Ann", Email: "a@x.com", Phone: "111"},
	}

	for _, input := range inputs {
		err := fx.service.Signup(context.Background(), input)
		require.Error(t, err)

		var appErr domainerrors.AppError
		require.True(t, errors.As(err, &appErr))
		assert.Equal(t, domainerrors.ErrMissingFields.ErrorCode(), appErr.ErrorCode())
		assert.Equal(t, "All fields are required", appErr.Message())
	}

	// Shape validation fails before any store access.
	assert.Zero(t, fx.repo.findCalls)
	assert.Zero(t, fx.repo.createCalls)
}

func TestAccountService_Signup_DuplicateEmail(t *testing.T) {
	fx := createTestAccountService(t)

	require.NoError(t, fx.service.Signup(context.Background(), validSignup()))

	second := validSignup()
	second.Phone = "222"
	err := fx.service.Signup(context.Background(), second)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Email already exists", appErr.Message())

	// Only the first registration created an account.
	assert.Len(t, fx.repo.byEmail, 1)
}

func TestAccountService_Signup_DuplicateEmailAtInsert(t *testing.T) {
	// Simulates losing the check-then-insert race: the pre-check sees
	// nothing, but the unique index rejects the insert.
	fx := createTestAccountService(t)
	fx.repo.createErr = repository.ErrDuplicateEmail

	err := fx.service.Signup(context.Background(), validSignup())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Email already exists", appErr.Message())
}

func TestAccountService_Signup_DuplicatePhoneIsStoreError(t *testing.T) {
	fx := createTestAccountService(t)

	require.NoError(t, fx.service.Signup(context.Background(), validSignup()))

	second := validSignup()
	second.Email = "b@x.com" // same phone as Ann
	err := fx.service.Signup(context.Background(), second)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Registration failed", appErr.Message())
	assert.Len(t, fx.repo.byEmail, 1)
}

func TestAccountService_Signup_StoreError(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repo.createErr = errors.New("connection reset")

	err := fx.service.Signup(context.Background(), validSignup())
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Registration failed", appErr.Message())
	// The internal detail never reaches the caller-facing message.
	assert.NotContains(t, appErr.Message(), "connection reset")
	assert.Empty(t, fx.repo.byEmail)
}

func TestAccountService_Signup_EmailIsOpaque(t *testing.T) {
	// No case normalization: differently-cased emails are distinct keys.
	fx := createTestAccountService(t)

	require.NoError(t, fx.service.Signup(context.Background(), validSignup()))

	upper := validSignup()
	upper.Email = "A@X.COM"
	upper.Phone = "222"
	require.NoError(t, fx.service.Signup(context.Background(), upper))

	assert.Len(t, fx.repo.byEmail, 2)
}

func TestAccountService_Login_Success(t *testing.T) {
	fx := createTestAccountService(t)
	require.NoError(t, fx.service.Signup(context.Background(), validSignup()))

	output, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "pw1",
	})
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, "Ann", output.Account.Name)
	assert.Equal(t, "111", output.Account.Phone)
	assert.Equal(t, "a@x.com", output.Account.Email)
}

func TestAccountService_Login_WrongPassword(t *testing.T) {
	fx := createTestAccountService(t)
	require.NoError(t, fx.service.Signup(context.Background(), validSignup()))

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "wrong",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid email or password", appErr.Message())
}

func TestAccountService_Login_UnknownEmail(t *testing.T) {
	fx := createTestAccountService(t)

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@x.com",
		Password: "pw1",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Invalid email or password", appErr.Message())
}

func TestAccountService_Login_FailuresAreIndistinguishable(t *testing.T) {
	fx := createTestAccountService(t)
	require.NoError(t, fx.service.Signup(context.Background(), validSignup()))

	_, wrongPasswordErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "wrong",
	})
	_, unknownEmailErr := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "nobody@x.com",
		Password: "pw1",
	})

	var wrongPassword, unknownEmail domainerrors.AppError
	require.True(t, errors.As(wrongPasswordErr, &wrongPassword))
	require.True(t, errors.As(unknownEmailErr, &unknownEmail))

	// Anti-enumeration: both failures carry the identical code, status
	// and message.
	assert.Equal(t, wrongPassword.ErrorCode(), unknownEmail.ErrorCode())
	assert.Equal(t, wrongPassword.HTTPCode(), unknownEmail.HTTPCode())
	assert.Equal(t, wrongPassword.Message(), unknownEmail.Message())
}

func TestAccountService_Login_StoreError(t *testing.T) {
	fx := createTestAccountService(t)
	fx.repo.findErr = errors.New("connection reset")

	_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
		Email:    "a@x.com",
		Password: "pw1",
	})
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "Error logging in. Please try again later.", appErr.Message())
}

func TestAccountService_Login_DoesNotMutateStore(t *testing.T) {
	fx := createTestAccountService(t)
	require.NoError(t, fx.service.Signup(context.Background(), validSignup()))

	storedHash := fx.repo.byEmail["a@x.com"].PasswordHash

	for range 3 {
		_, err := fx.service.Login(context.Background(), &usecase.LoginInput{
			Email:    "a@x.com",
			Password: "wrong",
		})
		require.Error(t, err)
	}

	assert.Len(t, fx.repo.byEmail, 1)
	assert.Equal(t, storedHash, fx.repo.byEmail["a@x.com"].PasswordHash)
	assert.Equal(t, 1, fx.repo.createCalls)
}
