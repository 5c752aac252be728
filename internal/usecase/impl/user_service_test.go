package impl

import (
	"context"
	"testing"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T, userRepo *MockUserRepository, hasher *MockPasswordHasher, tokenService *MockTokenService) usecase.UserUsecase {
	t.Helper()

	return NewUserService(UserServiceParams{
		UserRepo:     userRepo,
		Hasher:       hasher,
		TokenService: tokenService,
		Logger:       testLogger(),
	})
}

func TestUserService_Register_Success(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	hasher := NewMockPasswordHasher(t)
	tokenService := NewMockTokenService(t)
	service := newUserServiceForTest(t, userRepo, hasher, tokenService)

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "alice@example.com").Return(nil, repository.ErrUserNotFound)
	hasher.On("Hash", "s3cret-pass").Return("hashed", nil)
	userRepo.On("Create", ctx, mock.AnythingOfType("*entity.User")).
		Run(func(args mock.Arguments) {
			args.Get(1).(*entity.User).ID = uuid.New()
		}).
		Return(nil)
	tokenService.On("GenerateToken", mock.AnythingOfType("uuid.UUID"), entity.RoleCustomer).
		Return("signed-token", nil)

	out, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
		Phone:    "555-0100",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, "Alice", out.User.Name)
	assert.Equal(t, entity.RoleCustomer, out.User.Role)
	assert.Equal(t, "hashed", out.User.PasswordHash)
}

func TestUserService_Register_EmailTaken(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	hasher := NewMockPasswordHasher(t)
	tokenService := NewMockTokenService(t)
	service := newUserServiceForTest(t, userRepo, hasher, tokenService)

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), Email: "alice@example.com"}, nil)

	out, err := service.Register(ctx, &usecase.RegisterInput{
		Name:     "Alice",
		Email:    "alice@example.com",
		Password: "s3cret-pass",
	})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))

	userRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestUserService_Login_Success(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	hasher := NewMockPasswordHasher(t)
	tokenService := NewMockTokenService(t)
	service := newUserServiceForTest(t, userRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: userID, Email: "alice@example.com", PasswordHash: "hashed", Role: entity.RoleCustomer}, nil)
	hasher.On("Check", "s3cret-pass", "hashed").Return(true)
	tokenService.On("GenerateToken", userID, entity.RoleCustomer).Return("signed-token", nil)

	out, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "s3cret-pass"})
	require.NoError(t, err)
	assert.Equal(t, "signed-token", out.Token)
	assert.Equal(t, userID, out.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	hasher := NewMockPasswordHasher(t)
	tokenService := NewMockTokenService(t)
	service := newUserServiceForTest(t, userRepo, hasher, tokenService)

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "alice@example.com").
		Return(&entity.User{ID: uuid.New(), PasswordHash: "hashed"}, nil)
	hasher.On("Check", "wrong", "hashed").Return(false)

	out, err := service.Login(ctx, &usecase.LoginInput{Email: "alice@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Nil(t, out)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_Login_UnknownEmailMapsToInvalidCredentials(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	hasher := NewMockPasswordHasher(t)
	tokenService := NewMockTokenService(t)
	service := newUserServiceForTest(t, userRepo, hasher, tokenService)

	ctx := context.Background()

	userRepo.On("FindByEmail", ctx, "ghost@example.com").Return(nil, repository.ErrUserNotFound)

	out, err := service.Login(ctx, &usecase.LoginInput{Email: "ghost@example.com", Password: "whatever"})
	require.Error(t, err)
	assert.Nil(t, out)
	// Unknown account must be indistinguishable from a bad password.
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestUserService_ChangePassword_Success(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	hasher := NewMockPasswordHasher(t)
	tokenService := NewMockTokenService(t)
	service := newUserServiceForTest(t, userRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, PasswordHash: "old-hash"}, nil)
	hasher.On("Check", "old-pass", "old-hash").Return(true)
	hasher.On("Hash", "new-pass").Return("new-hash", nil)
	userRepo.On("UpdatePassword", ctx, userID, "new-hash").Return(nil)

	err := service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "old-pass",
		NewPassword:     "new-pass",
	})
	require.NoError(t, err)
}

func TestUserService_ChangePassword_WrongCurrent(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	hasher := NewMockPasswordHasher(t)
	tokenService := NewMockTokenService(t)
	service := newUserServiceForTest(t, userRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, PasswordHash: "old-hash"}, nil)
	hasher.On("Check", "wrong", "old-hash").Return(false)

	err := service.ChangePassword(ctx, userID, &usecase.ChangePasswordInput{
		CurrentPassword: "wrong",
		NewPassword:     "new-pass",
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	userRepo.AssertNotCalled(t, "UpdatePassword", mock.Anything, mock.Anything, mock.Anything)
}

func TestUserService_UpdateProfile_ReturnsReloadedUser(t *testing.T) {
	userRepo := NewMockUserRepository(t)
	hasher := NewMockPasswordHasher(t)
	tokenService := NewMockTokenService(t)
	service := newUserServiceForTest(t, userRepo, hasher, tokenService)

	ctx := context.Background()
	userID := uuid.New()

	userRepo.On("UpdateProfile", ctx, userID, "Alice B", "555-0101").Return(nil)
	userRepo.On("FindByID", ctx, userID).
		Return(&entity.User{ID: userID, Name: "Alice B", Phone: "555-0101"}, nil)

	user, err := service.UpdateProfile(ctx, userID, &usecase.UpdateProfileInput{Name: "Alice B", Phone: "555-0101"})
	require.NoError(t, err)
	assert.Equal(t, "Alice B", user.Name)
	assert.Equal(t, "555-0101", user.Phone)
}
