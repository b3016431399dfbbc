package impl

import (
	"context"
	"testing"
	"time"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/domain/service"
	mockRepo "harvest/internal/mocks/repository"
	mockSvc "harvest/internal/mocks/service"
	"harvest/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixture bundles the mocks a user service test needs.
type userServiceFixture struct {
	txManager        *mockRepo.MockTransactionManager
	factory          *mockRepo.MockRepositoryFactory
	userRepo         *mockRepo.MockUserRepository
	authRepo         *mockRepo.MockAuthRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
	service          usecase.UserUsecase
}

func newUserServiceFixture(t *testing.T) *userServiceFixture {
	t.Helper()

	f := &userServiceFixture{
		txManager:        mockRepo.NewMockTransactionManager(t),
		factory:          mockRepo.NewMockRepositoryFactory(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		authRepo:         mockRepo.NewMockAuthRepository(t),
		refreshTokenRepo: mockRepo.NewMockRefreshTokenRepository(t),
		hasher:           mockSvc.NewMockPasswordHasher(t),
		tokenService:     mockSvc.NewMockTokenService(t),
	}

	f.service = NewUserService(UserServiceParams{
		TxManager:        f.txManager,
		UserRepo:         f.userRepo,
		RefreshTokenRepo: f.refreshTokenRepo,
		Hasher:           f.hasher,
		TokenService:     f.tokenService,
		Logger:           newTestLogger(),
	})

	return f
}

// expectTransaction makes Execute run its callback against the mock factory.
func (f *userServiceFixture) expectTransaction(ctx context.Context) {
	f.txManager.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(f.factory)
		})
}

func TestUserService_RegisterFarmer_NewAccount(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.expectTransaction(ctx)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
	f.factory.EXPECT().AuthRepo().Return(f.authRepo)

	f.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@farm.example").
		Return(nil, repository.ErrAuthNotFound)

	f.hasher.EXPECT().
		Hash("s3cret-password").
		Return("$2a$10$hash", nil)

	f.userRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			require.NotNil(t, user.FarmerProfile)
			assert.Equal(t, "Green Valley Farm", user.FarmerProfile.FarmName)
			user.ID = uuid.New()
		}).
		Return(nil)

	f.authRepo.EXPECT().
		CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).
		Run(func(ctx context.Context, auth *entity.Authentication) {
			assert.Equal(t, entity.ProviderTypeEmail, auth.Provider)
			assert.Equal(t, "$2a$10$hash", auth.PasswordHash)
		}).
		Return(nil)

	output, err := f.service.RegisterFarmer(ctx, &usecase.RegisterFarmerInput{
		Name:     "Ana",
		Email:    "ana@farm.example",
		Password: "s3cret-password",
		FarmName: "Green Valley Farm",
	})

	require.NoError(t, err)
	require.NotNil(t, output.User.FarmerProfile)
	assert.Contains(t, output.User.Roles(), entity.RoleFarmer)
}

func TestUserService_RegisterConsumer_AttachesProfileToExistingAccount(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.expectTransaction(ctx)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
	f.factory.EXPECT().AuthRepo().Return(f.authRepo)

	f.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@farm.example").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "$2a$10$hash"}, nil)

	f.hasher.EXPECT().
		Check("s3cret-password", "$2a$10$hash").
		Return(true)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, Name: "Ana", FarmerProfile: &entity.FarmerProfile{UserID: userID}}, nil)

	f.userRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(ctx context.Context, user *entity.User) {
			require.NotNil(t, user.ConsumerProfile)
			require.NotNil(t, user.FarmerProfile)
		}).
		Return(nil)

	output, err := f.service.RegisterConsumer(ctx, &usecase.RegisterConsumerInput{
		Name:     "Ana",
		Email:    "ana@farm.example",
		Password: "s3cret-password",
		Phone:    "555-0100",
	})

	require.NoError(t, err)
	assert.Contains(t, output.User.Roles(), entity.RoleFarmer)
	assert.Contains(t, output.User.Roles(), entity.RoleConsumer)
}

func TestUserService_RegisterFarmer_DuplicateProfileFails(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.expectTransaction(ctx)
	f.factory.EXPECT().UserRepo().Return(f.userRepo)
	f.factory.EXPECT().AuthRepo().Return(f.authRepo)

	f.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@farm.example").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "$2a$10$hash"}, nil)

	f.hasher.EXPECT().
		Check("s3cret-password", "$2a$10$hash").
		Return(true)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, FarmerProfile: &entity.FarmerProfile{UserID: userID}}, nil)

	_, err := f.service.RegisterFarmer(ctx, &usecase.RegisterFarmerInput{
		Name:     "Ana",
		Email:    "ana@farm.example",
		Password: "s3cret-password",
		FarmName: "Green Valley Farm",
	})

	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_Login_Succeeds(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.expectTransaction(ctx)
	f.factory.EXPECT().AuthRepo().Return(f.authRepo)

	f.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@farm.example").
		Return(&entity.Authentication{UserID: userID, PasswordHash: "$2a$10$hash"}, nil)

	f.hasher.EXPECT().
		Check("s3cret-password", "$2a$10$hash").
		Return(true)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, FarmerProfile: &entity.FarmerProfile{UserID: userID}}, nil)

	f.tokenService.EXPECT().
		GenerateTokens(userID, []string{"farmer"}).
		Return("access-token", "refresh-token", nil)

	f.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-hash")

	f.tokenService.EXPECT().
		GetRefreshTokenDuration().
		Return(7 * 24 * time.Hour)

	f.refreshTokenRepo.EXPECT().
		CreateRefreshToken(ctx, mock.AnythingOfType("*entity.RefreshToken")).
		Run(func(ctx context.Context, token *entity.RefreshToken) {
			assert.Equal(t, "refresh-hash", token.TokenHash)
			assert.Equal(t, userID, token.UserID)
		}).
		Return(nil)

	output, err := f.service.Login(ctx, &usecase.LoginInput{
		Email:    "ana@farm.example",
		Password: "s3cret-password",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.expectTransaction(ctx)
	f.factory.EXPECT().AuthRepo().Return(f.authRepo)

	f.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ana@farm.example").
		Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "$2a$10$hash"}, nil)

	f.hasher.EXPECT().
		Check("wrong", "$2a$10$hash").
		Return(false)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ana@farm.example", Password: "wrong"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_Login_UnknownEmailIsInvalidCredentials(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.expectTransaction(ctx)
	f.factory.EXPECT().AuthRepo().Return(f.authRepo)

	f.authRepo.EXPECT().
		FindAuthentication(ctx, entity.ProviderTypeEmail, "ghost@farm.example").
		Return(nil, repository.ErrAuthNotFound)

	_, err := f.service.Login(ctx, &usecase.LoginInput{Email: "ghost@farm.example", Password: "whatever"})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
}

func TestUserService_RefreshToken_IssuesNewAccessToken(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()
	userID := uuid.New()

	f.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: "refresh"}, nil)

	f.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-hash")

	f.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(&entity.RefreshToken{UserID: userID, TokenHash: "refresh-hash"}, nil)

	f.userRepo.EXPECT().
		FindByID(ctx, userID).
		Return(&entity.User{ID: userID, ConsumerProfile: &entity.ConsumerProfile{UserID: userID}}, nil)

	f.tokenService.EXPECT().
		GenerateTokens(userID, []string{"consumer"}).
		Return("new-access-token", "unused-refresh", nil)

	output, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	require.NoError(t, err)
	assert.Equal(t, "new-access-token", output.AccessToken)
}

func TestUserService_RefreshToken_MissingSessionFails(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)

	f.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-hash")

	f.refreshTokenRepo.EXPECT().
		FindRefreshTokenByHash(ctx, "refresh-hash").
		Return(nil, repository.ErrRefreshTokenNotFound)

	_, err := f.service.RefreshToken(ctx, &usecase.RefreshTokenInput{RefreshToken: "refresh-token"})

	assert.ErrorIs(t, err, domainerrors.ErrRefreshTokenInvalid)
}

func TestUserService_Logout_DeletesSession(t *testing.T) {
	f := newUserServiceFixture(t)
	ctx := context.Background()

	f.tokenService.EXPECT().
		ValidateRefreshToken("refresh-token").
		Return(&service.Claims{UserID: uuid.New(), Type: "refresh"}, nil)

	f.tokenService.EXPECT().
		HashToken("refresh-token").
		Return("refresh-hash")

	f.refreshTokenRepo.EXPECT().
		DeleteRefreshTokenByHash(ctx, "refresh-hash").
		Return(nil)

	err := f.service.Logout(ctx, &usecase.LogoutInput{RefreshToken: "refresh-token"})

	assert.NoError(t, err)
}
