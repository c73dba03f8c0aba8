package impl

import (
	"context"
	"testing"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	mockRepo "folio/internal/mocks/repository"
	mockSvc "folio/internal/mocks/service"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newUserServiceForTest(t *testing.T) (usecase.UserUsecase, *mockRepo.MockTransactionManager, *mockRepo.MockUserRepository, *mockSvc.MockPasswordHasher, *mockSvc.MockTokenService) {
	mockTx := mockRepo.NewMockTransactionManager(t)
	mockUserRepo := mockRepo.NewMockUserRepository(t)
	mockHasher := mockSvc.NewMockPasswordHasher(t)
	mockTokenService := mockSvc.NewMockTokenService(t)

	svc := NewUserService(UserServiceParams{
		TxManager:    mockTx,
		UserRepo:     mockUserRepo,
		Hasher:       mockHasher,
		TokenService: mockTokenService,
		Logger:       newDiscardLogger(),
	})

	return svc, mockTx, mockUserRepo, mockHasher, mockTokenService
}

func TestUserService_RegisterUser_Success(t *testing.T) {
	svc, mockTx, _, mockHasher, _ := newUserServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("correct horse battery").
		Return("$2a$12$hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, user *entity.User) {
			user.ID = uuid.New()
			assert.Equal(t, "$2a$12$hashed", user.PasswordHash)
			assert.Equal(t, entity.RoleUser, user.Profile.Role)
			assert.True(t, user.Profile.IsActive)
		}).
		Return(nil)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Name:     "Reader",
		Email:    "reader@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", output.User.Email)
	assert.NotEqual(t, uuid.Nil, output.User.ID)
}

func TestUserService_RegisterUser_DuplicateEmail(t *testing.T) {
	svc, mockTx, _, mockHasher, _ := newUserServiceForTest(t)

	ctx := context.Background()

	mockHasher.EXPECT().
		Hash("correct horse battery").
		Return("$2a$12$hashed", nil)

	txUserRepo := mockRepo.NewMockUserRepository(t)
	factory := mockRepo.NewMockRepositoryFactory(t)
	factory.EXPECT().NewUserRepository().Return(txUserRepo)

	txUserRepo.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.User")).
		Return(repository.ErrDuplicateUser)

	mockTx.EXPECT().
		Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			return fn(factory)
		})

	output, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:    "reader@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
	assert.Nil(t, output)
}

func TestUserService_RegisterUser_PasswordTooShort(t *testing.T) {
	svc, _, _, _, _ := newUserServiceForTest(t)

	ctx := context.Background()

	output, err := svc.RegisterUser(ctx, &usecase.RegisterUserInput{
		Email:    "reader@example.com",
		Password: "short",
	})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestUserService_Login_Success(t *testing.T) {
	svc, _, mockUserRepo, mockHasher, mockTokenService := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()
	user := readerUser(userID)
	user.PasswordHash = "$2a$12$hashed"

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "reader@example.com").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("correct horse battery", "$2a$12$hashed").
		Return(true)

	mockTokenService.EXPECT().
		GenerateAccessToken(userID, []string{"user"}).
		Return("signed.jwt.token", nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "reader@example.com",
		Password: "correct horse battery",
	})
	require.NoError(t, err)
	assert.Equal(t, "signed.jwt.token", output.AccessToken)
	assert.Equal(t, userID, output.User.ID)
}

func TestUserService_Login_WrongPassword(t *testing.T) {
	svc, _, mockUserRepo, mockHasher, _ := newUserServiceForTest(t)

	ctx := context.Background()
	user := readerUser(uuid.New())
	user.PasswordHash = "$2a$12$hashed"

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "reader@example.com").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("wrong", "$2a$12$hashed").
		Return(false)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "reader@example.com",
		Password: "wrong",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_UnknownEmail(t *testing.T) {
	svc, _, mockUserRepo, _, _ := newUserServiceForTest(t)

	ctx := context.Background()

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "ghost@example.com").
		Return(nil, repository.ErrUserNotFound)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "ghost@example.com",
		Password: "whatever",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_PasswordlessAccount(t *testing.T) {
	svc, _, mockUserRepo, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	user := readerUser(uuid.New())
	user.PasswordHash = ""

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "buyer@example.com").
		Return(user, nil)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "buyer@example.com",
		Password: "anything",
	})
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCredentials)
	assert.Nil(t, output)
}

func TestUserService_Login_InactiveAccount(t *testing.T) {
	svc, _, mockUserRepo, mockHasher, _ := newUserServiceForTest(t)

	ctx := context.Background()
	user := readerUser(uuid.New())
	user.PasswordHash = "$2a$12$hashed"
	user.Profile.IsActive = false

	mockUserRepo.EXPECT().
		FindByEmail(ctx, "reader@example.com").
		Return(user, nil)

	mockHasher.EXPECT().
		Check("correct horse battery", "$2a$12$hashed").
		Return(true)

	output, err := svc.Login(ctx, &usecase.LoginInput{
		Email:    "reader@example.com",
		Password: "correct horse battery",
	})
	assert.ErrorIs(t, err, domainerrors.ErrPermissionDenied)
	assert.Nil(t, output)
}

func TestUserService_UpdateProfile_ChangesName(t *testing.T) {
	svc, _, mockUserRepo, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	user := readerUser(uuid.New())
	user.Name = "Old Name"

	mockUserRepo.EXPECT().
		FindByID(ctx, user.ID).
		Return(user, nil)

	mockUserRepo.EXPECT().
		Update(ctx, mock.AnythingOfType("*entity.User")).
		Run(func(_ context.Context, updated *entity.User) {
			assert.Equal(t, "New Name", updated.Name)
		}).
		Return(nil)

	updated, err := svc.UpdateProfile(ctx, user.ID, "  New Name  ")
	require.NoError(t, err)
	assert.Equal(t, "New Name", updated.Name)
}

func TestUserService_UpdateProfile_EmptyName(t *testing.T) {
	svc, _, _, _, _ := newUserServiceForTest(t)

	ctx := context.Background()

	updated, err := svc.UpdateProfile(ctx, uuid.New(), "   ")
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, updated)
}

func TestUserService_UpdateProfile_UnknownUser(t *testing.T) {
	svc, _, mockUserRepo, _, _ := newUserServiceForTest(t)

	ctx := context.Background()
	userID := uuid.New()

	mockUserRepo.EXPECT().
		FindByID(ctx, userID).
		Return(nil, repository.ErrUserNotFound)

	updated, err := svc.UpdateProfile(ctx, userID, "New Name")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
	assert.Nil(t, updated)
}
