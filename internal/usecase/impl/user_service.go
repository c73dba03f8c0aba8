package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "folio/internal/delivery/context"
	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/domain/service"
	"folio/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// minPasswordLength is the minimum accepted password length at registration.
const minPasswordLength = 8

// userService implements the UserUsecase interface.
type userService struct {
	txManager    repository.TransactionManager
	userRepo     repository.UserRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager    repository.TransactionManager
	UserRepo     repository.UserRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewUserService is the constructor for userService.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		txManager:    params.TxManager,
		userRepo:     params.UserRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// RegisterUser creates a reader account with a hashed password.
func (srv *userService) RegisterUser(ctx context.Context, input *usecase.RegisterUserInput) (*usecase.RegisterOutput, error) {
	email := strings.TrimSpace(input.Email)
	if email == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("email is required")
	}
	if len(input.Password) < minPasswordLength {
		return nil, domainerrors.ErrValidationFailed.WithDetails("password must be at least 8 characters")
	}

	hash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, domainerrors.ErrPasswordHashFailed
	}

	user := &entity.User{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
		Profile: &entity.Profile{
			Role:     entity.RoleUser,
			IsActive: true,
		},
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.NewUserRepository().Create(ctx, user)
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateUser) {
			return nil, domainerrors.ErrUserAlreadyExists
		}

		srv.log(ctx).Error("Failed to register user",
			slog.String("email", email),
			slog.Any("error", err),
		)

		return nil, domainerrors.ErrUserCreationFailed
	}

	srv.log(ctx).Info("User registered",
		slog.Any("userID", user.ID),
	)

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies the credentials and issues an access token.
// Unknown email, missing password, and wrong password all return the same
// error so the endpoint cannot be used to probe for accounts.
func (srv *userService) Login(ctx context.Context, input *usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to find user for login")
	}

	// Accounts provisioned through checkout have no password yet; they sign
	// in through the emailed login link instead.
	if user.PasswordHash == "" || !srv.hasher.Check(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	if user.Profile == nil || !user.Profile.IsActive {
		return nil, domainerrors.ErrPermissionDenied
	}

	token, err := srv.tokenService.GenerateAccessToken(user.ID, []string{user.Profile.Role.String()})
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate access token")
	}

	srv.log(ctx).Info("User logged in",
		slog.Any("userID", user.ID),
	)

	return &usecase.LoginOutput{
		AccessToken: token,
		User:        user,
	}, nil
}

// UpdateProfile changes the user's display name.
func (srv *userService) UpdateProfile(ctx context.Context, userID uuid.UUID, name string) (*entity.User, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name is required")
	}

	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user for profile update")
	}

	user.Name = name
	if err := srv.userRepo.Update(ctx, user); err != nil {
		return nil, errors.Wrap(err, "failed to update user profile")
	}

	srv.log(ctx).Info("Profile updated",
		slog.Any("userID", userID),
	)

	return user, nil
}
