// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"folio/internal/domain/entity"
	domainerrors "folio/internal/domain/errors"
	"folio/internal/domain/repository"
	"folio/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{
		db: db,
	}
}

// FindByID retrieves a user and their profile by the user's unique ID.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by ID")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a user and their profile by email address.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("Profile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user together with their profile in one insert.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return repository.ErrDuplicateUser
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the entity with generated values
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt
	if user.Profile != nil && userM.Profile != nil {
		user.Profile.UserID = userM.ID
		user.Profile.UpdatedAt = userM.Profile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user and their profile.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	result := repo.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("id = ?", user.ID).
		Updates(map[string]any{
			"email":           userM.Email,
			"name":            userM.Name,
			"password_hash":   userM.PasswordHash,
			"email_confirmed": userM.EmailConfirmed,
		})
	if result.Error != nil {
		if isUniqueConstraintViolation(result.Error) {
			return repository.ErrDuplicateUser
		}

		return errors.Wrap(result.Error, "failed to update user")
	}
	if result.RowsAffected == 0 {
		return repository.ErrUserNotFound
	}

	if user.Profile != nil {
		if err := repo.db.WithContext(ctx).
			Model(&model.ProfileModel{}).
			Where("user_id = ?", user.ID).
			Updates(map[string]any{
				"role":      user.Profile.Role.String(),
				"is_active": user.Profile.IsActive,
			}).Error; err != nil {
			return errors.Wrap(err, "failed to update user profile")
		}
	}

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		PasswordHash:   data.PasswordHash,
		EmailConfirmed: data.EmailConfirmed,
		CreatedAt:      data.CreatedAt,
		UpdatedAt:      data.UpdatedAt,
	}

	if data.Profile != nil {
		user.Profile = &entity.Profile{
			UserID:    data.Profile.UserID,
			Role:      entity.Role(data.Profile.Role),
			IsActive:  data.Profile.IsActive,
			UpdatedAt: data.Profile.UpdatedAt,
		}
	}

	return user
}

// fromUserDomain converts a domain User entity to a GORM UserModel.
func fromUserDomain(data *entity.User) *model.UserModel {
	if data == nil {
		return nil
	}

	userM := &model.UserModel{
		ID:             data.ID,
		Email:          data.Email,
		Name:           data.Name,
		PasswordHash:   data.PasswordHash,
		EmailConfirmed: data.EmailConfirmed,
	}

	if data.Profile != nil {
		userM.Profile = &model.ProfileModel{
			UserID:   data.Profile.UserID,
			Role:     data.Profile.Role.String(),
			IsActive: data.Profile.IsActive,
		}
	}

	return userM
}
