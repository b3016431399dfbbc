// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"harvest/internal/domain/entity"
	domainerrors "harvest/internal/domain/errors"
	"harvest/internal/domain/repository"
	"harvest/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// userRepository implements the domain.UserRepository interface using GORM.
type userRepository struct {
	db *gorm.DB
}

// NewUserRepository is the constructor for userRepository.
// It returns the repository as a domain.UserRepository interface, adhering to dependency inversion.
func NewUserRepository(db *gorm.DB) repository.UserRepository {
	return &userRepository{db: db}
}

// FindByID retrieves a single user by their unique ID, preloading their associated profiles.
func (repo *userRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("FarmerProfile").
		Preload("ConsumerProfile").
		Preload("AdminProfile").
		Where("id = ?", id).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by id")
	}

	return toUserDomain(&userM), nil
}

// FindByEmail retrieves a single user by their email address, preloading profiles.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel

	if err := repo.db.WithContext(ctx).
		Preload("FarmerProfile").
		Preload("ConsumerProfile").
		Preload("AdminProfile").
		Where("email = ?", email).
		First(&userM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to find user by email")
	}

	return toUserDomain(&userM), nil
}

// Create persists a new user entity, including its associated profiles.
// GORM's Create with associations inserts into users and the profile tables together.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).Create(userM).Error; err != nil {
		// Convert PostgreSQL errors to domain errors
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("missing required user information")
		}
		if isForeignKeyConstraintViolation(err) {
			return domainerrors.ErrUserCreationFailed.WrapMessage("invalid foreign key reference")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to create user")
	}

	// Update the user entity with the generated ID and timestamps
	user.ID = userM.ID
	user.CreatedAt = userM.CreatedAt
	user.UpdatedAt = userM.UpdatedAt

	if user.FarmerProfile != nil && userM.FarmerProfile != nil {
		user.FarmerProfile.UserID = userM.FarmerProfile.UserID
		user.FarmerProfile.UpdatedAt = userM.FarmerProfile.UpdatedAt
	}
	if user.ConsumerProfile != nil && userM.ConsumerProfile != nil {
		user.ConsumerProfile.UserID = userM.ConsumerProfile.UserID
		user.ConsumerProfile.UpdatedAt = userM.ConsumerProfile.UpdatedAt
	}

	return nil
}

// Update modifies an existing user entity, including its associated profiles.
func (repo *userRepository) Update(ctx context.Context, user *entity.User) error {
	userM := fromUserDomain(user)

	if err := repo.db.WithContext(ctx).
		Session(&gorm.Session{FullSaveAssociations: true}).
		Save(userM).Error; err != nil {
		if isUniqueConstraintViolation(err) {
			return domainerrors.ErrUserAlreadyExists.WrapMessage("email already exists")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to update user")
	}

	user.UpdatedAt = userM.UpdatedAt

	return nil
}

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	user := &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		Name:      data.Name,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}

	if data.FarmerProfile != nil {
		user.FarmerProfile = &entity.FarmerProfile{
			UserID:       data.FarmerProfile.UserID,
			FarmName:     data.FarmerProfile.FarmName,
			FarmLocation: data.FarmerProfile.FarmLocation,
			Bio:          data.FarmerProfile.Bio,
			UpdatedAt:    data.FarmerProfile.UpdatedAt,
		}
	}
	if data.ConsumerProfile != nil {
		user.ConsumerProfile = &entity.ConsumerProfile{
			UserID:         data.ConsumerProfile.UserID,
			Phone:          data.ConsumerProfile.Phone,
			DefaultAddress: data.ConsumerProfile.DefaultAddress,
			UpdatedAt:      data.ConsumerProfile.UpdatedAt,
		}
	}
	if data.AdminProfile != nil {
		user.AdminProfile = &entity.AdminProfile{
			UserID:    data.AdminProfile.UserID,
			UpdatedAt: data.AdminProfile.UpdatedAt,
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
		ID:    data.ID,
		Email: data.Email,
		Name:  data.Name,
	}

	if data.FarmerProfile != nil {
		userM.FarmerProfile = &model.FarmerProfileModel{
			UserID:       data.FarmerProfile.UserID,
			FarmName:     data.FarmerProfile.FarmName,
			FarmLocation: data.FarmerProfile.FarmLocation,
			Bio:          data.FarmerProfile.Bio,
		}
	}
	if data.ConsumerProfile != nil {
		userM.ConsumerProfile = &model.ConsumerProfileModel{
			UserID:         data.ConsumerProfile.UserID,
			Phone:          data.ConsumerProfile.Phone,
			DefaultAddress: data.ConsumerProfile.DefaultAddress,
		}
	}
	if data.AdminProfile != nil {
		userM.AdminProfile = &model.AdminProfileModel{
			UserID: data.AdminProfile.UserID,
		}
	}

	return userM
}
