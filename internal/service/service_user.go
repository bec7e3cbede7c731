package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/gophertalk/internal/logger"
	"github.com/MKhiriev/gophertalk/internal/store"
	"github.com/MKhiriev/gophertalk/internal/utils"
	"github.com/MKhiriev/gophertalk/models"
)

type userService struct {
	userRepository   store.UserRepository
	passwordHashCost int

	logger *logger.Logger
}

func NewUserService(userRepository store.UserRepository, passwordHashCost int, logger *logger.Logger) UserService {
	return &userService{
		userRepository:   userRepository,
		passwordHashCost: passwordHashCost,
		logger:           logger,
	}
}

func (s *userService) GetUsers(ctx context.Context, page models.Pagination) ([]models.User, error) {
	return s.userRepository.GetUsers(ctx, page)
}

func (s *userService) GetUserByID(ctx context.Context, userID int64) (models.User, error) {
	return s.userRepository.GetUserByID(ctx, userID)
}

// UpdateUser re-hashes a new password before handing the change to the
// repository. The plain password never reaches the store. Ownership is
// checked before existence, so a foreign id is ErrForbidden even when no
// such user exists.
func (s *userService) UpdateUser(ctx context.Context, callerID, userID int64, update models.UpdateUserRequest) (models.User, error) {
	log := logger.FromContext(ctx)

	if callerID != userID {
		log.Warn().Int64("caller_id", callerID).Int64("user_id", userID).Msg("attempt to update another user")
		return models.User{}, ErrForbidden
	}

	if update.Password != nil {
		hash, err := utils.HashPassword(*update.Password, s.passwordHashCost)
		if err != nil {
			log.Err(err).Str("func", "*userService.UpdateUser").Msg("error hashing password")
			return models.User{}, fmt.Errorf("%w: %w", ErrPasswordHashingFailed, err)
		}
		update.PasswordHash = &hash
	}
	update.Password = nil
	update.PasswordConfirm = nil

	return s.userRepository.UpdateUser(ctx, userID, update)
}

// DeleteUser checks ownership the same way UpdateUser does.
func (s *userService) DeleteUser(ctx context.Context, callerID, userID int64) error {
	if callerID != userID {
		logger.FromContext(ctx).Warn().Int64("caller_id", callerID).Int64("user_id", userID).Msg("attempt to delete another user")
		return ErrForbidden
	}

	return s.userRepository.DeleteUser(ctx, userID)
}
