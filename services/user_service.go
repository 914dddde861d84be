package services

import (
	"context"
	"errors"

	"fitnessmap/models"
	"fitnessmap/utils"

	"gorm.io/gorm"
)

// UserService manages an existing account. Changes require the current password.
type UserService struct {
	db   *gorm.DB
	auth *AuthService
}

func NewUserService(db *gorm.DB, auth *AuthService) *UserService {
	return &UserService{db: db, auth: auth}
}

func (s *UserService) FindByID(ctx context.Context, userID uint) (*models.User, error) {
	var user models.User
	err := s.db.WithContext(ctx).First(&user, userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return &user, nil
}

func (s *UserService) reauthenticate(ctx context.Context, userID uint, currentPassword string) (*models.User, error) {
	user, err := s.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if !utils.CheckPasswordHash(currentPassword, user.Password) {
		return nil, ErrInvalidCredentials
	}
	return user, nil
}

func (s *UserService) ChangeEmail(ctx context.Context, userID uint, currentPassword, newEmail string) error {
	user, err := s.reauthenticate(ctx, userID, currentPassword)
	if err != nil {
		return err
	}
	newEmail = normalizeEmail(newEmail)
	if newEmail == user.Email {
		return nil
	}
	if err := s.auth.ensureEmailFree(ctx, newEmail); err != nil {
		return err
	}
	user.Email = newEmail
	return s.db.WithContext(ctx).Save(user).Error
}

func (s *UserService) ChangePassword(ctx context.Context, userID uint, currentPassword, newPassword string) error {
	if len(newPassword) < minPasswordLen {
		return ErrWeakPassword
	}
	user, err := s.reauthenticate(ctx, userID, currentPassword)
	if err != nil {
		return err
	}
	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	return s.db.WithContext(ctx).Save(user).Error
}

// DeleteAccount removes the user and everything stored for them.
func (s *UserService) DeleteAccount(ctx context.Context, userID uint, currentPassword string) error {
	user, err := s.reauthenticate(ctx, userID, currentPassword)
	if err != nil {
		return err
	}
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, m := range []interface{}{&models.FitnessProfile{}, &models.DailyGoal{}, &models.Alert{}} {
			if err := tx.Unscoped().Where("user_id = ?", user.ID).Delete(m).Error; err != nil {
				return err
			}
		}
		return tx.Unscoped().Delete(user).Error
	})
}
