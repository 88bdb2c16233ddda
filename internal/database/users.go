package database

import (
	"errors"
	"strings"

	"geosolar-backoffice/internal/apperrors"
	"geosolar-backoffice/internal/models"
	"geosolar-backoffice/internal/rbac"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type UserInput struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// CreateUser registers a staff account. Emails are case-insensitively
// unique: they are lowercased before they ever reach storage.
func CreateUser(db *gorm.DB, in UserInput) (*models.User, error) {
	ve := apperrors.NewValidation()
	email := strings.ToLower(strings.TrimSpace(in.Email))
	if email == "" || !strings.Contains(email, "@") {
		ve.Add("email", "a valid email address is required")
	}
	if len(in.Password) < 8 {
		ve.Add("password", "password must be at least 8 characters")
	}
	role, ok := rbac.ParseRole(in.Role)
	if !ok {
		ve.Add("role", "unknown role")
	}
	if ve.HasErrors() {
		return nil, ve
	}

	var existing models.User
	err := db.Where("email = ?", email).First(&existing).Error
	if err == nil {
		return nil, apperrors.Conflict("a user with this email already exists")
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		Role:         string(role),
		Active:       true,
	}
	if err := db.Create(&user).Error; err != nil {
		return nil, err
	}
	return &user, nil
}

// ListUsers returns every staff account.
func ListUsers(db *gorm.DB) ([]models.User, error) {
	var users []models.User
	err := db.Order("id").Find(&users).Error
	return users, err
}

// SetUserActive toggles an account. Deactivating the last active
// MANAGING_DIRECTOR is rejected: the invariant is that at least one must
// exist at all times, checked under a lock inside the same transaction
// that flips the flag.
func SetUserActive(db *gorm.DB, id uint, active bool) (*models.User, error) {
	var user models.User
	err := db.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("user")
			}
			return err
		}

		if !active && user.Active {
			if err := ensureNotLastDirector(tx, &user); err != nil {
				return err
			}
		}

		user.Active = active
		return tx.Save(&user).Error
	})
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// DeleteUser removes an account, subject to the same managing-director
// invariant as deactivation.
func DeleteUser(db *gorm.DB, id uint) error {
	return db.Transaction(func(tx *gorm.DB) error {
		var user models.User
		if err := tx.First(&user, id).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound("user")
			}
			return err
		}

		if user.Active {
			if err := ensureNotLastDirector(tx, &user); err != nil {
				return err
			}
		}

		return tx.Delete(&user).Error
	})
}

func ensureNotLastDirector(tx *gorm.DB, user *models.User) error {
	if user.Role != string(rbac.RoleManagingDirector) {
		return nil
	}
	var others int64
	err := tx.Model(&models.User{}).
		Where("role = ? AND active = ? AND id <> ?", string(rbac.RoleManagingDirector), true, user.ID).
		Count(&others).Error
	if err != nil {
		return err
	}
	if others == 0 {
		return apperrors.Conflict("cannot remove the last active managing director")
	}
	return nil
}
