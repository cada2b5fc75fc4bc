package repositories

import (
	"errors"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/Mithil2603/machinery-backend/internal/models"
)

var (
	ErrUserNotFound = errors.New("user not found")
	ErrEmailTaken   = errors.New("email already taken")

	// ErrResetTokenInvalid means the token is absent, expired, or was
	// superseded by a newer issue for the same user.
	ErrResetTokenInvalid = errors.New("reset token is not active")
)

type UserRepository interface {
	Create(user *models.User) error
	FindByID(id uint) (*models.User, error)
	FindByEmail(email string) (*models.User, error)
	UpdatePassword(userID uint, hash string) error

	// Reset token lifecycle. At most one token is active per user;
	// SetResetToken overwrites whatever was there before.
	SetResetToken(userID uint, token string, expires time.Time) error
	FindByActiveResetToken(token string, now time.Time) (*models.User, error)
	ConsumeResetToken(userID uint, token, newHash string) error
}

type UserRepositoryImpl struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) UserRepository {
	return &UserRepositoryImpl{db: db}
}

// NormalizeEmail fixes the store's case policy: emails are compared and
// stored lower-cased.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (r *UserRepositoryImpl) Create(user *models.User) error {
	user.Email = NormalizeEmail(user.Email)

	err := r.db.Create(user).Error
	if err != nil {
		// Uniqueness is enforced by the store's constraint, not by a
		// read-then-write check.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return ErrEmailTaken
		}
		return err
	}
	return nil
}

func (r *UserRepositoryImpl) FindByID(id uint) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "user_id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) FindByEmail(email string) (*models.User, error) {
	var user models.User
	err := r.db.First(&user, "email = ?", NormalizeEmail(email)).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return &user, nil
}

func (r *UserRepositoryImpl) UpdatePassword(userID uint, hash string) error {
	result := r.db.Model(&models.User{}).Where("user_id = ?", userID).
		Update("user_password", hash)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// SetResetToken writes a fresh token and expiry, silently invalidating
// any previously active token for the user. Last write wins.
func (r *UserRepositoryImpl) SetResetToken(userID uint, token string, expires time.Time) error {
	result := r.db.Model(&models.User{}).Where("user_id = ?", userID).
		Updates(map[string]interface{}{
			"reset_token":         token,
			"reset_token_expires": expires,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUserNotFound
	}
	return nil
}

// FindByActiveResetToken matches on the exact token and a strictly
// future expiry. An expired-but-present token behaves like an absent one.
func (r *UserRepositoryImpl) FindByActiveResetToken(token string, now time.Time) (*models.User, error) {
	var user models.User
	err := r.db.
		Where("reset_token = ? AND reset_token_expires > ?", token, now).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrResetTokenInvalid
		}
		return nil, err
	}
	return &user, nil
}

// ConsumeResetToken replaces the password hash and clears both token
// columns in a single guarded UPDATE. The token predicate makes the
// consume fail if a concurrent issue replaced the token in the meantime.
func (r *UserRepositoryImpl) ConsumeResetToken(userID uint, token, newHash string) error {
	result := r.db.Model(&models.User{}).
		Where("user_id = ? AND reset_token = ?", userID, token).
		Updates(map[string]interface{}{
			"user_password":       newHash,
			"reset_token":         nil,
			"reset_token_expires": nil,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrResetTokenInvalid
	}
	return nil
}
