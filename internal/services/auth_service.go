package services

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/Mithil2603/machinery-backend/internal/auth"
	"github.com/Mithil2603/machinery-backend/internal/email"
	"github.com/Mithil2603/machinery-backend/internal/logger"
	"github.com/Mithil2603/machinery-backend/internal/models"
	"github.com/Mithil2603/machinery-backend/internal/repositories"
	"github.com/Mithil2603/machinery-backend/internal/services/dto"
	"github.com/Mithil2603/machinery-backend/pkg/apperrors"
)

// resetTokenTTL is how long a password-reset token stays valid.
const resetTokenTTL = time.Hour

type AuthService interface {
	Signup(req *dto.SignupRequest) (*models.User, error)
	Login(req *dto.LoginRequest) (*dto.SessionResult, error)
	RequestPasswordReset(emailAddr string) error
	ValidateResetToken(token string) error
	ResetPassword(token, newPassword string) (*dto.SessionResult, error)
}

type AuthServiceImpl struct {
	userRepo      repositories.UserRepository
	tokens        *auth.TokenManager
	emailProvider email.Provider
	baseURL       string
}

func NewAuthService(
	userRepo repositories.UserRepository,
	tokens *auth.TokenManager,
	emailProvider email.Provider,
	baseURL string,
) AuthService {
	return &AuthServiceImpl{
		userRepo:      userRepo,
		tokens:        tokens,
		emailProvider: emailProvider,
		baseURL:       baseURL,
	}
}

// Signup registers a new user with a hashed password.
func (s *AuthServiceImpl) Signup(req *dto.SignupRequest) (*models.User, error) {
	userType := models.UserType(req.UserType)
	if userType == "" {
		userType = models.UserTypeUser
	}
	if !models.ValidUserType(userType) {
		return nil, apperrors.ErrInvalidUserType
	}

	hash, err := auth.HashPassword(req.UserPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Email:        req.Email,
		PhoneNumber:  req.PhoneNumber,
		CompanyName:  req.CompanyName,
		UserPassword: hash,
		UserType:     userType,
	}

	if err := s.userRepo.Create(user); err != nil {
		if apperrors.Is(err, repositories.ErrEmailTaken) {
			return nil, apperrors.ErrEmailAlreadyExists
		}
		return nil, apperrors.DatabaseError(err)
	}

	return user, nil
}

// Login authenticates by email and password and issues a session token.
func (s *AuthServiceImpl) Login(req *dto.LoginRequest) (*dto.SessionResult, error) {
	user, err := s.userRepo.FindByEmail(req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrEmailNotFound
		}
		return nil, apperrors.DatabaseError(err)
	}

	ok, err := auth.VerifyPassword(req.UserPassword, user.UserPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	if !ok {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(user.UserID, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SessionResult{Token: token, User: user}, nil
}

// RequestPasswordReset issues a fresh reset token and mails the link.
// Issuing overwrites any previously active token for the user. The token
// is committed before the send attempt, so a delivery failure leaves it
// valid and unused.
func (s *AuthServiceImpl) RequestPasswordReset(emailAddr string) error {
	user, err := s.userRepo.FindByEmail(emailAddr)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrEmailNotFound
		}
		return apperrors.DatabaseError(err)
	}

	token, err := generateResetToken()
	if err != nil {
		return apperrors.InternalError(err)
	}
	expires := time.Now().Add(resetTokenTTL)

	if err := s.userRepo.SetResetToken(user.UserID, token, expires); err != nil {
		return apperrors.DatabaseError(err)
	}

	resetLink := fmt.Sprintf("%s/reset-password/%s", s.baseURL, token)
	body := fmt.Sprintf("Click the link to reset your password: %s", resetLink)
	if err := s.emailProvider.Send(user.Email, "Password Reset Request", body); err != nil {
		logger.Error("password reset email delivery failed", "user_id", user.UserID, "error", err)
		return apperrors.DeliveryError(err)
	}

	return nil
}

// ValidateResetToken checks that a matching, non-expired token exists.
func (s *AuthServiceImpl) ValidateResetToken(token string) error {
	_, err := s.userRepo.FindByActiveResetToken(token, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenInvalid) {
			return apperrors.ErrInvalidResetToken
		}
		return apperrors.DatabaseError(err)
	}
	return nil
}

// ResetPassword consumes the token: the password hash is replaced and
// both token columns are cleared in one guarded update. A token
// superseded by a newer issue fails here. On success a fresh session
// token is returned so the caller can rotate the cookie.
func (s *AuthServiceImpl) ResetPassword(token, newPassword string) (*dto.SessionResult, error) {
	user, err := s.userRepo.FindByActiveResetToken(token, time.Now())
	if err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenInvalid) {
			return nil, apperrors.ErrInvalidResetToken
		}
		return nil, apperrors.DatabaseError(err)
	}

	if err := auth.ValidatePassword(newPassword); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	if err := s.userRepo.ConsumeResetToken(user.UserID, token, hash); err != nil {
		if apperrors.Is(err, repositories.ErrResetTokenInvalid) {
			return nil, apperrors.ErrInvalidResetToken
		}
		return nil, apperrors.DatabaseError(err)
	}

	sessionToken, err := s.tokens.Issue(user.UserID, string(user.UserType))
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.SessionResult{Token: sessionToken, User: user}, nil
}

// generateResetToken returns 32 cryptographically random bytes as hex.
func generateResetToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
