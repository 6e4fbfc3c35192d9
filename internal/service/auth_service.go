package service

import (
	"context"
	"errors"
	"strings"

	"linkhub/internal/apperr"
	"linkhub/internal/logger"
	"linkhub/internal/models"
	"linkhub/internal/repository"
)

const (
	MsgCredentialsRequired = "Username and password are required"
	MsgInvalidCredentials  = "Invalid credentials"
	MsgNoToken             = "Unauthorized: No token provided"
	MsgInvalidToken        = "Unauthorized: Invalid token"
	MsgAdminRequired       = "Forbidden: Admin access required"
	MsgPasswordFields      = "Current and new password are required"
	MsgPasswordTooShort    = "New password must be at least 6 characters"
	MsgWrongPassword       = "Current password is incorrect"
	MsgUserNotFound        = "User not found"
	MsgUsernameTaken       = "Username already exists"
)

const bearerPrefix = "Bearer "

// LoginResult is returned on successful sign-in.
type LoginResult struct {
	Token string            `json:"token"`
	User  models.PublicUser `json:"user"`
}

// AuthService verifies credentials and gates protected operations.
type AuthService struct {
	users  repository.Authorization
	tokens *TokenService
	log    *logger.Logger
}

func NewAuthService(users repository.Authorization, tokens *TokenService, log *logger.Logger) *AuthService {
	if log == nil {
		log = logger.Nop()
	}
	return &AuthService{users: users, tokens: tokens, log: log}
}

// Login checks username/password and issues a token. Unknown users and
// wrong passwords produce the same error.
func (s *AuthService) Login(ctx context.Context, username, password string) (*LoginResult, error) {
	if strings.TrimSpace(username) == "" || strings.TrimSpace(password) == "" {
		return nil, apperr.Validation(MsgCredentialsRequired)
	}

	u, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		return nil, apperr.Internal(err, "load user")
	}
	if u == nil {
		VerifyPassword(password, dummyHash())
		s.log.Infow("auth_login_failed", "username", username, "reason", "unknown_user")
		return nil, apperr.Unauthorized(MsgInvalidCredentials)
	}
	if !VerifyPassword(password, u.PasswordHash) {
		s.log.Infow("auth_login_failed", "username", username, "reason", "bad_password")
		return nil, apperr.Unauthorized(MsgInvalidCredentials)
	}

	pub := u.Public()
	token, err := s.tokens.Issue(pub)
	if err != nil {
		return nil, apperr.Internal(err, "issue token")
	}
	s.log.Infow("auth_login_succeeded", "user_id", u.ID)
	return &LoginResult{Token: token, User: pub}, nil
}

// Authenticate extracts and validates the bearer token of an Authorization
// header value.
func (s *AuthService) Authenticate(header string) (*Claims, error) {
	if !strings.HasPrefix(header, bearerPrefix) {
		return nil, apperr.Unauthorized(MsgNoToken)
	}
	raw := strings.TrimSpace(header[len(bearerPrefix):])
	if raw == "" {
		return nil, apperr.Unauthorized(MsgNoToken)
	}
	claims, err := s.tokens.Validate(raw)
	if err != nil {
		s.log.Debugw("auth_token_rejected", "error", err)
		return nil, apperr.Unauthorized(MsgInvalidToken)
	}
	return claims, nil
}

// RequireAdmin admits admin claims only. Nil claims mean authentication was
// skipped and are reported as such.
func (s *AuthService) RequireAdmin(claims *Claims) error {
	if claims == nil {
		return apperr.Unauthorized(MsgNoToken)
	}
	if !claims.IsAdmin {
		return apperr.Forbidden(MsgAdminRequired)
	}
	return nil
}

// AuthorizeAdmin is Authenticate followed by RequireAdmin.
func (s *AuthService) AuthorizeAdmin(header string) (*Claims, error) {
	claims, err := s.Authenticate(header)
	if err != nil {
		return nil, err
	}
	if err := s.RequireAdmin(claims); err != nil {
		return nil, err
	}
	return claims, nil
}

// ChangePassword replaces the password of userID after verifying current.
func (s *AuthService) ChangePassword(ctx context.Context, userID int64, current, next string) error {
	if strings.TrimSpace(current) == "" || strings.TrimSpace(next) == "" {
		return apperr.Validation(MsgPasswordFields)
	}
	if len(next) < MinPasswordLength {
		return apperr.Validation(MsgPasswordTooShort)
	}

	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return apperr.Internal(err, "load user")
	}
	if u == nil {
		return apperr.NotFound(MsgUserNotFound)
	}
	if !VerifyPassword(current, u.PasswordHash) {
		return apperr.Unauthorized(MsgWrongPassword)
	}

	hash, err := HashPassword(next)
	if err != nil {
		return apperr.Internal(err, "hash password")
	}
	if err := s.users.UpdatePasswordHash(ctx, userID, hash); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return apperr.NotFound(MsgUserNotFound)
		}
		return apperr.Internal(err, "update password")
	}
	s.log.Infow("auth_password_changed", "user_id", userID)
	return nil
}

// CreateUser provisions an account. Used by the CLI, never by HTTP.
func (s *AuthService) CreateUser(ctx context.Context, username, password string, isAdmin bool) (*models.User, error) {
	username = strings.TrimSpace(username)
	if username == "" || strings.TrimSpace(password) == "" {
		return nil, apperr.Validation(MsgCredentialsRequired)
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, apperr.Internal(err, "hash password")
	}
	u := &models.User{Username: username, PasswordHash: hash, IsAdmin: isAdmin}
	if _, err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, apperr.Conflict(MsgUsernameTaken)
		}
		return nil, apperr.Internal(err, "create user")
	}
	return u, nil
}
