package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/totomace/VitaZen-sub000/models"
	"github.com/totomace/VitaZen-sub000/repositories"
	"github.com/totomace/VitaZen-sub000/utils"

	"github.com/google/uuid"
)

const (
	minPasswordLength = 6
	resetCodeLength   = 6
	resetCodeTTL      = 15 * time.Minute
)

type AuthService struct {
	users  *repositories.UserRepository
	mailer Mailer
	secret []byte
	now    func() time.Time
}

func NewAuthService(users *repositories.UserRepository, mailer Mailer, jwtSecret string) *AuthService {
	return &AuthService{users: users, mailer: mailer, secret: []byte(jwtSecret), now: time.Now}
}

func (s *AuthService) Register(ctx context.Context, email, username, password string) (*models.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || !strings.Contains(email, "@") {
		return nil, invalid("email is required")
	}
	if len(password) < minPasswordLength {
		return nil, invalid("password must be at least %d characters", minPasswordLength)
	}
	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repositories.ErrNotFound) {
		return nil, err
	}

	hashed, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}
	username = strings.TrimSpace(username)
	if username == "" {
		username, _, _ = strings.Cut(email, "@")
	}

	user := &models.User{
		UID:       uuid.NewString(),
		Email:     email,
		Username:  username,
		Password:  hashed,
		CreatedAt: s.now(),
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}
	return user, nil
}

// Login checks the credentials, stamps LastLoginAt and returns a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !utils.CheckPasswordHash(password, user.Password) {
		return "", nil, ErrInvalidCredentials
	}

	token, err := utils.GenerateJWT(s.secret, user.UID, user.Email)
	if err != nil {
		return "", nil, err
	}
	now := s.now()
	if err := s.users.TouchLastLogin(ctx, user.UID, now); err != nil {
		return "", nil, err
	}
	user.LastLoginAt = &now
	return token, user, nil
}

// ForgotPassword mails a reset code. Unknown emails succeed silently. Without
// a mailer every email fails alike so the reply reveals nothing about accounts.
func (s *AuthService) ForgotPassword(ctx context.Context, email string) error {
	if s.mailer == nil {
		return ErrUnavailable
	}
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil
		}
		return err
	}

	code, err := utils.GenerateRandomToken(resetCodeLength)
	if err != nil {
		return err
	}
	user.ResetToken = code
	user.ResetTokenExp = s.now().Add(resetCodeTTL)
	if err := s.users.Update(ctx, user); err != nil {
		return err
	}
	return s.mailer.SendResetEmail(ctx, user.Email, code)
}

func (s *AuthService) ResetPassword(ctx context.Context, code, newPassword string) error {
	if len(newPassword) < minPasswordLength {
		return invalid("password must be at least %d characters", minPasswordLength)
	}
	user, err := s.users.GetByResetToken(ctx, strings.ToUpper(strings.TrimSpace(code)))
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return ErrInvalidResetToken
		}
		return err
	}
	if s.now().After(user.ResetTokenExp) {
		return ErrInvalidResetToken
	}

	hashed, err := utils.HashPassword(newPassword)
	if err != nil {
		return err
	}
	user.Password = hashed
	user.ResetToken = ""
	user.ResetTokenExp = time.Time{}
	return s.users.Update(ctx, user)
}
