package services

import (
	"errors"
	"fmt"

	"github.com/totomace/VitaZen-sub000/repositories"
)

var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidResetToken  = errors.New("invalid or expired token")
	ErrNotFound           = repositories.ErrNotFound
	ErrUnavailable        = errors.New("service not configured")
)

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}
