package auth

import (
	"errors"
	"fmt"

	"github.com/yigit/riskwatch/internal/pkg/apperrors"
	"golang.org/x/crypto/bcrypt"
)

const (
	// BcryptCost is the work factor used for stored password hashes
	BcryptCost = 12
	// MaxPasswordBytes is the longest input bcrypt accepts
	MaxPasswordBytes = 72
)

// HashPassword returns a bcrypt hash of password.
// Passwords longer than MaxPasswordBytes fail with apperrors.ErrValidationFailed.
func HashPassword(password string) (string, error) {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), BcryptCost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", fmt.Errorf("%w: password must be at most %d bytes", apperrors.ErrValidationFailed, MaxPasswordBytes)
		}
		return "", err
	}
	return string(bytes), nil
}

// CheckPassword compares a stored hash against a plaintext candidate
func CheckPassword(hashedPassword, password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(hashedPassword), []byte(password))
	return err == nil
}
