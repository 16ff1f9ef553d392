package auth

import "github.com/akhhatar/e-voting-project/domain"

// PlaintextPasswordService implements domain.PasswordService.
//
// Passwords are kept verbatim and compared by exact string equality:
// case-sensitive, no trimming, no hashing. This is a known weakness of the
// system and is kept as-is, not silently fixed.
type PlaintextPasswordService struct{}

// NewPasswordService creates a new password service
func NewPasswordService() domain.PasswordService {
	return &PlaintextPasswordService{}
}

// Store implements domain.PasswordService
func (PlaintextPasswordService) Store(password string) (string, error) {
	return password, nil
}

// Verify implements domain.PasswordService
func (PlaintextPasswordService) Verify(stored, supplied string) bool {
	return stored == supplied
}
