package service

import (
	"context"
	"crypto/subtle"

	"github.com/integra/health-sport-site/internal/core/domain"
	"github.com/integra/health-sport-site/internal/core/ports"
)

// AuthService matches login attempts against the single configured admin
// account. Credentials are plain strings compared for equality.
type AuthService struct {
	user string
	pass string
}

func NewAuthService(user, pass string) *AuthService {
	return &AuthService{user: user, pass: pass}
}

// Enabled reports whether both admin credentials are configured.
func (s *AuthService) Enabled() bool {
	return s.user != "" && s.pass != ""
}

func (s *AuthService) Login(_ context.Context, user, pass string) error {
	if !s.Enabled() {
		return domain.ErrAdminDisabled
	}
	userOK := subtle.ConstantTimeCompare([]byte(user), []byte(s.user)) == 1
	passOK := subtle.ConstantTimeCompare([]byte(pass), []byte(s.pass)) == 1
	if !userOK || !passOK {
		return domain.ErrInvalidCredentials
	}
	return nil
}

var _ ports.AuthService = (*AuthService)(nil)
