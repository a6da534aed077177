package service

import (
	"github.com/clerk/clerk-sdk-go/v2"

	"github.com/deppfellow/pokemon-review/internal/config"
)

// AuthService configures the Clerk SDK used to verify session tokens on
// mutating routes.
type AuthService struct {
	enabled bool
}

func NewAuthService(cfg config.AuthConfig) *AuthService {
	if cfg.Enabled {
		clerk.SetKey(cfg.SecretKey)
	}
	return &AuthService{enabled: cfg.Enabled}
}

// Enabled reports whether mutating routes require a bearer token.
func (s *AuthService) Enabled() bool {
	return s.enabled
}
