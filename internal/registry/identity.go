package registry

import (
	"fmt"
	"strings"

	"github.com/griffnb/core-httpgen/internal/domain"
)

// Authentication is how the generated client authenticates its requests.
type Authentication string

const (
	AuthNone   Authentication = "none"
	AuthBearer Authentication = "bearer"
	AuthBasic  Authentication = "basic"
	AuthDigest Authentication = "digest"
)

// ParseAuthentication validates a raw authentication mode. Empty means none.
func ParseAuthentication(raw string) (Authentication, error) {
	switch auth := Authentication(strings.ToLower(strings.TrimSpace(raw))); auth {
	case "":
		return AuthNone, nil
	case AuthNone, AuthBearer, AuthBasic, AuthDigest:
		return auth, nil
	}
	return "", fmt.Errorf("unknown authentication %q, allowed values: none, bearer, basic, digest", raw)
}

// Identity names the generated client.
type Identity struct {
	ClientName     string         `json:"clientName"`
	ConfigKey      string         `json:"configKey"`
	Authentication Authentication `json:"authentication"`
}

// Validate reports a missing client name or config key.
func (i Identity) Validate() error {
	if strings.TrimSpace(i.ClientName) == "" {
		return fmt.Errorf("%w: client name could not be derived", domain.ErrMissingIdentity)
	}
	if strings.TrimSpace(i.ConfigKey) == "" {
		return fmt.Errorf("%w: config key could not be derived from %q", domain.ErrMissingIdentity, i.ClientName)
	}
	return nil
}

// Identity returns the client identity.
func (s *Service) Identity() Identity {
	return s.identity
}

// ClientName returns the generated client's name.
func (s *Service) ClientName() string {
	return s.identity.ClientName
}

// ConfigKey returns the configuration key the client reads its settings from.
func (s *Service) ConfigKey() string {
	return s.identity.ConfigKey
}

// Authentication returns the client's authentication mode.
func (s *Service) Authentication() Authentication {
	if s.identity.Authentication == "" {
		return AuthNone
	}
	return s.identity.Authentication
}
