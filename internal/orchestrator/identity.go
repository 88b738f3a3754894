package orchestrator

import (
	"sort"
	"strings"

	"github.com/go-openapi/spec"
	"github.com/griffnb/core-httpgen/internal/domain"
	"github.com/griffnb/core-httpgen/internal/registry"
)

// deriveIdentity fills the client identity from the configuration, falling
// back to the document title for the name, to the first word of the slugged
// name for the config key and to the security definitions for the
// authentication.
func deriveIdentity(config *Config, doc *spec.Swagger) (registry.Identity, error) {
	name := strings.TrimSpace(config.ClientName)
	if name == "" && doc.Info != nil {
		name = strings.TrimSpace(doc.Info.Title)
	}

	key := strings.TrimSpace(config.ConfigKey)
	if key == "" {
		slug := domain.Slug(name)
		key, _, _ = strings.Cut(slug, "-")
	}

	auth, err := registry.ParseAuthentication(config.Authentication)
	if err != nil {
		return registry.Identity{}, err
	}
	if strings.TrimSpace(config.Authentication) == "" {
		auth = documentAuthentication(doc.SecurityDefinitions)
	}

	identity := registry.Identity{ClientName: name, ConfigKey: key, Authentication: auth}
	if err := identity.Validate(); err != nil {
		return registry.Identity{}, err
	}
	return identity, nil
}

// documentAuthentication maps the first recognized security scheme, by name,
// onto an authentication mode. API keys only count when they travel in the
// Authorization header.
func documentAuthentication(definitions spec.SecurityDefinitions) registry.Authentication {
	names := make([]string, 0, len(definitions))
	for name := range definitions {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		scheme := definitions[name]
		if scheme == nil {
			continue
		}
		switch scheme.Type {
		case "basic":
			return registry.AuthBasic
		case "oauth2":
			return registry.AuthBearer
		case "apiKey":
			if scheme.In == "header" && strings.EqualFold(scheme.Name, "Authorization") {
				return registry.AuthBearer
			}
		}
	}
	return registry.AuthNone
}
