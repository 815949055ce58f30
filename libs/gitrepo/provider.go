package gitrepo

import (
	"github.com/go-git/go-git/v5/plumbing/transport"
)

// Provider defines the interface for git hosting services.
type Provider interface {
	// Name returns the provider name (e.g., "github")
	Name() string

	// NormalizeURL converts various URL formats to a standard clone URL
	NormalizeURL(url string) string

	// ParseURL extracts owner and repository name from a URL
	ParseURL(url string) (owner, repo string)

	// ValidateURL checks if the URL is valid for this provider
	ValidateURL(url string) error

	// Auth returns the authentication method for this provider (nil if no auth)
	Auth() transport.AuthMethod

	// MatchesURL returns true if the URL belongs to this provider
	MatchesURL(url string) bool
}

// Registry holds registered providers and allows auto-detection.
type Registry struct {
	providers []Provider
}

func NewRegistry() *Registry {
	return &Registry{providers: make([]Provider, 0)}
}

// Register adds a provider to the registry.
func (r *Registry) Register(p Provider) {
	r.providers = append(r.providers, p)
}

// Detect finds the appropriate provider for a given URL.
func (r *Registry) Detect(url string) Provider {
	for _, p := range r.providers {
		if p.MatchesURL(url) {
			return p
		}
	}
	return nil
}

// DefaultRegistry is the global provider registry. Providers are registered
// without authentication; use GetProviderForURL for authenticated access.
var DefaultRegistry = NewRegistry()

func init() {
	DefaultRegistry.Register(NewGitHubProvider(""))
}

// GetProviderForURL returns a provider for the given URL with an optional
// token.
func GetProviderForURL(url string, token string) Provider {
	base := DefaultRegistry.Detect(url)
	if base == nil {
		return nil
	}
	if token == "" {
		return base
	}

	switch base.Name() {
	case "github":
		return NewGitHubProvider(token)
	default:
		return base
	}
}
