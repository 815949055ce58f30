package cache

import (
	"fmt"

	"github.com/ddekshina/ProjectProbe/config"
	"github.com/ddekshina/ProjectProbe/domains/analysis"
	"go.uber.org/zap"
)

// NewFromConfig builds the configured cache backend.
func NewFromConfig(l *zap.Logger) (analysis.Cache, error) {
	backend := config.Cache.Backend()
	switch backend {
	case "memory":
		return NewMemory(l, config.Cache.Size())
	case "postgres":
		return NewPostgres(l), nil
	default:
		return nil, fmt.Errorf("unknown cache backend %q", backend)
	}
}
