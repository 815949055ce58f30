package analyses

import (
	"github.com/ddekshina/ProjectProbe/api/web"
	"go.uber.org/zap"
)

// ClearCache handles DELETE /v1/analyses/cache.
func ClearCache(c web.Context) error {
	if err := analyzer.ClearCache(c.Request().Context()); err != nil {
		c.L.Error("failed to clear cache", zap.Error(err))
		return c.InternalError("failed to clear cache")
	}

	c.L.Info("analysis cache cleared")
	return c.NoContent()
}
