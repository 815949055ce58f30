package health

import (
	"github.com/ddekshina/ProjectProbe/api/web"
	"github.com/ddekshina/ProjectProbe/config"
	"github.com/ddekshina/ProjectProbe/db"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

func Configure(e *echo.Echo, l *zap.Logger) {
	e.GET("/v1/health", web.Wrap(Get, l))
}

// GetResponse is the health check response.
type GetResponse struct {
	Status       string `json:"status"`
	CacheBackend string `json:"cache_backend"`
	Database     string `json:"database,omitempty"`
}

// Get handles GET /v1/health.
func Get(c web.Context) error {
	resp := GetResponse{
		Status:       "ok",
		CacheBackend: config.Cache.Backend(),
	}

	// The database only participates when the postgres backend is active.
	if pool := db.GetPool(); pool != nil {
		resp.Database = "ok"
		if err := pool.Ping(c.Request().Context()); err != nil {
			resp.Database = "error: " + err.Error()
		}
	}

	return c.OK(resp)
}
