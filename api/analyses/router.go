package analyses

import (
	"github.com/ddekshina/ProjectProbe/api/web"
	"github.com/ddekshina/ProjectProbe/domains/analysis"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
)

var analyzer *analysis.Analyzer

func Configure(e *echo.Echo, l *zap.Logger, a *analysis.Analyzer) {
	analyzer = a

	e.POST("/v1/analyses", web.Wrap(Create, l))
	e.GET("/v1/analyses/:owner/:repo", web.Wrap(Get, l))
	e.DELETE("/v1/analyses/cache", web.Wrap(ClearCache, l))
}
