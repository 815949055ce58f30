package analyses

import (
	"errors"

	"github.com/ddekshina/ProjectProbe/api/web"
	"github.com/ddekshina/ProjectProbe/domains/analysis"
	"github.com/ddekshina/ProjectProbe/libs/githubapi"
	"go.uber.org/zap"
)

// CreateRequest is the request body for analyzing a repository.
type CreateRequest struct {
	URL string `json:"url"`
}

// Create handles POST /v1/analyses.
func Create(c web.Context) error {
	var req CreateRequest
	if err := c.Bind(&req); err != nil {
		return c.BadRequest("invalid request body")
	}
	if req.URL == "" {
		return c.BadRequest("url is required")
	}

	result, err := analyzer.Analyze(c.Request().Context(), req.URL)
	if err != nil {
		return analysisError(c, req.URL, err)
	}

	return c.OK(result)
}

// analysisError maps analyzer errors onto HTTP responses without leaking a
// half-populated result.
func analysisError(c web.Context, url string, err error) error {
	switch {
	case errors.Is(err, analysis.ErrInvalidURL):
		return c.BadRequest("invalid repository url")
	case githubapi.IsNotFound(err):
		return c.NotFound("repository not found")
	case errors.Is(err, analysis.ErrAnalysisFailed):
		c.L.Error("analysis failed", zap.String("url", url), zap.Error(err))
		return c.InternalError("analysis failed")
	default:
		c.L.Error("analysis error", zap.String("url", url), zap.Error(err))
		return c.InternalError("failed to analyze repository")
	}
}
