package analyses

import (
	"github.com/ddekshina/ProjectProbe/api/web"
)

// Get handles GET /v1/analyses/:owner/:repo. The analysis is served from
// cache when present and produced on demand otherwise.
func Get(c web.Context) error {
	owner, repo := c.Param("owner"), c.Param("repo")
	if owner == "" || repo == "" {
		return c.BadRequest("owner and repo are required")
	}

	url := "https://github.com/" + owner + "/" + repo
	result, err := analyzer.Analyze(c.Request().Context(), url)
	if err != nil {
		return analysisError(c, url, err)
	}

	return c.OK(result)
}
