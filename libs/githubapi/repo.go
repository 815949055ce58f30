package githubapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
	"go.uber.org/zap"
)

// NoReadmeFallback is returned by Readme when the README is missing or
// unreadable.
const NoReadmeFallback = "No README found"

// RepoInfo fetches repository metadata.
func (c *Client) RepoInfo(ctx context.Context, owner, repo string) (*repos.Info, error) {
	var raw struct {
		Name            string  `json:"name"`
		FullName        string  `json:"full_name"`
		Description     *string `json:"description"`
		StargazersCount int     `json:"stargazers_count"`
		ForksCount      int     `json:"forks_count"`
		WatchersCount   int     `json:"watchers_count"`
		Language        *string `json:"language"`
		CreatedAt       string  `json:"created_at"`
		UpdatedAt       string  `json:"updated_at"`
		License         *struct {
			Name string `json:"name"`
		} `json:"license"`
		Topics []string `json:"topics"`
		Owner  struct {
			Login     string `json:"login"`
			AvatarURL string `json:"avatar_url"`
			HTMLURL   string `json:"html_url"`
		} `json:"owner"`
	}

	path := fmt.Sprintf("/repos/%s/%s", owner, repo)
	if err := c.getJSON(ctx, path, &raw); err != nil {
		return nil, err
	}

	info := &repos.Info{
		Name:        raw.Name,
		FullName:    raw.FullName,
		Description: raw.Description,
		Stars:       raw.StargazersCount,
		Forks:       raw.ForksCount,
		Watchers:    raw.WatchersCount,
		Language:    raw.Language,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
		Topics:      raw.Topics,
		Owner: repos.Owner{
			Login:     raw.Owner.Login,
			AvatarURL: raw.Owner.AvatarURL,
			HTMLURL:   raw.Owner.HTMLURL,
		},
	}
	if raw.License != nil {
		info.License = &raw.License.Name
	}
	return info, nil
}

// Readme fetches and decodes the repository README. Any failure yields the
// fallback string, never an error.
func (c *Client) Readme(ctx context.Context, owner, repo string) string {
	var raw struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}

	path := fmt.Sprintf("/repos/%s/%s/readme", owner, repo)
	if err := c.getJSON(ctx, path, &raw); err != nil {
		c.l.Debug("readme fetch failed", zap.Error(err))
		return NoReadmeFallback
	}

	if raw.Encoding != "base64" {
		return NoReadmeFallback
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(raw.Content, "\n", ""))
	if err != nil {
		c.l.Debug("readme decode failed", zap.Error(err))
		return NoReadmeFallback
	}
	return string(decoded)
}

// Languages fetches the language byte-count map.
func (c *Client) Languages(ctx context.Context, owner, repo string) (repos.LanguageStats, error) {
	stats := repos.LanguageStats{}
	path := fmt.Sprintf("/repos/%s/%s/languages", owner, repo)
	if err := c.getJSON(ctx, path, &stats); err != nil {
		return nil, err
	}
	return stats, nil
}

// Contributors fetches up to limit contributors.
func (c *Client) Contributors(ctx context.Context, owner, repo string, limit int) ([]repos.Contributor, error) {
	var list []repos.Contributor
	path := fmt.Sprintf("/repos/%s/%s/contributors?per_page=%d", owner, repo, limit)
	if err := c.getJSON(ctx, path, &list); err != nil {
		return nil, err
	}
	if len(list) > limit {
		list = list[:limit]
	}
	return list, nil
}
