package githubapi

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/url"
	"sort"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
	"go.uber.org/zap"
)

// contentEntry is one item from the contents listing endpoint.
type contentEntry struct {
	Name string `json:"name"`
	Path string `json:"path"`
	Type string `json:"type"` // "file" or "dir"
}

// samplePriority lists the root files most worth sampling, in order.
var samplePriority = []string{
	"main.py", "app.py", "index.js", "server.js", "main.js", "App.js", "index.html",
}

// sampleExtensions is the fallback extension set for sample selection.
var sampleExtensions = []string{".py", ".js", ".ts", ".java", ".go", ".rb", ".php", ".html"}

// FileStructure fetches the repository tree truncated at the given depth.
// Directories map to nested trees, files map to their repository path.
func (c *Client) FileStructure(ctx context.Context, owner, repo string, depth int) (repos.FileStructure, error) {
	return c.listTree(ctx, owner, repo, "", depth)
}

func (c *Client) listTree(ctx context.Context, owner, repo, dir string, depth int) (repos.FileStructure, error) {
	entries, err := c.listContents(ctx, owner, repo, dir)
	if err != nil {
		return nil, err
	}

	tree := repos.FileStructure{}
	for _, e := range entries {
		switch e.Type {
		case "dir":
			if depth > 1 {
				sub, err := c.listTree(ctx, owner, repo, e.Path, depth-1)
				if err != nil {
					// A missing subtree is shape detail we can live without.
					c.l.Debug("subtree listing failed",
						zap.String("path", e.Path), zap.Error(err))
					sub = repos.FileStructure{}
				}
				tree[e.Name] = sub
			} else {
				tree[e.Name] = repos.FileStructure{}
			}
		default:
			tree[e.Name] = e.Path
		}
	}
	return tree, nil
}

func (c *Client) listContents(ctx context.Context, owner, repo, dir string) ([]contentEntry, error) {
	path := fmt.Sprintf("/repos/%s/%s/contents", owner, repo)
	if dir != "" {
		path += "/" + url.PathEscape(dir)
	}
	var entries []contentEntry
	if err := c.getJSON(ctx, path, &entries); err != nil {
		return nil, err
	}
	return entries, nil
}

// SampleCode selects up to maxFiles files from the repository root listing,
// by the fixed priority names first and then by extension, and fetches their
// contents. A file whose fetch fails is kept with the failure sentinel so
// downstream passes still see its path.
func (c *Client) SampleCode(ctx context.Context, owner, repo string, maxFiles int) (repos.CodeBundle, error) {
	entries, err := c.listContents(ctx, owner, repo, "")
	if err != nil {
		return nil, err
	}

	rootFiles := map[string]bool{}
	var names []string
	for _, e := range entries {
		if e.Type == "file" {
			rootFiles[e.Name] = true
			names = append(names, e.Name)
		}
	}
	sort.Strings(names)

	var selected []string
	for _, name := range samplePriority {
		if len(selected) >= maxFiles {
			break
		}
		if rootFiles[name] {
			selected = append(selected, name)
			rootFiles[name] = false
		}
	}
	for _, name := range names {
		if len(selected) >= maxFiles {
			break
		}
		if rootFiles[name] && hasSampleExtension(name) {
			selected = append(selected, name)
			rootFiles[name] = false
		}
	}

	bundle := repos.CodeBundle{}
	for _, name := range selected {
		content, err := c.fileContent(ctx, owner, repo, name)
		if err != nil {
			c.l.Debug("sample fetch failed", zap.String("file", name), zap.Error(err))
			bundle[name] = repos.FetchFailedSentinel
			continue
		}
		bundle[name] = content
	}
	return bundle, nil
}

func (c *Client) fileContent(ctx context.Context, owner, repo, path string) (string, error) {
	var raw struct {
		Content  string `json:"content"`
		Encoding string `json:"encoding"`
	}
	apiPath := fmt.Sprintf("/repos/%s/%s/contents/%s", owner, repo, url.PathEscape(path))
	if err := c.getJSON(ctx, apiPath, &raw); err != nil {
		return "", err
	}
	if raw.Encoding != "base64" {
		return "", fmt.Errorf("unexpected content encoding %q", raw.Encoding)
	}
	decoded, err := base64.StdEncoding.DecodeString(strings.ReplaceAll(raw.Content, "\n", ""))
	if err != nil {
		return "", fmt.Errorf("failed to decode content: %w", err)
	}
	return string(decoded), nil
}

func hasSampleExtension(name string) bool {
	for _, ext := range sampleExtensions {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}
