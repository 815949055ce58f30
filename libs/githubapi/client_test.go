package githubapi

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewWithBaseURL(zap.NewNop(), srv.URL, "test-token")
}

func TestRepoInfo(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/repos/octocat/hello", r.URL.Path)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		fmt.Fprint(w, `{
			"name": "hello",
			"full_name": "octocat/hello",
			"description": "Greets the world",
			"stargazers_count": 42,
			"forks_count": 7,
			"watchers_count": 42,
			"language": "Python",
			"created_at": "2020-01-01T00:00:00Z",
			"updated_at": "2021-01-01T00:00:00Z",
			"license": {"name": "MIT License"},
			"topics": ["demo"],
			"owner": {"login": "octocat", "avatar_url": "a", "html_url": "h"}
		}`)
	}))

	info, err := client.RepoInfo(context.Background(), "octocat", "hello")

	require.NoError(t, err)
	assert.Equal(t, "octocat/hello", info.FullName)
	require.NotNil(t, info.Description)
	assert.Equal(t, "Greets the world", *info.Description)
	assert.Equal(t, 42, info.Stars)
	require.NotNil(t, info.License)
	assert.Equal(t, "MIT License", *info.License)
	assert.Equal(t, "octocat", info.Owner.Login)
}

func TestRepoInfoNotFound(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		fmt.Fprint(w, `{"message": "Not Found"}`)
	}))

	_, err := client.RepoInfo(context.Background(), "octocat", "missing")

	require.Error(t, err)
	assert.True(t, IsNotFound(err))
	assert.Contains(t, err.Error(), "404")
}

func TestIsNotFoundSeesThroughWrapping(t *testing.T) {
	base := &StatusError{StatusCode: http.StatusNotFound, Message: "Not Found"}

	assert.True(t, IsNotFound(base))
	assert.True(t, IsNotFound(fmt.Errorf("failed to fetch repository info: %w", base)))
	assert.False(t, IsNotFound(fmt.Errorf("wrapped: %w", &StatusError{StatusCode: http.StatusForbidden})))
	assert.False(t, IsNotFound(errors.New("network down")))
}

func TestReadmeDecodesBase64(t *testing.T) {
	content := base64.StdEncoding.EncodeToString([]byte("# Hello\n\nWorld.\n"))
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprintf(w, `{"content": "%s", "encoding": "base64"}`, content)
	}))

	got := client.Readme(context.Background(), "octocat", "hello")

	assert.Equal(t, "# Hello\n\nWorld.\n", got)
}

func TestReadmeFallbackOnError(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	assert.Equal(t, NoReadmeFallback, client.Readme(context.Background(), "octocat", "hello"))
}

func TestLanguages(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"Python": 1200, "Shell": 300}`)
	}))

	stats, err := client.Languages(context.Background(), "octocat", "hello")

	require.NoError(t, err)
	assert.Equal(t, repos.LanguageStats{"Python": 1200, "Shell": 300}, stats)
}

func TestContributorsLimit(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "2", r.URL.Query().Get("per_page"))
		fmt.Fprint(w, `[
			{"login": "a", "contributions": 10, "avatar_url": "", "html_url": ""},
			{"login": "b", "contributions": 5, "avatar_url": "", "html_url": ""},
			{"login": "c", "contributions": 1, "avatar_url": "", "html_url": ""}
		]`)
	}))

	list, err := client.Contributors(context.Background(), "octocat", "hello", 2)

	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].Login)
}

func TestFileStructureDepth(t *testing.T) {
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/hello/contents":
			fmt.Fprint(w, `[
				{"name": "src", "path": "src", "type": "dir"},
				{"name": "README.md", "path": "README.md", "type": "file"}
			]`)
		case "/repos/octocat/hello/contents/src":
			fmt.Fprint(w, `[
				{"name": "deep", "path": "src/deep", "type": "dir"},
				{"name": "app.py", "path": "src/app.py", "type": "file"}
			]`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	tree, err := client.FileStructure(context.Background(), "octocat", "hello", 2)

	require.NoError(t, err)
	assert.Equal(t, "README.md", tree["README.md"])

	src, ok := tree["src"].(repos.FileStructure)
	require.True(t, ok)
	assert.Equal(t, "src/app.py", src["app.py"])
	// Depth 2 stops here: the nested dir is present but empty.
	assert.Equal(t, repos.FileStructure{}, src["deep"])
}

func TestSampleCodePriorityAndSentinel(t *testing.T) {
	appContent := base64.StdEncoding.EncodeToString([]byte("print('app')\n"))
	client := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/repos/octocat/hello/contents":
			fmt.Fprint(w, `[
				{"name": "zz.py", "path": "zz.py", "type": "file"},
				{"name": "app.py", "path": "app.py", "type": "file"},
				{"name": "notes.txt", "path": "notes.txt", "type": "file"},
				{"name": "src", "path": "src", "type": "dir"}
			]`)
		case "/repos/octocat/hello/contents/app.py":
			fmt.Fprintf(w, `{"content": "%s", "encoding": "base64"}`, appContent)
		case "/repos/octocat/hello/contents/zz.py":
			w.WriteHeader(http.StatusForbidden)
			fmt.Fprint(w, `{"message": "rate limited"}`)
		default:
			t.Errorf("unexpected path %s", r.URL.Path)
			w.WriteHeader(http.StatusNotFound)
		}
	}))

	bundle, err := client.SampleCode(context.Background(), "octocat", "hello", 3)

	require.NoError(t, err)
	require.Len(t, bundle, 2)
	assert.Equal(t, "print('app')\n", bundle["app.py"])
	assert.Equal(t, repos.FetchFailedSentinel, bundle["zz.py"])
	assert.NotContains(t, bundle, "notes.txt")
	assert.NotContains(t, bundle, "src")
}
