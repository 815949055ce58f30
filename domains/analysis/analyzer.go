package analysis

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/describe"
	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/ddekshina/ProjectProbe/libs/gitrepo"
	"go.uber.org/zap"
)

var (
	// ErrInvalidURL marks a repository URL no provider accepts.
	ErrInvalidURL = errors.New("invalid repository url")

	// ErrAnalysisFailed replaces any unexpected fault inside the synthesis
	// passes. The original panic is logged, never surfaced.
	ErrAnalysisFailed = errors.New("analysis failed")
)

const (
	structureDepth    = 2
	sampleMaxFiles    = 3
	contributorsLimit = 10
)

// Analyzer runs analyses. All collaborators are injected; only the fetcher
// is mandatory.
type Analyzer struct {
	fetcher   Fetcher
	snapshot  SnapshotFunc
	enhancer  Enhancer
	cache     Cache
	describer *describe.Describer
	l         *zap.Logger
}

func New(l *zap.Logger, fetcher Fetcher, snapshot SnapshotFunc, enhancer Enhancer, cache Cache) *Analyzer {
	return &Analyzer{
		fetcher:   fetcher,
		snapshot:  snapshot,
		enhancer:  enhancer,
		cache:     cache,
		describer: describe.New(l),
		l:         l,
	}
}

// CacheKey normalizes a repository URL to the "owner/repo" cache key.
func CacheKey(repoURL string) (string, error) {
	provider := gitrepo.GetProviderForURL(repoURL, "")
	if provider == nil {
		return "", ErrInvalidURL
	}
	owner, repo := provider.ParseURL(repoURL)
	if owner == "" || repo == "" {
		return "", ErrInvalidURL
	}
	return strings.ToLower(owner + "/" + repo), nil
}

// Analyze produces an AnalysisResult for the repository at repoURL. Only a
// failed metadata fetch or an invalid URL is an error; every other missing
// artifact degrades to its fallback inside the synthesizer.
func (a *Analyzer) Analyze(ctx context.Context, repoURL string) (result *AnalysisResult, err error) {
	if err := gitrepo.ValidateRepoURL(repoURL); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	key, err := CacheKey(repoURL)
	if err != nil {
		return nil, err
	}
	owner, repo := splitKey(key)

	if a.cache != nil {
		if cached, ok := a.cache.Get(ctx, key); ok {
			a.l.Info("analysis served from cache", zap.String("repo", key))
			return cached, nil
		}
	}

	info, err := a.fetcher.RepoInfo(ctx, owner, repo)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch repository info: %w", err)
	}

	// The synthesis passes operate on arbitrary remote text; a fault there
	// must not take down the request.
	defer func() {
		if r := recover(); r != nil {
			a.l.Error("analysis panicked", zap.String("repo", key), zap.Any("panic", r))
			result, err = nil, ErrAnalysisFailed
		}
	}()

	in := describe.Input{
		Repo:   info,
		Readme: a.fetcher.Readme(ctx, owner, repo),
	}

	if structure, err := a.fetcher.FileStructure(ctx, owner, repo, structureDepth); err != nil {
		a.l.Warn("file structure unavailable", zap.String("repo", key), zap.Error(err))
	} else {
		in.Structure = structure
	}
	if languages, err := a.fetcher.Languages(ctx, owner, repo); err != nil {
		a.l.Warn("language stats unavailable", zap.String("repo", key), zap.Error(err))
	} else {
		in.Languages = languages
	}
	if sample, err := a.fetcher.SampleCode(ctx, owner, repo, sampleMaxFiles); err != nil {
		a.l.Warn("sample code unavailable", zap.String("repo", key), zap.Error(err))
	} else {
		in.SampleCode = sample
	}

	var contributors []repos.Contributor
	if list, err := a.fetcher.Contributors(ctx, owner, repo, contributorsLimit); err != nil {
		a.l.Warn("contributors unavailable", zap.String("repo", key), zap.Error(err))
	} else {
		contributors = list
	}

	if a.snapshot != nil {
		if full, err := a.snapshot(ctx, repoURL); err != nil {
			a.l.Warn("codebase snapshot unavailable", zap.String("repo", key), zap.Error(err))
		} else {
			in.FullCode = full
		}
	}

	description := a.describer.Describe(in)
	if a.enhancer != nil {
		description.AIEnhanced = a.enhancer.Enhance(ctx, in)
	}

	result = &AnalysisResult{
		RepoInfo:      info,
		Readme:        in.Readme,
		FileStructure: in.Structure,
		Languages:     in.Languages,
		Contributors:  contributors,
		Description:   description,
		SampleCode:    in.SampleCode,
	}

	if a.cache != nil {
		a.cache.Put(ctx, key, result)
	}
	a.l.Info("analysis complete",
		zap.String("repo", key),
		zap.Bool("enhanced", description.AIEnhanced != nil),
	)
	return result, nil
}

// ClearCache drops every cached result.
func (a *Analyzer) ClearCache(ctx context.Context) error {
	if a.cache == nil {
		return nil
	}
	return a.cache.Clear(ctx)
}

func splitKey(key string) (owner, repo string) {
	parts := strings.SplitN(key, "/", 2)
	return parts[0], parts[1]
}
