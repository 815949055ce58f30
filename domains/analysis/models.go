// Package analysis orchestrates one repository analysis: fetch the
// artifacts, run the description synthesizer, optionally enhance, cache the
// result.
package analysis

import (
	"context"

	"github.com/ddekshina/ProjectProbe/domains/describe"
	"github.com/ddekshina/ProjectProbe/domains/repos"
)

// AnalysisResult is the complete outcome of analyzing one repository.
type AnalysisResult struct {
	RepoInfo      *repos.Info          `json:"repo_info"`
	Readme        string               `json:"readme"`
	FileStructure repos.FileStructure  `json:"file_structure"`
	Languages     repos.LanguageStats  `json:"languages"`
	Contributors  []repos.Contributor  `json:"contributors"`
	Description   describe.Description `json:"description"`
	SampleCode    repos.CodeBundle     `json:"sample_code"`
}

// Fetcher is the repository artifact source. Readme never fails; it returns
// a fallback string instead. The other calls surface platform errors.
type Fetcher interface {
	RepoInfo(ctx context.Context, owner, repo string) (*repos.Info, error)
	Readme(ctx context.Context, owner, repo string) string
	FileStructure(ctx context.Context, owner, repo string, depth int) (repos.FileStructure, error)
	Languages(ctx context.Context, owner, repo string) (repos.LanguageStats, error)
	Contributors(ctx context.Context, owner, repo string, limit int) ([]repos.Contributor, error)
	SampleCode(ctx context.Context, owner, repo string, maxFiles int) (repos.CodeBundle, error)
}

// SnapshotFunc produces the full codebase bundle for a repository URL.
type SnapshotFunc func(ctx context.Context, repoURL string) (repos.CodeBundle, error)

// Enhancer refines a description through an external model. A nil result
// means no enhancement.
type Enhancer interface {
	Enhance(ctx context.Context, in describe.Input) *describe.Enhancement
}

// Cache stores finished results keyed by normalized "owner/repo". Get
// reports a miss with false; Put and Clear are best-effort for remote
// backends.
type Cache interface {
	Get(ctx context.Context, key string) (*AnalysisResult, bool)
	Put(ctx context.Context, key string, result *AnalysisResult)
	Clear(ctx context.Context) error
}
