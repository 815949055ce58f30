package gitrepo

import (
	"context"
	"fmt"

	"github.com/go-git/go-git/v5"
	"go.uber.org/zap"
)

// Clone performs a shallow clone of a repository to destPath.
func Clone(ctx context.Context, l *zap.Logger, provider Provider, repoURL string, destPath string) (*git.Repository, error) {
	url := provider.NormalizeURL(repoURL)

	l.Info("cloning repository",
		zap.String("provider", provider.Name()),
		zap.String("url", url),
		zap.String("dest", destPath),
	)

	opts := &git.CloneOptions{
		URL:   url,
		Depth: 1, // Shallow clone for efficiency
	}
	if auth := provider.Auth(); auth != nil {
		opts.Auth = auth
	}

	repo, err := git.PlainCloneContext(ctx, destPath, false, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to clone repository: %w", err)
	}
	return repo, nil
}

// CloneWithAutoDetect clones a repository, auto-detecting the provider from
// the URL. The token is optional.
func CloneWithAutoDetect(ctx context.Context, l *zap.Logger, repoURL string, token string, destPath string) (*git.Repository, Provider, error) {
	provider := GetProviderForURL(repoURL, token)
	if provider == nil {
		return nil, nil, fmt.Errorf("unsupported git provider for URL: %s", repoURL)
	}

	repo, err := Clone(ctx, l, provider, repoURL, destPath)
	return repo, provider, err
}

// HeadCommit returns the SHA of the repository HEAD.
func HeadCommit(repo *git.Repository) (string, error) {
	head, err := repo.Head()
	if err != nil {
		return "", fmt.Errorf("failed to get HEAD: %w", err)
	}
	return head.Hash().String(), nil
}

// ValidateRepoURL validates that the URL is supported by a registered provider.
func ValidateRepoURL(url string) error {
	provider := DefaultRegistry.Detect(url)
	if provider == nil {
		return fmt.Errorf("unsupported git provider for URL: %s", url)
	}
	return provider.ValidateURL(url)
}
