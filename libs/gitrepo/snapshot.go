package gitrepo

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/ddekshina/ProjectProbe/config"
	"github.com/ddekshina/ProjectProbe/domains/repos"
	"go.uber.org/zap"
)

// Snapshot shallow-clones a repository and reads its text files into a
// bundle keyed by repo-relative path. The walk is depth-first in lexical
// order, so under the configured caps the same repository always yields the
// same bundle. The clone directory is removed before returning.
func Snapshot(ctx context.Context, l *zap.Logger, repoURL string) (repos.CodeBundle, error) {
	if err := os.MkdirAll(config.Snapshot.CloneDir(), 0o755); err != nil {
		return repos.CodeBundle{}, fmt.Errorf("failed to create clone dir: %w", err)
	}
	destPath, err := os.MkdirTemp(config.Snapshot.CloneDir(), "clone-*")
	if err != nil {
		return repos.CodeBundle{}, fmt.Errorf("failed to create clone dir: %w", err)
	}
	defer os.RemoveAll(destPath)

	repo, _, err := CloneWithAutoDetect(ctx, l, repoURL, config.GitHub.Token(), destPath)
	if err != nil {
		return repos.CodeBundle{}, err
	}

	if sha, err := HeadCommit(repo); err == nil {
		l.Debug("snapshot at commit", zap.String("sha", sha))
	}

	bundle, err := readTree(destPath)
	if err != nil {
		return repos.CodeBundle{}, err
	}

	l.Info("codebase snapshot complete",
		zap.String("url", repoURL),
		zap.Int("files", len(bundle)),
	)
	return bundle, nil
}

// readTree collects text files under root into a bundle, applying the
// configured per-file and total size caps. Oversized or undecodable files
// are skipped, not truncated.
func readTree(root string) (repos.CodeBundle, error) {
	var (
		maxFiles     = config.Snapshot.MaxFiles()
		maxFileBytes = config.Snapshot.MaxFileBytes()
		maxTotal     = config.Snapshot.MaxTotalBytes()
	)

	bundle := repos.CodeBundle{}
	var totalBytes int64

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		name := d.Name()
		if d.IsDir() {
			if path != root && (strings.HasPrefix(name, ".") || isSkippedDir(name)) {
				return filepath.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") {
			return nil
		}

		if len(bundle) >= maxFiles {
			return fs.SkipAll
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		relPath = filepath.ToSlash(relPath)
		if !isTextFile(relPath) {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return err
		}
		if info.Size() > maxFileBytes || totalBytes+info.Size() > maxTotal {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if !utf8.Valid(content) {
			return nil
		}

		bundle[relPath] = string(content)
		totalBytes += info.Size()
		return nil
	})
	if err != nil {
		return repos.CodeBundle{}, fmt.Errorf("failed to read clone: %w", err)
	}

	return bundle, nil
}

// isSkippedDir returns true for dependency, build-output and tool-cache
// directories that never describe the project.
func isSkippedDir(name string) bool {
	skipDirs := map[string]bool{
		"node_modules": true,
		"vendor":       true,
		"dist":         true,
		"build":        true,
		"target":       true,
		"__pycache__":  true,
		"coverage":     true,
		"bin":          true,
		"obj":          true,
		"venv":         true,
		"env":          true,
		"deps":         true,
		"_deps":        true,
		"third_party":  true,
		"external":     true,
		"packages":     true,
		"out":          true,
		"output":       true,
	}
	return skipDirs[name]
}

// isTextFile returns true if the file extension marks a code, config or
// documentation file worth including in the snapshot.
func isTextFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))

	textExtensions := map[string]bool{
		".go":      true,
		".py":      true,
		".js":      true,
		".ts":      true,
		".jsx":     true,
		".tsx":     true,
		".rs":      true,
		".java":    true,
		".kt":      true,
		".scala":   true,
		".c":       true,
		".cpp":     true,
		".cc":      true,
		".h":       true,
		".hpp":     true,
		".cs":      true,
		".rb":      true,
		".php":     true,
		".swift":   true,
		".lua":     true,
		".r":       true,
		".jl":      true,
		".ex":      true,
		".exs":     true,
		".erl":     true,
		".clj":     true,
		".hs":      true,
		".ml":      true,
		".dart":    true,
		".elm":     true,
		".vue":     true,
		".svelte":  true,
		".sql":     true,
		".sh":      true,
		".bash":    true,
		".ps1":     true,
		".yaml":    true,
		".yml":     true,
		".toml":    true,
		".json":    true,
		".xml":     true,
		".html":    true,
		".htm":     true,
		".css":     true,
		".scss":    true,
		".less":    true,
		".md":      true,
		".rst":     true,
		".txt":     true,
		".proto":   true,
		".graphql": true,
		".tf":      true,
		".nix":     true,
		".zig":     true,
		".nim":     true,
		".sol":     true,
	}

	return textExtensions[ext]
}
