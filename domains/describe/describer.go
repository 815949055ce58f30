// Package describe synthesizes a human-readable project description from raw
// repository artifacts. It runs a set of independent text-analysis passes,
// each a pure function of its inputs that degrades to a fixed fallback when
// an input is partial, missing, or malformed. No pass can fail another.
package describe

import (
	"sort"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
	"go.uber.org/zap"
)

// Input bundles everything the passes read. Any field may be zero.
type Input struct {
	Repo       *repos.Info
	Readme     string
	Structure  repos.FileStructure
	Languages  repos.LanguageStats
	SampleCode repos.CodeBundle
	FullCode   repos.CodeBundle
}

// Describer composes the passes into one Description.
type Describer struct {
	l *zap.Logger
}

func New(l *zap.Logger) *Describer {
	if l == nil {
		l = zap.NewNop()
	}
	return &Describer{l: l}
}

// Describe runs every pass over the input and merges the results. Passes run
// sequentially and independently.
func (d *Describer) Describe(in Input) Description {
	bundle := preferredBundle(in.SampleCode, in.FullCode)

	desc := Description{
		Summary:           Summarize(in.Repo, in.Readme, bundle),
		Architecture:      DescribeArchitecture(in.Structure, in.Languages, in.FullCode),
		MainFeatures:      ExtractFeatures(in.Readme, in.SampleCode, in.FullCode),
		Technologies:      IdentifyTechnologies(in.Languages, in.Structure, in.Readme, in.SampleCode, in.FullCode),
		SetupInstructions: ExtractSetupInstructions(in.Readme),
		CodeQuality:       AssessCodeQuality(in.SampleCode, in.FullCode),
	}

	d.l.Debug("description synthesized",
		zap.Int("features", len(desc.MainFeatures)),
		zap.Int("libraries", len(desc.Technologies.Libraries)),
	)
	return desc
}

// preferredBundle returns the full snapshot when it has entries, otherwise
// the legacy sample bundle.
func preferredBundle(sample, full repos.CodeBundle) repos.CodeBundle {
	if len(full) > 0 {
		return full
	}
	return sample
}

// sortedPaths returns bundle keys in lexical order. Bundle iteration must be
// deterministic so that selection and tie-breaks are reproducible.
func sortedPaths(bundle repos.CodeBundle) []string {
	paths := make([]string, 0, len(bundle))
	for p := range bundle {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}

// dedupeFold removes case-insensitive duplicates preserving first-seen
// order, then caps the list.
func dedupeFold(items []string, cap int) []string {
	seen := make(map[string]struct{}, len(items))
	out := make([]string, 0, len(items))
	for _, item := range items {
		key := strings.ToLower(strings.TrimSpace(item))
		if key == "" {
			continue
		}
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, item)
		if len(out) >= cap {
			break
		}
	}
	return out
}

// pathExt returns the lower-cased extension after the last dot, without the
// dot, or "" when the file name has none.
func pathExt(path string) string {
	base := path
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	i := strings.LastIndex(base, ".")
	if i < 0 || i == len(base)-1 {
		return ""
	}
	return strings.ToLower(base[i+1:])
}

func isScriptFile(path string) bool {
	return pathExt(path) == "py"
}

func isWebScriptFile(path string) bool {
	switch pathExt(path) {
	case "js", "jsx", "ts", "tsx":
		return true
	}
	return false
}

// isTestPath applies the test-naming conventions: a test_ file name prefix
// or a tests/ path segment.
func isTestPath(path string) bool {
	base := path
	if i := strings.LastIndex(base, "/"); i >= 0 {
		base = base[i+1:]
	}
	return strings.HasPrefix(base, "test_") ||
		strings.Contains(path, "/tests/") ||
		strings.HasPrefix(path, "tests/")
}
