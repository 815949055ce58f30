package describe

import (
	"regexp"
	"sort"

	"github.com/ddekshina/ProjectProbe/domains/repos"
)

// entryPointPatterns match the files most likely to explain a project: entry
// points, configuration, core logic and workflow modules. Order is priority
// order.
var entryPointPatterns = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|/)main\.py$`),
	regexp.MustCompile(`(?:^|/)app\.py$`),
	regexp.MustCompile(`(?:^|/)index\.js$`),
	regexp.MustCompile(`(?:^|/)server\.js$`),
	regexp.MustCompile(`(?:^|/)main\.js$`),
	regexp.MustCompile(`(?:^|/)App\.jsx?$`),
	regexp.MustCompile(`(?:^|/)index\.html$`),
	regexp.MustCompile(`(?:^|/)settings\.py$`),
	regexp.MustCompile(`(?:^|/)config\.py$`),
	regexp.MustCompile(`(?:^|/)views\.py$`),
	regexp.MustCompile(`(?:^|/)models\.py$`),
	regexp.MustCompile(`(?:^|/)urls\.py$`),
	regexp.MustCompile(`(?:^|/)workflow\.py$`),
}

// ImportantFiles selects up to 10 representative files from a bundle using
// three greedy passes over the same result set: known entry-point/config
// names first, then script files at the root or under src// app/, then the
// largest remaining non-test files. Later passes run only while the set
// holds fewer than 5 entries. Paths are visited in lexical order so the
// selection is deterministic.
func ImportantFiles(bundle repos.CodeBundle) []string {
	if len(bundle) == 0 {
		return nil
	}

	paths := sortedPaths(bundle)
	selected := make([]string, 0, maxImportantFiles)
	picked := make(map[string]bool, maxImportantFiles)

	add := func(path string) bool {
		if picked[path] {
			return len(selected) < maxImportantFiles
		}
		picked[path] = true
		selected = append(selected, path)
		return len(selected) < maxImportantFiles
	}

	// Pass 1: known filenames, in pattern priority order.
	for _, pattern := range entryPointPatterns {
		for _, path := range paths {
			if !bundle.Retrievable(path) {
				continue
			}
			if pattern.MatchString(path) {
				if !add(path) {
					return selected
				}
			}
		}
	}

	if len(selected) >= minImportantFiles {
		return selected
	}

	// Pass 2: scripts at the bundle root or under src//app/, tests excluded.
	for _, path := range paths {
		if picked[path] || isTestPath(path) || !bundle.Retrievable(path) {
			continue
		}
		if !isScriptFile(path) && !isWebScriptFile(path) {
			continue
		}
		if !atRootOrSource(path) {
			continue
		}
		if !add(path) {
			return selected
		}
	}

	if len(selected) >= minImportantFiles {
		return selected
	}

	// Pass 3: remaining non-trivial files, largest first.
	type candidate struct {
		path string
		size int
	}
	var rest []candidate
	for _, path := range paths {
		if picked[path] || isTestPath(path) || !bundle.Retrievable(path) {
			continue
		}
		if len(bundle[path]) > minSubstantialContent {
			rest = append(rest, candidate{path, len(bundle[path])})
		}
	}
	sort.SliceStable(rest, func(i, j int) bool { return rest[i].size > rest[j].size })
	for _, c := range rest {
		if !add(c.path) {
			break
		}
	}

	return selected
}

func atRootOrSource(path string) bool {
	i := -1
	for j := 0; j < len(path); j++ {
		if path[j] == '/' {
			i = j
			break
		}
	}
	if i < 0 {
		return true
	}
	first := path[:i]
	return first == "src" || first == "app"
}
