package describe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
)

var (
	// featureBlockRe captures the run of non-blank lines following a
	// "Features" or "What it does" style heading.
	featureBlockRe = regexp.MustCompile(`(?i)(?:^|\n)#+[ \t]*(?:features?|what[ \t]+(?:it|this)[ \t]+(?:do|does)[^\n]*)[ \t]*:?[ \t]*\n+((?:[^\n]+\n?)+)`)

	bulletRe = regexp.MustCompile(`[-*][ \t]+([^\n]+)`)

	// sentenceBulletRe matches bullets that read like feature sentences: a
	// capital letter up to the first period.
	sentenceBulletRe = regexp.MustCompile(`[-*][ \t]+([A-Z][^\n]*?\.)`)

	classDefRe = regexp.MustCompile(`(?m)^[ \t]*class[ \t]+(\w+)`)
	funcDefRe  = regexp.MustCompile(`(?m)^[ \t]*def[ \t]+(\w+)`)
)

// genericFeatures are the last-resort triples keyed on the dominant
// language family.
var genericFeatures = map[string][]string{
	"script": {"Python-based application", "Modular structure", "Command-line interface"},
	"web":    {"JavaScript-based application", "Web interface", "Modern JS architecture"},
	"other":  {"Software application", "Structured codebase", "Developer-friendly"},
}

// ExtractFeatures pulls feature descriptions from the README, falling back
// to code symbols and finally to a generic triple. The result is capped at 7
// with case-insensitive de-duplication.
func ExtractFeatures(readme string, sample, full repos.CodeBundle) []string {
	var features []string

	// Step 1: a dedicated Features section.
	if m := featureBlockRe.FindStringSubmatch(readme); m != nil {
		for _, bullet := range bulletRe.FindAllStringSubmatch(m[1], -1) {
			features = append(features, strings.TrimSpace(bullet[1]))
		}
	}

	// Step 2: sentence-like bullets anywhere in the README.
	if len(features) == 0 {
		for _, bullet := range sentenceBulletRe.FindAllStringSubmatch(readme, -1) {
			features = append(features, strings.TrimSpace(bullet[1]))
			if len(features) >= 5 {
				break
			}
		}
	}

	// Step 3: class and function names from the codebase.
	if len(features) == 0 && len(full) > 0 {
		features = symbolFeatures(full)
	}

	// Step 4: generic fallback keyed on the dominant language.
	if len(features) == 0 {
		features = genericFeatures[languageFamily(MainLanguage(preferredBundle(sample, full)))]
	}

	return dedupeFold(features, maxFeatures)
}

// symbolFeatures derives up to 5 feature strings from class and function
// definitions in non-test script files, classes first. Private and
// test-named symbols are skipped.
func symbolFeatures(bundle repos.CodeBundle) []string {
	var classes, funcs []string
	for _, path := range sortedPaths(bundle) {
		if !isScriptFile(path) || isTestPath(path) || !bundle.Retrievable(path) {
			continue
		}
		content := bundle[path]
		for _, m := range classDefRe.FindAllStringSubmatch(content, -1) {
			if usableSymbol(m[1]) {
				classes = append(classes, fmt.Sprintf("'%s' class", m[1]))
			}
		}
		for _, m := range funcDefRe.FindAllStringSubmatch(content, -1) {
			if usableSymbol(m[1]) {
				funcs = append(funcs, fmt.Sprintf("'%s' functionality", m[1]))
			}
		}
	}

	features := append(classes, funcs...)
	if len(features) > 5 {
		features = features[:5]
	}
	return features
}

func usableSymbol(name string) bool {
	if strings.HasPrefix(name, "_") {
		return false
	}
	lower := strings.ToLower(name)
	return !strings.HasPrefix(lower, "test")
}

func languageFamily(language string) string {
	switch {
	case language == "Python":
		return "script"
	case strings.HasPrefix(language, "JavaScript") || strings.HasPrefix(language, "TypeScript"):
		return "web"
	default:
		return "other"
	}
}
