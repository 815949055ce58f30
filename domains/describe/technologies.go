package describe

import (
	"regexp"
	"sort"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
)

// techRule is one (category, keyword, case-sensitivity) entry of the
// detection table. Rules are evaluated in order against explicit traversals
// of the file structure and the full bundle, never against a stringified
// rendering of either.
type techRule struct {
	category      string
	name          string
	keyword       string
	caseSensitive bool
}

const (
	categoryFrameworks = "frameworks"
	categoryLibraries  = "libraries"
	categoryTools      = "tools"
)

var techRules = []techRule{
	{categoryFrameworks, "Django", "django", false},
	{categoryFrameworks, "Flask", "flask", false},
	{categoryFrameworks, "FastAPI", "fastapi", false},
	{categoryFrameworks, "React", "react", true},
	{categoryFrameworks, "Angular", "angular", true},
	{categoryFrameworks, "Vue.js", "vue", true},
	{categoryFrameworks, "Next.js", "next", true},
	{categoryLibraries, "MongoDB", "mongo", false},
	{categoryLibraries, "PostgreSQL", "postgres", false},
	{categoryLibraries, "MySQL", "mysql", false},
	{categoryLibraries, "SQLite", "sqlite", false},
	{categoryTools, "Webpack", "webpack", false},
	{categoryTools, "Vite", "vite", false},
	{categoryTools, "Gulp", "gulp", false},
	{categoryTools, "Jest", "jest", false},
	{categoryTools, "pytest", "pytest", false},
	{categoryTools, "Mocha", "mocha", false},
}

// scriptStdlib is the denylist of standard-library module names excluded
// from script-import detection.
var scriptStdlib = map[string]bool{
	"os": true, "sys": true, "re": true, "json": true,
	"time": true, "math": true, "random": true, "typing": true,
}

var (
	scriptImportRe = regexp.MustCompile(`(?m)^[ \t]*(?:import[ \t]+(\w+)|from[ \t]+(\w+))`)
	moduleRefRe    = regexp.MustCompile(`require\(['"]([^'"]+)['"]\)|from\s+['"]([^'"]+)['"]`)
)

// IdentifyTechnologies builds the four-category technology report. The
// languages category is seeded from the platform language statistics; the
// remaining categories come from the keyword rule table and from import
// scanning of the full and then the sample bundle. Every category is capped
// at 10 entries in first-detected order.
func IdentifyTechnologies(languages repos.LanguageStats, structure repos.FileStructure, _ string, sample, full repos.CodeBundle) TechnologyReport {
	report := TechnologyReport{
		Languages:  []string{},
		Frameworks: []string{},
		Libraries:  []string{},
		Tools:      []string{},
	}

	report.Languages = append(report.Languages, languagesByBytes(languages)...)

	corpus := append(structureStrings(structure), bundleStrings(full)...)
	for _, rule := range techRules {
		if corpusContains(corpus, rule.keyword, rule.caseSensitive) {
			appendToCategory(&report, rule.category, rule.name)
		}
	}

	scanImports(&report, full)
	scanImports(&report, sample)

	report.Languages = dedupeFold(report.Languages, maxTechPerCategory)
	report.Frameworks = dedupeFold(report.Frameworks, maxTechPerCategory)
	report.Libraries = dedupeFold(report.Libraries, maxTechPerCategory)
	report.Tools = dedupeFold(report.Tools, maxTechPerCategory)
	return report
}

// structureStrings flattens the file-structure tree into its key names and
// leaf path strings.
func structureStrings(structure repos.FileStructure) []string {
	var out []string
	var walk func(node repos.FileStructure)
	walk = func(node repos.FileStructure) {
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			out = append(out, k)
			switch v := node[k].(type) {
			case repos.FileStructure:
				walk(v)
			case map[string]any:
				walk(repos.FileStructure(v))
			case string:
				out = append(out, v)
			}
		}
	}
	if structure != nil {
		walk(structure)
	}
	return out
}

// bundleStrings flattens a bundle into its paths and retrievable contents.
func bundleStrings(bundle repos.CodeBundle) []string {
	var out []string
	for _, path := range sortedPaths(bundle) {
		out = append(out, path)
		if bundle.Retrievable(path) {
			out = append(out, bundle[path])
		}
	}
	return out
}

func corpusContains(corpus []string, keyword string, caseSensitive bool) bool {
	if !caseSensitive {
		keyword = strings.ToLower(keyword)
	}
	for _, s := range corpus {
		if !caseSensitive {
			s = strings.ToLower(s)
		}
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// scanImports appends module names referenced by import statements to the
// libraries category: script-style imports minus the standard-library
// denylist, and require/from module references minus relative paths.
func scanImports(report *TechnologyReport, bundle repos.CodeBundle) {
	for _, path := range sortedPaths(bundle) {
		if !bundle.Retrievable(path) {
			continue
		}
		content := bundle[path]

		if isScriptFile(path) {
			for _, m := range scriptImportRe.FindAllStringSubmatch(content, -1) {
				name := m[1]
				if name == "" {
					name = m[2]
				}
				if name == "" || scriptStdlib[name] {
					continue
				}
				appendToCategory(report, categoryLibraries, name)
			}
		}

		if isWebScriptFile(path) {
			for _, m := range moduleRefRe.FindAllStringSubmatch(content, -1) {
				ref := m[1]
				if ref == "" {
					ref = m[2]
				}
				if ref == "" || strings.HasPrefix(ref, ".") {
					continue
				}
				// Strip sub-paths: "lodash/fp" counts as "lodash".
				pkg := ref
				if i := strings.Index(pkg, "/"); i > 0 {
					pkg = pkg[:i]
				}
				appendToCategory(report, categoryLibraries, pkg)
			}
		}
	}
}

func appendToCategory(report *TechnologyReport, category, name string) {
	var list *[]string
	switch category {
	case categoryFrameworks:
		list = &report.Frameworks
	case categoryLibraries:
		list = &report.Libraries
	case categoryTools:
		list = &report.Tools
	default:
		return
	}
	for _, existing := range *list {
		if strings.EqualFold(existing, name) {
			return
		}
	}
	*list = append(*list, name)
}
