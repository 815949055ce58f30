package describe

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
)

// structureNote is one boolean check against the top-level structure keys.
// Notes are appended in table order, not importance order.
type structureNote struct {
	keys     []string
	allOf    bool
	sentence string
}

var structureNotes = []structureNote{
	{keys: []string{"src", "app"}, sentence: "- This project follows a structured development approach with separated source code.\n"},
	{keys: []string{"tests", "test"}, sentence: "- The project includes tests, suggesting a focus on code quality and reliability.\n"},
	{keys: []string{"docs"}, sentence: "- Documentation is separated into its own directory, indicating good project organization.\n"},
	{keys: []string{"package.json"}, sentence: "- This is a Node.js project using npm or yarn for package management.\n"},
	{keys: []string{"requirements.txt", "Pipfile"}, sentence: "- This is a Python project with dependency management.\n"},
	{keys: []string{"docker-compose.yml", "Dockerfile"}, sentence: "- The project uses Docker for containerization.\n"},
	{keys: []string{"public", "src"}, allOf: true, sentence: "- This appears to be a frontend application with separated public assets.\n"},
}

// patternGroup reports its name once when any of its regexes matches any
// file path or any retrievable file content. Content matching is
// case-insensitive; path matching is case-sensitive unless the expression
// itself relaxes it.
type patternGroup struct {
	name     string
	paths    []*regexp.Regexp
	contents []*regexp.Regexp
}

var patternGroups = []patternGroup{
	{
		name: "Flask",
		contents: []*regexp.Regexp{
			regexp.MustCompile(`(?i)@(?:app|blueprint)\.route\(`),
			regexp.MustCompile(`(?i)from\s+flask\s+import`),
		},
	},
	{
		name:  "Django",
		paths: []*regexp.Regexp{regexp.MustCompile(`(?:^|/)manage\.py$`)},
		contents: []*regexp.Regexp{
			regexp.MustCompile(`(?i)from\s+django`),
			regexp.MustCompile(`(?i)\burlpatterns\b`),
		},
	},
	{
		name: "FastAPI",
		contents: []*regexp.Regexp{
			regexp.MustCompile(`(?i)from\s+fastapi\s+import`),
			regexp.MustCompile(`(?i)@(?:app|router)\.(?:get|post|put|delete)\(`),
		},
	},
	{
		name:  "React",
		paths: []*regexp.Regexp{regexp.MustCompile(`\.jsx$`), regexp.MustCompile(`\.tsx$`)},
		contents: []*regexp.Regexp{
			regexp.MustCompile(`(?i)import\s+React`),
			regexp.MustCompile(`(?i)from\s+['"]react['"]`),
			regexp.MustCompile(`(?i)\buse(?:State|Effect|Context)\(`),
		},
	},
	{
		name: "Express",
		contents: []*regexp.Regexp{
			regexp.MustCompile(`(?i)require\(['"]express['"]\)`),
			regexp.MustCompile(`(?i)from\s+['"]express['"]`),
		},
	},
	{
		name:  "Microservices",
		paths: []*regexp.Regexp{regexp.MustCompile(`(?i)(?:^|/)services?/`)},
		contents: []*regexp.Regexp{
			regexp.MustCompile(`(?i)\b(?:kafka|rabbitmq|grpc|microservice)\b`),
		},
	},
}

// DescribeArchitecture builds the architecture narrative from independent
// checks: top-level structure notes, detected pattern groups, the language
// distribution, and a file-extension histogram.
func DescribeArchitecture(structure repos.FileStructure, languages repos.LanguageStats, bundle repos.CodeBundle) string {
	var b strings.Builder
	b.WriteString("Project structure analysis:\n\n")

	for _, note := range structureNotes {
		if matchesStructure(structure, note) {
			b.WriteString(note.sentence)
		}
	}

	if len(bundle) > 0 {
		if groups := detectPatternGroups(bundle); len(groups) > 0 {
			b.WriteString("\nDetected patterns:\n")
			for _, g := range groups {
				fmt.Fprintf(&b, "- %s\n", g)
			}
		}
	}

	if len(languages) > 0 {
		var total int64
		for _, n := range languages {
			total += n
		}
		if total > 0 {
			b.WriteString("\nLanguage distribution:\n")
			for _, lang := range languagesByBytes(languages) {
				pct := float64(languages[lang]) / float64(total) * 100
				fmt.Fprintf(&b, "- %s: %.1f%%\n", lang, pct)
			}
		}
	}

	if len(bundle) > 0 {
		if hist := extensionHistogram(bundle); len(hist) > 0 {
			b.WriteString("\nFile types:\n")
			for _, e := range hist {
				fmt.Fprintf(&b, "- .%s: %d file(s)\n", e.ext, e.count)
			}
		}
	}

	return b.String()
}

func matchesStructure(structure repos.FileStructure, note structureNote) bool {
	if len(structure) == 0 {
		return false
	}
	if note.allOf {
		for _, key := range note.keys {
			if _, ok := structure[key]; !ok {
				return false
			}
		}
		return true
	}
	for _, key := range note.keys {
		if _, ok := structure[key]; ok {
			return true
		}
	}
	return false
}

// detectPatternGroups returns matched group names in table order.
func detectPatternGroups(bundle repos.CodeBundle) []string {
	paths := sortedPaths(bundle)

	var matched []string
	for _, group := range patternGroups {
		if groupMatches(group, bundle, paths) {
			matched = append(matched, group.name)
		}
	}
	return matched
}

func groupMatches(group patternGroup, bundle repos.CodeBundle, paths []string) bool {
	for _, re := range group.paths {
		for _, path := range paths {
			if re.MatchString(path) {
				return true
			}
		}
	}
	for _, re := range group.contents {
		for _, path := range paths {
			if !bundle.Retrievable(path) {
				continue
			}
			if re.MatchString(bundle[path]) {
				return true
			}
		}
	}
	return false
}

// languagesByBytes orders language names by byte count descending, ties
// broken alphabetically.
func languagesByBytes(languages repos.LanguageStats) []string {
	names := make([]string, 0, len(languages))
	for name := range languages {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		if languages[names[i]] != languages[names[j]] {
			return languages[names[i]] > languages[names[j]]
		}
		return names[i] < names[j]
	})
	return names
}

type extCount struct {
	ext   string
	count int
}

// extensionHistogram counts file extensions in the bundle and returns the
// top 10 by count descending, ties broken alphabetically.
func extensionHistogram(bundle repos.CodeBundle) []extCount {
	counts := map[string]int{}
	for path := range bundle {
		if ext := pathExt(path); ext != "" {
			counts[ext]++
		}
	}

	hist := make([]extCount, 0, len(counts))
	for ext, n := range counts {
		hist = append(hist, extCount{ext, n})
	}
	sort.Slice(hist, func(i, j int) bool {
		if hist[i].count != hist[j].count {
			return hist[i].count > hist[j].count
		}
		return hist[i].ext < hist[j].ext
	})
	if len(hist) > 10 {
		hist = hist[:10]
	}
	return hist
}
