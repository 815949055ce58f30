package describe

import (
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
)

// extLanguage maps a file extension to a display language name.
var extLanguage = map[string]string{
	"py":    "Python",
	"js":    "JavaScript",
	"jsx":   "JavaScript (React)",
	"ts":    "TypeScript",
	"tsx":   "TypeScript (React)",
	"java":  "Java",
	"c":     "C",
	"cpp":   "C++",
	"cs":    "C#",
	"go":    "Go",
	"rs":    "Rust",
	"rb":    "Ruby",
	"php":   "PHP",
	"swift": "Swift",
	"kt":    "Kotlin",
	"html":  "HTML",
	"css":   "CSS",
}

// MainLanguage identifies the dominant language of a bundle by extension
// frequency over file paths; retrievability of content is irrelevant. Ties
// go to the extension seen first in lexical path order, which keeps the
// result deterministic. Returns "Unknown" when no path carries an
// extension.
func MainLanguage(bundle repos.CodeBundle) string {
	counts := map[string]int{}
	var order []string

	for _, path := range sortedPaths(bundle) {
		ext := pathExt(path)
		if ext == "" {
			continue
		}
		if _, seen := counts[ext]; !seen {
			order = append(order, ext)
		}
		counts[ext]++
	}

	if len(order) == 0 {
		return "Unknown"
	}

	winner := order[0]
	for _, ext := range order[1:] {
		if counts[ext] > counts[winner] {
			winner = ext
		}
	}

	if name, ok := extLanguage[winner]; ok {
		return name
	}
	return capitalize(winner)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
