package describe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
)

const cannotAssessQuality = "Could not assess code quality due to limited access to code files."

var (
	docstringRe = regexp.MustCompile(`(?s)""".*?"""`)

	// Function bodies are approximated by their indented (script) or braced
	// (web script) run of lines; anything spanning more than 30 lines counts
	// as complex.
	scriptFuncRe = regexp.MustCompile(`def\s+\w+\([^)]*\):\s*\n((?:[ \t]+[^\n]*\n)+)`)
	braceFuncRe  = regexp.MustCompile(`function\s*\w*\s*\([^)]*\)\s*\{((?:[^\n]*\n)+?)\}`)
	arrowFuncRe  = regexp.MustCompile(`=>\s*\{((?:[^\n]*\n)+?)\}`)
)

// AssessCodeQuality derives a quality narrative from simple per-line
// heuristics over the preferred bundle: comment density, long lines,
// oversized function bodies, docstrings, and test-file presence.
func AssessCodeQuality(sample, full repos.CodeBundle) string {
	bundle := preferredBundle(sample, full)
	if !bundle.HasContent() {
		return cannotAssessQuality
	}

	var (
		totalLines       int
		commentLines     int
		longLines        int
		complexFunctions int
		docstrings       int
		testFiles        int
	)

	for _, path := range sortedPaths(bundle) {
		if !bundle.Retrievable(path) {
			continue
		}
		content := bundle[path]
		lines := strings.Split(content, "\n")
		totalLines += len(lines)

		for _, line := range lines {
			trimmed := strings.TrimSpace(line)
			if strings.HasPrefix(trimmed, "#") || strings.HasPrefix(trimmed, "//") || strings.HasPrefix(trimmed, "/*") {
				commentLines++
			}
			if len(line) > longLineThreshold {
				longLines++
			}
		}

		lowerPath := strings.ToLower(path)
		if strings.Contains(lowerPath, "test") || strings.Contains(lowerPath, "spec") {
			testFiles++
		}

		switch pathExt(path) {
		case "py":
			docstrings += len(docstringRe.FindAllString(content, -1))
			complexFunctions += countComplexBodies(scriptFuncRe, content)
		case "js", "jsx", "ts":
			complexFunctions += countComplexBodies(braceFuncRe, content)
			complexFunctions += countComplexBodies(arrowFuncRe, content)
		}
	}

	var b strings.Builder
	b.WriteString("Code quality assessment:\n\n")

	if totalLines > 0 {
		commentRatio := float64(commentLines) / float64(totalLines) * 100
		longRatio := float64(longLines) / float64(totalLines) * 100

		fmt.Fprintf(&b, "- Documentation: %s (%.1f%% comment lines)\n",
			tier(commentRatio > 15, "Good", commentRatio > 5, "Average", "Minimal"), commentRatio)
		fmt.Fprintf(&b, "- Code readability: %s (%.1f%% long lines)\n",
			tier(longRatio < 5, "Good", longRatio < 15, "Average", "Could be improved"), longRatio)
		fmt.Fprintf(&b, "- Complexity: %s (%d potentially complex functions)\n",
			tier(complexFunctions == 0, "Low", complexFunctions < 3, "Medium", "High"), complexFunctions)
	} else {
		b.WriteString("- Insufficient code available for quality assessment\n")
	}

	if testFiles > 0 {
		fmt.Fprintf(&b, "- Test files detected: %d\n", testFiles)
	}

	if practices := goodPractices(bundle, testFiles, docstrings); len(practices) > 0 {
		b.WriteString("- Good practices observed: " + strings.Join(practices, ", ") + "\n")
	}

	return b.String()
}

func tier(first bool, firstLabel string, second bool, secondLabel, thirdLabel string) string {
	switch {
	case first:
		return firstLabel
	case second:
		return secondLabel
	default:
		return thirdLabel
	}
}

func countComplexBodies(re *regexp.Regexp, content string) int {
	count := 0
	for _, m := range re.FindAllStringSubmatch(content, -1) {
		if strings.Count(m[1], "\n") > complexBodyLines {
			count++
		}
	}
	return count
}

// goodPractices collects evidence of testing, docstrings, type annotations
// and exception handling from the rendered bundle text.
func goodPractices(bundle repos.CodeBundle, testFiles, docstrings int) []string {
	var raw strings.Builder
	for _, path := range sortedPaths(bundle) {
		raw.WriteString(path)
		raw.WriteString("\n")
		if bundle.Retrievable(path) {
			raw.WriteString(bundle[path])
			raw.WriteString("\n")
		}
	}
	rendered := raw.String()
	lower := strings.ToLower(rendered)

	var practices []string
	if testFiles > 0 {
		practices = append(practices, "Evidence of testing")
	}
	if docstrings > 0 {
		practices = append(practices, fmt.Sprintf("Docstrings in code (%d)", docstrings))
	}
	if strings.Contains(lower, "type") && (strings.Contains(rendered, ":") || strings.Contains(rendered, "TypeScript")) {
		practices = append(practices, "Type annotations")
	}
	if strings.Contains(lower, "exception") || strings.Contains(lower, "try") {
		practices = append(practices, "Exception handling")
	}
	return practices
}
