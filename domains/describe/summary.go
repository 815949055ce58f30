package describe

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/repos"
)

// noDescriptionFallback is returned when no usable text exists anywhere.
const noDescriptionFallback = "No description provided."

var (
	paragraphSplitRe   = regexp.MustCompile(`\n\s*\n`)
	leadingDocstringRe = regexp.MustCompile(`^(?:#![^\n]*\n)?\s*(?:"""|''')((?s).*?)(?:"""|''')`)
	leadingBlockRe     = regexp.MustCompile(`^\s*/\*+((?s).*?)\*/`)
)

// Summarize builds the project summary. The platform description wins when
// present; otherwise the first substantial README paragraph; when the result
// is still short, a leading documentation comment from an important file is
// used instead. Star/fork counts are appended when positive.
func Summarize(info *repos.Info, readme string, bundle repos.CodeBundle) string {
	base := ""
	if info != nil && info.Description != nil {
		base = strings.TrimSpace(*info.Description)
	}

	if base == "" && readme != "" {
		base = firstReadmeParagraph(readme)
	}

	if len(base) < minSummaryLength {
		if doc := leadingDocComment(bundle); doc != "" {
			base = doc + " (extracted from code)"
		}
	}

	var stats []string
	if info != nil && info.Stars > 0 {
		stats = append(stats, fmt.Sprintf("%d stars", info.Stars))
	}
	if info != nil && info.Forks > 0 {
		stats = append(stats, fmt.Sprintf("%d forks", info.Forks))
	}
	if len(stats) > 0 {
		clause := fmt.Sprintf("This project has %s.", strings.Join(stats, ", "))
		if base == "" {
			return clause
		}
		return base + " " + clause
	}

	if base == "" {
		return noDescriptionFallback
	}
	return base
}

// firstReadmeParagraph returns the first paragraph that is not a heading,
// contains no image markup, and is longer than 30 characters.
func firstReadmeParagraph(readme string) string {
	for _, p := range paragraphSplitRe.Split(readme, -1) {
		p = strings.TrimSpace(p)
		if strings.HasPrefix(p, "#") {
			continue
		}
		if strings.Contains(p, "![") {
			continue
		}
		if len(p) > minParagraphLength {
			return p
		}
	}
	return ""
}

// leadingDocComment scans the important files for a documentation block at
// the top of the file: a triple-quoted string in script files, a block
// comment in brace-language files. The first block longer than 50 characters
// wins.
func leadingDocComment(bundle repos.CodeBundle) string {
	for _, path := range ImportantFiles(bundle) {
		content := bundle[path]
		var re *regexp.Regexp
		switch {
		case isScriptFile(path):
			re = leadingDocstringRe
		case isWebScriptFile(path) || isBraceFile(path):
			re = leadingBlockRe
		default:
			continue
		}
		m := re.FindStringSubmatch(content)
		if m == nil {
			continue
		}
		doc := strings.TrimSpace(m[1])
		// Drop decoration asterisks common in block comments.
		doc = strings.TrimSpace(strings.TrimLeft(doc, "* \t\n"))
		if len(doc) > minDocCommentLength {
			return doc
		}
	}
	return ""
}

func isBraceFile(path string) bool {
	switch pathExt(path) {
	case "go", "java", "c", "cpp", "cs", "rs", "php", "swift", "kt":
		return true
	}
	return false
}
