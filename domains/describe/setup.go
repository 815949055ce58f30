package describe

import (
	"regexp"
	"strings"
)

const noSetupFallback = "No setup instructions found in the README."

// setupSections are tried in order; each captures the run of text following
// its heading until the next heading or the end of the README.
var setupSections = []*regexp.Regexp{
	regexp.MustCompile(`(?:^|\n)#+[ \t]*(?:Installation|Setup|Getting Started)[^\n]*\n((?s).*?)(?:\n#+[ \t]|$)`),
	regexp.MustCompile(`(?:^|\n)#+[ \t]*How to [Ii]nstall[^\n]*\n((?s).*?)(?:\n#+[ \t]|$)`),
	regexp.MustCompile(`(?:^|\n)#+[ \t]*[Uu]sage[^\n]*\n((?s).*?)(?:\n#+[ \t]|$)`),
}

// ExtractSetupInstructions returns the first non-empty setup-like README
// section, or a fixed fallback sentence.
func ExtractSetupInstructions(readme string) string {
	for _, re := range setupSections {
		if m := re.FindStringSubmatch(readme); m != nil {
			if block := strings.TrimSpace(m[1]); block != "" {
				return block
			}
		}
	}
	return noSetupFallback
}
