package enhance

import (
	"fmt"
	"sort"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/describe"
	"github.com/ddekshina/ProjectProbe/domains/repos"
)

// Prompt size caps. The model context is finite and repository content is
// not; everything oversized is truncated, never dropped silently mid-file
// without a marker.
const (
	maxReadmeChars    = 5000
	maxStructureChars = 1000
	maxFileChars      = 10000
	maxCodeChars      = 50000
)

// variant names which prompt was sent, and therefore which response
// structure to expect back.
type variant string

const (
	variantFull   variant = "full"
	variantSimple variant = "simple"
)

// buildPrompt assembles the completion prompt. With a full codebase
// snapshot available it asks for the seven detailed sections; otherwise it
// falls back to the five-section variant over whatever artifacts exist.
func buildPrompt(in describe.Input) (string, variant) {
	var b strings.Builder

	name, description := "unknown", "none"
	if in.Repo != nil {
		name = in.Repo.FullName
		if in.Repo.Description != nil && *in.Repo.Description != "" {
			description = *in.Repo.Description
		}
	}
	fmt.Fprintf(&b, "Analyze the GitHub project %q.\nPlatform description: %s\n\n", name, description)

	if len(in.Languages) > 0 {
		b.WriteString("Languages by bytes:\n")
		for _, lang := range languageNames(in.Languages) {
			fmt.Fprintf(&b, "- %s: %d\n", lang, in.Languages[lang])
		}
		b.WriteString("\n")
	}

	if len(in.Structure) > 0 {
		b.WriteString("File structure:\n")
		b.WriteString(truncate(renderStructure(in.Structure), maxStructureChars))
		b.WriteString("\n")
	}

	if in.Readme != "" {
		b.WriteString("README excerpt:\n")
		b.WriteString(truncate(in.Readme, maxReadmeChars))
		b.WriteString("\n\n")
	}

	if len(in.FullCode) > 0 {
		writeCodeContext(&b, in.FullCode)
		b.WriteString(fullInstructions)
		return b.String(), variantFull
	}

	if len(in.SampleCode) > 0 {
		writeCodeContext(&b, in.SampleCode)
	}
	b.WriteString(simpleInstructions)
	return b.String(), variantSimple
}

const fullInstructions = `Based on all of the above, provide exactly 7 numbered sections:
1. A concise project summary (2-3 sentences)
2. The main features
3. How the project works (workflow)
4. The architecture and code organization
5. Key dependencies and what they are used for
6. An assessment of code quality and maturity
7. How to set up and run the project`

const simpleInstructions = `Based on all of the above, provide exactly 5 numbered sections:
1. A concise project summary (2-3 sentences)
2. The main features
3. The architecture and code organization
4. Typical use cases
5. A brief technical assessment`

// writeCodeContext appends up to 10 important files, each truncated to the
// per-file cap, stopping at the total code budget.
func writeCodeContext(b *strings.Builder, bundle repos.CodeBundle) {
	b.WriteString("Selected source files:\n\n")

	written := 0
	for _, path := range describe.ImportantFiles(bundle) {
		if written >= maxCodeChars {
			break
		}
		content := truncate(bundle[path], maxFileChars)
		if written+len(content) > maxCodeChars {
			content = truncate(content, maxCodeChars-written)
		}
		fmt.Fprintf(b, "--- %s ---\n%s\n\n", path, content)
		written += len(content)
	}
}

// renderStructure prints the shallow tree with two-space indentation, keys
// sorted so the rendering is stable.
func renderStructure(structure repos.FileStructure) string {
	var b strings.Builder
	var walk func(node repos.FileStructure, indent string)
	walk = func(node repos.FileStructure, indent string) {
		keys := make([]string, 0, len(node))
		for k := range node {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			b.WriteString(indent)
			b.WriteString(k)
			b.WriteString("\n")
			switch v := node[k].(type) {
			case repos.FileStructure:
				walk(v, indent+"  ")
			case map[string]any:
				walk(repos.FileStructure(v), indent+"  ")
			}
		}
	}
	walk(structure, "")
	return b.String()
}

func languageNames(languages repos.LanguageStats) []string {
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

func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	if len(s) <= max {
		return s
	}
	return s[:max]
}
