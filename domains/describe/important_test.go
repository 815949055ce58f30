package describe

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/stretchr/testify/assert"
)

func TestImportantFilesEmptyBundle(t *testing.T) {
	assert.Nil(t, ImportantFiles(nil))
	assert.Nil(t, ImportantFiles(repos.CodeBundle{}))
}

func TestImportantFilesPatternPriority(t *testing.T) {
	bundle := repos.CodeBundle{
		"src/app.py":  "app",
		"main.py":     "entry",
		"settings.py": "cfg",
	}

	got := ImportantFiles(bundle)

	// main.py outranks app.py outranks settings.py regardless of lexical
	// path order.
	assert.Equal(t, []string{"main.py", "src/app.py", "settings.py"}, got[:3])
}

func TestImportantFilesSkipsUnretrievableInPatternPass(t *testing.T) {
	bundle := repos.CodeBundle{
		"main.py": repos.FetchFailedSentinel,
		"app.py":  "real content",
	}

	got := ImportantFiles(bundle)

	assert.NotContains(t, got, "main.py")
	assert.Contains(t, got, "app.py")
}

func TestImportantFilesSourceScriptsPass(t *testing.T) {
	bundle := repos.CodeBundle{
		"src/engine.py":      "e",
		"src/test_engine.py": "t",
		"vendor/dep.py":      "v",
		"cli.py":             "c",
	}

	got := ImportantFiles(bundle)

	assert.Contains(t, got, "src/engine.py")
	assert.Contains(t, got, "cli.py")
	assert.NotContains(t, got, "src/test_engine.py")
	assert.NotContains(t, got, "vendor/dep.py")
}

func TestImportantFilesLargestFilesPass(t *testing.T) {
	bundle := repos.CodeBundle{
		"docs/big.md":   strings.Repeat("a", 300),
		"docs/huge.md":  strings.Repeat("b", 500),
		"docs/tiny.md":  "small",
		"tests/spec.md": strings.Repeat("c", 400),
	}

	got := ImportantFiles(bundle)

	assert.Equal(t, []string{"docs/huge.md", "docs/big.md"}, got)
}

func TestImportantFilesStopsAtFiveAfterPatternPass(t *testing.T) {
	bundle := repos.CodeBundle{
		"main.py":     "1",
		"app.py":      "2",
		"index.js":    "3",
		"server.js":   "4",
		"settings.py": "5",
		"docs/big.md": strings.Repeat("x", 200),
	}

	got := ImportantFiles(bundle)

	assert.Len(t, got, 5)
	assert.NotContains(t, got, "docs/big.md")
}

func TestImportantFilesCapAtTen(t *testing.T) {
	bundle := repos.CodeBundle{}
	for i := 0; i < 15; i++ {
		bundle[fmt.Sprintf("src/mod%02d.py", i)] = "content"
	}

	got := ImportantFiles(bundle)

	assert.Len(t, got, 10)
	assert.Equal(t, "src/mod00.py", got[0])
}
