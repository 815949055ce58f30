package describe

import (
	"strings"
	"testing"

	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/stretchr/testify/assert"
)

func TestAssessCodeQualityNoContent(t *testing.T) {
	assert.Equal(t, cannotAssessQuality, AssessCodeQuality(nil, nil))

	sentinelOnly := repos.CodeBundle{"main.py": repos.FetchFailedSentinel}
	assert.Equal(t, cannotAssessQuality, AssessCodeQuality(sentinelOnly, nil))
}

func TestAssessCodeQualityNarrativeSections(t *testing.T) {
	sample := repos.CodeBundle{
		"app.py": "# entry point\nimport flask\n\ndef run():\n    pass\n",
	}

	got := AssessCodeQuality(sample, nil)

	assert.True(t, strings.HasPrefix(got, "Code quality assessment:\n\n"))
	assert.Contains(t, got, "- Documentation:")
	assert.Contains(t, got, "- Code readability:")
	assert.Contains(t, got, "- Complexity:")
}

func TestAssessCodeQualityDocumentationTiers(t *testing.T) {
	heavilyCommented := repos.CodeBundle{
		"a.py": "# one\n# two\n# three\ncode()\n",
	}
	got := AssessCodeQuality(heavilyCommented, nil)
	assert.Contains(t, got, "- Documentation: Good")

	bare := repos.CodeBundle{
		"a.py": strings.Repeat("code()\n", 40),
	}
	got = AssessCodeQuality(bare, nil)
	assert.Contains(t, got, "- Documentation: Minimal")
}

func TestAssessCodeQualityLongLines(t *testing.T) {
	long := strings.Repeat("x", 120)
	bundle := repos.CodeBundle{
		"a.py": long + "\n" + long + "\n" + long + "\ncode()\n",
	}

	got := AssessCodeQuality(bundle, nil)

	assert.Contains(t, got, "- Code readability: Could be improved")
}

func TestAssessCodeQualityComplexFunctions(t *testing.T) {
	body := strings.Repeat("    statement()\n", 40)
	bundle := repos.CodeBundle{
		"a.py": "def big():\n" + body,
	}

	got := AssessCodeQuality(bundle, nil)

	assert.Contains(t, got, "- Complexity: Medium (1 potentially complex functions)")
}

func TestAssessCodeQualityTestFilesAndPractices(t *testing.T) {
	sample := repos.CodeBundle{
		"lib.py":      "\"\"\"Module docstring.\"\"\"\ndef f():\n    pass\n",
		"test_lib.py": "def check():\n    pass\n",
	}

	got := AssessCodeQuality(sample, nil)

	assert.Contains(t, got, "- Test files detected: 1")
	assert.Contains(t, got, "Evidence of testing")
	assert.Contains(t, got, "Docstrings in code (1)")
}

func TestAssessCodeQualityPrefersFullBundle(t *testing.T) {
	sample := repos.CodeBundle{"a.py": "# sample only\n"}
	full := repos.CodeBundle{"tests/helper.js": "ok();\n"}

	got := AssessCodeQuality(sample, full)

	// The full bundle wins, so its tests/ file is what gets counted.
	assert.Contains(t, got, "- Test files detected: 1")
}
