package enhance

import (
	"strings"
	"testing"

	"github.com/ddekshina/ProjectProbe/domains/describe"
	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/stretchr/testify/assert"
)

func TestBuildPromptFullVariant(t *testing.T) {
	desc := "Demo project"
	in := describe.Input{
		Repo:      &repos.Info{FullName: "octocat/demo", Description: &desc},
		Readme:    "# Demo\n\nA demo project.\n",
		Languages: repos.LanguageStats{"Python": 1000},
		FullCode:  repos.CodeBundle{"main.py": "print('hi')\n"},
	}

	prompt, v := buildPrompt(in)

	assert.Equal(t, variantFull, v)
	assert.Contains(t, prompt, `"octocat/demo"`)
	assert.Contains(t, prompt, "Platform description: Demo project")
	assert.Contains(t, prompt, "- Python: 1000")
	assert.Contains(t, prompt, "--- main.py ---")
	assert.Contains(t, prompt, "exactly 7 numbered sections")
}

func TestBuildPromptSimpleVariantWithoutFullCode(t *testing.T) {
	in := describe.Input{
		Repo:       &repos.Info{FullName: "octocat/demo"},
		SampleCode: repos.CodeBundle{"app.py": "x = 1\n"},
	}

	prompt, v := buildPrompt(in)

	assert.Equal(t, variantSimple, v)
	assert.Contains(t, prompt, "--- app.py ---")
	assert.Contains(t, prompt, "exactly 5 numbered sections")
}

func TestBuildPromptTruncatesReadme(t *testing.T) {
	in := describe.Input{
		Readme:   strings.Repeat("r", maxReadmeChars+500),
		FullCode: repos.CodeBundle{"main.py": "x\n"},
	}

	prompt, _ := buildPrompt(in)

	assert.NotContains(t, prompt, strings.Repeat("r", maxReadmeChars+1))
	assert.Contains(t, prompt, strings.Repeat("r", maxReadmeChars))
}

func TestBuildPromptCapsCodeContext(t *testing.T) {
	bundle := repos.CodeBundle{}
	// Ten large files would blow the total budget if uncapped.
	for _, name := range []string{"a.py", "b.py", "c.py", "d.py", "e.py", "f.py"} {
		bundle["src/"+name] = strings.Repeat("x", maxFileChars+1000)
	}
	in := describe.Input{FullCode: bundle}

	prompt, _ := buildPrompt(in)

	assert.Less(t, len(prompt), maxCodeChars+2000)
}

func TestBuildPromptStructureRenderIsStable(t *testing.T) {
	in := describe.Input{
		Structure: repos.FileStructure{
			"src":       repos.FileStructure{"app.py": "src/app.py"},
			"README.md": "README.md",
		},
		SampleCode: repos.CodeBundle{},
	}

	first, _ := buildPrompt(in)
	second, _ := buildPrompt(in)

	assert.Equal(t, first, second)
	assert.Contains(t, first, "README.md")
	assert.Contains(t, first, "  app.py")
}
