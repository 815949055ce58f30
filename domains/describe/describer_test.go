package describe

import (
	"testing"

	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDescribeZeroInputDegradesToFallbacks(t *testing.T) {
	d := New(nil)

	desc := d.Describe(Input{})

	assert.Equal(t, noDescriptionFallback, desc.Summary)
	assert.Equal(t, noSetupFallback, desc.SetupInstructions)
	assert.Equal(t, cannotAssessQuality, desc.CodeQuality)
	assert.Equal(t, []string{"Software application", "Structured codebase", "Developer-friendly"}, desc.MainFeatures)
	assert.Contains(t, desc.Architecture, "Project structure analysis:")
	assert.Empty(t, desc.Technologies.Languages)
	assert.Nil(t, desc.AIEnhanced)
}

func TestDescribeFullInput(t *testing.T) {
	stars := "A Flask demo service."
	in := Input{
		Repo: &repos.Info{
			Name:        "demo",
			FullName:    "octocat/demo",
			Description: &stars,
			Stars:       12,
			Forks:       3,
		},
		Readme: "# demo\n\nA demo.\n\n## Features\n\n- Serves HTTP requests\n- Renders templates\n\n## Installation\n\npip install demo\n",
		Structure: repos.FileStructure{
			"src":              repos.FileStructure{"app.py": "app.py"},
			"tests":            repos.FileStructure{},
			"requirements.txt": "requirements.txt",
		},
		Languages: repos.LanguageStats{"Python": 1000},
		FullCode: repos.CodeBundle{
			"src/app.py": "from flask import Flask\n\napp = Flask(__name__)\n",
		},
	}

	desc := New(nil).Describe(in)

	assert.Equal(t, "A Flask demo service. This project has 12 stars, 3 forks.", desc.Summary)
	assert.Equal(t, []string{"Serves HTTP requests", "Renders templates"}, desc.MainFeatures)
	assert.Equal(t, "pip install demo", desc.SetupInstructions)
	assert.Contains(t, desc.Architecture, "includes tests")
	assert.Contains(t, desc.Architecture, "- Python: 100.0%")
	require.NotEmpty(t, desc.Technologies.Frameworks)
	assert.Contains(t, desc.Technologies.Frameworks, "Flask")
	assert.Equal(t, []string{"Python"}, desc.Technologies.Languages)
	assert.Contains(t, desc.CodeQuality, "Code quality assessment:")
}

func TestDescribePrefersFullCodeOverSample(t *testing.T) {
	in := Input{
		SampleCode: repos.CodeBundle{"main.py": "print('sample')\n"},
		FullCode:   repos.CodeBundle{"index.js": "console.log('full');\n"},
	}

	desc := New(nil).Describe(in)

	// Generic features key off the full bundle's dominant language.
	assert.Equal(t, []string{"JavaScript-based application", "Web interface", "Modern JS architecture"}, desc.MainFeatures)
}
