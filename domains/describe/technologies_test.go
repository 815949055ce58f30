package describe

import (
	"testing"

	"github.com/ddekshina/ProjectProbe/domains/repos"
	"github.com/stretchr/testify/assert"
)

func TestIdentifyTechnologiesLanguagesFromStats(t *testing.T) {
	languages := repos.LanguageStats{"Python": 9000, "Shell": 1000}

	report := IdentifyTechnologies(languages, nil, "", nil, nil)

	assert.Equal(t, []string{"Python", "Shell"}, report.Languages)
	assert.Empty(t, report.Frameworks)
	assert.Empty(t, report.Libraries)
	assert.Empty(t, report.Tools)
}

func TestIdentifyTechnologiesKeywordRules(t *testing.T) {
	structure := repos.FileStructure{
		"requirements.txt":  "requirements.txt",
		"webpack.config.js": "webpack.config.js",
	}
	full := repos.CodeBundle{
		"app.py": "from flask import Flask\nimport psycopg2  # postgres driver\n",
	}

	report := IdentifyTechnologies(nil, structure, "", nil, full)

	assert.Contains(t, report.Frameworks, "Flask")
	assert.Contains(t, report.Libraries, "PostgreSQL")
	assert.Contains(t, report.Tools, "Webpack")
}

func TestIdentifyTechnologiesCaseSensitiveKeywords(t *testing.T) {
	// "React" and friends match on the lowercase keyword only; an
	// uppercase README-style mention in a path must not trigger them.
	full := repos.CodeBundle{
		"NOTES/REACT.md": "ALL CAPS",
	}

	report := IdentifyTechnologies(nil, nil, "", nil, full)
	assert.NotContains(t, report.Frameworks, "React")

	full = repos.CodeBundle{"src/react-app.js": "export {};\n"}
	report = IdentifyTechnologies(nil, nil, "", nil, full)
	assert.Contains(t, report.Frameworks, "React")
}

func TestIdentifyTechnologiesScriptImports(t *testing.T) {
	full := repos.CodeBundle{
		"main.py": "import os\nimport sys\nimport requests\nfrom numpy import array\nfrom typing import Any\n",
	}

	report := IdentifyTechnologies(nil, nil, "", nil, full)

	assert.Contains(t, report.Libraries, "requests")
	assert.Contains(t, report.Libraries, "numpy")
	assert.NotContains(t, report.Libraries, "os")
	assert.NotContains(t, report.Libraries, "typing")
}

func TestIdentifyTechnologiesModuleRefs(t *testing.T) {
	full := repos.CodeBundle{
		"server.js": "const express = require('express');\nconst helper = require('./helper');\nimport get from 'lodash/fp';\n",
	}

	report := IdentifyTechnologies(nil, nil, "", nil, full)

	assert.Contains(t, report.Libraries, "express")
	assert.Contains(t, report.Libraries, "lodash")
	assert.NotContains(t, report.Libraries, "./helper")
}

func TestIdentifyTechnologiesCategoryCap(t *testing.T) {
	content := "import lib01\nimport lib02\nimport lib03\nimport lib04\nimport lib05\n" +
		"import lib06\nimport lib07\nimport lib08\nimport lib09\nimport lib10\n" +
		"import lib11\nimport lib12\n"
	full := repos.CodeBundle{"deps.py": content}

	report := IdentifyTechnologies(nil, nil, "", nil, full)

	assert.Len(t, report.Libraries, 10)
	assert.Equal(t, "lib01", report.Libraries[0])
}

func TestIdentifyTechnologiesSkipsUnretrievableFiles(t *testing.T) {
	full := repos.CodeBundle{
		"app.py": repos.FetchFailedSentinel,
	}

	report := IdentifyTechnologies(nil, nil, "", nil, full)

	assert.Empty(t, report.Libraries)
}
