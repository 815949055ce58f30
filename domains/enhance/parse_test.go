package enhance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseResponseFullVariant(t *testing.T) {
	text := `1. A tool for analyzing repositories.
2. Fetching, heuristics, AI refinement.
3. Fetch artifacts, run passes, merge results.
4. Layered: fetch, synthesis, web.
5. requests for HTTP, flask for routing.
6. Solid for its size.
7. pip install, then run the server.`

	got := parseResponse(text, variantFull)

	require.NotNil(t, got)
	assert.Equal(t, "A tool for analyzing repositories.", got.Summary)
	assert.Equal(t, "Fetching, heuristics, AI refinement.", got.Features)
	assert.Equal(t, "Fetch artifacts, run passes, merge results.", got.Workflow)
	assert.Equal(t, "Layered: fetch, synthesis, web.", got.Architecture)
	assert.Equal(t, "requests for HTTP, flask for routing.", got.Dependencies)
	assert.Equal(t, "Solid for its size.", got.Assessment)
	assert.Equal(t, "pip install, then run the server.", got.Setup)
	assert.Empty(t, got.UseCases)
}

func TestParseResponseFullVariantWithPreamble(t *testing.T) {
	text := "Here is the analysis you asked for:\n" +
		"1. one\n2. two\n3. three\n4. four\n5. five\n6. six\n7. seven"

	got := parseResponse(text, variantFull)

	require.NotNil(t, got)
	assert.Equal(t, "one", got.Summary)
	assert.Equal(t, "seven", got.Setup)
}

func TestParseResponseSimpleVariant(t *testing.T) {
	text := "1. summary\n2. features\n3. architecture\n4. use cases\n5. assessment"

	got := parseResponse(text, variantSimple)

	require.NotNil(t, got)
	assert.Equal(t, "summary", got.Summary)
	assert.Equal(t, "use cases", got.UseCases)
	assert.Equal(t, "assessment", got.TechnicalAssessment)
	assert.Empty(t, got.Workflow)
}

func TestParseResponseTooFewSectionsRejected(t *testing.T) {
	assert.Nil(t, parseResponse("1. one\n2. two\n3. three", variantFull))
	assert.Nil(t, parseResponse("1. one\n2. two\n3. three", variantSimple))
	assert.Nil(t, parseResponse("", variantFull))
	assert.Nil(t, parseResponse("free-form prose without any numbering", variantSimple))
}

func TestParseResponseMultilineSections(t *testing.T) {
	text := "1. summary line\nwith continuation\n2. features\n3. arch\n4. uses\n5. tech"

	got := parseResponse(text, variantSimple)

	require.NotNil(t, got)
	assert.Equal(t, "summary line\nwith continuation", got.Summary)
}
