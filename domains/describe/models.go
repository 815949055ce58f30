package describe

// Caps applied to the ordered result lists.
const (
	maxFeatures           = 7
	maxTechPerCategory    = 10
	maxImportantFiles     = 10
	minImportantFiles     = 5
	complexBodyLines      = 30
	longLineThreshold     = 100
	minParagraphLength    = 30
	minSummaryLength      = 50
	minDocCommentLength   = 50
	minSubstantialContent = 100
)

// TechnologyReport groups detected technology names by category. Every list
// is capped at 10 entries in first-detected order with no case-insensitive
// duplicates.
type TechnologyReport struct {
	Languages  []string `json:"languages"`
	Frameworks []string `json:"frameworks"`
	Libraries  []string `json:"libraries"`
	Tools      []string `json:"tools"`
}

// Enhancement is the AI-refined sub-record. Which fields are populated
// depends on the prompt variant: the full variant fills Summary, Features,
// Workflow, Architecture, Dependencies, Assessment and Setup; the simple
// variant fills Summary, Features, Architecture, UseCases and
// TechnicalAssessment. It is either fully populated for its variant or
// absent, never partial.
type Enhancement struct {
	Summary             string `json:"summary"`
	Features            string `json:"features"`
	Workflow            string `json:"workflow,omitempty"`
	Architecture        string `json:"architecture"`
	Dependencies        string `json:"dependencies,omitempty"`
	Assessment          string `json:"assessment,omitempty"`
	Setup               string `json:"setup,omitempty"`
	UseCases            string `json:"use_cases,omitempty"`
	TechnicalAssessment string `json:"technical_assessment,omitempty"`
}

// Description is the synthesizer output. String fields are never empty: each
// pass substitutes a fixed fallback sentence when its inputs are absent.
type Description struct {
	Summary           string           `json:"summary"`
	Architecture      string           `json:"architecture"`
	MainFeatures      []string         `json:"main_features"`
	Technologies      TechnologyReport `json:"technologies"`
	SetupInstructions string           `json:"setup_instructions"`
	CodeQuality       string           `json:"code_quality"`
	AIEnhanced        *Enhancement     `json:"ai_enhanced,omitempty"`
}
