package enhance

import (
	"regexp"
	"strings"

	"github.com/ddekshina/ProjectProbe/domains/describe"
)

// sectionSplitRe splits completion text on numbered-list markers
// ("\n1. ", "\n2. ", ...). The text before the first marker is segment 0.
var sectionSplitRe = regexp.MustCompile(`\n\d+\.\s+`)

// parseResponse maps numbered response sections onto an Enhancement. The
// split must yield every section the variant promises, otherwise the whole
// response is rejected: a partially filled enhancement is worse than none.
func parseResponse(text string, v variant) *describe.Enhancement {
	segments := sectionSplitRe.Split("\n"+strings.TrimSpace(text), -1)
	for i := range segments {
		segments[i] = strings.TrimSpace(segments[i])
	}

	switch v {
	case variantFull:
		// Segment 0 is preamble; sections 1-7 follow.
		if len(segments) < 8 {
			return nil
		}
		return &describe.Enhancement{
			Summary:      segments[1],
			Features:     segments[2],
			Workflow:     segments[3],
			Architecture: segments[4],
			Dependencies: segments[5],
			Assessment:   segments[6],
			Setup:        segments[7],
		}
	case variantSimple:
		if len(segments) < 6 {
			return nil
		}
		return &describe.Enhancement{
			Summary:             segments[1],
			Features:            segments[2],
			Architecture:        segments[3],
			UseCases:            segments[4],
			TechnicalAssessment: segments[5],
		}
	default:
		return nil
	}
}
