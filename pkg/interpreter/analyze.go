package interpreter

import (
	"strings"
	"unicode/utf8"
)

// Complexity bucket boundaries, in characters.
const (
	complexityModerateAt = 100
	complexityComplexAt  = 500
)

// Analyze computes basic shape metrics for the given content. Length and
// the complexity buckets count characters, not bytes. Sentence counting is
// terminator counting, not real segmentation.
func Analyze(content string) *Analysis {
	length := utf8.RuneCountInString(content)

	return &Analysis{
		Length:               length,
		WordCount:            len(strings.Fields(content)),
		SentenceCount:        strings.Count(content, ".") + strings.Count(content, "!") + strings.Count(content, "?"),
		Complexity:           complexity(length),
		PotentialContentType: DetectContentType(content),
	}
}

func complexity(length int) string {
	switch {
	case length < complexityModerateAt:
		return "simple"
	case length < complexityComplexAt:
		return "moderate"
	default:
		return "complex"
	}
}
