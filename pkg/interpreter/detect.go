package interpreter

import "strings"

// DetectLanguage returns a coarse language label for the given source code.
// Checks are priority ordered; the first match wins.
func DetectLanguage(code string) string {
	switch {
	case strings.Contains(code, "def ") && strings.Contains(code, ":"):
		return "Python"
	case strings.Contains(code, "{") && strings.Contains(code, "function"):
		return "JavaScript"
	case strings.Contains(code, "#include"):
		return "C/C++"
	case strings.Contains(code, "public class"):
		return "Java"
	default:
		return "unknown language"
	}
}

// DetectContentType classifies content as code, creative, or text.
// All matching is case sensitive; normalizing case here would reclassify
// content for existing clients.
func DetectContentType(content string) ContentType {
	if strings.Contains(content, "```") ||
		strings.Contains(content, "function") ||
		strings.Contains(content, "def ") ||
		strings.Contains(content, "{") {
		return ContentTypeCode
	}

	if len(strings.Fields(content)) < 20 &&
		(strings.Contains(content, "?") ||
			strings.HasPrefix(content, "Write") ||
			strings.HasPrefix(content, "Create")) {
		return ContentTypeCreative
	}

	return ContentTypeText
}
