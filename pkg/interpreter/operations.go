package interpreter

import "fmt"

// Formatting functions backing the registry. All of them are pure string
// templates; the output shapes are part of the API contract and existing
// clients parse them, so the exact text is load-bearing.

const summaryLimit = 100

func summarizeText(input string, _ Options) (string, error) {
	runes := []rune(input)
	if len(runes) > summaryLimit {
		runes = runes[:summaryLimit]
	}
	return fmt.Sprintf("Summary: %s...", string(runes)), nil
}

func expandText(input string, _ Options) (string, error) {
	return input + "\n\nExpanded content with additional details based on the original text.", nil
}

func transformText(input string, opts Options) (string, error) {
	style := opts.String("style", "default")
	return fmt.Sprintf("Transformed (%s): %s", style, input), nil
}

func explainCode(input string, _ Options) (string, error) {
	return fmt.Sprintf("Explanation of code:\n%s\n\nThis code appears to be %s and it likely does the following...",
		input, DetectLanguage(input)), nil
}

func optimizeCode(input string, _ Options) (string, error) {
	return fmt.Sprintf("Optimized version:\n%s\n\n// Optimized for better performance", input), nil
}

func debugCode(input string, _ Options) (string, error) {
	return fmt.Sprintf("Debugging suggestions:\n%s\n\n1. Check for potential issues in line X\n2. Consider error handling", input), nil
}

func storyFromPrompt(input string, _ Options) (string, error) {
	return fmt.Sprintf("Once upon a time, inspired by '%s'...", input), nil
}

func poemFromPrompt(input string, _ Options) (string, error) {
	return fmt.Sprintf("Poem about %s:\n\nVerse 1\nCreative lines about %s\nMore creative content\n\nVerse 2\nFurther exploration of %s",
		input, input, input), nil
}

func ideasFromPrompt(input string, _ Options) (string, error) {
	return fmt.Sprintf("Ideas related to %s:\n1. First creative concept\n2. Second innovative approach\n3. Third unique perspective", input), nil
}
