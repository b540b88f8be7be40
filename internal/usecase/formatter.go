package usecase

import "regexp"

// decoration is one whole-word, case-insensitive substitution appending a
// marker glyph to a domain term. Replacements use fixed literals, so
// re-formatting already-decorated text double-decorates; the formatter is
// deliberately not idempotent.
type decoration struct {
	pattern *regexp.Regexp
	repl    string
}

// Ordered, static substitution table. \b keeps derived words like
// "quantumly" untouched.
var decorations = []decoration{
	{regexp.MustCompile(`(?i)\bquantum\b`), "Quantum ⚛️"},
	{regexp.MustCompile(`(?i)\bentanglement\b`), "entanglement 🔗"},
	{regexp.MustCompile(`(?i)\bsuperposition\b`), "superposition ⚡"},
	{regexp.MustCompile(`(?i)\bqubit\b`), "qubit 🎯"},
	{regexp.MustCompile(`(?i)\bcircuit\b`), "circuit 🔌"},
}

// FormatResponse decorates domain terms in completion text. Pure and total:
// any input, including empty text, yields a result.
func FormatResponse(text string) string {
	for _, d := range decorations {
		text = d.pattern.ReplaceAllString(text, d.repl)
	}
	return text
}
