// Package document provides the normalized text representation shared by all analyzers.
package document

import (
	"strings"
)

// Document is an immutable value holding a raw text alongside its normalized
// form and token list. It is created once per analysis call and never mutated.
type Document struct {
	Raw        string
	Normalized string
	Tokens     []string
}

// New builds a Document from raw text. Normalization lower-cases the text,
// converts line endings to LF, and trims surrounding whitespace. Tokens are
// the whitespace-separated words of the normalized text.
func New(raw string) Document {
	normalized := Normalize(raw)
	return Document{
		Raw:        raw,
		Normalized: normalized,
		Tokens:     strings.Fields(normalized),
	}
}

// Normalize lower-cases text and normalizes line endings (CRLF/CR to LF).
func Normalize(raw string) string {
	text := strings.ReplaceAll(raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = strings.ToLower(text)
	return strings.TrimSpace(text)
}

// Lines splits the raw text into lines with line endings normalized.
// Raw casing is preserved so callers can inspect capitalization.
func (d Document) Lines() []string {
	text := strings.ReplaceAll(d.Raw, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

// WordCount returns the number of tokens in the normalized text.
func (d Document) WordCount() int {
	return len(d.Tokens)
}

// WordSet returns the set of unique normalized tokens. Membership is what
// matters for overlap computations, not frequency.
func (d Document) WordSet() map[string]struct{} {
	set := make(map[string]struct{}, len(d.Tokens))
	for _, token := range d.Tokens {
		set[token] = struct{}{}
	}
	return set
}
