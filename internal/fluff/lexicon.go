// Package fluff flags weak resume language using a weighted phrase lexicon
// and suggests stronger replacements.
package fluff

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"regexp"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed phrases.json phrases.schema.json
var lexiconFiles embed.FS

// PhraseCategory groups weak patterns by the kind of weakness they signal.
type PhraseCategory string

const (
	CategoryPassive    PhraseCategory = "passive"
	CategoryVague      PhraseCategory = "vague"
	CategoryQualifier  PhraseCategory = "qualifier"
	CategoryJargon     PhraseCategory = "jargon"
	CategoryCliche     PhraseCategory = "cliche"
	CategoryWeakAction PhraseCategory = "weak_action"
)

// LexiconError reports a malformed phrase lexicon. Like catalogue errors,
// these surface at initialization time.
type LexiconError struct {
	Source  string
	Message string
	Cause   error
}

func (e *LexiconError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fluff lexicon %s: %s: %v", e.Source, e.Message, e.Cause)
	}
	return fmt.Sprintf("fluff lexicon %s: %s", e.Source, e.Message)
}

func (e *LexiconError) Unwrap() error {
	return e.Cause
}

// lexiconDocument is the on-disk shape of a lexicon file.
type lexiconDocument struct {
	WeakPatterns []weakPatternSpec   `json:"weakPatterns"`
	PowerVerbs   map[string][]string `json:"powerVerbs"`
}

type weakPatternSpec struct {
	Pattern     string         `json:"pattern"`
	Severity    int            `json:"severity"`
	Category    PhraseCategory `json:"category"`
	Replacement string         `json:"replacement"`
}

// weakPattern is a compiled lexicon entry.
type weakPattern struct {
	re          *regexp.Regexp
	severity    int
	category    PhraseCategory
	replacement string
}

// loadLexicon parses, schema-checks, and compiles lexicon JSON. A pattern
// that fails to compile fails the whole load.
func loadLexicon(data []byte, source string) ([]weakPattern, map[string][]string, error) {
	if err := validateLexiconSchema(data, source); err != nil {
		return nil, nil, err
	}

	var doc lexiconDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, nil, &LexiconError{Source: source, Message: "failed to parse lexicon JSON", Cause: err}
	}

	patterns := make([]weakPattern, 0, len(doc.WeakPatterns))
	for _, spec := range doc.WeakPatterns {
		re, err := regexp.Compile("(?i)" + spec.Pattern)
		if err != nil {
			return nil, nil, &LexiconError{
				Source:  source,
				Message: fmt.Sprintf("invalid pattern %q", spec.Pattern),
				Cause:   err,
			}
		}
		patterns = append(patterns, weakPattern{
			re:          re,
			severity:    spec.Severity,
			category:    spec.Category,
			replacement: spec.Replacement,
		})
	}

	return patterns, doc.PowerVerbs, nil
}

func validateLexiconSchema(data []byte, source string) error {
	schema, err := lexiconFiles.ReadFile("phrases.schema.json")
	if err != nil {
		return &LexiconError{Source: source, Message: "missing embedded lexicon schema", Cause: err}
	}
	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return &LexiconError{Source: source, Message: "schema validation failed during load", Cause: err}
	}
	if !result.Valid() {
		var sb strings.Builder
		for i, desc := range result.Errors() {
			if i > 0 {
				sb.WriteString("; ")
			}
			field := desc.Field()
			if field == "" {
				field = "(root)"
			}
			sb.WriteString(fmt.Sprintf("%s: %s", field, desc.Description()))
		}
		return &LexiconError{Source: source, Message: sb.String()}
	}
	return nil
}

func readLexiconFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &LexiconError{Source: path, Message: "failed to read lexicon file", Cause: err}
	}
	return data, nil
}

// splitWords counts whitespace-separated tokens.
func splitWords(s string) int {
	return len(strings.Fields(s))
}
