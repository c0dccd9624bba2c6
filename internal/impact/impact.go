// Package impact scans bullet-like lines for quantification markers and verb
// strength, yielding the quantification ratio that feeds the completeness
// dimension of the final score.
package impact

import (
	"regexp"
	"strings"
	"unicode"

	"github.com/jonathan/resume-match-engine/internal/document"
	"github.com/jonathan/resume-match-engine/internal/features"
)

// MarkerType classifies a quantification marker found on a line.
type MarkerType string

const (
	MarkerPercentage MarkerType = "percentage"
	MarkerCurrency   MarkerType = "currency"
	MarkerNumeric    MarkerType = "numeric"
)

var (
	percentageRe = regexp.MustCompile(`\d+(?:\.\d+)?\s*%`)
	currencyRe   = regexp.MustCompile(`[$€£]\s*\d|\d+\s*(?:USD|EUR|GBP)\b`)
	numericRe    = regexp.MustCompile(`\b\d{2,}(?:,\d{3})*\b`)
)

// actionVerbs are the line-initial verbs that mark a sentence as a resume
// bullet even without a bullet marker. Strong verbs double as the verb
// strength signal.
var actionVerbs = map[string]bool{
	"achieved": true, "architected": true, "built": true, "created": true,
	"delivered": true, "designed": true, "developed": true, "drove": true,
	"engineered": true, "established": true, "grew": true, "implemented": true,
	"improved": true, "increased": true, "launched": true, "led": true,
	"managed": true, "mentored": true, "optimized": true, "reduced": true,
	"scaled": true, "shipped": true, "spearheaded": true, "transformed": true,
}

// LineMetric is the per-line detail of the analysis.
type LineMetric struct {
	Text       string       `json:"text"`
	Quantified bool         `json:"quantified"`
	Markers    []MarkerType `json:"markers,omitempty"`
	StrongVerb bool         `json:"strongVerb"`
}

// Result reports bullet quantification for a document. QuantificationRate is
// zero when the document has no bullet-like lines.
type Result struct {
	QuantifiedBullets  int          `json:"quantifiedBulletCount"`
	TotalBullets       int          `json:"totalBulletCount"`
	QuantificationRate float64      `json:"quantificationRate"`
	Lines              []LineMetric `json:"lines,omitempty"`
}

// Analyze splits text into bullet-like lines (bullet markers or line-initial
// capitalized action verbs) and tests each for a percentage, currency, or
// standalone multi-digit number. A line is quantified if any marker exists.
func Analyze(text string) Result {
	doc := document.New(text)

	var result Result
	for _, line := range doc.Lines() {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		bullet := features.IsBulletLine(trimmed)
		strong := startsWithActionVerb(trimmed)
		if !bullet && !strong {
			continue
		}

		metric := LineMetric{Text: trimmed}
		metric.StrongVerb = strong || startsWithActionVerb(stripBullet(trimmed))
		metric.Markers = markers(trimmed)
		metric.Quantified = len(metric.Markers) > 0

		result.TotalBullets++
		if metric.Quantified {
			result.QuantifiedBullets++
		}
		result.Lines = append(result.Lines, metric)
	}

	if result.TotalBullets > 0 {
		result.QuantificationRate = float64(result.QuantifiedBullets) / float64(result.TotalBullets)
	}
	return result
}

func markers(line string) []MarkerType {
	var found []MarkerType
	if percentageRe.MatchString(line) {
		found = append(found, MarkerPercentage)
	}
	if currencyRe.MatchString(line) {
		found = append(found, MarkerCurrency)
	}
	if numericRe.MatchString(line) {
		found = append(found, MarkerNumeric)
	}
	return found
}

// startsWithActionVerb reports whether the line opens with a capitalized
// action verb.
func startsWithActionVerb(line string) bool {
	word := firstWord(line)
	if word == "" {
		return false
	}
	runes := []rune(word)
	if !unicode.IsUpper(runes[0]) {
		return false
	}
	return actionVerbs[strings.ToLower(word)]
}

func stripBullet(line string) string {
	return strings.TrimLeft(line, "•●○■▪▫◦▸►*-–—· \t")
}

func firstWord(line string) string {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return ""
	}
	return strings.TrimRight(fields[0], ".,!?;:")
}
