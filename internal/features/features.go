// Package features derives the fixed-shape numeric feature vector used for
// scoring and caching.
package features

import (
	"fmt"
	"regexp"
	"sort"
	"strings"
	"unicode"

	"github.com/jonathan/resume-match-engine/internal/document"
)

// Feature names. The vector always carries exactly this key set so that its
// canonical serialization is stable across calls.
const (
	FeatureTextLength     = "textLength"
	FeatureWordCount      = "wordCount"
	FeatureHasEmail       = "hasEmail"
	FeatureHasPhone       = "hasPhone"
	FeatureSectionDensity = "sectionDensity"
	FeatureBulletDensity  = "bulletDensity"
	FeatureJDOverlap      = "jdOverlap"
	FeatureUppercaseRatio = "uppercaseRatio"
	FeatureNumberDensity  = "numberDensity"
)

// Normalization caps. Documents longer than these are treated as max-length;
// keeping every value in [0,1] is what makes cache keys stable.
const (
	maxTextLength = 10000.0
	maxWordCount  = 1000.0
)

var (
	emailRe = regexp.MustCompile(`\S+@\S+\.\S+`)
	phoneRe = regexp.MustCompile(`\d{3}[-.\s]?\d{3}[-.\s]?\d{4}`)
)

// bulletMarkers are the characters recognized as bullet list prefixes.
const bulletMarkers = "•●○■▪▫◦▸►*-–—·"

// Vector maps feature names to values in [0,1].
type Vector map[string]float64

// Key renders the vector as a canonical cache key: names sorted
// lexicographically, values fixed to two decimal places, joined by "|".
// Two vectors built from identical text always serialize identically.
func (v Vector) Key() string {
	names := make([]string, 0, len(v))
	for name := range v {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s:%.2f", name, v[name]))
	}
	return strings.Join(parts, "|")
}

// Extract computes the feature vector for a document. jobDescription may be
// empty, in which case the JD overlap feature is zero. Pure function of its
// inputs; empty text yields an all-zero vector.
func Extract(text, jobDescription string) Vector {
	doc := document.New(text)

	v := Vector{
		FeatureTextLength:     0,
		FeatureWordCount:      0,
		FeatureHasEmail:       0,
		FeatureHasPhone:       0,
		FeatureSectionDensity: 0,
		FeatureBulletDensity:  0,
		FeatureJDOverlap:      0,
		FeatureUppercaseRatio: 0,
		FeatureNumberDensity:  0,
	}

	if len(doc.Normalized) == 0 {
		return v
	}

	v[FeatureTextLength] = clamp01(float64(len(doc.Normalized)) / maxTextLength)
	v[FeatureWordCount] = clamp01(float64(doc.WordCount()) / maxWordCount)

	if emailRe.MatchString(doc.Normalized) {
		v[FeatureHasEmail] = 1
	}
	if phoneRe.MatchString(doc.Normalized) {
		v[FeatureHasPhone] = 1
	}

	// Structural densities are normalized by line count so that scores are
	// length-invariant.
	lines := doc.Lines()
	blankLines := 0
	bulletLines := 0
	for _, line := range lines {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			blankLines++
			continue
		}
		if IsBulletLine(line) {
			bulletLines++
		}
	}
	totalLines := float64(len(lines))
	v[FeatureSectionDensity] = clamp01(float64(blankLines) / totalLines)
	v[FeatureBulletDensity] = clamp01(float64(bulletLines) / totalLines)

	v[FeatureJDOverlap] = overlapRatio(doc, jobDescription)

	upper := 0
	digits := 0
	for _, r := range text {
		if unicode.IsUpper(r) {
			upper++
		}
		if unicode.IsDigit(r) {
			digits++
		}
	}
	total := float64(len([]rune(text)))
	v[FeatureUppercaseRatio] = clamp01(float64(upper) / total)
	v[FeatureNumberDensity] = clamp01(float64(digits) / total)

	return v
}

// overlapRatio is the fraction of job-description words longer than 3
// characters that appear in the resume's token set. Set membership, not
// frequency: duplicate JD words do not inflate the ratio, and duplicating
// the resume text does not change it.
func overlapRatio(resume document.Document, jobDescription string) float64 {
	jd := document.New(jobDescription)
	if len(jd.Tokens) == 0 {
		return 0
	}

	resumeWords := resume.WordSet()
	matched := 0
	considered := 0
	seen := make(map[string]struct{}, len(jd.Tokens))
	for _, word := range jd.Tokens {
		if len(word) <= 3 {
			continue
		}
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		considered++
		if _, ok := resumeWords[word]; ok {
			matched++
		}
	}

	if considered == 0 {
		return 0
	}
	return clamp01(float64(matched) / float64(considered))
}

// IsBulletLine reports whether a line begins with a bullet marker.
func IsBulletLine(line string) bool {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return false
	}
	first := []rune(trimmed)[0]
	return strings.ContainsRune(bulletMarkers, first)
}

func clamp01(f float64) float64 {
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
