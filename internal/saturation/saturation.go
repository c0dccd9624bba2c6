// Package saturation compares job-description keyword frequency against
// resume keyword frequency using the industry-weighted catalogue.
package saturation

import (
	"sort"
	"strings"

	"github.com/jonathan/resume-match-engine/internal/keywords"
)

// Analyzer runs keyword saturation analysis against a catalogue set.
type Analyzer struct {
	catalogs *keywords.Set
}

// NewAnalyzer creates an analyzer over the given catalogue set.
func NewAnalyzer(catalogs *keywords.Set) *Analyzer {
	return &Analyzer{catalogs: catalogs}
}

// MatchedKeyword is a catalogued keyword present in both job description and
// resume. Term carries the original casing from the job description for
// display purposes.
type MatchedKeyword struct {
	Term        string            `json:"term"`
	Category    keywords.Category `json:"category"`
	Weight      float64           `json:"weight"`
	ResumeCount int               `json:"resumeCount"`
	JDCount     int               `json:"jdCount"`
}

// MissingKeyword is a catalogued keyword the job description requires but the
// resume lacks.
type MissingKeyword struct {
	Term     string            `json:"term"`
	Category keywords.Category `json:"category"`
	Weight   float64           `json:"weight"`
	JDCount  int               `json:"jdCount"`
}

// CategoryStats summarizes match coverage for one keyword category.
type CategoryStats struct {
	Matched  int     `json:"matched"`
	Required int     `json:"required"`
	Score    float64 `json:"score"`
}

// Result is the outcome of a saturation analysis.
type Result struct {
	OverallScore float64                             `json:"overallScore"`
	Industry     string                              `json:"industry"`
	Matched      []MatchedKeyword                    `json:"matchedKeywords"`
	Missing      []MissingKeyword                    `json:"missingKeywords"`
	Breakdown    map[keywords.Category]CategoryStats `json:"categoryBreakdown"`
}

// Analyze builds resume-side and JD-side frequency profiles with one trie over
// the industry catalogue and scores the overlap as a weighted sum:
// sum(weight*matched) / sum(weight*presentInJD), scaled to [0,100].
// An unrecognized industry tag falls back to the generic catalogue; empty
// inputs yield a zero score and empty keyword sets.
func (a *Analyzer) Analyze(resumeText, jdText, industry string) Result {
	catalog := a.catalogs.ForIndustry(industry)
	trie := keywords.NewTrie(catalog.Keywords)

	resumeCounts := trie.Counts(resumeText)
	jdMatches := trie.Scan(jdText)

	jdByTerm := make(map[string]keywords.Match, len(jdMatches))
	for _, m := range jdMatches {
		jdByTerm[m.Term] = m
	}

	jdRunes := []rune(jdText)

	result := Result{
		Industry:  catalog.Industry,
		Breakdown: make(map[keywords.Category]CategoryStats),
	}

	var matchedWeight, requiredWeight float64
	for _, kw := range catalog.Keywords {
		jdMatch, inJD := jdByTerm[strings.ToLower(kw.Term)]
		if !inJD {
			continue
		}

		requiredWeight += kw.Weight
		display := displayTerm(jdRunes, jdMatch)
		stats := result.Breakdown[kw.Category]
		stats.Required++

		if count := resumeCounts[strings.ToLower(kw.Term)]; count >= 1 {
			matchedWeight += kw.Weight
			stats.Matched++
			result.Matched = append(result.Matched, MatchedKeyword{
				Term:        display,
				Category:    kw.Category,
				Weight:      kw.Weight,
				ResumeCount: count,
				JDCount:     jdMatch.Count,
			})
		} else {
			result.Missing = append(result.Missing, MissingKeyword{
				Term:     display,
				Category: kw.Category,
				Weight:   kw.Weight,
				JDCount:  jdMatch.Count,
			})
		}
		result.Breakdown[kw.Category] = stats
	}

	if requiredWeight > 0 {
		result.OverallScore = clamp(matchedWeight/requiredWeight*100, 0, 100)
	}
	for cat, stats := range result.Breakdown {
		if stats.Required > 0 {
			stats.Score = clamp(float64(stats.Matched)/float64(stats.Required)*100, 0, 100)
			result.Breakdown[cat] = stats
		}
	}

	sortByWeight(result.Matched, result.Missing)
	return result
}

// displayTerm slices the original job-description text at the keyword's first
// match position, preserving the casing recruiters actually wrote.
func displayTerm(jdRunes []rune, m keywords.Match) string {
	if len(m.Positions) == 0 {
		return m.Term
	}
	start := m.Positions[0]
	end := start + len([]rune(m.Term))
	if start < 0 || end > len(jdRunes) {
		return m.Term
	}
	return string(jdRunes[start:end])
}

func sortByWeight(matched []MatchedKeyword, missing []MissingKeyword) {
	sort.Slice(matched, func(i, j int) bool {
		if matched[i].Weight != matched[j].Weight {
			return matched[i].Weight > matched[j].Weight
		}
		return matched[i].Term < matched[j].Term
	})
	sort.Slice(missing, func(i, j int) bool {
		if missing[i].Weight != missing[j].Weight {
			return missing[i].Weight > missing[j].Weight
		}
		return missing[i].Term < missing[j].Term
	})
}

func clamp(f, lo, hi float64) float64 {
	if f < lo {
		return lo
	}
	if f > hi {
		return hi
	}
	return f
}
