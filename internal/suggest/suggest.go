// Package suggest ranks missing keywords and attaches templated example
// phrasing per keyword category.
package suggest

import (
	"fmt"
	"sort"

	"github.com/jonathan/resume-match-engine/internal/keywords"
	"github.com/jonathan/resume-match-engine/internal/saturation"
)

// Suggestion is one missing keyword with a category-appropriate example of
// how to work it into a resume bullet.
type Suggestion struct {
	Term        string            `json:"term"`
	Category    keywords.Category `json:"category"`
	Weight      float64           `json:"weight"`
	JDFrequency int               `json:"jdFrequency"`
	Example     string            `json:"example"`
}

// exampleTemplates phrase each suggestion as an achievement in the register
// of its category. The %s placeholder receives the keyword term.
var exampleTemplates = map[keywords.Category]string{
	keywords.CategoryTechnical:  "Engineered a high-throughput service with %s, cutting processing time by 40%%",
	keywords.CategoryLeadership: "Led a cross-functional team of 8, driving %s across three departments",
	keywords.CategoryAnalytical: "Applied %s to production data and surfaced a 25%% efficiency gain",
	keywords.CategoryResults:    "Delivered %s improvements that increased throughput by 30%%",
	keywords.CategoryCreative:   "Designed and launched a %s initiative adopted by five teams",
	keywords.CategoryIndustry:   "Practiced %s end to end, from planning through delivery",
}

const fallbackTemplate = "Leveraged %s to exceed project goals"

// Generate sorts missing keywords by (weight, frequency in job description)
// descending and truncates to maxCount. Deterministic given the same missing
// set: ties break on term. A non-positive maxCount yields nil.
func Generate(missing []saturation.MissingKeyword, maxCount int) []Suggestion {
	if maxCount <= 0 || len(missing) == 0 {
		return nil
	}

	ranked := make([]saturation.MissingKeyword, len(missing))
	copy(ranked, missing)
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Weight != ranked[j].Weight {
			return ranked[i].Weight > ranked[j].Weight
		}
		if ranked[i].JDCount != ranked[j].JDCount {
			return ranked[i].JDCount > ranked[j].JDCount
		}
		return ranked[i].Term < ranked[j].Term
	})

	if len(ranked) > maxCount {
		ranked = ranked[:maxCount]
	}

	suggestions := make([]Suggestion, 0, len(ranked))
	for _, kw := range ranked {
		suggestions = append(suggestions, Suggestion{
			Term:        kw.Term,
			Category:    kw.Category,
			Weight:      kw.Weight,
			JDFrequency: kw.JDCount,
			Example:     example(kw),
		})
	}
	return suggestions
}

func example(kw saturation.MissingKeyword) string {
	template, ok := exampleTemplates[kw.Category]
	if !ok {
		template = fallbackTemplate
	}
	return fmt.Sprintf(template, kw.Term)
}
