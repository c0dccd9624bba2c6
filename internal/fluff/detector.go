package fluff

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Severity rates the overall fluff level of a document.
type Severity string

const (
	SeverityGood     Severity = "good"
	SeverityWarning  Severity = "warning"
	SeverityCritical Severity = "critical"
)

// Density thresholds for the overall severity rating, as fractions of total
// word count taken up by flagged phrases.
const (
	warningDensity  = 0.05
	criticalDensity = 0.15
)

// maxWeightedFluff normalizes the weighted severity sum onto a 0-100 scale.
const maxWeightedFluff = 200.0

const contextWindow = 80

// PhraseHit is one weak pattern that matched, with every occurrence recorded.
type PhraseHit struct {
	Phrase      string         `json:"phrase"`
	Count       int            `json:"count"`
	Positions   []int          `json:"positions"`
	Severity    int            `json:"severity"`
	Category    PhraseCategory `json:"category"`
	Replacement string         `json:"replacement"`
	Contexts    []string       `json:"contexts"`
}

// CategoryImpact aggregates hits per category, weighted by severity.
type CategoryImpact struct {
	Category PhraseCategory `json:"category"`
	Count    int            `json:"count"`
	Impact   int            `json:"impact"`
}

// Suggestion is a prioritized rewrite recommendation for one category.
type Suggestion struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
	Priority    string `json:"priority"`
	Impact      int    `json:"impact"`
}

// VerbGroup is a themed list of strong replacement verbs.
type VerbGroup struct {
	Category string   `json:"category"`
	Verbs    []string `json:"verbs"`
}

// Report is the fluff analysis for one document.
type Report struct {
	FluffScore      int              `json:"fluffScore"`
	TotalWords      int              `json:"totalWords"`
	FluffPercentage int              `json:"fluffPercentage"`
	Severity        Severity         `json:"severity"`
	WeakPhrases     []PhraseHit      `json:"weakPhrases"`
	Breakdown       []CategoryImpact `json:"breakdown"`
	Suggestions     []Suggestion     `json:"suggestions"`
}

// Detector scans text against a compiled weak-phrase lexicon. Construction
// fails fast on any bad pattern; a built Detector is read-only and safe for
// concurrent use.
type Detector struct {
	patterns   []weakPattern
	powerVerbs map[string][]string
}

// NewDetector builds a detector from the embedded default lexicon.
func NewDetector() (*Detector, error) {
	data, err := lexiconFiles.ReadFile("phrases.json")
	if err != nil {
		return nil, &LexiconError{Source: "embedded", Message: "missing default lexicon", Cause: err}
	}
	return NewDetectorFromJSON(data, "embedded")
}

// NewDetectorFromFile builds a detector from a lexicon file on disk.
func NewDetectorFromFile(path string) (*Detector, error) {
	data, err := readLexiconFile(path)
	if err != nil {
		return nil, err
	}
	return NewDetectorFromJSON(data, path)
}

// NewDetectorFromJSON builds a detector from raw lexicon JSON.
func NewDetectorFromJSON(data []byte, source string) (*Detector, error) {
	patterns, verbs, err := loadLexicon(data, source)
	if err != nil {
		return nil, err
	}
	return &Detector{patterns: patterns, powerVerbs: verbs}, nil
}

// Analyze scans text and reports every weak phrase found. Positions are byte
// offsets into the original text; matched phrases keep their original casing.
func (d *Detector) Analyze(text string) Report {
	totalWords := splitWords(text)
	if totalWords == 0 {
		return Report{FluffScore: 100, Severity: SeverityGood}
	}

	var hits []PhraseHit
	totalWeighted := 0
	fluffWords := 0

	for _, p := range d.patterns {
		locs := p.re.FindAllStringIndex(text, -1)
		if len(locs) == 0 {
			continue
		}

		hit := PhraseHit{
			Phrase:      text[locs[0][0]:locs[0][1]],
			Count:       len(locs),
			Severity:    p.severity,
			Category:    p.category,
			Replacement: p.replacement,
		}
		for _, loc := range locs {
			hit.Positions = append(hit.Positions, loc[0])
			hit.Contexts = append(hit.Contexts, contextAround(text, loc[0], loc[1]))
		}

		totalWeighted += p.severity * len(locs)
		fluffWords += splitWords(hit.Phrase) * len(locs)
		hits = append(hits, hit)
	}

	sort.SliceStable(hits, func(i, j int) bool {
		return hits[i].Severity > hits[j].Severity
	})

	density := float64(fluffWords) / float64(totalWords)
	score := math.Max(0, 100-float64(totalWeighted)/maxWeightedFluff*100)

	return Report{
		FluffScore:      int(math.Round(score)),
		TotalWords:      totalWords,
		FluffPercentage: int(math.Round(density * 100)),
		Severity:        rateSeverity(density),
		WeakPhrases:     hits,
		Breakdown:       categorize(hits),
		Suggestions:     suggestFor(hits),
	}
}

// VerbSuggestions lists the top strong verbs per theme, sorted by theme name.
func (d *Detector) VerbSuggestions() []VerbGroup {
	groups := make([]VerbGroup, 0, len(d.powerVerbs))
	for category, verbs := range d.powerVerbs {
		top := verbs
		if len(top) > 5 {
			top = top[:5]
		}
		groups = append(groups, VerbGroup{
			Category: strings.ToUpper(category[:1]) + category[1:],
			Verbs:    top,
		})
	}
	sort.Slice(groups, func(i, j int) bool { return groups[i].Category < groups[j].Category })
	return groups
}

func rateSeverity(density float64) Severity {
	switch {
	case density < warningDensity:
		return SeverityGood
	case density < criticalDensity:
		return SeverityWarning
	default:
		return SeverityCritical
	}
}

func contextAround(text string, start, end int) string {
	lo := start - contextWindow
	if lo < 0 {
		lo = 0
	}
	hi := end + contextWindow
	if hi > len(text) {
		hi = len(text)
	}
	return text[lo:hi]
}

func categorize(hits []PhraseHit) []CategoryImpact {
	byCategory := make(map[PhraseCategory]*CategoryImpact)
	for _, h := range hits {
		ci, ok := byCategory[h.Category]
		if !ok {
			ci = &CategoryImpact{Category: h.Category}
			byCategory[h.Category] = ci
		}
		ci.Count += h.Count
		ci.Impact += h.Severity * h.Count
	}

	out := make([]CategoryImpact, 0, len(byCategory))
	for _, ci := range byCategory {
		out = append(out, *ci)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Impact != out[j].Impact {
			return out[i].Impact > out[j].Impact
		}
		return out[i].Category < out[j].Category
	})
	return out
}

// suggestionTemplate drives one category's rewrite recommendation.
type suggestionTemplate struct {
	title    string
	desc     string
	action   string
	priority string
}

var suggestionTemplates = map[PhraseCategory]suggestionTemplate{
	CategoryPassive: {
		title:    "Critical: Eliminate Passive Language",
		desc:     "Found %d passive phrases. These are the #1 resume killer.",
		action:   "Replace with: Led, Managed, Built, Developed, Implemented",
		priority: "critical",
	},
	CategoryCliche: {
		title:    "Remove Empty Clichés",
		desc:     "Found %d cliché phrases. Recruiters ignore these completely.",
		action:   "Replace with quantifiable achievements (e.g., 'reduced bugs by 40%' instead of 'detail-oriented')",
		priority: "high",
	},
	CategoryVague: {
		title:    "Be Specific with Quantifiers",
		desc:     "Found %d vague terms. Recruiters need exact numbers.",
		action:   "Replace 'various' with '8 projects', 'several' with '5 departments', etc.",
		priority: "high",
	},
	CategoryQualifier: {
		title:    "Remove Weak Qualifiers",
		desc:     "Found %d weak qualifiers that undermine your achievements.",
		action:   "Replace 'tried to' with 'achieved', 'focused on' with 'delivered'",
		priority: "medium",
	},
	CategoryJargon: {
		title:    "Replace Corporate Jargon",
		desc:     "Found %d jargon terms without substance.",
		action:   "Use concrete verbs with metrics instead of buzzwords",
		priority: "medium",
	},
	CategoryWeakAction: {
		title:    "Strengthen Weak Action Phrases",
		desc:     "Found %d weak action phrases.",
		action:   "Replace with: partnered, collaborated, aligned",
		priority: "medium",
	},
}

func suggestFor(hits []PhraseHit) []Suggestion {
	var out []Suggestion
	for _, ci := range categorize(hits) {
		tmpl, ok := suggestionTemplates[ci.Category]
		if !ok {
			continue
		}
		out = append(out, Suggestion{
			Title:       tmpl.title,
			Description: fmt.Sprintf(tmpl.desc, ci.Count),
			Action:      tmpl.action,
			Priority:    tmpl.priority,
			Impact:      ci.Impact,
		})
	}
	return out
}
