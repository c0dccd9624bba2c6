// Package keywords provides the weighted keyword catalogue and the prefix-tree
// index used for single-pass multi-keyword scanning.
package keywords

// Category classifies a keyword by the kind of signal it carries.
type Category string

const (
	CategoryTechnical  Category = "technical"
	CategoryLeadership Category = "leadership"
	CategoryAnalytical Category = "analytical"
	CategoryResults    Category = "results"
	CategoryCreative   Category = "creative"
	CategoryIndustry   Category = "industry"
)

// Categories lists every valid category.
var Categories = []Category{
	CategoryTechnical,
	CategoryLeadership,
	CategoryAnalytical,
	CategoryResults,
	CategoryCreative,
	CategoryIndustry,
}

// Valid reports whether the category is one of the known values.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Keyword is a catalogued term with its category and importance weight.
// Keywords are loaded once at engine construction and read-only thereafter.
type Keyword struct {
	Term     string   `json:"term" validate:"required,min=1"`
	Category Category `json:"category" validate:"required"`
	Weight   float64  `json:"weight" validate:"gt=0,lte=1"`
}
