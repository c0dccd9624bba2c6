// Package scoring combines keyword, format, and completeness sub-scores into
// the final 0-100 compatibility score using tiered weight tables.
package scoring

import (
	"fmt"
	"math"
)

// Tier names the weight table a score was computed with.
type Tier string

const (
	TierFree    Tier = "free"
	TierPremium Tier = "premium"
)

// Weights is one tier's weight table. The constants are product-tuned
// configuration, not algorithmic truths; they can be changed without touching
// the formula.
type Weights struct {
	Keyword      float64 `json:"keyword" validate:"gte=0,lte=1"`
	Format       float64 `json:"format" validate:"gte=0,lte=1"`
	Completeness float64 `json:"completeness" validate:"gte=0,lte=1"`
}

// sum returns the total of the three weights.
func (w Weights) sum() float64 {
	return w.Keyword + w.Format + w.Completeness
}

// Config holds both tier tables plus the early-exit thresholds and floors.
type Config struct {
	Free             Weights `json:"free"`
	Premium          Weights `json:"premium"`
	FreeFloor        float64 `json:"freeFloor" validate:"gte=0,lte=100"`
	PremiumFloor     float64 `json:"premiumFloor" validate:"gte=0,lte=100"`
	EarlyExitKeyword float64 `json:"earlyExitKeyword" validate:"gte=0,lte=100"`
	EarlyExitFormat  float64 `json:"earlyExitFormat" validate:"gte=0,lte=100"`
	MLBlendBase      float64 `json:"mlBlendBase" validate:"gte=0,lte=1"`
	MLBlendBoost     float64 `json:"mlBlendBoost" validate:"gte=0,lte=1"`
}

// DefaultConfig returns the reference weight tables: free 0.40/0.35/0.25,
// premium 0.45/0.30/0.25, floors 25/35, early exit below keyword 20 and
// format 30, ML blend 0.7/0.3.
func DefaultConfig() Config {
	return Config{
		Free:             Weights{Keyword: 0.40, Format: 0.35, Completeness: 0.25},
		Premium:          Weights{Keyword: 0.45, Format: 0.30, Completeness: 0.25},
		FreeFloor:        25,
		PremiumFloor:     35,
		EarlyExitKeyword: 20,
		EarlyExitFormat:  30,
		MLBlendBase:      0.7,
		MLBlendBoost:     0.3,
	}
}

// Validate checks the weight tables at configuration time. Each tier's
// weights must sum to 1 within a small tolerance.
func (c Config) Validate() error {
	const tolerance = 0.001
	if math.Abs(c.Free.sum()-1) > tolerance {
		return fmt.Errorf("free tier weights must sum to 1.0, got %.3f", c.Free.sum())
	}
	if math.Abs(c.Premium.sum()-1) > tolerance {
		return fmt.Errorf("premium tier weights must sum to 1.0, got %.3f", c.Premium.sum())
	}
	if math.Abs(c.MLBlendBase+c.MLBlendBoost-1) > tolerance {
		return fmt.Errorf("ML blend factors must sum to 1.0, got %.3f", c.MLBlendBase+c.MLBlendBoost)
	}
	return nil
}

// Breakdown is the immutable scoring result returned to the caller.
type Breakdown struct {
	KeywordScore      float64 `json:"keywordScore"`
	FormatScore       float64 `json:"formatScore"`
	CompletenessScore float64 `json:"completenessScore"`
	ImpactScore       float64 `json:"impactScore"`
	FinalScore        int     `json:"finalScore"`
	Tier              Tier    `json:"tier"`
	Weights           Weights `json:"weights"`
}

// Score computes the final compatibility score. Near-empty documents short-
// circuit to the tier floor before the weighted formula can amplify noise.
// The result is always an integer in [0,100], with out-of-range sub-scores
// clamped rather than rejected.
func (c Config) Score(keywordScore, formatScore, completenessScore float64, premium bool, mlBoost float64) int {
	if keywordScore < c.EarlyExitKeyword && formatScore < c.EarlyExitFormat {
		if premium {
			return int(c.PremiumFloor)
		}
		return int(c.FreeFloor)
	}

	weights := c.Free
	if premium {
		weights = c.Premium
	}

	score := keywordScore*weights.Keyword +
		formatScore*weights.Format +
		completenessScore*weights.Completeness

	if premium && mlBoost > 0 {
		score = score*c.MLBlendBase + mlBoost*c.MLBlendBoost
	}

	return clampInt(int(math.Round(score)), 0, 100)
}

// TierWeights returns the weight table for the given tier flag.
func (c Config) TierWeights(premium bool) (Tier, Weights) {
	if premium {
		return TierPremium, c.Premium
	}
	return TierFree, c.Free
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
