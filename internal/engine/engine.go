// Package engine wires the analysis components into a single façade used by
// hosting applications.
package engine

import (
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/resume-match-engine/internal/cache"
	"github.com/jonathan/resume-match-engine/internal/config"
	"github.com/jonathan/resume-match-engine/internal/contact"
	"github.com/jonathan/resume-match-engine/internal/features"
	"github.com/jonathan/resume-match-engine/internal/fluff"
	"github.com/jonathan/resume-match-engine/internal/impact"
	"github.com/jonathan/resume-match-engine/internal/keywords"
	"github.com/jonathan/resume-match-engine/internal/saturation"
	"github.com/jonathan/resume-match-engine/internal/scoring"
	"github.com/jonathan/resume-match-engine/internal/suggest"
)

// Options selects per-request analysis behavior.
type Options struct {
	// Industry picks the keyword catalogue; empty uses the configured default.
	Industry string
	// Premium selects the premium weight table and enables the ML blend.
	Premium bool
	// MLBoost is an externally computed signal in [0,100]; values outside the
	// range are clamped, zero disables the blend.
	MLBoost float64
	// MaxSuggestions caps missing-keyword suggestions; zero uses the
	// configured default.
	MaxSuggestions int
}

// Report is the full analysis of one resume against one job description.
type Report struct {
	ID          string               `json:"id"`
	GeneratedAt time.Time            `json:"generatedAt"`
	Industry    string               `json:"industry"`
	Features    features.Vector      `json:"features"`
	Saturation  saturation.Result    `json:"saturation"`
	Impact      impact.Result        `json:"impact"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
	Contact     contact.Info         `json:"contact"`
	Fluff       fluff.Report         `json:"fluff"`
	Score       scoring.Breakdown    `json:"score"`
}

// Engine owns the loaded catalogues, the compiled phrase lexicon, the scoring
// tables, and the prediction cache. Everything except the cache is read-only
// after construction, so an Engine is safe for concurrent use.
type Engine struct {
	cfg        config.Config
	catalogs   *keywords.Set
	analyzer   *saturation.Analyzer
	detector   *fluff.Detector
	scoringCfg scoring.Config
	scores     *cache.Cache[scoring.Breakdown]
}

// New builds an Engine from configuration, failing fast on an invalid config,
// a malformed catalogue, or a malformed lexicon. No error path remains after
// construction; per-request inputs degrade gracefully instead.
func New(cfg config.Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	catalogs, err := loadCatalogs(cfg)
	if err != nil {
		return nil, err
	}

	detector, err := loadDetector(cfg)
	if err != nil {
		return nil, err
	}

	ttl, err := cfg.TTL()
	if err != nil {
		return nil, err
	}
	scores, err := cache.New[scoring.Breakdown](
		cache.WithTTL[scoring.Breakdown](ttl),
		cache.WithCapacity[scoring.Breakdown](cfg.CacheCapacity),
	)
	if err != nil {
		return nil, err
	}

	scoringCfg := cfg.ScoringConfig()
	if err := scoringCfg.Validate(); err != nil {
		return nil, err
	}

	return &Engine{
		cfg:        cfg,
		catalogs:   catalogs,
		analyzer:   saturation.NewAnalyzer(catalogs),
		detector:   detector,
		scoringCfg: scoringCfg,
		scores:     scores,
	}, nil
}

func loadCatalogs(cfg config.Config) (*keywords.Set, error) {
	if cfg.CatalogPath != "" {
		return keywords.LoadFile(cfg.CatalogPath)
	}
	return keywords.LoadDefault()
}

func loadDetector(cfg config.Config) (*fluff.Detector, error) {
	if cfg.LexiconPath != "" {
		return fluff.NewDetectorFromFile(cfg.LexiconPath)
	}
	return fluff.NewDetector()
}

// ExtractFeatures computes the feature vector for text against an optional
// job description.
func (e *Engine) ExtractFeatures(text, jobDescription string) features.Vector {
	return features.Extract(text, jobDescription)
}

// AnalyzeKeywordSaturation reports matched and missing catalogue keywords.
func (e *Engine) AnalyzeKeywordSaturation(resume, jobDescription, industry string) saturation.Result {
	return e.analyzer.Analyze(resume, jobDescription, e.industryOrDefault(industry))
}

// AnalyzeImpactMetrics reports bullet quantification for resume text.
func (e *Engine) AnalyzeImpactMetrics(text string) impact.Result {
	return impact.Analyze(text)
}

// SuggestMissingKeywords ranks missing keywords into concrete suggestions.
func (e *Engine) SuggestMissingKeywords(missing []saturation.MissingKeyword, maxCount int) []suggest.Suggestion {
	if maxCount <= 0 {
		maxCount = e.cfg.MaxSuggestions
	}
	return suggest.Generate(missing, maxCount)
}

// ScoreCompatibility combines sub-scores into the final 0-100 score.
func (e *Engine) ScoreCompatibility(keywordScore, formatScore, completenessScore float64, premium bool, mlBoost float64) int {
	return e.scoringCfg.Score(keywordScore, formatScore, completenessScore, premium, clampBoost(mlBoost))
}

// ExtractContactInfo pulls contact fields from resume text.
func (e *Engine) ExtractContactInfo(text string) contact.Info {
	return contact.Extract(text)
}

// DetectWeakPhrases runs the weak-phrase lexicon over text.
func (e *Engine) DetectWeakPhrases(text string) fluff.Report {
	return e.detector.Analyze(text)
}

// GetOrCompute memoizes a scoring computation under the vector's canonical
// key. Callers whose computation depends on more than the vector should fold
// the extra inputs into their own key via the cache directly.
func (e *Engine) GetOrCompute(v features.Vector, compute func() (scoring.Breakdown, error)) (scoring.Breakdown, error) {
	return e.scores.GetOrCompute(v.Key(), compute)
}

// CacheStats snapshots prediction-cache health.
func (e *Engine) CacheStats() cache.Stats {
	return e.scores.Stats()
}

// VerbSuggestions exposes the lexicon's strong-verb groups.
func (e *Engine) VerbSuggestions() []fluff.VerbGroup {
	return e.detector.VerbSuggestions()
}

// Industries lists the catalogue's configured industry tags.
func (e *Engine) Industries() []string {
	return e.catalogs.Industries()
}

// Analyze runs the full pipeline: features, saturation, impact, suggestions,
// contact, fluff, and the cached compatibility score.
func (e *Engine) Analyze(resume, jobDescription string, opts Options) (Report, error) {
	industry := e.industryOrDefault(opts.Industry)

	vector := features.Extract(resume, jobDescription)
	sat := e.analyzer.Analyze(resume, jobDescription, industry)
	imp := impact.Analyze(resume)

	maxSuggestions := opts.MaxSuggestions
	if maxSuggestions <= 0 {
		maxSuggestions = e.cfg.MaxSuggestions
	}

	breakdown, err := e.scores.GetOrCompute(scoreKey(vector, industry, opts), func() (scoring.Breakdown, error) {
		return e.scoreBreakdown(vector, sat.OverallScore, imp.QuantificationRate, opts), nil
	})
	if err != nil {
		return Report{}, err
	}

	return Report{
		ID:          uuid.NewString(),
		GeneratedAt: time.Now().UTC(),
		Industry:    industry,
		Features:    vector,
		Saturation:  sat,
		Impact:      imp,
		Suggestions: suggest.Generate(sat.Missing, maxSuggestions),
		Contact:     contact.Extract(resume),
		Fluff:       e.detector.Analyze(resume),
		Score:       breakdown,
	}, nil
}

// scoreBreakdown assembles sub-scores and runs the scorer.
func (e *Engine) scoreBreakdown(vector features.Vector, keywordScore, quantificationRate float64, opts Options) scoring.Breakdown {
	formatScore := features.FormatScore(vector)
	completeness := features.CompletenessScore(quantificationRate, vector)
	boost := clampBoost(opts.MLBoost)

	tier, weights := e.scoringCfg.TierWeights(opts.Premium)
	return scoring.Breakdown{
		KeywordScore:      keywordScore,
		FormatScore:       formatScore,
		CompletenessScore: completeness,
		ImpactScore:       quantificationRate * 100,
		FinalScore:        e.scoringCfg.Score(keywordScore, formatScore, completeness, opts.Premium, boost),
		Tier:              tier,
		Weights:           weights,
	}
}

// scoreKey extends the vector's canonical key with the inputs that change the
// score for the same vector, so cache entries never cross tiers, industries,
// or boost values.
func scoreKey(v features.Vector, industry string, opts Options) string {
	return fmt.Sprintf("%s|industry:%s|premium:%t|boost:%.2f",
		v.Key(), industry, opts.Premium, clampBoost(opts.MLBoost))
}

func (e *Engine) industryOrDefault(tag string) string {
	if tag == "" {
		return e.cfg.DefaultIndustry
	}
	return tag
}

func clampBoost(boost float64) float64 {
	if boost < 0 {
		return 0
	}
	if boost > 100 {
		return 100
	}
	return boost
}
