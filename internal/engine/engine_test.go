package engine

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/resume-match-engine/internal/config"
	"github.com/jonathan/resume-match-engine/internal/saturation"
	"github.com/jonathan/resume-match-engine/internal/scoring"
)

const testResume = `Jane Smith
jane.smith@example.com | (555) 123-4567

EXPERIENCE

- Led migration of 40 services to Kubernetes, cutting deploy time by 60%
- Built Docker-based CI pipeline serving 200 engineers
- Improved API latency by 35% through profiling and caching`

const testJD = `Looking for a platform engineer with Kubernetes and Docker experience.
Strong communication skills required. Terraform is a plus.`

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	e, err := New(config.Default())
	require.NoError(t, err)
	return e
}

func TestNewFailsFastOnBadConfig(t *testing.T) {
	cfg := config.Default()
	cfg.CacheTTL = "bogus"
	_, err := New(cfg)
	require.Error(t, err)

	cfg = config.Default()
	cfg.CatalogPath = "/nonexistent/catalogs.json"
	_, err = New(cfg)
	require.Error(t, err)

	bad := scoring.DefaultConfig()
	bad.Free.Keyword = 0.9
	cfg = config.Default()
	cfg.Scoring = &bad
	_, err = New(cfg)
	require.Error(t, err)
}

func TestAnalyzeProducesFullReport(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.Analyze(testResume, testJD, Options{Industry: "software"})
	require.NoError(t, err)

	_, err = uuid.Parse(report.ID)
	require.NoError(t, err)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, "software", report.Industry)

	assert.Equal(t, "jane.smith@example.com", report.Contact.Email)
	assert.NotEmpty(t, report.Features)
	assert.Greater(t, report.Saturation.OverallScore, 0.0)
	assert.Greater(t, report.Impact.TotalBullets, 0)
	assert.NotZero(t, report.Score.FinalScore)
	assert.Equal(t, scoring.TierFree, report.Score.Tier)
}

func TestAnalyzeUsesDefaultIndustry(t *testing.T) {
	cfg := config.Default()
	cfg.DefaultIndustry = "software"
	e, err := New(cfg)
	require.NoError(t, err)

	report, err := e.Analyze(testResume, testJD, Options{})
	require.NoError(t, err)
	assert.Equal(t, "software", report.Industry)
}

func TestAnalyzeIsDeterministic(t *testing.T) {
	a := newTestEngine(t)
	b := newTestEngine(t)

	ra, err := a.Analyze(testResume, testJD, Options{Industry: "software"})
	require.NoError(t, err)
	rb, err := b.Analyze(testResume, testJD, Options{Industry: "software"})
	require.NoError(t, err)

	assert.Equal(t, ra.Score, rb.Score)
	assert.Equal(t, ra.Saturation, rb.Saturation)
	assert.Equal(t, ra.Suggestions, rb.Suggestions)
}

func TestAnalyzeEmptyResumeHitsFreeFloor(t *testing.T) {
	e := newTestEngine(t)

	report, err := e.Analyze("", testJD, Options{})
	require.NoError(t, err)

	assert.Equal(t, 25, report.Score.FinalScore)
	assert.Zero(t, report.Saturation.OverallScore)
	assert.Empty(t, report.Contact.Email)
}

func TestAnalyzeCachesScore(t *testing.T) {
	e := newTestEngine(t)

	_, err := e.Analyze(testResume, testJD, Options{Industry: "software"})
	require.NoError(t, err)
	_, err = e.Analyze(testResume, testJD, Options{Industry: "software"})
	require.NoError(t, err)

	stats := e.CacheStats()
	assert.Equal(t, 1, stats.Size)
	assert.InDelta(t, 0.5, stats.HitRate, 1e-9, "second analysis should hit the cache")
}

func TestAnalyzeCacheRespectsTier(t *testing.T) {
	e := newTestEngine(t)

	free, err := e.Analyze(testResume, testJD, Options{Industry: "software"})
	require.NoError(t, err)
	premium, err := e.Analyze(testResume, testJD, Options{Industry: "software", Premium: true})
	require.NoError(t, err)

	assert.Equal(t, scoring.TierFree, free.Score.Tier)
	assert.Equal(t, scoring.TierPremium, premium.Score.Tier)
	assert.Equal(t, 2, e.CacheStats().Size)
}

func TestAnalyzeSuggestionCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxSuggestions = 1
	e, err := New(cfg)
	require.NoError(t, err)

	report, err := e.Analyze("plain text with no relevant skills", testJD, Options{Industry: "software"})
	require.NoError(t, err)
	assert.Len(t, report.Suggestions, 1)

	report, err = e.Analyze("plain text with no relevant skills", testJD, Options{Industry: "software", MaxSuggestions: 2})
	require.NoError(t, err)
	assert.Len(t, report.Suggestions, 2)
}

func TestScoreCompatibilityClampsBoost(t *testing.T) {
	e := newTestEngine(t)

	base := e.ScoreCompatibility(80, 70, 60, true, 100)
	over := e.ScoreCompatibility(80, 70, 60, true, 500)
	assert.Equal(t, base, over)

	noBoost := e.ScoreCompatibility(80, 70, 60, true, 0)
	negative := e.ScoreCompatibility(80, 70, 60, true, -10)
	assert.Equal(t, noBoost, negative)
}

func TestSuggestMissingKeywordsDefaultCap(t *testing.T) {
	cfg := config.Default()
	cfg.MaxSuggestions = 2
	e, err := New(cfg)
	require.NoError(t, err)

	missing := []saturation.MissingKeyword{
		{Term: "kubernetes", Category: "technical", Weight: 1.0, JDCount: 2},
		{Term: "docker", Category: "technical", Weight: 0.9, JDCount: 1},
		{Term: "terraform", Category: "technical", Weight: 0.8, JDCount: 1},
	}
	assert.Len(t, e.SuggestMissingKeywords(missing, 0), 2)
	assert.Len(t, e.SuggestMissingKeywords(missing, 3), 3)
}

func TestIndustriesAndVerbSuggestions(t *testing.T) {
	e := newTestEngine(t)

	assert.Contains(t, e.Industries(), "general")
	assert.Contains(t, e.Industries(), "software")
	assert.Len(t, e.VerbSuggestions(), 5)
}

func TestGetOrComputeMemoizes(t *testing.T) {
	e := newTestEngine(t)
	vector := e.ExtractFeatures(testResume, testJD)

	calls := 0
	compute := func() (scoring.Breakdown, error) {
		calls++
		return scoring.Breakdown{FinalScore: 88}, nil
	}

	first, err := e.GetOrCompute(vector, compute)
	require.NoError(t, err)
	second, err := e.GetOrCompute(vector, compute)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.Equal(t, 1, calls)
}
