package saturation

import (
	"testing"

	"github.com/jonathan/resume-match-engine/internal/keywords"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSet(t *testing.T) *keywords.Set {
	t.Helper()
	set, err := keywords.LoadDefault()
	require.NoError(t, err)
	return set
}

func TestAnalyze_MatchedAndMissing(t *testing.T) {
	a := NewAnalyzer(testSet(t))

	resume := "Deployed services on kubernetes with docker. Strong communication."
	jd := "We need Kubernetes, Docker, Terraform and communication skills."

	result := a.Analyze(resume, jd, "software")

	matchedTerms := make([]string, 0, len(result.Matched))
	for _, m := range result.Matched {
		matchedTerms = append(matchedTerms, m.Term)
	}
	missingTerms := make([]string, 0, len(result.Missing))
	for _, m := range result.Missing {
		missingTerms = append(missingTerms, m.Term)
	}

	assert.ElementsMatch(t, []string{"Kubernetes", "Docker", "communication"}, matchedTerms)
	assert.ElementsMatch(t, []string{"Terraform"}, missingTerms)
	assert.Greater(t, result.OverallScore, 0.0)
	assert.LessOrEqual(t, result.OverallScore, 100.0)
}

func TestAnalyze_PreservesJDCasing(t *testing.T) {
	a := NewAnalyzer(testSet(t))

	result := a.Analyze("nothing relevant here", "Requires LEADERSHIP above all", "general")

	require.Len(t, result.Missing, 1)
	assert.Equal(t, "LEADERSHIP", result.Missing[0].Term)
}

func TestAnalyze_ExampleScenario(t *testing.T) {
	// "Managed various teams" against a JD requiring Leadership: zero
	// matched, one missing.
	a := NewAnalyzer(testSet(t))

	result := a.Analyze("Managed various teams", "Leadership required", "general")

	assert.Empty(t, result.Matched)
	require.Len(t, result.Missing, 1)
	assert.Equal(t, "Leadership", result.Missing[0].Term)
	assert.Equal(t, keywords.CategoryLeadership, result.Missing[0].Category)
	assert.Equal(t, 1.0, result.Missing[0].Weight)
	assert.Equal(t, 0.0, result.OverallScore)
}

func TestAnalyze_MonotonicOnAddedKeyword(t *testing.T) {
	a := NewAnalyzer(testSet(t))

	jd := "Kubernetes and Docker and Terraform required"
	base := a.Analyze("I know kubernetes", jd, "software")
	richer := a.Analyze("I know kubernetes and docker", jd, "software")

	assert.GreaterOrEqual(t, richer.OverallScore, base.OverallScore)
}

func TestAnalyze_UnknownIndustryFallsBack(t *testing.T) {
	a := NewAnalyzer(testSet(t))

	result := a.Analyze("leadership", "leadership needed", "no-such-industry")

	assert.Equal(t, keywords.GenericIndustry, result.Industry)
	require.Len(t, result.Matched, 1)
}

func TestAnalyze_EmptyInputs(t *testing.T) {
	a := NewAnalyzer(testSet(t))

	result := a.Analyze("", "", "software")

	assert.Zero(t, result.OverallScore)
	assert.Empty(t, result.Matched)
	assert.Empty(t, result.Missing)
}

func TestAnalyze_CategoryBreakdown(t *testing.T) {
	a := NewAnalyzer(testSet(t))

	result := a.Analyze("docker expert", "docker and leadership", "software")

	tech := result.Breakdown[keywords.CategoryTechnical]
	assert.Equal(t, 1, tech.Matched)
	assert.Equal(t, 1, tech.Required)
	assert.Equal(t, 100.0, tech.Score)

	lead := result.Breakdown[keywords.CategoryLeadership]
	assert.Equal(t, 0, lead.Matched)
	assert.Equal(t, 1, lead.Required)
}
