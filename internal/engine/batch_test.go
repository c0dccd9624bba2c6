package engine

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAnalyzeBatchIndexAssociation(t *testing.T) {
	e := newTestEngine(t)

	resumes := []string{
		testResume,
		"",
		"Shipped various features using Docker and Kubernetes across 12 teams",
	}

	reports, err := e.AnalyzeBatch(context.Background(), resumes, testJD, Options{Industry: "software"})
	require.NoError(t, err)
	require.Len(t, reports, len(resumes))

	// Index 1 is the empty resume; only it hits the floor with no contact info.
	assert.Equal(t, 25, reports[1].Score.FinalScore)
	assert.Empty(t, reports[1].Contact.Email)
	assert.Equal(t, "jane.smith@example.com", reports[0].Contact.Email)
	assert.NotEmpty(t, reports[2].Fluff.WeakPhrases, "index 2 contains a vague quantifier")
}

func TestAnalyzeBatchEmptyInput(t *testing.T) {
	e := newTestEngine(t)

	reports, err := e.AnalyzeBatch(context.Background(), nil, testJD, Options{})
	require.NoError(t, err)
	assert.Empty(t, reports)
}

func TestAnalyzeBatchCancelledContext(t *testing.T) {
	e := newTestEngine(t)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	resumes := make([]string, 32)
	for i := range resumes {
		resumes[i] = fmt.Sprintf("resume %d with docker experience", i)
	}

	_, err := e.AnalyzeBatch(ctx, resumes, testJD, Options{})
	require.ErrorIs(t, err, context.Canceled)
}

func TestAnalyzeBatchMatchesSingleAnalysis(t *testing.T) {
	e := newTestEngine(t)

	single, err := e.Analyze(testResume, testJD, Options{Industry: "software"})
	require.NoError(t, err)

	reports, err := e.AnalyzeBatch(context.Background(), []string{testResume}, testJD, Options{Industry: "software"})
	require.NoError(t, err)
	require.Len(t, reports, 1)

	assert.Equal(t, single.Score, reports[0].Score)
	assert.Equal(t, single.Saturation, reports[0].Saturation)
	assert.NotEqual(t, single.ID, reports[0].ID, "every report gets a fresh id")
}
