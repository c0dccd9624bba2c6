package keywords

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func kw(term string) Keyword {
	return Keyword{Term: term, Category: CategoryTechnical, Weight: 1.0}
}

func TestTrieScan_AllKeywordsFound(t *testing.T) {
	terms := []Keyword{kw("docker"), kw("kubernetes"), kw("terraform"), kw("postgresql")}
	trie := NewTrie(terms)

	matches := trie.Scan("Deployed postgresql on kubernetes with terraform and docker.")

	require.Len(t, matches, 4)
	total := 0
	for _, m := range matches {
		assert.Equal(t, 1, m.Count)
		total += m.Count
	}
	assert.Equal(t, len(terms), total)
}

func TestTrieScan_CountsAndPositions(t *testing.T) {
	trie := NewTrie([]Keyword{kw("docker")})

	matches := trie.Scan("docker then more docker")

	require.Len(t, matches, 1)
	assert.Equal(t, "docker", matches[0].Term)
	assert.Equal(t, 2, matches[0].Count)
	assert.Equal(t, []int{0, 17}, matches[0].Positions)
}

func TestTrieScan_CaseInsensitive(t *testing.T) {
	trie := NewTrie([]Keyword{kw("Kubernetes")})

	counts := trie.Counts("KUBERNETES and kubernetes")
	assert.Equal(t, 2, counts["kubernetes"])
}

func TestTrieScan_ShortestPrefixTerminalWins(t *testing.T) {
	// "lead" is a prefix of "leadership"; the scan stops at the shorter
	// terminal the moment it is reached.
	trie := NewTrie([]Keyword{kw("lead"), kw("leadership")})

	counts := trie.Counts("leadership")

	assert.Equal(t, 1, counts["lead"])
	assert.Zero(t, counts["leadership"])
}

func TestTrieScan_LongerKeywordStillMatchesAlone(t *testing.T) {
	trie := NewTrie([]Keyword{kw("leadership")})

	counts := trie.Counts("demonstrated leadership daily")
	assert.Equal(t, 1, counts["leadership"])
}

func TestTrie_SkipsShortKeywords(t *testing.T) {
	trie := NewTrie([]Keyword{kw("go"), kw("aws")})

	counts := trie.Counts("go aws go")
	assert.Zero(t, counts["go"])
	assert.Equal(t, 1, counts["aws"])
}

func TestTrieScan_EmptyText(t *testing.T) {
	trie := NewTrie([]Keyword{kw("docker")})
	assert.Empty(t, trie.Scan(""))
}
