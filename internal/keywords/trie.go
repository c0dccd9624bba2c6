package keywords

import (
	"sort"
	"strings"
)

// minTermLength excludes keywords too short to match meaningfully.
const minTermLength = 3

// Trie is a prefix tree over lower-cased keyword characters. It is built once
// per keyword set and is read-only during scanning, so a single Trie is safe
// for unsynchronized concurrent readers.
type Trie struct {
	root *trieNode
}

type trieNode struct {
	children map[rune]*trieNode
	term     string // non-empty marks an end-of-word node
}

// Match records the occurrences of one keyword in a scanned text.
type Match struct {
	Term      string
	Count     int
	Positions []int // rune offsets of each match start
}

// NewTrie builds a trie from the given keywords. Terms shorter than three
// characters are skipped.
func NewTrie(kws []Keyword) *Trie {
	t := &Trie{root: &trieNode{children: make(map[rune]*trieNode)}}
	for _, kw := range kws {
		t.insert(kw.Term)
	}
	return t
}

func (t *Trie) insert(term string) {
	lowered := strings.ToLower(term)
	if len([]rune(lowered)) < minTermLength {
		return
	}

	node := t.root
	for _, r := range lowered {
		child, ok := node.children[r]
		if !ok {
			child = &trieNode{children: make(map[rune]*trieNode)}
			node.children[r] = child
		}
		node = child
	}
	node.term = lowered
}

// Scan walks the lower-cased text once, attempting a trie walk from every rune
// position. The walk stops at the first end-of-word marker it reaches, so a
// keyword that is a prefix of another (e.g. "lead" vs "leadership") matches at
// the shorter terminal. This favors recall over precision and is intentional.
// Results are sorted by term for deterministic output.
func (t *Trie) Scan(text string) []Match {
	runes := []rune(strings.ToLower(text))

	byTerm := make(map[string]*Match)
	for i := range runes {
		node := t.root
		for j := i; j < len(runes); j++ {
			child, ok := node.children[runes[j]]
			if !ok {
				break
			}
			node = child
			if node.term != "" {
				m, exists := byTerm[node.term]
				if !exists {
					m = &Match{Term: node.term}
					byTerm[node.term] = m
				}
				m.Count++
				m.Positions = append(m.Positions, i)
				break
			}
		}
	}

	matches := make([]Match, 0, len(byTerm))
	for _, m := range byTerm {
		matches = append(matches, *m)
	}
	sort.Slice(matches, func(a, b int) bool { return matches[a].Term < matches[b].Term })
	return matches
}

// Counts returns a term-to-occurrence-count map for the scanned text.
func (t *Trie) Counts(text string) map[string]int {
	counts := make(map[string]int)
	for _, m := range t.Scan(text) {
		counts[m.Term] = m.Count
	}
	return counts
}
