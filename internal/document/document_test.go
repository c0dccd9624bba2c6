package document

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNew_Normalizes(t *testing.T) {
	doc := New("  Led Teams\r\nShipped Products\r")

	assert.Equal(t, "led teams\nshipped products", doc.Normalized)
	assert.Equal(t, []string{"led", "teams", "shipped", "products"}, doc.Tokens)
	assert.Equal(t, 4, doc.WordCount())
}

func TestNew_EmptyText(t *testing.T) {
	doc := New("")

	assert.Equal(t, "", doc.Normalized)
	assert.Empty(t, doc.Tokens)
	assert.Equal(t, 0, doc.WordCount())
}

func TestLines_PreservesCasing(t *testing.T) {
	doc := New("Managed teams\r\nBuilt systems")

	lines := doc.Lines()
	assert.Equal(t, []string{"Managed teams", "Built systems"}, lines)
}

func TestWordSet_Deduplicates(t *testing.T) {
	doc := New("go go go kubernetes")

	set := doc.WordSet()
	assert.Len(t, set, 2)
	assert.Contains(t, set, "go")
	assert.Contains(t, set, "kubernetes")
}
