package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooleanSearch(t *testing.T) {
	ix, _, norm := frenchFixture(t)
	b := NewBoolean(ix, norm)

	t.Run("conjunction of query terms", func(t *testing.T) {
		results := b.Search("chat souris", 0)
		assert.Equal(t, []int{1, 3}, RankedIDs(results))
		for _, r := range results {
			assert.Equal(t, 1.0, r.Score)
		}
	})

	t.Run("results ordered by ascending id", func(t *testing.T) {
		results := b.Search("mange", 0)
		assert.Equal(t, []int{1, 2}, RankedIDs(results))
	})

	t.Run("topK truncates", func(t *testing.T) {
		assert.Equal(t, []int{1}, RankedIDs(b.Search("mange", 1)))
	})

	t.Run("term missing from a document empties the conjunction", func(t *testing.T) {
		assert.Empty(t, b.Search("chat chien", 0))
	})

	t.Run("unknown word matches nothing", func(t *testing.T) {
		assert.Empty(t, b.Search("girafe", 0))
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, b.Search("", 0))
	})

	t.Run("query of stop words and short tokens", func(t *testing.T) {
		// "os" is below the minimum token length, "le" is a stop word.
		assert.Empty(t, b.Search("le os", 0))
	})
}

func TestBooleanSetOperations(t *testing.T) {
	ix, _, norm := frenchFixture(t)
	b := NewBoolean(ix, norm)

	chatTerm := norm.Normalize("chat")[0]
	chienTerm := norm.Normalize("chien")[0]
	sourisTerm := norm.Normalize("souris")[0]

	t.Run("and", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, b.SearchAnd([]string{chatTerm, sourisTerm}).Sorted())
	})

	t.Run("or", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, b.SearchOr([]string{chienTerm, sourisTerm}).Sorted())
		assert.Empty(t, b.SearchOr(nil))
	})

	t.Run("not", func(t *testing.T) {
		assert.Equal(t, []int{2}, b.SearchNot(chatTerm).Sorted())
		assert.Equal(t, []int{1, 2, 3}, b.SearchNot("girafe").Sorted())
	})
}

func TestBooleanSearchExpression(t *testing.T) {
	ix, _, norm := frenchFixture(t)
	b := NewBoolean(ix, norm)

	t.Run("explicit and", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, b.SearchExpression("chat AND souris").Sorted())
	})

	t.Run("or", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, b.SearchExpression("chat OR chien").Sorted())
	})

	t.Run("and with negation", func(t *testing.T) {
		assert.Equal(t, []int{1}, b.SearchExpression("mange NOT chien").Sorted())
	})

	t.Run("pure negation", func(t *testing.T) {
		assert.Equal(t, []int{2}, b.SearchExpression("NOT chat").Sorted())
	})

	t.Run("operators are case-insensitive", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 3}, b.SearchExpression("chat or chien").Sorted())
	})

	t.Run("empty expression", func(t *testing.T) {
		require.NotNil(t, b.SearchExpression(""))
		assert.Empty(t, b.SearchExpression(""))
	})

	t.Run("negated unknown word is harmless", func(t *testing.T) {
		assert.Equal(t, []int{1, 3}, b.SearchExpression("chat NOT girafe").Sorted())
	})
}
