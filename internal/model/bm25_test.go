package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AziizBg/ri/internal/textnorm"
)

func bm25Fixture(t *testing.T, params BM25Params) *BM25 {
	t.Helper()
	ix, docs, norm := buildFixture(t, textnorm.LanguageEnglish,
		"apple apple banana",
		"apple banana cherry",
		"durian fig grape",
		"kiwi lemon mango",
		"melon orange peach",
	)
	return NewBM25(ix, docs, norm, params)
}

func TestBM25Search(t *testing.T) {
	m := bm25Fixture(t, BM25Params{})

	t.Run("higher term frequency ranks first", func(t *testing.T) {
		// Docs 1 and 2 have equal length; doc 1 contains the term
		// twice.
		results := m.Search("apple", 0)
		require.Equal(t, []int{1, 2}, RankedIDs(results))
		assert.Greater(t, results[0].Score, results[1].Score)
	})

	t.Run("equal scores tie-break by id", func(t *testing.T) {
		results := m.Search("banana", 0)
		require.Equal(t, []int{1, 2}, RankedIDs(results))
		assert.InDelta(t, results[0].Score, results[1].Score, 1e-12)
	})

	t.Run("only documents containing a query term score", func(t *testing.T) {
		for _, r := range m.Search("apple banana", 0) {
			assert.Contains(t, []int{1, 2}, r.DocID)
			assert.Greater(t, r.Score, 0.0)
		}
	})

	t.Run("absent term matches nothing", func(t *testing.T) {
		assert.Empty(t, m.Search("zucchini", 0))
	})

	t.Run("widespread term keeps negative scores ranked", func(t *testing.T) {
		// "chat" appears in 2 of 3 documents, so its idf is negative;
		// the matching documents must still be returned, and the
		// non-matching one must not.
		ix, docs, norm := frenchFixture(t)
		fr := NewBM25(ix, docs, norm, BM25Params{})

		results := fr.Search("chat", 0)
		require.Equal(t, []int{1, 3}, RankedIDs(results))
		for _, r := range results {
			assert.Negative(t, r.Score)
		}
	})

	t.Run("topK truncates", func(t *testing.T) {
		assert.Len(t, m.Search("apple", 1), 1)
	})

	t.Run("empty query", func(t *testing.T) {
		assert.Empty(t, m.Search("", 0))
	})
}

func TestBM25Params(t *testing.T) {
	t.Run("out-of-range values fall back to defaults", func(t *testing.T) {
		def := bm25Fixture(t, BM25Params{})
		bad := bm25Fixture(t, BM25Params{K1: -1, B: 2})
		assert.Equal(t, def.Search("apple banana", 0), bad.Search("apple banana", 0))
	})

	t.Run("zero value resolves to documented defaults", func(t *testing.T) {
		p := BM25Params{}.withDefaults()
		assert.Equal(t, DefaultK1, p.K1)
		assert.Equal(t, DefaultB, p.B)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		p := BM25Params{K1: 1.2, B: 0.25}.withDefaults()
		assert.Equal(t, 1.2, p.K1)
		assert.Equal(t, 0.25, p.B)
	})

	t.Run("zero b is treated as unset", func(t *testing.T) {
		p := BM25Params{K1: 1.2}.withDefaults()
		assert.Equal(t, DefaultB, p.B)
	})
}

func TestBM25Name(t *testing.T) {
	assert.Equal(t, NameBM25, bm25Fixture(t, BM25Params{}).Name())
}
