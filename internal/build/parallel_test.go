package build

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AziizBg/ri/internal/corpus"
	"github.com/AziizBg/ri/internal/textnorm"
)

func englishCfg() textnorm.Config {
	return textnorm.Config{Language: textnorm.LanguageEnglish}
}

func syntheticDocs(n int) []corpus.Document {
	docs := make([]corpus.Document, n)
	for i := range docs {
		docs[i] = corpus.Document{
			ID:   i + 1,
			Text: fmt.Sprintf("document number %d about searching and indexing topic%d", i+1, i%5),
		}
	}
	return docs
}

func TestBuildDeterministicAcrossWorkerCounts(t *testing.T) {
	docs := syntheticDocs(23)

	ref, refProcessed, err := New(englishCfg(), 1).Build(context.Background(), docs)
	require.NoError(t, err)

	for _, workers := range []int{2, 4, 8, 64} {
		t.Run(fmt.Sprintf("workers=%d", workers), func(t *testing.T) {
			ix, processed, err := New(englishCfg(), workers).Build(context.Background(), docs)
			require.NoError(t, err)
			assert.Equal(t, ref.Snapshot(), ix.Snapshot())
			assert.Equal(t, refProcessed, processed)
		})
	}
}

func TestBuildMatchesSequentialIndex(t *testing.T) {
	docs := syntheticDocs(10)
	ix, processed, err := New(englishCfg(), 4).Build(context.Background(), docs)
	require.NoError(t, err)

	require.Len(t, processed, len(docs))
	for i, p := range processed {
		assert.Equal(t, docs[i].ID, p.ID)
		assert.Equal(t, textnorm.New(englishCfg()).Normalize(docs[i].Text), p.Terms)
	}
	assert.Equal(t, len(docs), ix.DocCount())
}

func TestBuildEmptyCorpus(t *testing.T) {
	ix, processed, err := New(englishCfg(), 4).Build(context.Background(), nil)
	require.NoError(t, err)
	assert.Equal(t, 0, ix.DocCount())
	assert.Empty(t, processed)
}

func TestBuildMoreWorkersThanDocs(t *testing.T) {
	docs := syntheticDocs(3)
	ix, _, err := New(englishCfg(), 16).Build(context.Background(), docs)
	require.NoError(t, err)
	assert.Equal(t, 3, ix.DocCount())
}

func TestBuildCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	ix, processed, err := New(englishCfg(), 4).Build(ctx, syntheticDocs(50))
	require.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, ix)
	assert.Nil(t, processed)
}

func TestBuildDefaultWorkers(t *testing.T) {
	// workers <= 0 resolves to NumCPU rather than failing.
	ix, _, err := New(englishCfg(), 0).Build(context.Background(), syntheticDocs(5))
	require.NoError(t, err)
	assert.Equal(t, 5, ix.DocCount())
}
