package index

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComputeStats(t *testing.T) {
	ix := New()
	ix.Build(testDocs())

	st := ix.ComputeStats(2)
	assert.Equal(t, 5, st.TermCount)
	assert.Equal(t, 3, st.DocCount)
	// 1+2+3+2+1 postings over 5 terms.
	assert.InDelta(t, 1.8, st.AvgPostingLen, 1e-9)
	assert.Equal(t, []TermFreq{
		{Term: "cherry", DocFreq: 3},
		{Term: "banana", DocFreq: 2},
	}, st.TopTerms)
}

func TestComputeStatsTiesBreakByTerm(t *testing.T) {
	ix := New()
	ix.Build(testDocs())

	st := ix.ComputeStats(3)
	// banana and durian both have frequency 2; banana sorts first.
	assert.Equal(t, []TermFreq{
		{Term: "cherry", DocFreq: 3},
		{Term: "banana", DocFreq: 2},
		{Term: "durian", DocFreq: 2},
	}, st.TopTerms)
}

func TestComputeStatsEmptyIndex(t *testing.T) {
	st := New().ComputeStats(5)
	assert.Equal(t, 0, st.TermCount)
	assert.Equal(t, 0, st.DocCount)
	assert.Zero(t, st.AvgPostingLen)
	assert.Empty(t, st.TopTerms)
}
