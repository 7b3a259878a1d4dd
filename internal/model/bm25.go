package model

import (
	"math"

	"github.com/AziizBg/ri/internal/corpus"
	"github.com/AziizBg/ri/internal/index"
	"github.com/AziizBg/ri/internal/textnorm"
)

// Default BM25 parameters.
const (
	DefaultK1 = 1.5
	DefaultB  = 0.75
)

// BM25Params tunes the probabilistic model: k1 controls term
// frequency saturation (> 0), b controls document length
// normalization (in (0, 1]). A zero or out-of-range value selects the
// documented default, so the zero BM25Params{} means k1=1.5, b=0.75.
type BM25Params struct {
	K1 float64
	B  float64
}

// withDefaults replaces unset or out-of-range values with the
// defaults.
func (p BM25Params) withDefaults() BM25Params {
	if p.K1 <= 0 {
		p.K1 = DefaultK1
	}
	if p.B <= 0 || p.B > 1 {
		p.B = DefaultB
	}
	return p
}

// BM25 is the probabilistic retrieval model. Only documents
// containing at least one query term are scored; membership in a
// query term's posting list is the exclusion criterion, so scores are
// kept even when a very common term (df > N/2) drives the idf
// negative.
type BM25 struct {
	ix     *index.Index
	st     *corpusStats
	norm   *textnorm.Normalizer
	params BM25Params
}

// NewBM25 snapshots term and document-length statistics over the full
// corpus.
func NewBM25(ix *index.Index, docs []corpus.ProcessedDocument, norm *textnorm.Normalizer, params BM25Params) *BM25 {
	return &BM25{
		ix:     ix,
		st:     newCorpusStats(docs),
		norm:   norm,
		params: params.withDefaults(),
	}
}

// Name implements Model.
func (m *BM25) Name() string { return NameBM25 }

// idf computes log10((N - df + 0.5) / (df + 0.5)), zero for terms
// absent from the collection.
func (m *BM25) idf(term string) float64 {
	df := m.ix.DocFreq(term)
	if df == 0 {
		return 0
	}
	return math.Log10((float64(m.st.numDocs) - float64(df) + 0.5) / (float64(df) + 0.5))
}

// scoreTerm computes the BM25 contribution of term to docID.
func (m *BM25) scoreTerm(docID int, term string) float64 {
	tf := float64(m.st.termFreq(docID, term))
	if tf == 0 {
		return 0
	}
	lengthRatio := 0.0
	if m.st.avgDocLen > 0 {
		lengthRatio = float64(m.st.docLen[docID]) / m.st.avgDocLen
	}
	numerator := tf * (m.params.K1 + 1)
	denominator := tf + m.params.K1*(1-m.params.B+m.params.B*lengthRatio)
	return m.idf(term) * (numerator / denominator)
}

// Search sums per-term BM25 contributions over the documents in each
// query term's posting list.
func (m *BM25) Search(query string, topK int) []ScoredDoc {
	terms := m.norm.Normalize(query)
	if len(terms) == 0 {
		return nil
	}
	scores := make(map[int]float64)
	for _, term := range terms {
		for docID := range m.ix.Postings(term) {
			scores[docID] += m.scoreTerm(docID, term)
		}
	}
	return rankTop(scores, topK, false)
}
