package model

import (
	"math"

	"github.com/AziizBg/ri/internal/corpus"
	"github.com/AziizBg/ri/internal/index"
	"github.com/AziizBg/ri/internal/textnorm"
)

// VectorSpace is the TF-IDF vector-space model: documents and queries
// are L2-normalized TF-IDF vectors over the vocabulary captured at
// construction, scored by cosine similarity. The vocabulary is frozen
// for the life of the instance; adding documents requires a new
// model, not just an index update.
type VectorSpace struct {
	norm       *textnorm.Normalizer
	vocab      []string
	termIdx    map[string]int
	idf        []float64
	docVectors map[int][]float64
	numDocs    int
}

// NewVectorSpace precomputes one TF-IDF vector per document over the
// index's vocabulary.
func NewVectorSpace(ix *index.Index, docs []corpus.ProcessedDocument, norm *textnorm.Normalizer) *VectorSpace {
	vocab := ix.Terms()
	m := &VectorSpace{
		norm:       norm,
		vocab:      vocab,
		termIdx:    make(map[string]int, len(vocab)),
		idf:        make([]float64, len(vocab)),
		docVectors: make(map[int][]float64, len(docs)),
		numDocs:    len(docs),
	}
	for i, term := range vocab {
		m.termIdx[term] = i
		df := ix.DocFreq(term)
		if df > 0 && m.numDocs > 0 {
			m.idf[i] = math.Log10(float64(m.numDocs) / float64(df))
		}
	}
	for _, doc := range docs {
		counts := make(map[string]int, len(doc.Terms))
		for _, term := range doc.Terms {
			counts[term]++
		}
		m.docVectors[doc.ID] = m.vectorize(counts)
	}
	return m
}

// vectorize maps term counts to an L2-normalized TF-IDF vector, with
// TF = 1 + log10(count).
func (m *VectorSpace) vectorize(counts map[string]int) []float64 {
	vec := make([]float64, len(m.vocab))
	var sumSquares float64
	for term, count := range counts {
		i, ok := m.termIdx[term]
		if !ok || count == 0 {
			continue
		}
		w := (1 + math.Log10(float64(count))) * m.idf[i]
		vec[i] = w
		sumSquares += w * w
	}
	if sumSquares > 0 {
		norm := math.Sqrt(sumSquares)
		for i := range vec {
			vec[i] /= norm
		}
	}
	return vec
}

// Name implements Model.
func (m *VectorSpace) Name() string { return NameVector }

// Search ranks documents by cosine similarity with the query vector.
// Documents scoring zero or below are excluded.
func (m *VectorSpace) Search(query string, topK int) []ScoredDoc {
	terms := m.norm.Normalize(query)
	if len(terms) == 0 {
		return nil
	}
	counts := make(map[string]int, len(terms))
	for _, term := range terms {
		if _, known := m.termIdx[term]; known {
			counts[term]++
		}
	}
	queryVec := m.vectorize(counts)

	// Both sides are unit vectors, so cosine reduces to a dot
	// product over the query's nonzero components.
	type component struct {
		idx    int
		weight float64
	}
	nonzero := make([]component, 0, len(counts))
	for term := range counts {
		i := m.termIdx[term]
		if queryVec[i] != 0 {
			nonzero = append(nonzero, component{idx: i, weight: queryVec[i]})
		}
	}
	scores := make(map[int]float64, len(m.docVectors))
	for docID, docVec := range m.docVectors {
		var sim float64
		for _, c := range nonzero {
			sim += c.weight * docVec[c.idx]
		}
		scores[docID] = sim
	}
	return rankTop(scores, topK, true)
}

// Similarity returns the cosine similarity between the query text and
// one document, zero if the document is unknown.
func (m *VectorSpace) Similarity(query string, docID int) float64 {
	docVec, ok := m.docVectors[docID]
	if !ok {
		return 0
	}
	counts := make(map[string]int)
	for _, term := range m.norm.Normalize(query) {
		if _, known := m.termIdx[term]; known {
			counts[term]++
		}
	}
	queryVec := m.vectorize(counts)
	var sim float64
	for i, w := range queryVec {
		if w != 0 {
			sim += w * docVec[i]
		}
	}
	return sim
}
