package model

import (
	"math"

	"github.com/AziizBg/ri/internal/corpus"
	"github.com/AziizBg/ri/internal/textnorm"
)

// DefaultLambda is the default Jelinek-Mercer interpolation weight.
const DefaultLambda = 0.5

// probFloor replaces a zero smoothed probability before the log, so a
// term absent from the whole collection contributes log10(1e-10)
// instead of -Inf.
const probFloor = 1e-10

// LanguageModel is the unigram language model with Jelinek-Mercer
// smoothing: P(t|d) = λ·P_doc(t,d) + (1-λ)·P_collection(t). Scores
// are log10 probabilities, typically negative; every document in the
// corpus is scored and ranked, never filtered by positivity.
type LanguageModel struct {
	st     *corpusStats
	norm   *textnorm.Normalizer
	lambda float64
}

// NewLanguageModel snapshots document and collection term statistics.
// A lambda outside [0, 1] falls back to DefaultLambda.
func NewLanguageModel(docs []corpus.ProcessedDocument, norm *textnorm.Normalizer, lambda float64) *LanguageModel {
	if lambda < 0 || lambda > 1 {
		lambda = DefaultLambda
	}
	return &LanguageModel{
		st:     newCorpusStats(docs),
		norm:   norm,
		lambda: lambda,
	}
}

// Name implements Model.
func (m *LanguageModel) Name() string { return NameLanguage }

// termProb returns the smoothed P(term|doc).
func (m *LanguageModel) termProb(docID int, term string) float64 {
	var docProb float64
	if dl := m.st.docLen[docID]; dl > 0 {
		docProb = float64(m.st.termFreq(docID, term)) / float64(dl)
	}
	var collProb float64
	if m.st.collectionLen > 0 {
		collProb = float64(m.st.collectionTF[term]) / float64(m.st.collectionLen)
	}
	return m.lambda*docProb + (1-m.lambda)*collProb
}

// Search scores every document in the corpus by the summed log
// probability of the query terms.
func (m *LanguageModel) Search(query string, topK int) []ScoredDoc {
	terms := m.norm.Normalize(query)
	if len(terms) == 0 {
		return nil
	}
	scores := make(map[int]float64, m.st.numDocs)
	for _, docID := range m.st.docIDs {
		score := 0.0
		for _, term := range terms {
			p := m.termProb(docID, term)
			if p <= 0 {
				p = probFloor
			}
			score += math.Log10(p)
		}
		scores[docID] = score
	}
	return rankTop(scores, topK, false)
}
