// Package model implements the four retrieval models (boolean,
// vector-space TF-IDF, probabilistic BM25, and a Jelinek-Mercer
// smoothed language model) behind one ranked-search interface.
//
// A model takes a read reference to an index and a corpus snapshot at
// construction time. Models never observe later index mutations;
// after the corpus changes, the caller rebuilds the model.
package model

import "sort"

// ScoredDoc is one ranked search result.
type ScoredDoc struct {
	DocID int     `json:"doc_id"`
	Score float64 `json:"score"`
}

// Model is the shared ranked-search contract. Search returns up to
// topK results in descending score order, ties broken by ascending
// document id. A query that normalizes to zero terms returns an empty
// result. Search is read-only and safe to call concurrently against a
// frozen model instance.
type Model interface {
	Name() string
	Search(query string, topK int) []ScoredDoc
}

// Model names as reported by Name().
const (
	NameBoolean  = "boolean"
	NameVector   = "vector"
	NameBM25     = "bm25"
	NameLanguage = "language"
)

// rankTop sorts scores descending (ties by ascending doc id) and
// truncates to topK. When dropNonPositive is set, documents scoring
// zero or below are excluded before ranking.
func rankTop(scores map[int]float64, topK int, dropNonPositive bool) []ScoredDoc {
	ranked := make([]ScoredDoc, 0, len(scores))
	for docID, score := range scores {
		if dropNonPositive && score <= 0 {
			continue
		}
		ranked = append(ranked, ScoredDoc{DocID: docID, Score: score})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].Score != ranked[j].Score {
			return ranked[i].Score > ranked[j].Score
		}
		return ranked[i].DocID < ranked[j].DocID
	})
	if topK > 0 && len(ranked) > topK {
		ranked = ranked[:topK]
	}
	return ranked
}

// RankedIDs projects results onto their document ids.
func RankedIDs(results []ScoredDoc) []int {
	ids := make([]int, len(results))
	for i, r := range results {
		ids[i] = r.DocID
	}
	return ids
}
