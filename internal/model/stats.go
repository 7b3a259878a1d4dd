package model

import (
	"sort"

	"github.com/AziizBg/ri/internal/corpus"
)

// corpusStats is the immutable per-corpus snapshot shared by the
// frequency-based models: term frequency per document, document
// lengths, and collection-wide totals. Built once in a model
// constructor and never mutated afterwards.
type corpusStats struct {
	tf            map[int]map[string]int
	docLen        map[int]int
	docIDs        []int
	numDocs       int
	avgDocLen     float64
	collectionTF  map[string]int
	collectionLen int
}

func newCorpusStats(docs []corpus.ProcessedDocument) *corpusStats {
	st := &corpusStats{
		tf:           make(map[int]map[string]int, len(docs)),
		docLen:       make(map[int]int, len(docs)),
		docIDs:       make([]int, 0, len(docs)),
		numDocs:      len(docs),
		collectionTF: make(map[string]int),
	}
	totalLen := 0
	for _, doc := range docs {
		counts := make(map[string]int)
		for _, term := range doc.Terms {
			counts[term]++
			st.collectionTF[term]++
		}
		st.tf[doc.ID] = counts
		st.docLen[doc.ID] = len(doc.Terms)
		st.docIDs = append(st.docIDs, doc.ID)
		totalLen += len(doc.Terms)
	}
	sort.Ints(st.docIDs)
	st.collectionLen = totalLen
	if st.numDocs > 0 {
		st.avgDocLen = float64(totalLen) / float64(st.numDocs)
	}
	return st
}

// termFreq returns the count of term in the given document.
func (st *corpusStats) termFreq(docID int, term string) int {
	return st.tf[docID][term]
}
