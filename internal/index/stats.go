package index

import "sort"

// TermFreq pairs a term with its document frequency.
type TermFreq struct {
	Term    string
	DocFreq int
}

// Stats summarizes the shape of an index.
type Stats struct {
	TermCount     int
	DocCount      int
	AvgPostingLen float64
	TopTerms      []TermFreq
}

// ComputeStats returns index statistics, including the topK terms by
// document frequency (ties broken by term).
func (ix *Index) ComputeStats(topK int) Stats {
	st := Stats{
		TermCount: len(ix.postings),
		DocCount:  len(ix.docs),
	}
	if len(ix.postings) == 0 {
		return st
	}
	total := 0
	top := make([]TermFreq, 0, len(ix.docFreq))
	for term, freq := range ix.docFreq {
		total += freq
		top = append(top, TermFreq{Term: term, DocFreq: freq})
	}
	st.AvgPostingLen = float64(total) / float64(len(ix.postings))
	sort.Slice(top, func(i, j int) bool {
		if top[i].DocFreq != top[j].DocFreq {
			return top[i].DocFreq > top[j].DocFreq
		}
		return top[i].Term < top[j].Term
	})
	if topK > 0 && len(top) > topK {
		top = top[:topK]
	}
	st.TopTerms = top
	return st
}
