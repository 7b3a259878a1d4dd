package index

// Maintainer applies incremental mutations to a live Index without a
// full rebuild. It operates directly on the Index's internal maps; the
// aliasing is deliberate, not incidental: add and remove must observe
// each other's effects immediately.
//
// Maintainer calls are not internally synchronized; callers sharing
// one index across goroutines must serialize mutations externally.
type Maintainer struct {
	ix *Index
}

// NewMaintainer returns a Maintainer mutating ix in place.
func NewMaintainer(ix *Index) *Maintainer {
	return &Maintainer{ix: ix}
}

// AddDocument inserts docID into the postings of each unique term,
// creating posting lists as needed. O(distinct terms in the
// document).
func (m *Maintainer) AddDocument(docID int, terms []string) {
	m.ix.addDocument(docID, terms)
}

// RemoveDocument removes every reference to docID from the index and
// deletes terms whose postings become empty. This scans the whole
// vocabulary, O(total terms); the cheap-add/expensive-remove asymmetry
// is an accepted trade-off.
func (m *Maintainer) RemoveDocument(docID int) {
	for term, list := range m.ix.postings {
		if _, ok := list[docID]; !ok {
			continue
		}
		delete(list, docID)
		m.ix.docFreq[term]--
		if len(list) == 0 {
			delete(m.ix.postings, term)
			delete(m.ix.docFreq, term)
		}
	}
	delete(m.ix.docs, docID)
}

// UpdateDocument replaces docID's terms: remove followed by add. Not
// atomic against concurrent readers.
func (m *Maintainer) UpdateDocument(docID int, newTerms []string) {
	m.RemoveDocument(docID)
	m.AddDocument(docID, newTerms)
}

// Merge unions another index's postings into the maintained one,
// recomputing document frequencies from the merged posting lists.
func (m *Maintainer) Merge(other *Index) {
	for term, list := range other.postings {
		dst, ok := m.ix.postings[term]
		if !ok {
			dst = make(IDSet, len(list))
			m.ix.postings[term] = dst
		}
		for id := range list {
			dst[id] = struct{}{}
			m.ix.docs[id] = struct{}{}
		}
		m.ix.docFreq[term] = len(dst)
	}
}
