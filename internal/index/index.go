// Package index implements the in-memory inverted index: a mapping
// from term to the set of document ids containing it, with a parallel
// document-frequency table. The package also provides flat-file
// persistence and in-place maintenance of a live index.
package index

import (
	"sort"

	"github.com/AziizBg/ri/internal/corpus"
)

// IDSet is a set of document ids.
type IDSet map[int]struct{}

// NewIDSet builds a set from the given ids.
func NewIDSet(ids ...int) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s[id] = struct{}{}
	}
	return s
}

// Contains reports whether id is in the set.
func (s IDSet) Contains(id int) bool {
	_, ok := s[id]
	return ok
}

// Sorted returns the set's ids in ascending order.
func (s IDSet) Sorted() []int {
	ids := make([]int, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}

// Intersect returns the intersection of s and other.
func (s IDSet) Intersect(other IDSet) IDSet {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}
	out := make(IDSet)
	for id := range small {
		if _, ok := large[id]; ok {
			out[id] = struct{}{}
		}
	}
	return out
}

// Union returns the union of s and other.
func (s IDSet) Union(other IDSet) IDSet {
	out := make(IDSet, len(s)+len(other))
	for id := range s {
		out[id] = struct{}{}
	}
	for id := range other {
		out[id] = struct{}{}
	}
	return out
}

// Index is the inverted index. It is not internally synchronized:
// callers sharing one Index across goroutines must serialize
// mutations externally.
//
// Invariant: docFreq[t] == len(postings[t]) after every exported
// operation.
type Index struct {
	postings map[string]IDSet
	docFreq  map[string]int
	docs     IDSet
}

// New returns an empty index.
func New() *Index {
	return &Index{
		postings: make(map[string]IDSet),
		docFreq:  make(map[string]int),
		docs:     make(IDSet),
	}
}

// Build replaces the index contents with the given corpus. Each
// document contributes its unique terms once, regardless of term
// multiplicity within the document.
func (ix *Index) Build(docs []corpus.ProcessedDocument) {
	ix.Reset()
	for _, doc := range docs {
		ix.addDocument(doc.ID, doc.Terms)
	}
}

// addDocument inserts a document's unique terms. Shared by Build and
// the Maintainer.
func (ix *Index) addDocument(docID int, terms []string) {
	seen := make(map[string]struct{}, len(terms))
	for _, term := range terms {
		if _, dup := seen[term]; dup {
			continue
		}
		seen[term] = struct{}{}
		list, ok := ix.postings[term]
		if !ok {
			list = make(IDSet)
			ix.postings[term] = list
		}
		if _, present := list[docID]; !present {
			list[docID] = struct{}{}
			ix.docFreq[term]++
		}
	}
	if len(terms) > 0 {
		ix.docs[docID] = struct{}{}
	}
}

// Postings returns the set of document ids containing term. Unknown
// terms yield an empty set, never an error. The returned set is a
// copy; mutating it does not touch the index.
func (ix *Index) Postings(term string) IDSet {
	list, ok := ix.postings[term]
	if !ok {
		return make(IDSet)
	}
	out := make(IDSet, len(list))
	for id := range list {
		out[id] = struct{}{}
	}
	return out
}

// DocFreq returns the number of documents containing term, zero for
// unknown terms.
func (ix *Index) DocFreq(term string) int {
	return ix.docFreq[term]
}

// SearchAnd returns the ids of documents containing every term. An
// empty term list yields an empty set.
func (ix *Index) SearchAnd(terms []string) IDSet {
	if len(terms) == 0 {
		return make(IDSet)
	}
	result := ix.Postings(terms[0])
	for _, term := range terms[1:] {
		if len(result) == 0 {
			return result
		}
		result = result.Intersect(ix.Postings(term))
	}
	return result
}

// Terms returns the vocabulary in ascending order.
func (ix *Index) Terms() []string {
	terms := make([]string, 0, len(ix.postings))
	for term := range ix.postings {
		terms = append(terms, term)
	}
	sort.Strings(terms)
	return terms
}

// TermCount returns the vocabulary size.
func (ix *Index) TermCount() int {
	return len(ix.postings)
}

// DocIDs returns the set of all indexed document ids as a copy.
func (ix *Index) DocIDs() IDSet {
	out := make(IDSet, len(ix.docs))
	for id := range ix.docs {
		out[id] = struct{}{}
	}
	return out
}

// DocCount returns the number of indexed documents.
func (ix *Index) DocCount() int {
	return len(ix.docs)
}

// Snapshot returns the full index as term → sorted document ids. The
// result shares no state with the index.
func (ix *Index) Snapshot() map[string][]int {
	out := make(map[string][]int, len(ix.postings))
	for term, list := range ix.postings {
		out[term] = list.Sorted()
	}
	return out
}

// Reset clears the index.
func (ix *Index) Reset() {
	ix.postings = make(map[string]IDSet)
	ix.docFreq = make(map[string]int)
	ix.docs = make(IDSet)
}
