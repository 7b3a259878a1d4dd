package model

import (
	"strings"

	"github.com/AziizBg/ri/internal/index"
	"github.com/AziizBg/ri/internal/textnorm"
)

// Boolean is the boolean retrieval model: set operations over posting
// lists, no ranking among matches. Every matching document scores a
// uniform 1.0.
type Boolean struct {
	ix   *index.Index
	norm *textnorm.Normalizer
}

// NewBoolean builds a boolean model over ix.
func NewBoolean(ix *index.Index, norm *textnorm.Normalizer) *Boolean {
	return &Boolean{ix: ix, norm: norm}
}

// Name implements Model.
func (b *Boolean) Name() string { return NameBoolean }

// Search returns the documents containing every query term (AND
// semantics), all scored 1.0, ordered by ascending document id.
func (b *Boolean) Search(query string, topK int) []ScoredDoc {
	terms := b.norm.Normalize(query)
	if len(terms) == 0 {
		return nil
	}
	matches := b.ix.SearchAnd(terms).Sorted()
	if topK > 0 && len(matches) > topK {
		matches = matches[:topK]
	}
	results := make([]ScoredDoc, len(matches))
	for i, id := range matches {
		results[i] = ScoredDoc{DocID: id, Score: 1.0}
	}
	return results
}

// SearchAnd returns the ids of documents containing every term.
func (b *Boolean) SearchAnd(terms []string) index.IDSet {
	return b.ix.SearchAnd(terms)
}

// SearchOr returns the ids of documents containing at least one term.
func (b *Boolean) SearchOr(terms []string) index.IDSet {
	result := make(index.IDSet)
	for _, term := range terms {
		result = result.Union(b.ix.Postings(term))
	}
	return result
}

// SearchNot returns the ids of documents that do not contain term,
// relative to the full set of indexed documents.
func (b *Boolean) SearchNot(term string) index.IDSet {
	all := b.ix.DocIDs()
	for id := range b.ix.Postings(term) {
		delete(all, id)
	}
	return all
}

// SearchExpression evaluates a flat boolean expression over raw
// words: "a AND b", "a OR b", "NOT a", or any mix. Operator words are
// recognized case-insensitively; every other word is normalized into
// query terms. NOT applies to the word that follows it. Terms combine
// with AND unless an OR operator appears.
func (b *Boolean) SearchExpression(expr string) index.IDSet {
	var (
		include  []string
		exclude  []string
		useOr    bool
		negateIt bool
	)
	for _, word := range strings.Fields(expr) {
		switch strings.ToUpper(word) {
		case "AND":
			continue
		case "OR":
			useOr = true
			continue
		case "NOT":
			negateIt = true
			continue
		}
		terms := b.norm.Normalize(word)
		if len(terms) == 0 {
			negateIt = false
			continue
		}
		if negateIt {
			exclude = append(exclude, terms[0])
			negateIt = false
		} else {
			include = append(include, terms[0])
		}
	}

	var result index.IDSet
	switch {
	case len(include) == 0 && len(exclude) == 0:
		return make(index.IDSet)
	case len(include) == 0:
		// Pure negation starts from the full document set.
		result = b.ix.DocIDs()
	case useOr:
		result = b.SearchOr(include)
	default:
		result = b.SearchAnd(include)
	}
	for _, term := range exclude {
		for id := range b.ix.Postings(term) {
			delete(result, id)
		}
	}
	return result
}
