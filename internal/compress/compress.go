// Package compress transforms posting lists into a smaller
// representation: delta (gap) encoding of sorted document ids and
// base-128 varint byte encoding, plus a gzip-wrapped binary artifact
// for storage. Decoding exactly inverts encoding; malformed input is
// a hard error, never guessed around.
package compress

import (
	"errors"
	"fmt"
	"sort"

	"github.com/AziizBg/ri/internal/index"
)

var (
	// ErrTruncatedVarint reports a varint stream that ended before a
	// byte with a clear continuation bit.
	ErrTruncatedVarint = errors.New("truncated varint stream")

	// ErrVarintOverflow reports a varint wider than 64 bits.
	ErrVarintOverflow = errors.New("varint overflows 64 bits")

	// ErrUnknownMethod reports a compression method outside {gap, none}.
	ErrUnknownMethod = errors.New("unknown compression method")
)

// Method is a posting-list compression method.
type Method string

const (
	// MethodGap stores each posting list as its first id followed by
	// successive differences.
	MethodGap Method = "gap"
	// MethodNone stores sorted ids verbatim.
	MethodNone Method = "none"
)

// ParseMethod validates a method name.
func ParseMethod(s string) (Method, error) {
	switch Method(s) {
	case MethodGap, MethodNone:
		return Method(s), nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMethod, s)
	}
}

// EncodeGaps gap-encodes a set of document ids: the ids are sorted
// and deduplicated, the first is kept verbatim, and every subsequent
// element is the difference from its predecessor. Empty input yields
// empty output.
func EncodeGaps(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	sorted := make([]int, len(ids))
	copy(sorted, ids)
	sort.Ints(sorted)

	gaps := make([]int, 0, len(sorted))
	gaps = append(gaps, sorted[0])
	prev := sorted[0]
	for _, id := range sorted[1:] {
		if id == prev {
			continue
		}
		gaps = append(gaps, id-prev)
		prev = id
	}
	return gaps
}

// DecodeGaps inverts EncodeGaps by cumulative summation.
func DecodeGaps(gaps []int) []int {
	if len(gaps) == 0 {
		return nil
	}
	ids := make([]int, len(gaps))
	ids[0] = gaps[0]
	for i := 1; i < len(gaps); i++ {
		ids[i] = ids[i-1] + gaps[i]
	}
	return ids
}

// EncodeVarint encodes n with base-128 continuation-bit encoding: 7
// low bits per byte, high bit set on every byte except the last.
func EncodeVarint(n uint64) []byte {
	return AppendVarint(nil, n)
}

// AppendVarint appends the varint encoding of n to dst.
func AppendVarint(dst []byte, n uint64) []byte {
	for n >= 0x80 {
		dst = append(dst, byte(n)|0x80)
		n >>= 7
	}
	return append(dst, byte(n))
}

// DecodeVarint decodes one varint from the front of data, returning
// the value and the number of bytes consumed. A stream that ends
// mid-value is ErrTruncatedVarint.
func DecodeVarint(data []byte) (uint64, int, error) {
	var n uint64
	var shift uint
	for i, b := range data {
		// The tenth byte reaches shift 63, where only one payload bit
		// still fits; wider payloads would be silently truncated by
		// the shift.
		if shift >= 64 || (shift == 63 && b&0x7f > 1) {
			return 0, 0, ErrVarintOverflow
		}
		n |= uint64(b&0x7f) << shift
		if b < 0x80 {
			return n, i + 1, nil
		}
		shift += 7
	}
	return 0, 0, ErrTruncatedVarint
}

// Index is a compressed inverted index: term → encoded posting
// sequence. Posting lists are decoded on demand.
type Index struct {
	method Method
	lists  map[string][]int
}

// Compress encodes every posting list of ix with the given method.
func Compress(ix *index.Index, method Method) (*Index, error) {
	if _, err := ParseMethod(string(method)); err != nil {
		return nil, err
	}
	snapshot := ix.Snapshot()
	lists := make(map[string][]int, len(snapshot))
	for term, ids := range snapshot {
		if method == MethodGap {
			lists[term] = EncodeGaps(ids)
		} else {
			lists[term] = ids
		}
	}
	return &Index{method: method, lists: lists}, nil
}

// Method returns the compression method the index was built with.
func (c *Index) Method() Method {
	return c.method
}

// TermCount returns the vocabulary size.
func (c *Index) TermCount() int {
	return len(c.lists)
}

// Postings decompresses and returns the sorted document ids for term,
// nil for unknown terms.
func (c *Index) Postings(term string) []int {
	encoded, ok := c.lists[term]
	if !ok {
		return nil
	}
	if c.method == MethodGap {
		return DecodeGaps(encoded)
	}
	out := make([]int, len(encoded))
	copy(out, encoded)
	return out
}

// ToPostings decompresses the whole index into term → sorted ids.
func (c *Index) ToPostings() map[string][]int {
	out := make(map[string][]int, len(c.lists))
	for term := range c.lists {
		out[term] = c.Postings(term)
	}
	return out
}

// EncodedLen returns the total number of stored integers across all
// posting lists, a proxy for the in-memory footprint.
func (c *Index) EncodedLen() int {
	total := 0
	for _, encoded := range c.lists {
		total += len(encoded)
	}
	return total
}
