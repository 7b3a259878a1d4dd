package compress

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AziizBg/ri/internal/corpus"
	"github.com/AziizBg/ri/internal/index"
)

func testIndex(t *testing.T) *index.Index {
	t.Helper()
	ix := index.New()
	ix.Build([]corpus.ProcessedDocument{
		{ID: 1, Terms: []string{"apple", "banana"}},
		{ID: 3, Terms: []string{"apple", "cherry"}},
		{ID: 10, Terms: []string{"apple"}},
	})
	return ix
}

func TestEncodeGaps(t *testing.T) {
	t.Run("sorted input", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 4, 3}, EncodeGaps([]int{1, 3, 7, 10}))
	})

	t.Run("unsorted input with duplicates", func(t *testing.T) {
		assert.Equal(t, []int{1, 2, 4, 3}, EncodeGaps([]int{10, 1, 3, 3, 7}))
	})

	t.Run("single id", func(t *testing.T) {
		assert.Equal(t, []int{42}, EncodeGaps([]int{42}))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, EncodeGaps(nil))
	})

	t.Run("does not mutate input", func(t *testing.T) {
		ids := []int{10, 1, 7}
		EncodeGaps(ids)
		assert.Equal(t, []int{10, 1, 7}, ids)
	})
}

func TestDecodeGaps(t *testing.T) {
	t.Run("inverts encoding", func(t *testing.T) {
		ids := []int{1, 3, 7, 10, 500}
		assert.Equal(t, ids, DecodeGaps(EncodeGaps(ids)))
	})

	t.Run("empty input", func(t *testing.T) {
		assert.Nil(t, DecodeGaps(nil))
	})
}

func TestVarintRoundTrip(t *testing.T) {
	values := []uint64{0, 1, 127, 128, 300, 16383, 16384, 1 << 40, 1<<64 - 1}
	for _, v := range values {
		encoded := EncodeVarint(v)
		got, n, err := DecodeVarint(encoded)
		require.NoError(t, err, "value %d", v)
		assert.Equal(t, v, got)
		assert.Equal(t, len(encoded), n)
	}
}

func TestVarintWidth(t *testing.T) {
	assert.Len(t, EncodeVarint(0), 1)
	assert.Len(t, EncodeVarint(127), 1)
	assert.Len(t, EncodeVarint(128), 2)
	assert.Len(t, EncodeVarint(16383), 2)
	assert.Len(t, EncodeVarint(16384), 3)
}

func TestVarintStream(t *testing.T) {
	var buf []byte
	values := []uint64{5, 300, 0, 1 << 30}
	for _, v := range values {
		buf = AppendVarint(buf, v)
	}
	for _, want := range values {
		got, n, err := DecodeVarint(buf)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		buf = buf[n:]
	}
	assert.Empty(t, buf)
}

func TestDecodeVarintErrors(t *testing.T) {
	t.Run("empty input", func(t *testing.T) {
		_, _, err := DecodeVarint(nil)
		assert.ErrorIs(t, err, ErrTruncatedVarint)
	})

	t.Run("truncated continuation", func(t *testing.T) {
		_, _, err := DecodeVarint([]byte{0x80, 0x80})
		assert.ErrorIs(t, err, ErrTruncatedVarint)
	})

	t.Run("overflow", func(t *testing.T) {
		_, _, err := DecodeVarint(bytes.Repeat([]byte{0x80}, 11))
		assert.ErrorIs(t, err, ErrVarintOverflow)
	})

	t.Run("overflow in the final byte", func(t *testing.T) {
		// Ten-byte varint whose last byte carries more than the one
		// payload bit that still fits at shift 63.
		data := append(bytes.Repeat([]byte{0x80}, 9), 0x02)
		_, _, err := DecodeVarint(data)
		assert.ErrorIs(t, err, ErrVarintOverflow)
	})

	t.Run("overflow in a continuation byte", func(t *testing.T) {
		data := append(bytes.Repeat([]byte{0x80}, 9), 0x82, 0x01)
		_, _, err := DecodeVarint(data)
		assert.ErrorIs(t, err, ErrVarintOverflow)
	})
}

func TestParseMethod(t *testing.T) {
	for _, name := range []string{"gap", "none"} {
		m, err := ParseMethod(name)
		require.NoError(t, err)
		assert.Equal(t, Method(name), m)
	}

	_, err := ParseMethod("zip")
	assert.ErrorIs(t, err, ErrUnknownMethod)
}

func TestCompress(t *testing.T) {
	ix := testIndex(t)

	t.Run("gap method round-trips postings", func(t *testing.T) {
		c, err := Compress(ix, MethodGap)
		require.NoError(t, err)
		assert.Equal(t, MethodGap, c.Method())
		assert.Equal(t, ix.TermCount(), c.TermCount())
		assert.Equal(t, ix.Snapshot(), c.ToPostings())
	})

	t.Run("none method stores ids verbatim", func(t *testing.T) {
		c, err := Compress(ix, MethodNone)
		require.NoError(t, err)
		assert.Equal(t, ix.Snapshot(), c.ToPostings())
	})

	t.Run("unknown term yields nil", func(t *testing.T) {
		c, err := Compress(ix, MethodGap)
		require.NoError(t, err)
		assert.Nil(t, c.Postings("zucchini"))
	})

	t.Run("invalid method", func(t *testing.T) {
		_, err := Compress(ix, Method("zip"))
		assert.ErrorIs(t, err, ErrUnknownMethod)
	})

	t.Run("encoded length matches posting totals", func(t *testing.T) {
		c, err := Compress(ix, MethodNone)
		require.NoError(t, err)
		// apple:3, banana:1, cherry:1 stored ids.
		assert.Equal(t, 5, c.EncodedLen())
	})
}
