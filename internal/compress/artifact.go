package compress

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/klauspost/compress/gzip"
)

// Artifact layout, after gzip decompression:
//
//	uint32 magic, uint32 version (little endian)
//	varint method-name length, method-name bytes
//	varint term count, then per term:
//	  varint term length, term bytes
//	  varint value count, then that many varint values
const (
	artifactMagic   uint32 = 0x52494358
	artifactVersion uint32 = 1
)

// Save writes the compressed index to path as a gzip-wrapped binary
// artifact, via a .tmp sibling renamed on success.
func (c *Index) Save(path string) error {
	buf := make([]byte, 8)
	binary.LittleEndian.PutUint32(buf[0:4], artifactMagic)
	binary.LittleEndian.PutUint32(buf[4:8], artifactVersion)

	buf = AppendVarint(buf, uint64(len(c.method)))
	buf = append(buf, c.method...)
	buf = AppendVarint(buf, uint64(len(c.lists)))
	for term, values := range c.lists {
		buf = AppendVarint(buf, uint64(len(term)))
		buf = append(buf, term...)
		buf = AppendVarint(buf, uint64(len(values)))
		for _, v := range values {
			buf = AppendVarint(buf, uint64(v))
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating artifact directory: %w", err)
		}
	}
	tmpPath := path + ".tmp"
	f, err := os.Create(tmpPath)
	if err != nil {
		return fmt.Errorf("creating artifact file: %w", err)
	}
	zw := gzip.NewWriter(f)
	if _, err := zw.Write(buf); err != nil {
		f.Close()
		return fmt.Errorf("writing artifact: %w", err)
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return fmt.Errorf("flushing artifact: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("closing artifact file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming artifact file: %w", err)
	}
	return nil
}

// Open reads a compressed index artifact written by Save. Corrupt or
// truncated input is an explicit error.
func Open(path string) (*Index, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening artifact file: %w", err)
	}
	defer f.Close()

	zr, err := gzip.NewReader(f)
	if err != nil {
		return nil, fmt.Errorf("reading artifact %s: %w", path, err)
	}
	defer zr.Close()
	data, err := io.ReadAll(zr)
	if err != nil {
		return nil, fmt.Errorf("decompressing artifact %s: %w", path, err)
	}

	if len(data) < 8 {
		return nil, fmt.Errorf("artifact %s: truncated header", path)
	}
	if magic := binary.LittleEndian.Uint32(data[0:4]); magic != artifactMagic {
		return nil, fmt.Errorf("artifact %s: bad magic bytes %x", path, magic)
	}
	if version := binary.LittleEndian.Uint32(data[4:8]); version != artifactVersion {
		return nil, fmt.Errorf("artifact %s: unsupported version %d", path, version)
	}
	data = data[8:]

	readVarint := func() (uint64, error) {
		v, n, err := DecodeVarint(data)
		if err != nil {
			return 0, err
		}
		data = data[n:]
		return v, nil
	}
	readString := func() (string, error) {
		length, err := readVarint()
		if err != nil {
			return "", err
		}
		if uint64(len(data)) < length {
			return "", ErrTruncatedVarint
		}
		s := string(data[:length])
		data = data[length:]
		return s, nil
	}

	methodName, err := readString()
	if err != nil {
		return nil, fmt.Errorf("artifact %s: reading method: %w", path, err)
	}
	method, err := ParseMethod(methodName)
	if err != nil {
		return nil, fmt.Errorf("artifact %s: %w", path, err)
	}

	termCount, err := readVarint()
	if err != nil {
		return nil, fmt.Errorf("artifact %s: reading term count: %w", path, err)
	}
	lists := make(map[string][]int, termCount)
	for i := uint64(0); i < termCount; i++ {
		term, err := readString()
		if err != nil {
			return nil, fmt.Errorf("artifact %s: reading term: %w", path, err)
		}
		count, err := readVarint()
		if err != nil {
			return nil, fmt.Errorf("artifact %s: reading postings length for %q: %w", path, term, err)
		}
		values := make([]int, 0, count)
		for j := uint64(0); j < count; j++ {
			v, err := readVarint()
			if err != nil {
				return nil, fmt.Errorf("artifact %s: reading postings for %q: %w", path, term, err)
			}
			values = append(values, int(v))
		}
		lists[term] = values
	}
	return &Index{method: method, lists: lists}, nil
}
