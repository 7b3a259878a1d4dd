// Package corpus defines the document types flowing through the
// engine and provides flat-file corpus helpers: a sample corpus
// writer and a concurrent directory loader.
package corpus

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strconv"
	"sync"

	"github.com/panjf2000/ants/v2"
)

// Document is a raw document as supplied by a corpus provider. IDs
// are externally assigned, positive, and stable for the document's
// lifetime.
type Document struct {
	ID   int
	Text string
}

// ProcessedDocument is a document after normalization: its ordered
// term sequence, possibly with repeats.
type ProcessedDocument struct {
	ID    int
	Terms []string
}

// docFilePattern matches corpus files written by WriteSample, e.g.
// "doc_07.txt". The captured group is the document id.
var docFilePattern = regexp.MustCompile(`^doc_(\d+)\.txt$`)

// WriteSample writes up to n sample documents into dir as doc_NN.txt
// files and returns them. The samples are French sentences on
// computing topics, which exercise accent handling and French
// stop-word removal.
func WriteSample(dir string, n int) ([]Document, error) {
	if n <= 0 || n > len(sampleTexts) {
		n = len(sampleTexts)
	}
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("creating corpus directory: %w", err)
	}
	docs := make([]Document, 0, n)
	for i, text := range sampleTexts[:n] {
		id := i + 1
		name := filepath.Join(dir, fmt.Sprintf("doc_%02d.txt", id))
		if err := os.WriteFile(name, []byte(text), 0644); err != nil {
			return nil, fmt.Errorf("writing corpus file %s: %w", name, err)
		}
		docs = append(docs, Document{ID: id, Text: text})
	}
	return docs, nil
}

// LoadDir reads every doc_NN.txt file in dir concurrently using a
// worker pool of poolSize goroutines and returns the documents sorted
// by id. Any read failure fails the whole load.
func LoadDir(dir string, poolSize int) ([]Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading corpus directory: %w", err)
	}

	type namedFile struct {
		id   int
		path string
	}
	var files []namedFile
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		m := docFilePattern.FindStringSubmatch(entry.Name())
		if m == nil {
			continue
		}
		id, err := strconv.Atoi(m[1])
		if err != nil || id <= 0 {
			continue
		}
		files = append(files, namedFile{id: id, path: filepath.Join(dir, entry.Name())})
	}
	if len(files) == 0 {
		return nil, nil
	}

	if poolSize <= 0 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, fmt.Errorf("creating loader pool: %w", err)
	}
	defer pool.Release()

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		firstErr error
	)
	docs := make([]Document, len(files))
	for i, f := range files {
		i, f := i, f
		wg.Add(1)
		err := pool.Submit(func() {
			defer wg.Done()
			data, readErr := os.ReadFile(f.path)
			if readErr != nil {
				mu.Lock()
				if firstErr == nil {
					firstErr = fmt.Errorf("reading corpus file %s: %w", f.path, readErr)
				}
				mu.Unlock()
				return
			}
			docs[i] = Document{ID: f.id, Text: string(data)}
		})
		if err != nil {
			// Stop submitting, but fall through to wg.Wait so the
			// in-flight workers finish writing into docs before it
			// goes out of scope.
			wg.Done()
			mu.Lock()
			if firstErr == nil {
				firstErr = fmt.Errorf("submitting load task: %w", err)
			}
			mu.Unlock()
			break
		}
	}
	wg.Wait()
	if firstErr != nil {
		return nil, firstErr
	}

	sort.Slice(docs, func(i, j int) bool { return docs[i].ID < docs[j].ID })
	return docs, nil
}
