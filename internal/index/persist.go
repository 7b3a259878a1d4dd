package index

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// Save serializes the index to path as a JSON object mapping each
// term to its sorted document-id list. The file is written to a .tmp
// sibling first and renamed on success.
func (ix *Index) Save(path string) error {
	data, err := json.MarshalIndent(ix.Snapshot(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling index: %w", err)
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating index directory: %w", err)
		}
	}
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, data, 0644); err != nil {
		return fmt.Errorf("writing index file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		return fmt.Errorf("renaming index file: %w", err)
	}
	return nil
}

// Load replaces the index contents with the postings stored at path.
// Document frequencies are always recomputed from posting-list
// lengths rather than read from the file, so a stale or hand-edited
// frequency can never drift from the postings.
func (ix *Index) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading index file: %w", err)
	}
	var stored map[string][]int
	if err := json.Unmarshal(data, &stored); err != nil {
		return fmt.Errorf("parsing index file %s: %w", path, err)
	}
	ix.Reset()
	for term, ids := range stored {
		if len(ids) == 0 {
			continue
		}
		list := make(IDSet, len(ids))
		for _, id := range ids {
			list[id] = struct{}{}
			ix.docs[id] = struct{}{}
		}
		ix.postings[term] = list
		ix.docFreq[term] = len(list)
	}
	return nil
}
