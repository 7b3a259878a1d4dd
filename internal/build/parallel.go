// Package build constructs an inverted index from a document batch,
// normalizing partitions concurrently and merging the results
// sequentially.
package build

import (
	"context"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/AziizBg/ri/internal/corpus"
	"github.com/AziizBg/ri/internal/index"
	"github.com/AziizBg/ri/internal/textnorm"
)

// Builder normalizes documents across a fixed number of workers and
// assembles the final index. The index content is independent of the
// worker count; only wall-clock time varies.
type Builder struct {
	normCfg textnorm.Config
	workers int
	logger  *slog.Logger
}

// New returns a Builder with the given normalizer configuration.
// workers <= 0 means runtime.NumCPU().
func New(normCfg textnorm.Config, workers int) *Builder {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &Builder{
		normCfg: normCfg,
		workers: workers,
		logger:  slog.Default().With("component", "builder"),
	}
}

// Build partitions docs into contiguous batches of size
// ceil(len/workers), normalizes each batch in its own goroutine with
// a private Normalizer, then builds the index sequentially from the
// combined term sequences. A failure in any worker fails the whole
// build; no partial index is returned.
func (b *Builder) Build(ctx context.Context, docs []corpus.Document) (*index.Index, []corpus.ProcessedDocument, error) {
	processed := make([]corpus.ProcessedDocument, len(docs))
	if len(docs) > 0 {
		batchSize := (len(docs) + b.workers - 1) / b.workers

		g, ctx := errgroup.WithContext(ctx)
		for start := 0; start < len(docs); start += batchSize {
			end := min(start+batchSize, len(docs))
			start, end := start, end
			g.Go(func() error {
				// Workers share nothing: each owns a normalizer and a
				// disjoint region of the result slice.
				norm := textnorm.New(b.normCfg)
				for i := start; i < end; i++ {
					if err := ctx.Err(); err != nil {
						return err
					}
					processed[i] = corpus.ProcessedDocument{
						ID:    docs[i].ID,
						Terms: norm.Normalize(docs[i].Text),
					}
				}
				return nil
			})
		}
		if err := g.Wait(); err != nil {
			return nil, nil, err
		}
	}

	ix := index.New()
	ix.Build(processed)
	b.logger.Debug("index built",
		"docs", len(docs),
		"terms", ix.TermCount(),
		"workers", b.workers,
	)
	return ix, processed, nil
}
