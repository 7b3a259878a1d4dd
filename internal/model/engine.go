package model

import (
	"log/slog"
	"time"

	"github.com/AziizBg/ri/internal/corpus"
	"github.com/AziizBg/ri/internal/index"
	"github.com/AziizBg/ri/internal/textnorm"
	"github.com/AziizBg/ri/pkg/metrics"
)

// Engine constructs all four retrieval models over one index and
// corpus snapshot and runs queries against any or all of them. Like
// the models it holds, an Engine is frozen at construction: rebuild
// it after the corpus changes.
type Engine struct {
	models  map[string]Model
	ordered []Model
	logger  *slog.Logger
	metrics *metrics.Metrics
}

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets a custom logger. Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithMetrics instruments searches with the given collectors.
func WithMetrics(m *metrics.Metrics) Option {
	return func(e *Engine) {
		e.metrics = m
	}
}

// NewEngine builds the boolean, vector-space, BM25, and language
// models over the given index and normalized corpus.
func NewEngine(
	ix *index.Index,
	docs []corpus.ProcessedDocument,
	norm *textnorm.Normalizer,
	bm25Params BM25Params,
	lambda float64,
	opts ...Option,
) *Engine {
	e := &Engine{
		models: make(map[string]Model, 4),
		logger: slog.Default().With("component", "engine"),
	}
	e.ordered = []Model{
		NewBoolean(ix, norm),
		NewVectorSpace(ix, docs, norm),
		NewBM25(ix, docs, norm, bm25Params),
		NewLanguageModel(docs, norm, lambda),
	}
	for _, m := range e.ordered {
		e.models[m.Name()] = m
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model returns the model registered under name.
func (e *Engine) Model(name string) (Model, bool) {
	m, ok := e.models[name]
	return m, ok
}

// ModelNames lists the registered models in construction order.
func (e *Engine) ModelNames() []string {
	names := make([]string, len(e.ordered))
	for i, m := range e.ordered {
		names[i] = m.Name()
	}
	return names
}

// Search runs one model's ranked search, recording metrics when
// enabled.
func (e *Engine) Search(modelName, query string, topK int) ([]ScoredDoc, bool) {
	m, ok := e.models[modelName]
	if !ok {
		return nil, false
	}
	start := time.Now()
	results := m.Search(query, topK)
	if e.metrics != nil {
		e.metrics.SearchesTotal.WithLabelValues(modelName).Inc()
		e.metrics.SearchLatency.WithLabelValues(modelName).Observe(time.Since(start).Seconds())
		e.metrics.SearchResultsCount.WithLabelValues(modelName).Observe(float64(len(results)))
	}
	e.logger.Debug("search executed",
		"model", modelName,
		"query", query,
		"results", len(results),
	)
	return results, true
}

// Compare runs the query against every model and returns the ranked
// results keyed by model name.
func (e *Engine) Compare(query string, topK int) map[string][]ScoredDoc {
	results := make(map[string][]ScoredDoc, len(e.ordered))
	for _, m := range e.ordered {
		ranked, _ := e.Search(m.Name(), query, topK)
		results[m.Name()] = ranked
	}
	return results
}

// CompareIDs runs the query against every model and returns only the
// ranked document ids keyed by model name, the shape consumed by
// evaluation tooling.
func (e *Engine) CompareIDs(query string, topK int) map[string][]int {
	results := e.Compare(query, topK)
	ids := make(map[string][]int, len(results))
	for name, ranked := range results {
		ids[name] = RankedIDs(ranked)
	}
	return ids
}
