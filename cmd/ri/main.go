// Command ri is the text-search engine CLI: it writes and indexes
// flat-file corpora, persists and compresses the inverted index, and
// runs ranked queries through the four retrieval models.
package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/AziizBg/ri/internal/build"
	"github.com/AziizBg/ri/internal/compress"
	"github.com/AziizBg/ri/internal/corpus"
	"github.com/AziizBg/ri/internal/index"
	"github.com/AziizBg/ri/internal/model"
	"github.com/AziizBg/ri/internal/textnorm"
	"github.com/AziizBg/ri/pkg/config"
	"github.com/AziizBg/ri/pkg/health"
	"github.com/AziizBg/ri/pkg/logger"
	"github.com/AziizBg/ri/pkg/metrics"
)

func main() {
	app := &cli.App{
		Name:  "ri",
		Usage: "Small-scale text-search engine with four retrieval models",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to YAML config file",
			},
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Logging level (debug, info, warn, error)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "corpus",
				Usage:  "Write the built-in sample corpus to the corpus directory",
				Action: corpusCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "docs",
						Usage: "Number of sample documents to write",
						Value: 20,
					},
				},
			},
			{
				Name:   "index",
				Usage:  "Build the inverted index from the corpus directory and save it",
				Action: indexCommand,
			},
			{
				Name:      "search",
				Usage:     "Run a ranked query through one model (interactive without a query)",
				ArgsUsage: "[query]",
				Action:    searchCommand,
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:    "model",
						Aliases: []string{"m"},
						Usage:   "Retrieval model (boolean, vector, bm25, language)",
						Value:   model.NameBM25,
					},
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results",
					},
				},
			},
			{
				Name:      "compare",
				Usage:     "Run a query through all four models",
				ArgsUsage: "<query>",
				Action:    compareCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "top-k",
						Aliases: []string{"k"},
						Usage:   "Maximum number of results per model",
					},
				},
			},
			{
				Name:   "compress",
				Usage:  "Compress the index postings and save the binary artifact",
				Action: compressCommand,
			},
			{
				Name:   "stats",
				Usage:  "Print statistics for the saved index",
				Action: statsCommand,
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of most frequent terms to show",
						Value: 10,
					},
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig reads the config file and applies CLI overrides.
func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}
	if lvl := c.String("log-level"); lvl != "" {
		cfg.Logging.Level = lvl
	}
	logger.Setup(cfg.Logging.Level, cfg.Logging.Format)
	return cfg, nil
}

// buildFromCorpus loads the corpus directory and builds the index and
// normalized documents with the configured worker count.
func buildFromCorpus(c *cli.Context, cfg *config.Config) (*index.Index, []corpus.ProcessedDocument, error) {
	docs, err := corpus.LoadDir(cfg.Corpus.Dir, cfg.Build.Workers)
	if err != nil {
		return nil, nil, err
	}
	if len(docs) == 0 {
		return nil, nil, fmt.Errorf("no documents in corpus directory %s (run %q first)", cfg.Corpus.Dir, "ri corpus")
	}
	builder := build.New(normConfig(cfg), cfg.Build.Workers)
	return builder.Build(c.Context, docs)
}

func normConfig(cfg *config.Config) textnorm.Config {
	return textnorm.Config{
		Language:       cfg.Normalizer.Language,
		MinTokenLength: cfg.Normalizer.MinTokenLength,
	}
}

// newEngine assembles the four models, wiring metrics when enabled.
func newEngine(cfg *config.Config, ix *index.Index, docs []corpus.ProcessedDocument, buildDur time.Duration) *model.Engine {
	opts := []model.Option{
		model.WithLogger(logger.WithComponent("engine")),
	}
	if cfg.Metrics.Enabled {
		m := metrics.New()
		m.DocsIndexedTotal.Add(float64(ix.DocCount()))
		m.IndexTermCount.Set(float64(ix.TermCount()))
		m.IndexBuildDuration.Observe(buildDur.Seconds())
		opts = append(opts, model.WithMetrics(m))
		go serveMetrics(cfg, cfg.Metrics.Port)
	}
	return model.NewEngine(
		ix, docs, textnorm.New(normConfig(cfg)),
		model.BM25Params{K1: cfg.Models.BM25.K1, B: cfg.Models.BM25.B},
		cfg.Models.Language.Lambda,
		opts...,
	)
}

func serveMetrics(cfg *config.Config, port int) {
	checker := health.NewChecker()
	checker.Register("corpus", func(ctx context.Context) health.ComponentHealth {
		if _, err := os.Stat(cfg.Corpus.Dir); err != nil {
			return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})
	checker.Register("index", func(ctx context.Context) health.ComponentHealth {
		if _, err := os.Stat(cfg.Index.Path); err != nil {
			return health.ComponentHealth{Status: health.StatusDown, Message: err.Error()}
		}
		return health.ComponentHealth{Status: health.StatusUp}
	})

	mux := http.NewServeMux()
	mux.Handle("/metrics", metrics.Handler())
	mux.Handle("/healthz", checker.Handler())
	addr := fmt.Sprintf(":%d", port)
	slog.Info("metrics endpoint listening", "addr", addr)
	if err := http.ListenAndServe(addr, mux); err != nil {
		slog.Error("metrics endpoint failed", "error", err)
	}
}

func topK(c *cli.Context, cfg *config.Config) int {
	if k := c.Int("top-k"); k > 0 {
		return k
	}
	return cfg.Models.TopK
}

func corpusCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	docs, err := corpus.WriteSample(cfg.Corpus.Dir, c.Int("docs"))
	if err != nil {
		return err
	}
	fmt.Printf("wrote %d documents to %s\n", len(docs), cfg.Corpus.Dir)
	return nil
}

func indexCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	ix, _, err := buildFromCorpus(c, cfg)
	if err != nil {
		return err
	}
	if err := ix.Save(cfg.Index.Path); err != nil {
		return err
	}
	fmt.Printf("indexed %d documents, %d terms -> %s\n",
		ix.DocCount(), ix.TermCount(), cfg.Index.Path)
	return nil
}

func searchCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	buildStart := time.Now()
	ix, docs, err := buildFromCorpus(c, cfg)
	if err != nil {
		return err
	}
	engine := newEngine(cfg, ix, docs, time.Since(buildStart))
	modelName := c.String("model")
	if _, ok := engine.Model(modelName); !ok {
		return fmt.Errorf("unknown model %q (available: %s)",
			modelName, strings.Join(engine.ModelNames(), ", "))
	}

	runOne := func(query string) {
		results, _ := engine.Search(modelName, query, topK(c, cfg))
		printResults(modelName, results)
	}

	if query := strings.Join(c.Args().Slice(), " "); query != "" {
		runOne(query)
		return nil
	}

	// No query argument: read queries interactively.
	fmt.Printf("model=%s, empty line quits\n", modelName)
	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("query> ")
		if !scanner.Scan() {
			break
		}
		query := strings.TrimSpace(scanner.Text())
		if query == "" {
			break
		}
		runOne(query)
	}
	return scanner.Err()
}

func compareCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	query := strings.Join(c.Args().Slice(), " ")
	if query == "" {
		return fmt.Errorf("missing query argument")
	}
	buildStart := time.Now()
	ix, docs, err := buildFromCorpus(c, cfg)
	if err != nil {
		return err
	}
	engine := newEngine(cfg, ix, docs, time.Since(buildStart))
	results := engine.Compare(query, topK(c, cfg))

	names := engine.ModelNames()
	for _, name := range names {
		printResults(name, results[name])
	}
	return nil
}

func compressCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	ix, _, err := buildFromCorpus(c, cfg)
	if err != nil {
		return err
	}
	method, err := compress.ParseMethod(cfg.Index.Compression)
	if err != nil {
		return err
	}
	compressed, err := compress.Compress(ix, method)
	if err != nil {
		return err
	}
	if err := compressed.Save(cfg.Index.CompressedPath); err != nil {
		return err
	}
	fmt.Printf("compressed %d terms (method=%s, %d stored values) -> %s\n",
		compressed.TermCount(), method, compressed.EncodedLen(), cfg.Index.CompressedPath)
	return nil
}

func statsCommand(c *cli.Context) error {
	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	ix := index.New()
	if err := ix.Load(cfg.Index.Path); err != nil {
		return err
	}
	st := ix.ComputeStats(c.Int("top"))
	fmt.Printf("documents: %d\n", st.DocCount)
	fmt.Printf("unique terms: %d\n", st.TermCount)
	fmt.Printf("avg posting-list length: %.2f\n", st.AvgPostingLen)
	fmt.Println("most frequent terms:")
	for _, tf := range st.TopTerms {
		fmt.Printf("  %-20s %d documents\n", tf.Term, tf.DocFreq)
	}
	return nil
}

func printResults(modelName string, results []model.ScoredDoc) {
	fmt.Printf("[%s] %d results\n", modelName, len(results))
	for i, r := range results {
		fmt.Printf("  %2d. doc %-4d score=%.4f\n", i+1, r.DocID, r.Score)
	}
}
