// Package config loads and validates engine configuration from YAML
// files with environment-variable overrides. It provides typed
// structs for every subsystem (Normalizer, Index, Build, Models,
// Logging, Metrics).
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config is the top-level engine configuration.
type Config struct {
	Corpus     CorpusConfig     `yaml:"corpus"`
	Normalizer NormalizerConfig `yaml:"normalizer"`
	Index      IndexConfig      `yaml:"index"`
	Build      BuildConfig      `yaml:"build"`
	Models     ModelsConfig     `yaml:"models"`
	Logging    LoggingConfig    `yaml:"logging"`
	Metrics    MetricsConfig    `yaml:"metrics"`
}

// CorpusConfig locates the flat-file document collection.
type CorpusConfig struct {
	Dir string `yaml:"dir"`
}

// NormalizerConfig selects the language rules applied to documents
// and queries.
type NormalizerConfig struct {
	Language       string `yaml:"language"`
	MinTokenLength int    `yaml:"minTokenLength"`
}

// IndexConfig holds the persistence paths and compression method.
type IndexConfig struct {
	Path           string `yaml:"path"`
	CompressedPath string `yaml:"compressedPath"`
	Compression    string `yaml:"compression"`
}

// BuildConfig controls the parallel index builder.
type BuildConfig struct {
	Workers int `yaml:"workers"`
}

// ModelsConfig tunes the ranking models.
type ModelsConfig struct {
	TopK     int             `yaml:"topK"`
	BM25     BM25Config      `yaml:"bm25"`
	Language LangModelConfig `yaml:"language"`
}

// BM25Config holds the probabilistic model parameters.
type BM25Config struct {
	K1 float64 `yaml:"k1"`
	B  float64 `yaml:"b"`
}

// LangModelConfig holds the language-model smoothing weight.
type LangModelConfig struct {
	Lambda float64 `yaml:"lambda"`
}

// LoggingConfig controls structured logging level and output format.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// MetricsConfig controls the Prometheus metrics endpoint.
type MetricsConfig struct {
	Enabled bool `yaml:"enabled"`
	Port    int  `yaml:"port"`
}

// Load reads a YAML config file (if provided) and applies
// environment-variable overrides. It returns a Config populated with
// defaults for any missing values.
func Load(path string) (*Config, error) {
	cfg := defaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("parsing config file %s: %w", path, err)
		}
	}
	applyEnvOverrides(cfg)
	return cfg, nil
}

// defaultConfig returns a Config with working defaults for local use.
func defaultConfig() *Config {
	return &Config{
		Corpus: CorpusConfig{
			Dir: "corpus",
		},
		Normalizer: NormalizerConfig{
			Language:       "french",
			MinTokenLength: 3,
		},
		Index: IndexConfig{
			Path:           "data/index.json",
			CompressedPath: "data/index.bin.gz",
			Compression:    "gap",
		},
		Build: BuildConfig{
			Workers: 4,
		},
		Models: ModelsConfig{
			TopK: 10,
			BM25: BM25Config{
				K1: 1.5,
				B:  0.75,
			},
			Language: LangModelConfig{
				Lambda: 0.5,
			},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
	}
}

// applyEnvOverrides reads RI_* environment variables and overrides
// the corresponding config fields.
func applyEnvOverrides(cfg *Config) {
	if v := os.Getenv("RI_CORPUS_DIR"); v != "" {
		cfg.Corpus.Dir = v
	}
	if v := os.Getenv("RI_LANGUAGE"); v != "" {
		cfg.Normalizer.Language = v
	}
	if v := os.Getenv("RI_MIN_TOKEN_LENGTH"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Normalizer.MinTokenLength = n
		}
	}
	if v := os.Getenv("RI_INDEX_PATH"); v != "" {
		cfg.Index.Path = v
	}
	if v := os.Getenv("RI_INDEX_COMPRESSED_PATH"); v != "" {
		cfg.Index.CompressedPath = v
	}
	if v := os.Getenv("RI_INDEX_COMPRESSION"); v != "" {
		cfg.Index.Compression = v
	}
	if v := os.Getenv("RI_BUILD_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Build.Workers = n
		}
	}
	if v := os.Getenv("RI_MODELS_TOPK"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Models.TopK = n
		}
	}
	if v := os.Getenv("RI_BM25_K1"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Models.BM25.K1 = f
		}
	}
	if v := os.Getenv("RI_BM25_B"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Models.BM25.B = f
		}
	}
	if v := os.Getenv("RI_LM_LAMBDA"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Models.Language.Lambda = f
		}
	}
	if v := os.Getenv("RI_LOGGING_LEVEL"); v != "" {
		cfg.Logging.Level = v
	}
	if v := os.Getenv("RI_LOGGING_FORMAT"); v != "" {
		cfg.Logging.Format = v
	}
	if v := os.Getenv("RI_METRICS_PORT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Metrics.Port = n
		}
	}
}
