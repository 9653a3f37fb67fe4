package useragent

import (
	"errors"
	"log/slog"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config describes how the application-wide classifier is built.
type Config struct {
	// Strict enables the filter chain for Parse calls.
	Strict bool `env:"USERAGENT_STRICT" envDefault:"true"`

	// CacheSize enables an LRU result cache when positive.
	CacheSize int `env:"USERAGENT_CACHE_SIZE" envDefault:"0"`

	// DefinitionFile replaces the built-in knowledge base with a YAML file.
	DefinitionFile string `env:"USERAGENT_DEFINITION_FILE"`
}

// LoadConfig reads Config from the environment. The given .env files are
// loaded first; without arguments the default .env is tried and may be
// missing. Variables already set in the environment take precedence.
func LoadConfig(envFiles ...string) (Config, error) {
	if len(envFiles) > 0 {
		if err := godotenv.Load(envFiles...); err != nil {
			return Config{}, errors.Join(ErrLoadingConfig, err)
		}
	} else {
		_ = godotenv.Load()
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, errors.Join(ErrLoadingConfig, err)
	}
	return cfg, nil
}

// NewFromConfig builds a Classifier from cfg. Options are applied after the
// configuration, so they can override it.
func NewFromConfig(cfg Config, opts ...Option) (Classifier, error) {
	parserOpts := []Option{WithStrict(cfg.Strict)}

	if cfg.DefinitionFile != "" {
		def, err := LoadDefinitionFile(cfg.DefinitionFile)
		if err != nil {
			return nil, err
		}
		parserOpts = append(parserOpts, WithDefinition(def))
	}

	p, err := NewParser(append(parserOpts, opts...)...)
	if err != nil {
		return nil, err
	}

	p.logger.Info("user agent classifier configured",
		slog.String("definition", definitionSource(cfg)),
		slog.Bool("strict", p.strict),
		slog.Int("cache_size", cfg.CacheSize),
	)

	if cfg.CacheSize > 0 {
		return NewCachedParser(p, cfg.CacheSize), nil
	}
	return p, nil
}

func definitionSource(cfg Config) string {
	if cfg.DefinitionFile == "" {
		return "builtin"
	}
	return cfg.DefinitionFile
}
