// Package config loads the process-wide configuration shared by the catalog
// Lambda functions.
//
// Values come from CATALOG_ prefixed environment variables (and a local .env
// file when present). The first underscore after the prefix separates the
// section from the key, so CATALOG_BOOKS_TABLE maps to books.table.
package config

import (
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"
	_ "github.com/joho/godotenv/autoload"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
)

// EnvPrefix is the prefix shared by every configuration variable.
const EnvPrefix = "CATALOG_"

// Config is the root configuration object.
type Config struct {
	Env       string          `koanf:"env" validate:"required"`
	AWS       AWSConfig       `koanf:"aws" validate:"required"`
	CORS      CORSConfig      `koanf:"cors" validate:"required"`
	Books     BooksConfig     `koanf:"books" validate:"required"`
	Translate TranslateConfig `koanf:"translate" validate:"required"`
	Log       LogConfig       `koanf:"log" validate:"required"`
}

// AWSConfig selects the region the SDK clients talk to.
type AWSConfig struct {
	Region string `koanf:"region" validate:"required"`
}

// CORSConfig holds the single origin allowed to consume responses.
type CORSConfig struct {
	AllowedOrigin string `koanf:"allowed_origin" validate:"required"`
}

// BooksConfig names the record store table.
type BooksConfig struct {
	Table string `koanf:"table" validate:"required"`
}

// TranslateConfig holds the fixed language settings of the translation handler.
type TranslateConfig struct {
	SourceLang        string `koanf:"source_lang" validate:"required"`
	DefaultTargetLang string `koanf:"default_target_lang" validate:"required"`
	AllowedLangs      string `koanf:"allowed_langs" validate:"required"`
}

// Languages splits the comma separated allowlist, keeping its order.
func (t TranslateConfig) Languages() []string {
	var langs []string
	for _, lang := range strings.Split(t.AllowedLangs, ",") {
		if lang = strings.TrimSpace(lang); lang != "" {
			langs = append(langs, lang)
		}
	}
	return langs
}

// LogConfig controls the zerolog output.
type LogConfig struct {
	Level  string `koanf:"level" validate:"required,oneof=trace debug info warn error"`
	Format string `koanf:"format" validate:"required,oneof=json console"`
}

// Default returns the configuration used when no variables are set.
func Default() *Config {
	return &Config{
		Env: "dev",
		AWS: AWSConfig{
			Region: "eu-north-1",
		},
		CORS: CORSConfig{
			AllowedOrigin: "https://d31opzenb97zag.cloudfront.net",
		},
		Books: BooksConfig{
			Table: "BookCatalog",
		},
		Translate: TranslateConfig{
			SourceLang:        "en",
			DefaultTargetLang: "it",
			AllowedLangs:      "it,pl,ru",
		},
		Log: LogConfig{
			Level:  "info",
			Format: "json",
		},
	}
}

// Load reads the environment on top of Default and validates the result.
func Load() (*Config, error) {
	k := koanf.New(".")

	err := k.Load(env.Provider(EnvPrefix, ".", envKey), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load env variables")
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks struct tags and the cross-field language constraint.
func (c *Config) Validate() error {
	if err := validator.New().Struct(c); err != nil {
		return errors.Wrap(err, "config validation failed")
	}

	langs := c.Translate.Languages()
	if len(langs) == 0 {
		return errors.New("allowed languages list is empty")
	}
	if !slices.Contains(langs, c.Translate.DefaultTargetLang) {
		return errors.Errorf("default target language %q is not in allowed languages %v",
			c.Translate.DefaultTargetLang, langs)
	}

	return nil
}

// envKey turns CATALOG_TRANSLATE_DEFAULT_TARGET_LANG into translate.default_target_lang.
func envKey(s string) string {
	key := strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
	return strings.Replace(key, "_", ".", 1)
}
