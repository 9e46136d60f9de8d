// Package config loads pokedex settings from flags, environment and .env files
package config

import (
	"io"
	"log/slog"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/andresmatiasescobar/pokedex/internal/clients/pokeapi"
	"github.com/andresmatiasescobar/pokedex/internal/errors"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/sampler"
)

// EnvPrefix is prepended to every environment variable, e.g. POKEDEX_PORT
const EnvPrefix = "POKEDEX"

// Keys, shared by flags, env vars and .env files
const (
	KeyPort              = "port"
	KeyBaseURL           = "base_url"
	KeyHTTPTimeout       = "http_timeout"
	KeyDetailConcurrency = "detail_concurrency"
	KeySampleSize        = "sample_size"
	KeyIDSpace           = "id_space"
	KeyTypeCap           = "type_cap"
	KeyLogLevel          = "log_level"
	KeyLogFormat         = "log_format"
)

// Config holds the application configuration
type Config struct {
	Port              int
	BaseURL           string
	HTTPTimeout       time.Duration
	DetailConcurrency int
	SampleSize        int
	IDSpace           int
	TypeCap           int
	LogLevel          string
	LogFormat         string
}

// Load resolves configuration in order of precedence:
// 1. flags that were set on the command line
// 2. POKEDEX_* environment variables
// 3. .env and .env.local files
// 4. defaults
func Load(flags *pflag.FlagSet, envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env", ".env.local"}
	}
	for _, f := range envFiles {
		// missing files are fine
		_ = godotenv.Load(f)
	}

	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if flags != nil {
		var bindErr error
		flags.VisitAll(func(f *pflag.Flag) {
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil && bindErr == nil {
				bindErr = errors.Wrapf(err, "failed to bind flag %s", f.Name)
			}
		})
		if bindErr != nil {
			return nil, bindErr
		}
	}

	cfg := &Config{
		Port:              v.GetInt(KeyPort),
		BaseURL:           v.GetString(KeyBaseURL),
		HTTPTimeout:       v.GetDuration(KeyHTTPTimeout),
		DetailConcurrency: v.GetInt(KeyDetailConcurrency),
		SampleSize:        v.GetInt(KeySampleSize),
		IDSpace:           v.GetInt(KeyIDSpace),
		TypeCap:           v.GetInt(KeyTypeCap),
		LogLevel:          strings.ToLower(v.GetString(KeyLogLevel)),
		LogFormat:         strings.ToLower(v.GetString(KeyLogFormat)),
	}

	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyPort, 8080)
	v.SetDefault(KeyBaseURL, pokeapi.DefaultBaseURL)
	v.SetDefault(KeyHTTPTimeout, pokeapi.DefaultHTTPTimeout)
	v.SetDefault(KeyDetailConcurrency, 0)
	v.SetDefault(KeySampleSize, sampler.DefaultSampleSize)
	v.SetDefault(KeyIDSpace, sampler.DefaultIDSpace)
	v.SetDefault(KeyTypeCap, sampler.DefaultTypeCap)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFormat, "text")
}

// Validate checks ranges and enums
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRange(KeyPort, c.Port, 1, 65535, vb)
	errors.ValidateRequired(KeyBaseURL, c.BaseURL, vb)
	if c.HTTPTimeout <= 0 {
		vb.Field(KeyHTTPTimeout, "must be positive")
	}
	if c.DetailConcurrency < 0 {
		vb.Field(KeyDetailConcurrency, "must not be negative")
	}
	errors.ValidateRange(KeyIDSpace, c.IDSpace, 1, 100000, vb)
	errors.ValidateRange(KeySampleSize, c.SampleSize, 1, c.IDSpace, vb)
	errors.ValidateRange(KeyTypeCap, c.TypeCap, 1, 1000, vb)
	errors.ValidateEnum(KeyLogLevel, c.LogLevel, []string{"debug", "info", "warn", "error"}, vb)
	errors.ValidateEnum(KeyLogFormat, c.LogFormat, []string{"text", "json"}, vb)

	return vb.Build()
}

// NewLogger builds the slog logger described by the config
func (c *Config) NewLogger(w io.Writer) *slog.Logger {
	var level slog.Level
	switch c.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		level = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{Level: level}
	if c.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}
