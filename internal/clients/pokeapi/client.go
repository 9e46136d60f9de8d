// Package pokeapi is the HTTP client for the public PokeAPI
package pokeapi

//go:generate mockgen -destination=mock/mock_client.go -package=pokeapimock github.com/andresmatiasescobar/pokedex/internal/clients/pokeapi Client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/andresmatiasescobar/pokedex/internal/errors"
)

const (
	// DefaultBaseURL is the public PokeAPI v2 root
	DefaultBaseURL = "https://pokeapi.co/api/v2/"

	// DefaultHTTPTimeout bounds a single request
	DefaultHTTPTimeout = 30 * time.Second

	metaURL        = "url"
	metaStatus     = "status"
	metaStatusText = "status_text"
)

// Client defines the PokeAPI calls the browser needs
type Client interface {
	// ListTypes fetches every type reference from GET /type/
	ListTypes(ctx context.Context) ([]*NamedResource, error)

	// GetType fetches a type's roster from GET /type/{name}/
	GetType(ctx context.Context, name string) (*TypeData, error)

	// GetPokemon fetches a Pokémon detail from GET /pokemon/{idOrName}/
	GetPokemon(ctx context.Context, idOrName string) (*PokemonData, error)

	// GetPokemonByURL fetches a Pokémon detail from an absolute URL returned by the API
	GetPokemonByURL(ctx context.Context, rawURL string) (*PokemonData, error)
}

// Config contains configuration options for the PokeAPI client.
type Config struct {
	// BaseURL of the API (optional, defaults to https://pokeapi.co/api/v2/)
	BaseURL string
	// HTTPTimeout for API requests (optional, defaults to 30 seconds)
	HTTPTimeout time.Duration
	// HTTPClient overrides the client built from HTTPTimeout
	HTTPClient *http.Client
	// Logger for request logs (optional, defaults to slog.Default())
	Logger *slog.Logger
}

// Validate validates the Config and sets defaults if not provided.
func (cfg *Config) Validate() error {
	if cfg.BaseURL == "" {
		cfg.BaseURL = DefaultBaseURL
	}
	if cfg.HTTPTimeout == 0 {
		cfg.HTTPTimeout = DefaultHTTPTimeout
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}

	vb := errors.NewValidationBuilder()
	u, err := url.Parse(cfg.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		vb.Fieldf("BaseURL", "must be an absolute URL, got %q", cfg.BaseURL)
	}
	if cfg.HTTPTimeout < 0 {
		vb.Field("HTTPTimeout", "must not be negative")
	}
	return vb.Build()
}

type client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// New creates a new PokeAPI client with the given configuration.
func New(cfg *Config) (Client, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: cfg.HTTPTimeout,
		}
	}

	return &client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/") + "/",
		httpClient: httpClient,
		logger:     cfg.Logger,
	}, nil
}

func (c *client) ListTypes(ctx context.Context) ([]*NamedResource, error) {
	var list typeList
	if err := c.get(ctx, c.baseURL+"type/", &list); err != nil {
		return nil, err
	}
	return list.Results, nil
}

func (c *client) GetType(ctx context.Context, name string) (*TypeData, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errors.InvalidArgument("type name is required")
	}

	var data TypeData
	if err := c.get(ctx, c.baseURL+"type/"+url.PathEscape(name)+"/", &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (c *client) GetPokemon(ctx context.Context, idOrName string) (*PokemonData, error) {
	if strings.TrimSpace(idOrName) == "" {
		return nil, errors.InvalidArgument("pokemon id or name is required")
	}

	return c.GetPokemonByURL(ctx, c.baseURL+"pokemon/"+url.PathEscape(idOrName)+"/")
}

func (c *client) GetPokemonByURL(ctx context.Context, rawURL string) (*PokemonData, error) {
	if rawURL == "" {
		return nil, errors.InvalidArgument("pokemon url is required")
	}

	var data PokemonData
	if err := c.get(ctx, rawURL, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

// get issues a GET and decodes a 2xx JSON body into out. Every failure,
// transport or HTTP, comes back as a fetch error.
func (c *client) get(ctx context.Context, rawURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return errors.InvalidArgumentf("invalid request url %q", rawURL).WithMeta(metaURL, rawURL)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.DebugContext(ctx, "pokeapi request failed", "url", rawURL, "error", err)
		return newFetchError(rawURL, 0, err.Error(), err)
	}
	defer resp.Body.Close()

	c.logger.DebugContext(ctx, "pokeapi request",
		"url", rawURL,
		"status", resp.StatusCode,
		"duration", time.Since(start))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return newFetchError(rawURL, resp.StatusCode, http.StatusText(resp.StatusCode), nil)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return newFetchError(rawURL, resp.StatusCode, "invalid response body", err)
	}

	return nil
}

func newFetchError(rawURL string, status int, statusText string, cause error) *errors.Error {
	err := errors.Unavailablef("GET %s: %s", rawURL, statusText)
	err.Cause = cause
	return err.
		WithMeta(metaURL, rawURL).
		WithMeta(metaStatus, status).
		WithMeta(metaStatusText, statusText)
}

// IsFetchError reports whether err came from a failed PokeAPI request.
// Network failures and non-2xx statuses are not told apart.
func IsFetchError(err error) bool {
	return errors.IsUnavailable(err)
}

// StatusText returns the status text of a fetch error, or the error text otherwise
func StatusText(err error) string {
	if err == nil {
		return ""
	}
	if text, ok := errors.GetMeta(err)[metaStatusText].(string); ok {
		return text
	}
	return errors.GetMessage(err)
}

// Status returns the HTTP status of a fetch error, 0 when none was received
func Status(err error) int {
	status, _ := errors.GetMeta(err)[metaStatus].(int)
	return status
}

// String makes NamedResource readable in logs
func (r *NamedResource) String() string {
	return fmt.Sprintf("%s (%s)", r.Name, r.URL)
}
