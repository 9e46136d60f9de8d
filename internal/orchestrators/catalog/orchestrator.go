// Package catalog loads the list of Pokémon types offered by the selector
package catalog

//go:generate mockgen -destination=mock/mock_service.go -package=catalogmock github.com/andresmatiasescobar/pokedex/internal/orchestrators/catalog Service

import (
	"context"
	"log/slog"

	"github.com/andresmatiasescobar/pokedex/internal/clients/pokeapi"
	"github.com/andresmatiasescobar/pokedex/internal/entities"
	"github.com/andresmatiasescobar/pokedex/internal/errors"
)

// Service defines the interface for the type catalog
type Service interface {
	// LoadTypes fetches every type once and drops the non-browsable ones
	LoadTypes(ctx context.Context, input *LoadTypesInput) (*LoadTypesOutput, error)
}

// Config holds the dependencies for the catalog orchestrator
type Config struct {
	Client pokeapi.Client
	Logger *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}

	return vb.Build()
}

type orchestrator struct {
	client pokeapi.Client
	logger *slog.Logger
}

// NewOrchestrator creates a new catalog orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &orchestrator{
		client: cfg.Client,
		logger: logger,
	}, nil
}

func (o *orchestrator) LoadTypes(ctx context.Context, _ *LoadTypesInput) (*LoadTypesOutput, error) {
	refs, err := o.client.ListTypes(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load pokemon types: %s", pokeapi.StatusText(err))
	}

	output := &LoadTypesOutput{
		Types: make([]string, 0, len(refs)),
	}
	seen := make(map[string]struct{}, len(refs))
	for _, name := range pokeapi.TypeNames(refs) {
		// first occurrence wins, so API order is kept
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}

		if !entities.IsBrowsableType(name) {
			output.Excluded = append(output.Excluded, name)
			continue
		}
		output.Types = append(output.Types, name)
	}

	o.logger.InfoContext(ctx, "loaded type catalog",
		"types", len(output.Types),
		"excluded", output.Excluded)

	return output, nil
}
