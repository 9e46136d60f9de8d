// Package sampler fetches the Pokémon shown by the browser: a random sample
// or the first members of a type
package sampler

//go:generate mockgen -destination=mock/mock_service.go -package=samplermock github.com/andresmatiasescobar/pokedex/internal/orchestrators/sampler Service

import (
	"context"
	"log/slog"
	"strconv"
	"strings"
	"sync"

	"github.com/andresmatiasescobar/pokedex/internal/clients/pokeapi"
	"github.com/andresmatiasescobar/pokedex/internal/entities"
	"github.com/andresmatiasescobar/pokedex/internal/errors"
	"github.com/andresmatiasescobar/pokedex/internal/pkg/idgen"
)

const (
	// DefaultSampleSize is how many Pokémon the random sample shows
	DefaultSampleSize = 7

	// DefaultIDSpace is the highest national dex id drawn (through Generation VIII)
	DefaultIDSpace = 898

	// DefaultTypeCap limits how many members of a type are fetched
	DefaultTypeCap = 20
)

// Service defines the interface for sampling operations
type Service interface {
	// FetchRandomSample draws distinct ids and fetches them one at a time.
	// Any failure aborts the whole sample.
	FetchRandomSample(ctx context.Context, input *FetchRandomSampleInput) (*FetchRandomSampleOutput, error)

	// FetchByType fetches the first Cap members of a type concurrently.
	// Members whose detail fails are dropped; a roster failure aborts.
	FetchByType(ctx context.Context, input *FetchByTypeInput) (*FetchByTypeOutput, error)
}

// Config holds the dependencies for the sampler orchestrator
type Config struct {
	Client pokeapi.Client
	// Drawer picks random ids (optional, defaults to dice rolls)
	Drawer idgen.Drawer
	// DetailConcurrency bounds in-flight detail requests in FetchByType; 0 means one per member
	DetailConcurrency int
	Logger            *slog.Logger
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Client == nil {
		vb.RequiredField("Client")
	}
	if c.DetailConcurrency < 0 {
		vb.Field("DetailConcurrency", "must not be negative")
	}

	return vb.Build()
}

type orchestrator struct {
	client      pokeapi.Client
	drawer      idgen.Drawer
	concurrency int
	logger      *slog.Logger
}

// NewOrchestrator creates a new sampler orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	o := &orchestrator{
		client:      cfg.Client,
		drawer:      cfg.Drawer,
		concurrency: cfg.DetailConcurrency,
		logger:      cfg.Logger,
	}
	if o.drawer == nil {
		o.drawer = idgen.NewDice()
	}
	if o.logger == nil {
		o.logger = slog.Default()
	}

	return o, nil
}

func (o *orchestrator) FetchRandomSample(ctx context.Context, input *FetchRandomSampleInput) (*FetchRandomSampleOutput, error) {
	if input == nil {
		input = &FetchRandomSampleInput{}
	}
	count := input.Count
	if count == 0 {
		count = DefaultSampleSize
	}
	idSpace := input.IDSpace
	if idSpace == 0 {
		idSpace = DefaultIDSpace
	}

	ids, err := idgen.Distinct(o.drawer, count, idSpace)
	if err != nil {
		return nil, errors.Wrap(err, "failed to draw pokemon ids")
	}

	o.logger.DebugContext(ctx, "fetching random sample", "ids", ids)

	// One request at a time, in draw order
	pokemon := make([]*entities.Pokemon, 0, len(ids))
	for _, id := range ids {
		data, err := o.client.GetPokemon(ctx, strconv.Itoa(id))
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load pokemon with ID %d: %s", id, pokeapi.StatusText(err)).
				WithMeta("id", id)
		}
		pokemon = append(pokemon, pokeapi.ToPokemon(data))
	}

	return &FetchRandomSampleOutput{
		IDs:     ids,
		Pokemon: pokemon,
	}, nil
}

func (o *orchestrator) FetchByType(ctx context.Context, input *FetchByTypeInput) (*FetchByTypeOutput, error) {
	if input == nil || strings.TrimSpace(input.Type) == "" {
		return nil, errors.InvalidArgument("type is required")
	}
	limit := input.Cap
	if limit == 0 {
		limit = DefaultTypeCap
	}
	if limit < 0 {
		return nil, errors.InvalidArgumentf("cap must be positive, got %d", limit)
	}

	data, err := o.client.GetType(ctx, input.Type)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load pokemon of type %s: %s", input.Type, pokeapi.StatusText(err)).
			WithMeta("type", input.Type)
	}

	members := data.Pokemon
	if len(members) > limit {
		members = members[:limit]
	}

	slots := o.fetchMembers(ctx, input.Type, members)

	output := &FetchByTypeOutput{
		Pokemon: make([]*entities.Pokemon, 0, len(slots)),
		Members: len(data.Pokemon),
	}
	for i, p := range slots {
		if p == nil {
			// nil roster entries were never requested
			if members[i] != nil {
				output.Skipped = append(output.Skipped, members[i].Pokemon.Name)
			}
			continue
		}
		output.Pokemon = append(output.Pokemon, p)
	}

	o.logger.InfoContext(ctx, "fetched pokemon by type",
		"type", input.Type,
		"members", output.Members,
		"fetched", len(output.Pokemon),
		"skipped", len(output.Skipped))

	return output, nil
}

// fetchMembers resolves every member concurrently. Slot i holds member i, or
// nil when its detail fetch failed.
func (o *orchestrator) fetchMembers(ctx context.Context, typeName string, members []*pokeapi.TypeMember) []*entities.Pokemon {
	slots := make([]*entities.Pokemon, len(members))

	var sem chan struct{}
	if o.concurrency > 0 {
		sem = make(chan struct{}, o.concurrency)
	}

	var wg sync.WaitGroup
	for i, member := range members {
		if member == nil {
			continue
		}

		wg.Add(1)
		go func() {
			defer wg.Done()
			if sem != nil {
				sem <- struct{}{}
				defer func() { <-sem }()
			}

			data, err := o.client.GetPokemonByURL(ctx, member.Pokemon.URL)
			if err != nil {
				o.logger.WarnContext(ctx, "could not fetch pokemon details",
					"type", typeName,
					"pokemon", member.Pokemon.Name,
					"url", member.Pokemon.URL,
					"error", err)
				return
			}
			slots[i] = pokeapi.ToPokemon(data)
		}()
	}
	wg.Wait()

	return slots
}
