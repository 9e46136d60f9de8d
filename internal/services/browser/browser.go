package browser

import (
	"context"
	"log/slog"
	"slices"
	"strings"
	"sync"

	"github.com/andresmatiasescobar/pokedex/internal/errors"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/catalog"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/sampler"
	"github.com/andresmatiasescobar/pokedex/internal/pkg/clock"
	"github.com/andresmatiasescobar/pokedex/internal/pkg/idgen"
)

// Config holds the dependencies of the browser component
type Config struct {
	Catalog catalog.Service
	Sampler sampler.Service

	// IDGenerator names cycles in logs (optional, defaults to UUIDs)
	IDGenerator idgen.Generator
	// Clock stamps views (optional)
	Clock  clock.Clock
	Logger *slog.Logger

	// SampleSize, IDSpace and TypeCap fall back to the sampler defaults when zero
	SampleSize int
	IDSpace    int
	TypeCap    int
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Catalog == nil {
		vb.RequiredField("Catalog")
	}
	if c.Sampler == nil {
		vb.RequiredField("Sampler")
	}
	if c.SampleSize < 0 {
		vb.Field("SampleSize", "must not be negative")
	}
	if c.IDSpace < 0 {
		vb.Field("IDSpace", "must not be negative")
	}
	if c.TypeCap < 0 {
		vb.Field("TypeCap", "must not be negative")
	}

	return vb.Build()
}

// browser keeps one result per mode. The selection picks which one is on
// display, so clearing it brings back the random sample untouched.
//
// Every cycle takes the next value of a single counter. A finished cycle is
// applied only if its mode still expects that generation; anything else is a
// superseded response and is dropped.
type browser struct {
	catalog catalog.Service
	sampler sampler.Service
	ids     idgen.Generator
	clock   clock.Clock
	logger  *slog.Logger

	sampleSize int
	idSpace    int
	typeCap    int

	mu         sync.Mutex
	mounted    bool
	generation uint64
	types      []string
	catalogSet bool
	selected   string
	random     result
	typed      result
}

// NewService creates the browser component
func NewService(cfg *Config) (Service, error) {
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	b := &browser{
		catalog:    cfg.Catalog,
		sampler:    cfg.Sampler,
		ids:        cfg.IDGenerator,
		clock:      cfg.Clock,
		logger:     cfg.Logger,
		sampleSize: cfg.SampleSize,
		idSpace:    cfg.IDSpace,
		typeCap:    cfg.TypeCap,
	}
	if b.ids == nil {
		b.ids = idgen.NewUUID("cycle")
	}
	if b.clock == nil {
		b.clock = clock.New()
	}
	if b.logger == nil {
		b.logger = slog.Default()
	}
	b.random = result{state: StateLoading, updatedAt: b.clock.Now()}

	return b, nil
}

func (b *browser) View() *View {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.viewLocked()
}

func (b *browser) viewLocked() *View {
	if b.selected != "" {
		return b.typed.view(b.selected, b.types)
	}
	return b.random.view("", b.types)
}

func (b *browser) Mount(ctx context.Context) (*View, error) {
	b.mu.Lock()
	if b.mounted {
		b.mu.Unlock()
		return nil, errors.FailedPrecondition("browser is already mounted")
	}
	b.mounted = true
	b.mu.Unlock()

	gen, cycleID := b.beginRandom()
	logger := b.logger.With("cycle_id", cycleID, "generation", gen)
	logger.InfoContext(ctx, "mounting browser")

	catalogOut, err := b.catalog.LoadTypes(ctx, &catalog.LoadTypesInput{})
	if err != nil {
		logger.ErrorContext(ctx, "failed to load type catalog", "error", err)
		b.finishRandom(ctx, gen, nil, err)
		return b.View(), nil
	}

	b.mu.Lock()
	b.types = catalogOut.Types
	b.catalogSet = true
	b.mu.Unlock()

	b.runRandom(ctx, gen, logger)
	return b.View(), nil
}

func (b *browser) Reshuffle(ctx context.Context) (*View, error) {
	gen, cycleID := b.beginRandom()
	logger := b.logger.With("cycle_id", cycleID, "generation", gen)
	logger.InfoContext(ctx, "reshuffling random sample")

	b.runRandom(ctx, gen, logger)
	return b.View(), nil
}

func (b *browser) Select(ctx context.Context, typeName string) (*View, error) {
	typeName = strings.ToLower(strings.TrimSpace(typeName))

	b.mu.Lock()
	if typeName == b.selected {
		defer b.mu.Unlock()
		return b.viewLocked(), nil
	}

	if typeName == "" {
		// The random sample on record comes back as it was; nothing is fetched.
		// A type cycle still in flight is superseded.
		b.generation++
		b.typed = result{}
		b.selected = ""
		defer b.mu.Unlock()
		b.logger.InfoContext(ctx, "selection cleared, showing random sample", "generation", b.generation)
		return b.viewLocked(), nil
	}

	if b.catalogSet && !slices.Contains(b.types, typeName) {
		b.mu.Unlock()
		return nil, errors.InvalidArgumentf("unknown pokemon type %q", typeName).WithMeta("type", typeName)
	}

	b.generation++
	gen := b.generation
	cycleID := b.ids.Generate()
	b.selected = typeName
	b.typed = result{state: StateLoading, generation: gen, cycleID: cycleID, updatedAt: b.clock.Now()}
	b.mu.Unlock()

	logger := b.logger.With("cycle_id", cycleID, "generation", gen, "type", typeName)
	logger.InfoContext(ctx, "fetching pokemon by type")

	out, err := b.sampler.FetchByType(ctx, &sampler.FetchByTypeInput{Type: typeName, Cap: b.typeCap})

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.typed.generation != gen || b.selected != typeName {
		logger.DebugContext(ctx, "discarding superseded type cycle", "current_generation", b.generation)
		return b.viewLocked(), nil
	}
	if err != nil {
		logger.ErrorContext(ctx, "type cycle failed", "error", err)
		b.typed = failed(b.typed, err, b.clock)
		return b.viewLocked(), nil
	}
	b.typed.state = StateReady
	b.typed.pokemon = out.Pokemon
	b.typed.updatedAt = b.clock.Now()
	return b.viewLocked(), nil
}

// beginRandom starts a random cycle: it clears the selection and puts the random result in loading
func (b *browser) beginRandom() (uint64, string) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.generation++
	gen := b.generation
	cycleID := b.ids.Generate()
	b.selected = ""
	b.typed = result{}
	b.random = result{state: StateLoading, generation: gen, cycleID: cycleID, updatedAt: b.clock.Now()}
	return gen, cycleID
}

func (b *browser) runRandom(ctx context.Context, gen uint64, logger *slog.Logger) {
	out, err := b.sampler.FetchRandomSample(ctx, &sampler.FetchRandomSampleInput{
		Count:   b.sampleSize,
		IDSpace: b.idSpace,
	})
	if err != nil {
		logger.ErrorContext(ctx, "random cycle failed", "error", err)
		b.finishRandom(ctx, gen, nil, err)
		return
	}
	logger.InfoContext(ctx, "random sample loaded", "ids", out.IDs)
	b.finishRandom(ctx, gen, out, nil)
}

func (b *browser) finishRandom(ctx context.Context, gen uint64, out *sampler.FetchRandomSampleOutput, err error) {
	b.mu.Lock()
	defer b.mu.Unlock()

	if b.random.generation != gen {
		b.logger.DebugContext(ctx, "discarding superseded random cycle",
			"generation", gen,
			"current_generation", b.random.generation)
		return
	}
	if err != nil {
		b.random = failed(b.random, err, b.clock)
		return
	}
	b.random.state = StateReady
	b.random.pokemon = out.Pokemon
	b.random.updatedAt = b.clock.Now()
}

func failed(r result, err error, c clock.Clock) result {
	r.state = StateFailed
	r.err = errors.GetMessage(err)
	r.pokemon = nil
	r.updatedAt = c.Now()
	return r
}
