// Package client provides commands that query PokeAPI through the same
// orchestrators the web server uses, without starting the server
package client

import (
	"log/slog"
	"time"

	"github.com/spf13/cobra"

	"github.com/andresmatiasescobar/pokedex/internal/clients/pokeapi"
	"github.com/andresmatiasescobar/pokedex/internal/errors"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/catalog"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/sampler"
	"github.com/andresmatiasescobar/pokedex/internal/pkg/idgen"
)

// options are the persistent flags shared by every client command
type options struct {
	baseURL string
	timeout time.Duration
	verbose bool
}

// NewCommand builds the client command tree
func NewCommand() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "client",
		Short: "Query PokeAPI from the command line",
		Long:  `Client commands run the catalog and sampler orchestrators against PokeAPI and print the results.`,
	}

	cmd.PersistentFlags().StringVar(&opts.baseURL, "base-url", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	cmd.PersistentFlags().DurationVar(&opts.timeout, "timeout", pokeapi.DefaultHTTPTimeout, "Request timeout")
	cmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Log each request to stderr")

	cmd.AddCommand(newTypesCmd(opts))
	cmd.AddCommand(newRandomCmd(opts))
	cmd.AddCommand(newByTypeCmd(opts))

	return cmd
}

func (o *options) logger(cmd *cobra.Command) *slog.Logger {
	level := slog.LevelWarn
	if o.verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))
}

func (o *options) pokeClient(cmd *cobra.Command) (pokeapi.Client, error) {
	client, err := pokeapi.New(&pokeapi.Config{
		BaseURL:     o.baseURL,
		HTTPTimeout: o.timeout,
		Logger:      o.logger(cmd),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create pokeapi client")
	}
	return client, nil
}

func (o *options) catalog(cmd *cobra.Command) (catalog.Service, error) {
	client, err := o.pokeClient(cmd)
	if err != nil {
		return nil, err
	}
	return catalog.NewOrchestrator(&catalog.Config{Client: client, Logger: o.logger(cmd)})
}

// sampler uses a seeded drawer when seed is non-zero so runs can be repeated
func (o *options) sampler(cmd *cobra.Command, seed int64, concurrency int) (sampler.Service, error) {
	client, err := o.pokeClient(cmd)
	if err != nil {
		return nil, err
	}

	var drawer idgen.Drawer = idgen.NewDice()
	if seed != 0 {
		drawer = idgen.NewSeeded(seed)
	}

	return sampler.NewOrchestrator(&sampler.Config{
		Client:            client,
		Drawer:            drawer,
		DetailConcurrency: concurrency,
		Logger:            o.logger(cmd),
	})
}
