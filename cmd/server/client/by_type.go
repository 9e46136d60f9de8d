package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andresmatiasescobar/pokedex/internal/entities"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/sampler"
)

func newByTypeCmd(opts *options) *cobra.Command {
	var (
		limit       int
		concurrency int
	)

	cmd := &cobra.Command{
		Use:   "by-type <type>",
		Short: "List the first Pokémon of a type",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := opts.sampler(cmd, 0, concurrency)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			out, err := svc.FetchByType(ctx, &sampler.FetchByTypeInput{Type: args[0], Cap: limit})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Pokémon of type: %s (%d of %d)\n",
				entities.Capitalize(args[0]), len(out.Pokemon), out.Members)
			printPokemon(w, out.Pokemon)
			for _, name := range out.Skipped {
				fmt.Fprintf(w, "  skipped %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&limit, "cap", sampler.DefaultTypeCap, "Max Pokémon to list")
	cmd.Flags().IntVar(&concurrency, "concurrency", 0, "Max in-flight detail requests, 0 for no limit")
	return cmd
}
