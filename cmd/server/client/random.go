package client

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/andresmatiasescobar/pokedex/internal/entities"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/sampler"
)

func newRandomCmd(opts *options) *cobra.Command {
	var (
		count   int
		idSpace int
		seed    int64
	)

	cmd := &cobra.Command{
		Use:   "random",
		Short: "Fetch a random sample of Pokémon",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.sampler(cmd, seed, 0)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			out, err := svc.FetchRandomSample(ctx, &sampler.FetchRandomSampleInput{
				Count:   count,
				IDSpace: idSpace,
			})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintln(w, "Your random Pokémon:")
			printPokemon(w, out.Pokemon)
			return nil
		},
	}

	cmd.Flags().IntVar(&count, "count", sampler.DefaultSampleSize, "Number of Pokémon to draw")
	cmd.Flags().IntVar(&idSpace, "id-space", sampler.DefaultIDSpace, "Draw ids from [1, id-space]")
	cmd.Flags().Int64Var(&seed, "seed", 0, "Seed for a repeatable draw, 0 rolls dice")
	return cmd
}

func printPokemon(w io.Writer, list []*entities.Pokemon) {
	for _, p := range list {
		fmt.Fprintf(w, "  #%d %s (%s)\n", p.ID, p.DisplayName(), p.DisplayTypes())
		if p.HasImage() {
			fmt.Fprintf(w, "     %s\n", p.ImageURL)
		}
	}
}
