package client

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/andresmatiasescobar/pokedex/internal/entities"
	"github.com/andresmatiasescobar/pokedex/internal/orchestrators/catalog"
)

func newTypesCmd(opts *options) *cobra.Command {
	var showExcluded bool

	cmd := &cobra.Command{
		Use:   "types",
		Short: "List the browsable Pokémon types",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			svc, err := opts.catalog(cmd)
			if err != nil {
				return err
			}

			ctx, cancel := context.WithTimeout(cmd.Context(), opts.timeout)
			defer cancel()

			out, err := svc.LoadTypes(ctx, &catalog.LoadTypesInput{})
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "Found %d types:\n", len(out.Types))
			for _, t := range out.Types {
				fmt.Fprintf(w, "  %s\n", entities.Capitalize(t))
			}
			if showExcluded && len(out.Excluded) > 0 {
				fmt.Fprintf(w, "Excluded: %v\n", out.Excluded)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&showExcluded, "show-excluded", false, "Also print the filtered sentinel types")
	return cmd
}
