// Package main is the entry point for the pokedex web server and CLI
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/andresmatiasescobar/pokedex/cmd/server/client"
)

var rootCmd = &cobra.Command{
	Use:   "pokedex",
	Short: "Pokémon browser",
	Long:  `Pokedex serves a small web page that lists random Pokémon or the Pokémon of a chosen type, backed by PokeAPI.`,
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(client.NewCommand())
}
