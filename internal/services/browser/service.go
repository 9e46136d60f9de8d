// Package browser is the Pokémon browser component: it owns the selected
// type, the load state and the list on display
package browser

//go:generate mockgen -destination=mock/mock_service.go -package=browsermock github.com/andresmatiasescobar/pokedex/internal/services/browser Service

import "context"

// Service defines the interface for the browser component.
//
// Fetch failures are not returned as errors; they put the view in StateFailed.
// An error is only returned when the request itself is rejected.
type Service interface {
	// Mount loads the type catalog and the initial random sample. It runs once.
	Mount(ctx context.Context) (*View, error)

	// Select shows the Pokémon of typeName. The empty name is the "show random"
	// action: it restores the random sample already loaded without fetching.
	Select(ctx context.Context, typeName string) (*View, error)

	// Reshuffle draws and fetches a new random sample and clears the selection
	Reshuffle(ctx context.Context) (*View, error)

	// View returns a snapshot of what is on display
	View() *View
}
