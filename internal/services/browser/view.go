package browser

import (
	"time"

	"github.com/andresmatiasescobar/pokedex/internal/entities"
)

// LoadState is the state of the list on display
type LoadState string

// Load states
const (
	StateLoading LoadState = "loading"
	StateReady   LoadState = "ready"
	StateFailed  LoadState = "failed"
)

// View is an immutable snapshot handed to renderers. Exactly one of the
// loading indicator, Error or Pokemon applies, chosen by State.
type View struct {
	State      LoadState           `json:"state"`
	Error      string              `json:"error,omitempty"`
	Selected   string              `json:"selected"`
	Types      []string            `json:"types"`
	Pokemon    []*entities.Pokemon `json:"pokemon,omitempty"`
	Generation uint64              `json:"generation"`
	CycleID    string              `json:"cycle_id,omitempty"`
	UpdatedAt  time.Time           `json:"updated_at"`
}

// Loading reports whether the loading indicator is shown
func (v *View) Loading() bool {
	return v.State == StateLoading
}

// Failed reports whether the error line is shown
func (v *View) Failed() bool {
	return v.State == StateFailed
}

// Ready reports whether the list is shown
func (v *View) Ready() bool {
	return v.State == StateReady
}

// Empty reports a ready view with nothing to list
func (v *View) Empty() bool {
	return v.Ready() && len(v.Pokemon) == 0
}

// Title is the heading above the list
func (v *View) Title() string {
	if v.Selected != "" {
		return "Pokémon of type: " + entities.Capitalize(v.Selected)
	}
	return "Your random Pokémon"
}

// EmptyMessage is shown when a ready view has no Pokémon
const EmptyMessage = "No Pokémon found for the selected type, and no random Pokémon to show."

// result is the outcome of one cycle kept for a mode
type result struct {
	state      LoadState
	err        string
	pokemon    []*entities.Pokemon
	generation uint64
	cycleID    string
	updatedAt  time.Time
}

func (r *result) view(selected string, types []string) *View {
	v := &View{
		State:      r.state,
		Selected:   selected,
		Types:      append([]string(nil), types...),
		Generation: r.generation,
		CycleID:    r.cycleID,
		UpdatedAt:  r.updatedAt,
	}
	switch r.state {
	case StateFailed:
		v.Error = r.err
	case StateReady:
		v.Pokemon = append([]*entities.Pokemon{}, r.pokemon...)
	}
	return v
}
