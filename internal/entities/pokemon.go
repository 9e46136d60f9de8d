// Package entities provides core data structures for pokedex.
package entities

import (
	"strconv"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/core"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Types excluded from browsing: the API lists them but no regular Pokémon belongs to them
const (
	TypeUnknown = "unknown"
	TypeShadow  = "shadow"
)

// Pokemon is the display-friendly record built from a detail response
type Pokemon struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	ImageURL string   `json:"image_url,omitempty"` // front sprite, empty when the API has none
	Types    []string `json:"types"`               // slot order as returned by the API
}

// EntityType is the rpg-toolkit entity type of a Pokémon
const EntityType = "pokemon"

var _ core.Entity = (*Pokemon)(nil)

// GetID returns the national dex id as a string
func (p *Pokemon) GetID() string {
	return strconv.Itoa(p.ID)
}

// GetType returns EntityType. The elemental types are in Types.
func (p *Pokemon) GetType() string {
	return EntityType
}

// HasImage reports whether the API returned a front sprite
func (p *Pokemon) HasImage() bool {
	return p.ImageURL != ""
}

// DisplayName is the capitalised name shown on cards
func (p *Pokemon) DisplayName() string {
	return Capitalize(p.Name)
}

// DisplayTypes joins the capitalised type names, e.g. "Fire, Flying"
func (p *Pokemon) DisplayTypes() string {
	names := make([]string, len(p.Types))
	for i, t := range p.Types {
		names[i] = Capitalize(t)
	}
	return strings.Join(names, ", ")
}

// IsBrowsableType reports whether a type from the catalog can be offered in the selector
func IsBrowsableType(name string) bool {
	return name != TypeUnknown && name != TypeShadow
}

// Capitalize upper-cases the first letter of every word in an API name ("mr-mime" -> "Mr-Mime")
func Capitalize(name string) string {
	return cases.Title(language.Und).String(name)
}
