package pokeapi

import "github.com/andresmatiasescobar/pokedex/internal/entities"

// ToPokemon maps a detail response to the display record
func ToPokemon(data *PokemonData) *entities.Pokemon {
	if data == nil {
		return nil
	}

	p := &entities.Pokemon{
		ID:    data.ID,
		Name:  data.Name,
		Types: make([]string, 0, len(data.Types)),
	}
	if data.Sprites.FrontDefault != nil {
		p.ImageURL = *data.Sprites.FrontDefault
	}
	for _, slot := range data.Types {
		if slot == nil {
			continue
		}
		p.Types = append(p.Types, slot.Type.Name)
	}

	return p
}

// TypeNames returns the names of the referenced resources in order
func TypeNames(refs []*NamedResource) []string {
	names := make([]string, 0, len(refs))
	for _, ref := range refs {
		if ref == nil {
			continue
		}
		names = append(names, ref.Name)
	}
	return names
}
