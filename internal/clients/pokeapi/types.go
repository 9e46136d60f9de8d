package pokeapi

// NamedResource is the {name, url} reference PokeAPI uses everywhere
type NamedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

// typeList is the body of GET /type/
type typeList struct {
	Count   int              `json:"count"`
	Results []*NamedResource `json:"results"`
}

// TypeData is the body of GET /type/{name}/, reduced to what we read
type TypeData struct {
	ID      int           `json:"id"`
	Name    string        `json:"name"`
	Pokemon []*TypeMember `json:"pokemon"`
}

// TypeMember is one entry of a type's roster
type TypeMember struct {
	Slot    int           `json:"slot"`
	Pokemon NamedResource `json:"pokemon"`
}

// PokemonData is the body of GET /pokemon/{idOrName}/, reduced to what we read
type PokemonData struct {
	ID      int            `json:"id"`
	Name    string         `json:"name"`
	Sprites Sprites        `json:"sprites"`
	Types   []*PokemonType `json:"types"`
}

// Sprites holds sprite URLs; the API sends null for missing images
type Sprites struct {
	FrontDefault *string `json:"front_default"`
}

// PokemonType is one type slot of a Pokémon
type PokemonType struct {
	Slot int           `json:"slot"`
	Type NamedResource `json:"type"`
}
