package sampler

import "github.com/andresmatiasescobar/pokedex/internal/entities"

// FetchRandomSampleInput defines the request for a random sample
type FetchRandomSampleInput struct {
	Count   int // defaults to DefaultSampleSize
	IDSpace int // ids are drawn from [1, IDSpace], defaults to DefaultIDSpace
}

// FetchRandomSampleOutput defines the response for a random sample
type FetchRandomSampleOutput struct {
	// IDs in draw order
	IDs     []int
	Pokemon []*entities.Pokemon
}

// FetchByTypeInput defines the request for listing the Pokémon of a type
type FetchByTypeInput struct {
	Type string
	Cap  int // defaults to DefaultTypeCap
}

// FetchByTypeOutput defines the response for listing the Pokémon of a type
type FetchByTypeOutput struct {
	// Pokemon that resolved, in roster order
	Pokemon []*entities.Pokemon
	// Skipped are roster names whose detail fetch failed
	Skipped []string
	// Members is the size of the full roster before the cap
	Members int
}
