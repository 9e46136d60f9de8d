package catalog

// LoadTypesInput defines the request for loading the type catalog
type LoadTypesInput struct{}

// LoadTypesOutput defines the response for loading the type catalog
type LoadTypesOutput struct {
	// Types are the browsable type names in API order
	Types []string
	// Excluded are the names that were filtered out
	Excluded []string
}
