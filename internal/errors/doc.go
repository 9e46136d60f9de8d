// Package errors provides the structured error type used across pokedex.
//
// Every error carries a Code, a user-facing Message, an optional Cause and
// free-form Meta. Codes map onto HTTP statuses for the web surface.
//
// Creating errors:
//
//	err := errors.InvalidArgumentf("count must be between 1 and %d", idSpace)
//
// Adding metadata:
//
//	err := errors.Unavailable("failed to fetch pokemon").
//	    WithMeta("url", url).
//	    WithMeta("status", resp.StatusCode)
//
// Wrapping keeps the code of the wrapped error:
//
//	if err := cfg.Validate(); err != nil {
//	    return nil, errors.Wrap(err, "invalid config")
//	}
//
// Checking:
//
//	if errors.IsUnavailable(err) {
//	    // remote API failed, show the error line
//	}
//
// Config validation goes through the builder:
//
//	vb := errors.NewValidationBuilder()
//	if c.Client == nil {
//	    vb.RequiredField("Client")
//	}
//	return vb.Build()
package errors
