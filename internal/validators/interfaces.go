// Package validators holds the request validation layer. Services inject a
// [Validator] and call it before acting on client input, keeping validation
// rules out of both the transport and storage layers.
package validators

import "context"

// Validator validates an arbitrary input value. The optional field names
// restrict validation to the named fields; with none given, every field of
// the value is validated.
type Validator interface {
	Validate(context.Context, any, ...string) error
}
