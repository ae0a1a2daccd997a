// Package uuid generates identifiers for positions and audit entries.
package uuid

import googleuuid "github.com/google/uuid"

// New returns a time-ordered UUIDv7 string. Identifiers created later sort
// after earlier ones, so positions keep their creation order when listed by id.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Fallback to a random UUIDv4 if the clock sequence cannot be read.
		return googleuuid.NewString()
	}
	return id.String()
}
