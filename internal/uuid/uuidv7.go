// Package uuid generates the time-ordered identifiers used for audit rows and
// request ids.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a UUIDv7 string. Version 7 ids sort by creation time, which
// keeps audit rows and request logs in insertion order.
func New() string {
	id, err := googleuuid.NewV7()
	if err != nil {
		// Entropy failure: a random v4 id is still unique.
		return googleuuid.New().String()
	}
	return id.String()
}

// IsValid reports whether s parses as a UUID of any version.
func IsValid(s string) bool {
	_, err := googleuuid.Parse(s)
	return err == nil
}
