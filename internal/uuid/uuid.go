// Package uuid generates and parses the identifiers used as asset primary keys.
package uuid

import (
	googleuuid "github.com/google/uuid"
)

// New returns a time-ordered UUIDv7. UUIDv7 keeps primary key inserts
// roughly sequential, so ordering by wid follows insertion order.
//
// Falls back to a random UUIDv4 if the v7 generator cannot read entropy.
func New() googleuuid.UUID {
	id, err := googleuuid.NewV7()
	if err != nil {
		return googleuuid.New()
	}
	return id
}

// Parse validates and parses a UUID string in canonical form.
func Parse(s string) (googleuuid.UUID, error) {
	return googleuuid.Parse(s)
}
