// Package entities holds the persisted record types and their gorm mappings.
package entities

import "github.com/google/uuid"

// Record is satisfied by a pointer to any persisted entity. Generic
// repositories and controllers use it to read and replace primary keys.
type Record[T any] interface {
	*T
	GetID() string
	SetID(id string)
}

// assignID fills an empty primary key with a random UUID.
func assignID(id *string) {
	if *id == "" {
		*id = uuid.NewString()
	}
}
