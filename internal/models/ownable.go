package models

import "github.com/google/uuid"

// Ownable is implemented by every entity that belongs to a single user,
// whatever its owner column is called (created_by, user, sender). Mutation
// handlers gate on it uniformly.
type Ownable interface {
	OwnerID() uuid.UUID
}

// OwnedBy reports whether the given user owns the resource.
func OwnedBy(resource Ownable, userID uuid.UUID) bool {
	return resource.OwnerID() == userID
}
