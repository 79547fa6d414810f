package models

import "github.com/google/uuid"

// newID returns a version 7 UUID. Ids sort in creation order, which makes
// them a stable tiebreak for rows sharing a timestamp.
func newID() (uuid.UUID, error) {
	return uuid.NewV7()
}
