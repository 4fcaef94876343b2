package usecase

import (
	"github.com/google/uuid"

	"github.com/karibu-groceries/kgl-api/internal/domain"
)

// parseID returns the canonical form of a record id, or ErrInvalidID when the
// value is not a UUID.
func parseID(id string) (string, error) {
	u, err := uuid.Parse(id)
	if err != nil {
		return "", domain.ErrInvalidID
	}
	return u.String(), nil
}
