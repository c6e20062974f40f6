package author

import (
	"context"

	"github.com/google/uuid"

	"github.com/mazabin/bookshop/internal/shared/validation"
)

// Author is the core author entity.
type Author struct {
	ID   uuid.UUID `json:"id" db:"id"`
	Name string    `json:"name" db:"name"` // required, unique
}

// Validate checks the author before a write.
// nameTaken must exclude the author itself so an unchanged name passes.
func (a *Author) Validate(ctx context.Context, nameTaken validation.UniquenessChecker) error {
	var v validation.Set

	if err := v.Uniqueness(ctx, "Name", a.Name, nameTaken); err != nil {
		return err
	}
	v.Presence("Name", a.Name)

	return v.Err()
}
