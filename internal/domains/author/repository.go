package author

import (
	"context"

	"github.com/google/uuid"
)

// Repository defines data access for authors.
// Writes validate the entity inside their own transaction.
type Repository interface {
	// Create assigns a new ID, validates and inserts the author.
	// Errors: *apperror.ValidationError
	Create(ctx context.Context, author *Author) (*Author, error)

	// GetByID returns ErrAuthorNotFound when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)

	// GetAll returns every author in storage order.
	GetAll(ctx context.Context) ([]Author, error)

	// Update validates and writes every column of an existing author.
	// Errors: *apperror.ValidationError, ErrAuthorNotFound
	Update(ctx context.Context, author *Author) (*Author, error)

	// Delete removes the author.
	// Errors: ErrAuthorNotFound, ErrAuthorHasBooks
	Delete(ctx context.Context, id uuid.UUID) error
}
