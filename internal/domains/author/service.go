package author

import (
	"context"

	"github.com/google/uuid"
)

// Service defines the author use cases exposed over HTTP.
type Service interface {
	Create(ctx context.Context, req *CreateAuthorRequest) (*Author, error)
	GetByID(ctx context.Context, id uuid.UUID) (*Author, error)
	GetAll(ctx context.Context) ([]Author, error)

	// Update loads the author, applies the provided fields and saves it.
	// Errors: ErrAuthorNotFound, *apperror.ValidationError
	Update(ctx context.Context, id uuid.UUID, req *UpdateAuthorRequest) (*Author, error)

	// Delete rejects authors that still have books with ErrAuthorHasBooks.
	Delete(ctx context.Context, id uuid.UUID) error
}
