package repository

import (
	"context"

	"github.com/google/uuid"

	"github.com/mazabin/bookshop/internal/domains/book/model"
)

// RepositoryInterface defines data access for books.
// Reads return books with AuthorName loaded.
type RepositoryInterface interface {
	Create(ctx context.Context, book *model.Book) (*model.Book, error)
	GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error)
	GetAll(ctx context.Context) ([]model.Book, error)
	Update(ctx context.Context, book *model.Book) (*model.Book, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
