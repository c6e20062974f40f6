package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mazabin/bookshop/internal/domains/book/model"
)

// ServiceInterface defines the book use cases exposed over HTTP.
type ServiceInterface interface {
	CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error)
	GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error)
	ListBooks(ctx context.Context) ([]model.Book, error)
	UpdateBook(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error)
	DeleteBook(ctx context.Context, id uuid.UUID) error
}
