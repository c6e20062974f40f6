package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/mazabin/bookshop/internal/domains/book/model"
	"github.com/mazabin/bookshop/internal/domains/book/repository"
)

type bookService struct {
	repo repository.RepositoryInterface
}

func NewBookService(repo repository.RepositoryInterface) ServiceInterface {
	return &bookService{repo: repo}
}

func (s *bookService) CreateBook(ctx context.Context, req *model.CreateBookRequest) (*model.Book, error) {
	return s.repo.Create(ctx, req.ToEntity())
}

func (s *bookService) GetBook(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *bookService) ListBooks(ctx context.Context) ([]model.Book, error) {
	return s.repo.GetAll(ctx)
}

// UpdateBook loads the book, applies the provided fields and saves it.
func (s *bookService) UpdateBook(ctx context.Context, id uuid.UUID, req *model.UpdateBookRequest) (*model.Book, error) {
	existing, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	req.ApplyToEntity(existing)

	return s.repo.Update(ctx, existing)
}

func (s *bookService) DeleteBook(ctx context.Context, id uuid.UUID) error {
	return s.repo.Delete(ctx, id)
}
