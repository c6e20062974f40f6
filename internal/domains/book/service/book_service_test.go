package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mazabin/bookshop/internal/domains/book/model"
	"github.com/mazabin/bookshop/pkg/money"
)

type mockRepository struct {
	mock.Mock
}

func (m *mockRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	args := m.Called(ctx, b)
	if v := args.Get(0); v != nil {
		return v.(*model.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	args := m.Called(ctx, id)
	if v := args.Get(0); v != nil {
		return v.(*model.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	args := m.Called(ctx)
	if v := args.Get(0); v != nil {
		return v.([]model.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	args := m.Called(ctx, b)
	if v := args.Get(0); v != nil {
		return v.(*model.Book), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *mockRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return m.Called(ctx, id).Error(0)
}

func TestBookService_CreateBook_ConvertsPrice(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewBookService(repo)

	authorID := uuid.New()
	repo.On("Create", ctx, mock.MatchedBy(func(b *model.Book) bool {
		return b.Title == "Emma" && b.AuthorID == authorID && b.Cents == 1999
	})).Return(&model.Book{ID: uuid.New(), Title: "Emma", AuthorID: authorID, Cents: 1999}, nil)

	got, err := svc.CreateBook(ctx, &model.CreateBookRequest{
		Title:    "Emma",
		AuthorID: authorID.String(),
		Price:    money.NewInput("19.999"),
	})

	require.NoError(t, err)
	assert.Equal(t, 19.99, got.Price())
	repo.AssertExpectations(t)
}

func TestBookService_UpdateBook_KeepsUnsetFields(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewBookService(repo)

	id, authorID := uuid.New(), uuid.New()
	stored := &model.Book{ID: id, Title: "Emma", AuthorID: authorID, AuthorName: "Jane Austen", Cents: 1250}
	repo.On("GetByID", ctx, id).Return(stored, nil)
	repo.On("Update", ctx, mock.MatchedBy(func(b *model.Book) bool {
		return b.Title == "Emma" && b.AuthorID == authorID && b.Cents == 1500
	})).Return(stored, nil)

	_, err := svc.UpdateBook(ctx, id, &model.UpdateBookRequest{Price: money.NewInput("15")})

	require.NoError(t, err)
	repo.AssertExpectations(t)
}

func TestBookService_UpdateBook_NotFound(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewBookService(repo)

	id := uuid.New()
	repo.On("GetByID", ctx, id).Return(nil, model.ErrBookNotFound)

	_, err := svc.UpdateBook(ctx, id, &model.UpdateBookRequest{})

	assert.ErrorIs(t, err, model.ErrBookNotFound)
	repo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
}

func TestBookService_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	repo := new(mockRepository)
	svc := NewBookService(repo)

	id := uuid.New()
	repo.On("GetAll", ctx).Return([]model.Book{{ID: id, Title: "Emma"}}, nil)
	repo.On("Delete", ctx, id).Return(nil)

	books, err := svc.ListBooks(ctx)
	require.NoError(t, err)
	assert.Len(t, books, 1)

	assert.NoError(t, svc.DeleteBook(ctx, id))
	repo.AssertExpectations(t)
}
