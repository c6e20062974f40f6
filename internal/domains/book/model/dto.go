package model

import (
	"github.com/google/uuid"

	"github.com/mazabin/bookshop/pkg/money"
)

// ========================================
// REQUEST DTOs
// ========================================

// CreateBookRequest is the allow-list for POST /books.
// Price accepts a JSON number, a numeric string or a form value.
type CreateBookRequest struct {
	Title    string       `json:"title" form:"title"`
	AuthorID string       `json:"author_id" form:"author_id"`
	Price    *money.Input `json:"price" form:"price"`
}

func (r *CreateBookRequest) ToEntity() *Book {
	b := &Book{
		Title:    r.Title,
		AuthorID: parseAuthorID(r.AuthorID),
	}
	b.SetPrice(r.Price)
	return b
}

// UpdateBookRequest is the allow-list for PUT /books/:id.
// A nil field leaves the stored value unchanged.
type UpdateBookRequest struct {
	Title    *string      `json:"title" form:"title"`
	AuthorID *string      `json:"author_id" form:"author_id"`
	Price    *money.Input `json:"price" form:"price"`
}

func (r *UpdateBookRequest) ApplyToEntity(b *Book) {
	if r.Title != nil {
		b.Title = *r.Title
	}
	if r.AuthorID != nil {
		b.AuthorID = parseAuthorID(*r.AuthorID)
		b.AuthorName = ""
	}
	b.SetPrice(r.Price)
}

// parseAuthorID maps anything that is not a UUID to uuid.Nil, which never
// matches an author and so fails validation with "Author must exist".
func parseAuthorID(s string) uuid.UUID {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil
	}
	return id
}

// ========================================
// RESPONSE DTOs
// ========================================

// BookView is the only external shape of a book.
// Author is the author's name, never an identifier.
type BookView struct {
	Title  string  `json:"title"`
	Author string  `json:"author"`
	Price  float64 `json:"price"`
}

func (b *Book) ToView() BookView {
	return BookView{
		Title:  b.Title,
		Author: b.AuthorName,
		Price:  b.Price(),
	}
}

// ToViews always returns a non-nil slice so an empty table renders as [].
func ToViews(books []Book) []BookView {
	out := make([]BookView, 0, len(books))
	for i := range books {
		out = append(out, books[i].ToView())
	}
	return out
}
