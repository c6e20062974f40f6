package model

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mazabin/bookshop/internal/shared/validation"
	"github.com/mazabin/bookshop/pkg/money"
)

// Book is the core book entity. AuthorName is filled by reads only.
type Book struct {
	ID         uuid.UUID `db:"id"`
	Title      string    `db:"title"`
	AuthorID   uuid.UUID `db:"author_id"`
	AuthorName string    `db:"author_name"`
	Cents      int64     `db:"cents"`

	// from the last SetPrice input that could not be converted
	priceErr error
}

// AuthorChecker reports whether an author with the given id exists.
type AuthorChecker func(ctx context.Context, id uuid.UUID) (bool, error)

// SetPrice converts a major-unit price input into cents.
// A nil input leaves the price unchanged. Input that is not a number or does
// not fit in cents keeps the old cents and fails the next Validate.
func (b *Book) SetPrice(in *money.Input) {
	if in == nil {
		return
	}

	cents, err := in.Cents()
	if err != nil {
		b.priceErr = err
		return
	}
	b.Cents = cents
	b.priceErr = nil
}

// Price is the exposed major-unit price.
func (b *Book) Price() float64 {
	return money.FromCents(b.Cents)
}

// Validate checks the book before a write. Every failing rule is reported.
func (b *Book) Validate(ctx context.Context, titleTaken validation.UniquenessChecker, authorExists AuthorChecker) error {
	var v validation.Set

	exists := false
	if b.AuthorID != uuid.Nil {
		var err error
		if exists, err = authorExists(ctx, b.AuthorID); err != nil {
			return fmt.Errorf("check author: %w", err)
		}
	}
	if !exists {
		v.Add(MsgAuthorMissing)
	}

	if err := v.Uniqueness(ctx, "Title", b.Title, titleTaken); err != nil {
		return err
	}
	v.Presence("Title", b.Title)

	switch {
	case b.priceErr == nil:
	case errors.Is(b.priceErr, money.ErrOutOfRange):
		v.Add(MsgPriceOutOfRange)
	default:
		v.Add(MsgPriceNotANumber)
	}

	return v.Err()
}
