package model

import "github.com/mazabin/bookshop/internal/shared/apperror"

const (
	MsgAuthorMissing   = "Author must exist"
	MsgPriceNotANumber = "Price is not a number"
	MsgPriceOutOfRange = "Price is out of range"
)

var (
	ErrBookNotFound = apperror.NotFound("Book")

	// ErrAuthorMissing is returned when the author vanished between the
	// existence check and the write.
	ErrAuthorMissing = apperror.NewConstraint(MsgAuthorMissing, nil)
)

// Messages rendered by the book handlers.
const (
	MsgCreated      = "Book created"
	MsgUpdated      = "Book updated"
	MsgDestroyed    = "Book destroyed"
	MsgNotFound     = "Book not found"
	MsgNotCreated   = "Book not created"
	MsgNotUpdated   = "Book not updated"
	MsgNotDestroyed = "Book not destroyed"
	MsgNotLoaded    = "Books not loaded"
)
