package author

import "github.com/mazabin/bookshop/internal/shared/apperror"

var (
	ErrAuthorNotFound = apperror.NotFound("Author")
	ErrAuthorHasBooks = apperror.NewConstraint("Cannot delete author with linked books", nil)
)

// Messages rendered by the author handlers.
const (
	MsgCreated      = "Author created"
	MsgUpdated      = "Author updated"
	MsgDestroyed    = "Author destroyed"
	MsgNotFound     = "Author not found"
	MsgNotCreated   = "Author not created"
	MsgNotUpdated   = "Author not updated"
	MsgNotDestroyed = "Author not destroyed"
	MsgNotLoaded    = "Authors not loaded"
)
