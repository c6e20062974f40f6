package author

import "github.com/google/uuid"

// ========================================
// REQUEST DTOs
// ========================================

// CreateAuthorRequest is the allow-list for POST /authors.
type CreateAuthorRequest struct {
	Name string `json:"name" form:"name"`
}

// ToEntity builds a new, not yet persisted author.
func (r *CreateAuthorRequest) ToEntity() *Author {
	return &Author{Name: r.Name}
}

// UpdateAuthorRequest is the allow-list for PUT /authors/:id.
// A nil field leaves the stored value unchanged.
type UpdateAuthorRequest struct {
	Name *string `json:"name" form:"name"`
}

// ApplyToEntity replaces every provided field on a.
func (r *UpdateAuthorRequest) ApplyToEntity(a *Author) {
	if r.Name != nil {
		a.Name = *r.Name
	}
}

// ========================================
// RESPONSE DTOs
// ========================================

type AuthorResponse struct {
	ID   uuid.UUID `json:"id"`
	Name string    `json:"name"`
}

func (a *Author) ToResponse() AuthorResponse {
	return AuthorResponse{
		ID:   a.ID,
		Name: a.Name,
	}
}

// ToResponses always returns a non-nil slice so an empty table renders as [].
func ToResponses(authors []Author) []AuthorResponse {
	out := make([]AuthorResponse, 0, len(authors))
	for i := range authors {
		out = append(out, authors[i].ToResponse())
	}
	return out
}
