package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mazabin/bookshop/internal/domains/author"
	"github.com/mazabin/bookshop/internal/shared/response"
)

const msgMalformedBody = "Malformed request body"

type AuthorHandler struct {
	service author.Service
}

func NewAuthorHandler(svc author.Service) *AuthorHandler {
	return &AuthorHandler{
		service: svc,
	}
}

// ════════════════════════════════════════════════════════════════
// READ: GetAll - GET /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetAll(c *gin.Context) {
	authors, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, err, author.MsgNotFound, author.MsgNotLoaded)
		return
	}

	response.Data(c, author.ToResponses(authors))
}

// ════════════════════════════════════════════════════════════════
// READ: GetByID - GET /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) GetByID(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	a, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err, author.MsgNotFound, author.MsgNotLoaded)
		return
	}

	response.Data(c, a.ToResponse())
}

// ════════════════════════════════════════════════════════════════
// CREATE: POST /authors
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Create(c *gin.Context) {
	var req author.CreateAuthorRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, msgMalformedBody)
		return
	}

	a, err := h.service.Create(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err, author.MsgNotFound, author.MsgNotCreated)
		return
	}

	response.Created(c, author.MsgCreated, a.ID)
}

// ════════════════════════════════════════════════════════════════
// UPDATE: PUT /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var req author.UpdateAuthorRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, msgMalformedBody)
		return
	}

	if _, err := h.service.Update(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err, author.MsgNotFound, author.MsgNotUpdated)
		return
	}

	response.OK(c, author.MsgUpdated)
}

// ════════════════════════════════════════════════════════════════
// DELETE: DELETE /authors/:id
// ════════════════════════════════════════════════════════════════

func (h *AuthorHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := h.service.Delete(c.Request.Context(), id); err != nil {
		response.Error(c, err, author.MsgNotFound, author.MsgNotDestroyed)
		return
	}

	response.OK(c, author.MsgDestroyed)
}

// parseID reads the :id path parameter. An id that is not a UUID cannot
// match any author, so it is answered as a miss.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, author.ErrAuthorNotFound, author.MsgNotFound, author.MsgNotFound)
		return uuid.Nil, false
	}
	return id, true
}
