package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/mazabin/bookshop/internal/domains/book/model"
	service "github.com/mazabin/bookshop/internal/domains/book/service"
	"github.com/mazabin/bookshop/internal/shared/response"
)

// Handler - HTTP handler for books
type Handler struct {
	service service.ServiceInterface
}

// NewHandler - Constructor with DI
func NewHandler(service service.ServiceInterface) *Handler {
	return &Handler{
		service: service,
	}
}

// ListBooks - GET /books
func (h *Handler) ListBooks(c *gin.Context) {
	books, err := h.service.ListBooks(c.Request.Context())
	if err != nil {
		response.Error(c, err, model.MsgNotFound, model.MsgNotLoaded)
		return
	}

	response.Data(c, model.ToViews(books))
}

// GetBook - GET /books/:id
func (h *Handler) GetBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	b, err := h.service.GetBook(c.Request.Context(), id)
	if err != nil {
		response.Error(c, err, model.MsgNotFound, model.MsgNotLoaded)
		return
	}

	response.Data(c, b.ToView())
}

// CreateBook - POST /books
// Body: title, author_id, price
func (h *Handler) CreateBook(c *gin.Context) {
	var req model.CreateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Malformed request body")
		return
	}

	b, err := h.service.CreateBook(c.Request.Context(), &req)
	if err != nil {
		response.Error(c, err, model.MsgNotFound, model.MsgNotCreated)
		return
	}

	response.Created(c, model.MsgCreated, b.ID)
}

// UpdateBook - PUT /books/:id
func (h *Handler) UpdateBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	var req model.UpdateBookRequest
	if err := c.ShouldBind(&req); err != nil {
		response.BadRequest(c, "Malformed request body")
		return
	}

	if _, err := h.service.UpdateBook(c.Request.Context(), id, &req); err != nil {
		response.Error(c, err, model.MsgNotFound, model.MsgNotUpdated)
		return
	}

	response.OK(c, model.MsgUpdated)
}

// DeleteBook - DELETE /books/:id
func (h *Handler) DeleteBook(c *gin.Context) {
	id, ok := bookID(c)
	if !ok {
		return
	}

	if err := h.service.DeleteBook(c.Request.Context(), id); err != nil {
		response.Error(c, err, model.MsgNotFound, model.MsgNotDestroyed)
		return
	}

	response.OK(c, model.MsgDestroyed)
}

func bookID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		response.Error(c, model.ErrBookNotFound, model.MsgNotFound, model.MsgNotFound)
		return uuid.Nil, false
	}
	return id, true
}
