package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/mazabin/bookshop/internal/shared/apperror"
)

const (
	StatusOK    = "ok"
	StatusError = "error"
)

// Envelope is the body of every write route and of every error.
// Message is a string, or a list of strings for validation failures.
type Envelope struct {
	Message any        `json:"message"`
	Status  string     `json:"status,omitempty"`
	ID      *uuid.UUID `json:"id,omitempty"`
}

// Message writes a bare {message} body, used by the welcome route.
func Message(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{Message: message})
}

// Data writes a read result as-is.
func Data(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Created reports a successful create along with the generated id.
func Created(c *gin.Context, message string, id uuid.UUID) {
	c.JSON(http.StatusCreated, Envelope{
		Message: message,
		Status:  StatusOK,
		ID:      &id,
	})
}

// OK reports a successful update or delete.
func OK(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Envelope{
		Message: message,
		Status:  StatusOK,
	})
}

// BadRequest reports a body that could not be bound at all.
func BadRequest(c *gin.Context, message string) {
	c.AbortWithStatusJSON(http.StatusBadRequest, Envelope{
		Message: message,
		Status:  StatusError,
	})
}

// Error converts err into an error envelope.
// Validation failures expose their message list, lookups their not-found
// message and constraint failures their own message. Anything else is
// logged and answered with fallback so driver details never leak.
func Error(c *gin.Context, err error, notFound, fallback string) {
	status := apperror.HTTPStatus(err)

	var (
		verr *apperror.ValidationError
		cerr *apperror.ConstraintError
		msg  any
	)

	switch {
	case errors.As(err, &verr):
		msg = verr.Messages
	case errors.Is(err, apperror.ErrNotFound):
		msg = notFound
	case errors.As(err, &cerr):
		msg = cerr.Message
	default:
		log.Error().
			Err(err).
			Str("request_id", c.GetString("request_id")).
			Str("path", c.Request.URL.Path).
			Msg("request failed")
		msg = fallback
	}

	c.AbortWithStatusJSON(status, Envelope{
		Message: msg,
		Status:  StatusError,
	})
}
