package validation

import (
	"context"
	"fmt"
	"strings"

	ozzo "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/mazabin/bookshop/internal/shared/apperror"
)

const (
	msgBlank = "can't be blank"
	msgTaken = "has already been taken"
)

// UniquenessChecker reports whether value is already used by another record.
// Implementations exclude the record being validated.
type UniquenessChecker func(ctx context.Context, value string) (bool, error)

// Set accumulates rule failures for one record.
// Rules never short-circuit each other; every failure is kept in order.
type Set struct {
	messages []string
}

// Presence requires value to be non-blank after trimming whitespace.
func (s *Set) Presence(field, value string) bool {
	err := ozzo.Validate(strings.TrimSpace(value), ozzo.Required.Error(msgBlank))
	if err != nil {
		s.add(field, err.Error())
		return false
	}
	return true
}

// Uniqueness requires that no other record shares value.
// Blank values are skipped; Presence already reported them.
func (s *Set) Uniqueness(ctx context.Context, field, value string, taken UniquenessChecker) error {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	exists, err := taken(ctx, value)
	if err != nil {
		return fmt.Errorf("check %s uniqueness: %w", strings.ToLower(field), err)
	}
	if exists {
		s.add(field, msgTaken)
	}
	return nil
}

// Add records an arbitrary failure message.
func (s *Set) Add(message string) {
	s.messages = append(s.messages, message)
}

// Messages returns the failures collected so far.
func (s *Set) Messages() []string {
	return s.messages
}

// Err returns nil when every rule passed, otherwise an
// *apperror.ValidationError carrying all messages.
func (s *Set) Err() error {
	if len(s.messages) == 0 {
		return nil
	}
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return apperror.NewValidation(out...)
}

func (s *Set) add(field, message string) {
	s.messages = append(s.messages, field+" "+message)
}

// TakenMessage is the message Uniqueness produces for field.
// Repositories use it when a unique index catches a race the pre-check missed.
func TakenMessage(field string) string {
	return field + " " + msgTaken
}
