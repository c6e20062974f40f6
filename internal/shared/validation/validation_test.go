package validation

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mazabin/bookshop/internal/shared/apperror"
)

func takenBy(existing ...string) UniquenessChecker {
	return func(_ context.Context, value string) (bool, error) {
		for _, e := range existing {
			if e == value {
				return true, nil
			}
		}
		return false, nil
	}
}

func TestSet_NoFailures(t *testing.T) {
	var s Set

	assert.True(t, s.Presence("Name", "Jane Austen"))
	require.NoError(t, s.Uniqueness(context.Background(), "Name", "Jane Austen", takenBy("Emily Bronte")))

	assert.NoError(t, s.Err())
	assert.Empty(t, s.Messages())
}

func TestSet_Presence(t *testing.T) {
	for _, blank := range []string{"", "   ", "\t\n"} {
		var s Set
		assert.False(t, s.Presence("Title", blank))
		assert.Equal(t, []string{"Title can't be blank"}, s.Messages())
	}
}

func TestSet_Uniqueness_SkipsBlank(t *testing.T) {
	var s Set
	called := false
	check := func(context.Context, string) (bool, error) {
		called = true
		return true, nil
	}

	require.NoError(t, s.Uniqueness(context.Background(), "Name", " ", check))
	assert.False(t, called)
	assert.Empty(t, s.Messages())
}

func TestSet_Uniqueness_PropagatesLookupError(t *testing.T) {
	var s Set
	boom := errors.New("connection reset")
	check := func(context.Context, string) (bool, error) { return false, boom }

	err := s.Uniqueness(context.Background(), "Name", "x", check)
	assert.ErrorIs(t, err, boom)
}

func TestSet_AccumulatesAllFailuresInOrder(t *testing.T) {
	var s Set

	s.Presence("Title", "")
	require.NoError(t, s.Uniqueness(context.Background(), "Title", "", takenBy("")))
	s.Add("Author must exist")
	s.Add("Price is not a number")

	err := s.Err()
	var verr *apperror.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, []string{
		"Title can't be blank",
		"Author must exist",
		"Price is not a number",
	}, verr.Messages)
}

func TestSet_TakenMessage(t *testing.T) {
	var s Set
	require.NoError(t, s.Uniqueness(context.Background(), "Name", "Jane Austen", takenBy("Jane Austen")))

	assert.Equal(t, []string{TakenMessage("Name")}, s.Messages())
	assert.Equal(t, "Name has already been taken", TakenMessage("Name"))
}
