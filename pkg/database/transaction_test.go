package database

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTx records how the transaction ended. Only Commit and Rollback are
// implemented; anything else panics through the nil embedded interface.
type fakeTx struct {
	pgx.Tx
	committed  bool
	rolledBack bool
	commitErr  error
}

func (tx *fakeTx) Commit(context.Context) error {
	tx.committed = true
	return tx.commitErr
}

func (tx *fakeTx) Rollback(context.Context) error {
	tx.rolledBack = true
	return nil
}

type fakeBeginner struct {
	tx  *fakeTx
	err error
}

func (b *fakeBeginner) Begin(context.Context) (pgx.Tx, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.tx, nil
}

func TestWithTransaction(t *testing.T) {
	boom := errors.New("boom")

	tests := []struct {
		name           string
		fnErr          error
		commitErr      error
		wantErr        error
		wantCommit     bool
		wantRolledBack bool
	}{
		{"commits_on_success", nil, nil, nil, true, false},
		{"rolls_back_on_error", boom, nil, boom, false, true},
		{"reports_commit_failure", nil, boom, boom, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := &fakeTx{commitErr: tt.commitErr}

			err := WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
				return tt.fnErr
			})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
			}
			assert.Equal(t, tt.wantCommit, tx.committed)
			assert.Equal(t, tt.wantRolledBack, tx.rolledBack)
		})
	}
}

func TestWithTransaction_BeginFailure(t *testing.T) {
	boom := errors.New("pool closed")
	called := false

	err := WithTransaction(context.Background(), &fakeBeginner{err: boom}, func(pgx.Tx) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, boom)
	assert.False(t, called)
}

func TestWithTransaction_RollsBackOnPanic(t *testing.T) {
	tx := &fakeTx{}

	assert.PanicsWithValue(t, "kaboom", func() {
		_ = WithTransaction(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) error {
			panic("kaboom")
		})
	})
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestWithTransactionResult(t *testing.T) {
	tx := &fakeTx{}

	got, err := WithTransactionResult(context.Background(), &fakeBeginner{tx: tx}, func(pgx.Tx) (int, error) {
		return 42, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 42, got)

	got, err = WithTransactionResult(context.Background(), &fakeBeginner{tx: &fakeTx{}}, func(pgx.Tx) (int, error) {
		return 7, errors.New("nope")
	})
	assert.Error(t, err)
	assert.Zero(t, got)
}
