package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mazabin/bookshop/internal/domains/author"
	"github.com/mazabin/bookshop/internal/shared/apperror"
	"github.com/mazabin/bookshop/internal/shared/utils"
	"github.com/mazabin/bookshop/internal/shared/validation"
	"github.com/mazabin/bookshop/pkg/database"
)

// postgresRepository implements author.Repository on a pgx pool.
type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) author.Repository {
	return &postgresRepository{pool: pool}
}

// Create validates and inserts a with a freshly generated ID.
func (r *postgresRepository) Create(ctx context.Context, a *author.Author) (*author.Author, error) {
	created := *a
	created.ID = uuid.New()

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := created.Validate(ctx, nameTaken(tx, created.ID)); err != nil {
			return err
		}

		_, err := tx.Exec(ctx, `INSERT INTO authors (id, name) VALUES ($1, $2)`, created.ID, created.Name)
		if err != nil {
			return mapWriteError("create", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &created, nil
}

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*author.Author, error) {
	var a author.Author

	err := r.pool.QueryRow(ctx, `SELECT id, name FROM authors WHERE id = $1`, id).Scan(&a.ID, &a.Name)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, author.ErrAuthorNotFound
		}
		return nil, fmt.Errorf("failed to get author by id: %w", err)
	}

	return &a, nil
}

// GetAll returns authors in storage order; there is no ORDER BY.
func (r *postgresRepository) GetAll(ctx context.Context) ([]author.Author, error) {
	rows, err := r.pool.Query(ctx, `SELECT id, name FROM authors`)
	if err != nil {
		return nil, fmt.Errorf("failed to list authors: %w", err)
	}

	authors, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (author.Author, error) {
		var a author.Author
		err := row.Scan(&a.ID, &a.Name)
		return a, err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan authors: %w", err)
	}

	return authors, nil
}

// Update validates a and overwrites its row.
func (r *postgresRepository) Update(ctx context.Context, a *author.Author) (*author.Author, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := a.Validate(ctx, nameTaken(tx, a.ID)); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx, `UPDATE authors SET name = $2 WHERE id = $1`, a.ID, a.Name)
		if err != nil {
			return mapWriteError("update", err)
		}
		if tag.RowsAffected() == 0 {
			return author.ErrAuthorNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return a, nil
}

// Delete removes the author unless books still reference it.
func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		var books int
		err := tx.QueryRow(ctx, `SELECT COUNT(*) FROM books WHERE author_id = $1`, id).Scan(&books)
		if err != nil {
			return fmt.Errorf("failed to count author books: %w", err)
		}
		if books > 0 {
			return author.ErrAuthorHasBooks
		}

		tag, err := tx.Exec(ctx, `DELETE FROM authors WHERE id = $1`, id)
		if err != nil {
			if utils.IsForeignKeyViolation(err) {
				// a book was inserted after the count
				return apperror.NewConstraint(author.ErrAuthorHasBooks.Message, err)
			}
			return fmt.Errorf("failed to delete author: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return author.ErrAuthorNotFound
		}
		return nil
	})
}

// nameTaken reports whether another author already uses name.
func nameTaken(tx pgx.Tx, self uuid.UUID) validation.UniquenessChecker {
	return func(ctx context.Context, name string) (bool, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM authors WHERE name = $1 AND id <> $2)`,
			name, self,
		).Scan(&exists)
		return exists, err
	}
}

// mapWriteError turns a unique violation that raced past the pre-check into
// the same message the validator would have produced.
func mapWriteError(op string, err error) error {
	if utils.IsUniqueViolation(err) {
		return apperror.NewValidation(validation.TakenMessage("Name"))
	}
	return fmt.Errorf("failed to %s author: %w", op, err)
}
