package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mazabin/bookshop/internal/domains/book/model"
	"github.com/mazabin/bookshop/internal/shared/apperror"
	"github.com/mazabin/bookshop/internal/shared/utils"
	"github.com/mazabin/bookshop/internal/shared/validation"
	"github.com/mazabin/bookshop/pkg/database"
)

const selectBooks = `
	SELECT b.id, b.title, b.author_id, a.name, b.cents
	FROM books b
	JOIN authors a ON a.id = b.author_id`

type postgresRepository struct {
	pool *pgxpool.Pool
}

func NewPostgresRepository(pool *pgxpool.Pool) RepositoryInterface {
	return &postgresRepository{pool: pool}
}

func scanBook(row pgx.Row) (model.Book, error) {
	var b model.Book
	err := row.Scan(&b.ID, &b.Title, &b.AuthorID, &b.AuthorName, &b.Cents)
	return b, err
}

// Create validates and inserts b with a freshly generated ID.
func (r *postgresRepository) Create(ctx context.Context, b *model.Book) (*model.Book, error) {
	created := *b
	created.ID = uuid.New()

	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := created.Validate(ctx, titleTaken(tx, created.ID), authorExists(tx)); err != nil {
			return err
		}

		_, err := tx.Exec(ctx,
			`INSERT INTO books (id, title, author_id, cents) VALUES ($1, $2, $3, $4)`,
			created.ID, created.Title, created.AuthorID, created.Cents,
		)
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

func (r *postgresRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Book, error) {
	b, err := scanBook(r.pool.QueryRow(ctx, selectBooks+` WHERE b.id = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, model.ErrBookNotFound
		}
		return nil, fmt.Errorf("failed to get book by id: %w", err)
	}

	return &b, nil
}

// GetAll returns books in storage order with their author's name.
func (r *postgresRepository) GetAll(ctx context.Context) ([]model.Book, error) {
	rows, err := r.pool.Query(ctx, selectBooks)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}

	books, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Book, error) {
		return scanBook(row)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to scan books: %w", err)
	}

	return books, nil
}

// Update validates b and overwrites every column of its row.
func (r *postgresRepository) Update(ctx context.Context, b *model.Book) (*model.Book, error) {
	err := database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		if err := b.Validate(ctx, titleTaken(tx, b.ID), authorExists(tx)); err != nil {
			return err
		}

		tag, err := tx.Exec(ctx,
			`UPDATE books SET title = $2, author_id = $3, cents = $4 WHERE id = $1`,
			b.ID, b.Title, b.AuthorID, b.Cents,
		)
		if err != nil {
			return mapWriteError("update", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return b, nil
}

func (r *postgresRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return database.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		tag, err := tx.Exec(ctx, `DELETE FROM books WHERE id = $1`, id)
		if err != nil {
			return fmt.Errorf("failed to delete book: %w", err)
		}
		if tag.RowsAffected() == 0 {
			return model.ErrBookNotFound
		}
		return nil
	})
}

// titleTaken reports whether another book already uses title.
func titleTaken(tx pgx.Tx, self uuid.UUID) validation.UniquenessChecker {
	return func(ctx context.Context, title string) (bool, error) {
		var exists bool
		err := tx.QueryRow(ctx,
			`SELECT EXISTS (SELECT 1 FROM books WHERE title = $1 AND id <> $2)`,
			title, self,
		).Scan(&exists)
		return exists, err
	}
}

func authorExists(tx pgx.Tx) model.AuthorChecker {
	return func(ctx context.Context, id uuid.UUID) (bool, error) {
		var exists bool
		err := tx.QueryRow(ctx, `SELECT EXISTS (SELECT 1 FROM authors WHERE id = $1)`, id).Scan(&exists)
		return exists, err
	}
}

func mapWriteError(op string, err error) error {
	switch {
	case utils.IsUniqueViolation(err):
		return apperror.NewValidation(validation.TakenMessage("Title"))
	case utils.IsForeignKeyViolation(err):
		return apperror.NewConstraint(model.MsgAuthorMissing, err)
	default:
		return fmt.Errorf("failed to %s book: %w", op, err)
	}
}
