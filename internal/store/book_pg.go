package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bookshelf/internal/books"
	"bookshelf/internal/entity"
	"bookshelf/internal/rating"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const uniqueViolation = "23505"

// BookPG is the Postgres implementation of books.Repository.
type BookPG struct {
	db      *pgxpool.Pool
	timeout time.Duration
}

var _ books.Repository = (*BookPG)(nil)

func NewBookPG(db *pgxpool.Pool, timeout time.Duration) *BookPG {
	return &BookPG{db: db, timeout: timeout}
}

func (r *BookPG) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, r.timeout)
}

const bookColumns = `id, isbn, title, subtitle, description, authors, publisher, rating, created_at, updated_at`

func scanBook(row pgx.Row) (entity.Book, error) {
	var b entity.Book
	err := row.Scan(
		&b.ID, &b.ISBN, &b.Title, &b.Subtitle, &b.Description, &b.Authors,
		&b.Publisher, &b.Rating, &b.CreatedAt, &b.UpdatedAt,
	)
	return b, err
}

func (r *BookPG) List(ctx context.Context) ([]entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books ORDER BY rating DESC, title`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("list books: %w", err)
	}
	defer rows.Close()

	out := []entity.Book{}
	for rows.Next() {
		b, err := scanBook(rows)
		if err != nil {
			return nil, fmt.Errorf("scan book: %w", err)
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

func (r *BookPG) GetByISBN(ctx context.Context, isbn string) (entity.Book, error) {
	query := `SELECT ` + bookColumns + ` FROM books WHERE isbn = $1 LIMIT 1`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	b, err := scanBook(r.db.QueryRow(ctx, query, isbn))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return entity.Book{}, books.ErrNotFound
		}
		return entity.Book{}, fmt.Errorf("get book %s: %w", isbn, err)
	}
	return b, nil
}

// Create inserts book and fills in its generated ID and timestamps.
func (r *BookPG) Create(ctx context.Context, book *entity.Book) error {
	const query = `
		INSERT INTO books (isbn, title, subtitle, description, authors, publisher, rating, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, NOW(), NOW())
		RETURNING id, created_at, updated_at
	`
	authors := book.Authors
	if authors == nil {
		authors = []string{}
	}

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	err := r.db.QueryRow(ctx, query,
		book.ISBN, book.Title, book.Subtitle, book.Description, authors, book.Publisher, book.Rating,
	).Scan(&book.ID, &book.CreatedAt, &book.UpdatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return books.ErrAlreadyExists
		}
		return fmt.Errorf("create book %s: %w", book.ISBN, err)
	}
	return nil
}

func (r *BookPG) UpdateRating(ctx context.Context, isbn string, star int) error {
	if !rating.Valid(star) {
		return fmt.Errorf("rating must be between %d and %d, got %d", rating.MinRating, rating.MaxRating, star)
	}
	const query = `UPDATE books SET rating = $2, updated_at = NOW() WHERE isbn = $1`

	ctx, cancel := r.withTimeout(ctx)
	defer cancel()
	tag, err := r.db.Exec(ctx, query, isbn, star)
	if err != nil {
		return fmt.Errorf("update rating %s: %w", isbn, err)
	}
	if tag.RowsAffected() == 0 {
		return books.ErrNotFound
	}
	return nil
}
