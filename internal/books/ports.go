package books

import (
	"context"
	"errors"

	"bookshelf/internal/entity"
)

//go:generate mockgen -source=ports.go -destination=mock_ports.go -package=books

var (
	// ErrNotFound is returned when a book is not found.
	ErrNotFound = errors.New("book not found")
	// ErrAlreadyExists is returned when a book with the same ISBN is stored already.
	ErrAlreadyExists = errors.New("book already exists")
)

// Repository defines the contract for fetching and persisting books.
type Repository interface {
	List(ctx context.Context) ([]entity.Book, error)
	GetByISBN(ctx context.Context, isbn string) (entity.Book, error)
	Create(ctx context.Context, book *entity.Book) error
	UpdateRating(ctx context.Context, isbn string, rating int) error
}
