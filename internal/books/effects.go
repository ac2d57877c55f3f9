package books

import (
	"context"
	"fmt"
	"log"
	"sync"
	"time"

	"bookshelf/internal/entity"
)

// Effects runs repository calls and reports their outcome to the store as
// events.
type Effects struct {
	repo    Repository
	store   *Store
	timeout time.Duration

	// rateMu keeps rating writes in the order the store applied them.
	rateMu sync.Mutex
}

// NewEffects creates effects bound to repo and store. Each repository call
// is limited by timeout.
func NewEffects(repo Repository, store *Store, timeout time.Duration) *Effects {
	return &Effects{repo: repo, store: store, timeout: timeout}
}

func (e *Effects) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(ctx, e.timeout)
}

// LoadBooks replaces the list with the repository contents.
func (e *Effects) LoadBooks(ctx context.Context) error {
	e.store.Dispatch(LoadBooksRequested{})

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()
	list, err := e.repo.List(ctx)
	if err != nil {
		log.Printf("books: load list failed err=%v", err)
		e.store.Dispatch(LoadBooksFailed{})
		return fmt.Errorf("load books: %w", err)
	}

	e.store.Dispatch(LoadBooksSucceeded{Books: list})
	return nil
}

// LoadBook selects isbn and refreshes that entry from the repository.
func (e *Effects) LoadBook(ctx context.Context, isbn string) (entity.Book, error) {
	e.store.Dispatch(SelectBook{ISBN: isbn})
	e.store.Dispatch(LoadBookRequested{})

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()
	b, err := e.repo.GetByISBN(ctx, isbn)
	if err != nil {
		log.Printf("books: load failed isbn=%s err=%v", isbn, err)
		e.store.Dispatch(LoadBookFailed{})
		return entity.Book{}, fmt.Errorf("load book %s: %w", isbn, err)
	}

	// Another LoadBook may have moved the selection while this one was
	// fetching; reselect so the entry replaced is the one for isbn.
	e.store.Update(func(*State) []Event {
		return []Event{SelectBook{ISBN: isbn}, LoadBookSucceeded{Book: b}}
	})
	return b, nil
}

// AddBook persists b and appends it to the list. Nothing is dispatched when
// the repository rejects it.
func (e *Effects) AddBook(ctx context.Context, b entity.Book) (entity.Book, error) {
	ctx, cancel := e.withTimeout(ctx)
	defer cancel()
	if err := e.repo.Create(ctx, &b); err != nil {
		log.Printf("books: add failed isbn=%s err=%v", b.ISBN, err)
		return entity.Book{}, fmt.Errorf("add book %s: %w", b.ISBN, err)
	}

	e.store.Dispatch(AddBookSuccess{Book: b})
	return b, nil
}

// RateUp gives the listed book one more star and persists the new rating.
func (e *Effects) RateUp(ctx context.Context, isbn string) (entity.Book, error) {
	return e.rate(ctx, isbn, func(b entity.Book) Event { return RateUp{Book: b} })
}

// RateDown takes one star from the listed book and persists the new rating.
func (e *Effects) RateDown(ctx context.Context, isbn string) (entity.Book, error) {
	return e.rate(ctx, isbn, func(b entity.Book) Event { return RateDown{Book: b} })
}

func (e *Effects) rate(ctx context.Context, isbn string, event func(entity.Book) Event) (entity.Book, error) {
	e.rateMu.Lock()
	defer e.rateMu.Unlock()

	var current entity.Book
	found := false
	next := e.store.Update(func(s *State) []Event {
		current, found = s.Find(isbn)
		if !found {
			return nil
		}
		return []Event{event(current)}
	})
	if !found {
		return entity.Book{}, ErrNotFound
	}
	rated, ok := next.Find(isbn)
	if !ok {
		return entity.Book{}, ErrNotFound
	}
	if rated.Rating == current.Rating {
		return rated, nil
	}

	ctx, cancel := e.withTimeout(ctx)
	defer cancel()
	if err := e.repo.UpdateRating(ctx, isbn, rated.Rating); err != nil {
		log.Printf("books: rating not persisted isbn=%s rating=%d err=%v", isbn, rated.Rating, err)
		return rated, fmt.Errorf("persist rating %s: %w", isbn, err)
	}
	return rated, nil
}
