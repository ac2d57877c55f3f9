package books

import (
	"cmp"
	"slices"

	"bookshelf/internal/entity"
	"bookshelf/internal/rating"
)

// Reduce computes the state that follows event. A nil state is treated as
// InitialState. Unknown events return state itself.
func Reduce(state *State, event Event) *State {
	if state == nil {
		state = InitialState()
	}

	switch e := event.(type) {
	case LoadBooksRequested, LoadBookRequested:
		next := *state
		next.Loading = true
		return &next

	case LoadBooksFailed, LoadBookFailed:
		next := *state
		next.Loading = false
		return &next

	case LoadBooksSucceeded:
		next := *state
		next.Books = sortByRating(e.Books)
		next.Loading = false
		return &next

	case LoadBookSucceeded:
		kept := make([]entity.Book, 0, len(state.Books)+1)
		for _, b := range state.Books {
			if state.SelectedISBN != nil && b.ISBN == *state.SelectedISBN {
				continue
			}
			kept = append(kept, b)
		}
		kept = append(kept, e.Book)

		next := *state
		next.Books = sortByRating(kept)
		next.Loading = false
		return &next

	case SelectBook:
		isbn := e.ISBN
		next := *state
		next.SelectedISBN = &isbn
		return &next

	case RateUp:
		return rate(state, e.Book, rating.Up(e.Book.Rating))

	case RateDown:
		return rate(state, e.Book, rating.Down(e.Book.Rating))

	case AddBookSuccess:
		added := make([]entity.Book, 0, len(state.Books)+1)
		added = append(added, state.Books...)
		added = append(added, e.Book)

		next := *state
		next.Books = added
		return &next

	default:
		return state
	}
}

func rate(state *State, book entity.Book, newRating int) *State {
	rated := book
	rated.Rating = newRating

	replaced := make([]entity.Book, len(state.Books))
	for i, b := range state.Books {
		if b.ISBN == rated.ISBN {
			replaced[i] = rated
			continue
		}
		replaced[i] = b
	}

	next := *state
	next.Books = sortByRating(replaced)
	return &next
}

// sortByRating returns a copy of books ordered by rating, highest first.
func sortByRating(books []entity.Book) []entity.Book {
	sorted := make([]entity.Book, len(books))
	copy(sorted, books)
	slices.SortStableFunc(sorted, func(a, b entity.Book) int {
		return cmp.Compare(b.Rating, a.Rating)
	})
	return sorted
}
