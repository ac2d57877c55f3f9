package books

import "bookshelf/internal/entity"

// State is an immutable snapshot. Reduce never modifies a State it was
// given, so callers may keep old snapshots and compare pointers.
type State struct {
	Books        []entity.Book `json:"books"`
	Loading      bool          `json:"loading"`
	SelectedISBN *string       `json:"selected_isbn"`
}

// InitialState returns the state a session starts from.
func InitialState() *State {
	return &State{
		Books:        []entity.Book{},
		Loading:      false,
		SelectedISBN: nil,
	}
}

// Selected returns the book whose ISBN is the current selection.
func (s *State) Selected() (entity.Book, bool) {
	if s.SelectedISBN == nil {
		return entity.Book{}, false
	}
	return s.Find(*s.SelectedISBN)
}

// Find returns the first book with the given ISBN.
func (s *State) Find(isbn string) (entity.Book, bool) {
	for _, b := range s.Books {
		if b.ISBN == isbn {
			return b, true
		}
	}
	return entity.Book{}, false
}
