package books

import "bookshelf/internal/entity"

const (
	LoadBooksRequestedType = "LoadBooksRequested"
	LoadBookRequestedType  = "LoadBookRequested"
	LoadBooksFailedType    = "LoadBooksFailed"
	LoadBookFailedType     = "LoadBookFailed"
	LoadBooksSucceededType = "LoadBooksSucceeded"
	LoadBookSucceededType  = "LoadBookSucceeded"
	SelectBookType         = "SelectBook"
	RateUpType             = "RateUp"
	RateDownType           = "RateDown"
	AddBookSuccessType     = "AddBookSuccess"
)

// Event is anything Reduce reacts to. The set is closed: only the types in
// this file implement it.
type Event interface {
	EventType() string
	isBooksEvent()
}

type LoadBooksRequested struct{}

type LoadBookRequested struct{}

type LoadBooksFailed struct{}

type LoadBookFailed struct{}

type LoadBooksSucceeded struct {
	Books []entity.Book
}

// LoadBookSucceeded carries a single freshly fetched book. It replaces the
// entry of the currently selected ISBN, not the entry of Book.ISBN.
type LoadBookSucceeded struct {
	Book entity.Book
}

type SelectBook struct {
	ISBN string
}

// RateUp carries the book to rate by value; its current rating is the base.
type RateUp struct {
	Book entity.Book
}

type RateDown struct {
	Book entity.Book
}

type AddBookSuccess struct {
	Book entity.Book
}

func (LoadBooksRequested) EventType() string { return LoadBooksRequestedType }
func (LoadBookRequested) EventType() string  { return LoadBookRequestedType }
func (LoadBooksFailed) EventType() string    { return LoadBooksFailedType }
func (LoadBookFailed) EventType() string     { return LoadBookFailedType }
func (LoadBooksSucceeded) EventType() string { return LoadBooksSucceededType }
func (LoadBookSucceeded) EventType() string  { return LoadBookSucceededType }
func (SelectBook) EventType() string         { return SelectBookType }
func (RateUp) EventType() string             { return RateUpType }
func (RateDown) EventType() string           { return RateDownType }
func (AddBookSuccess) EventType() string     { return AddBookSuccessType }

func (LoadBooksRequested) isBooksEvent() {}
func (LoadBookRequested) isBooksEvent()  {}
func (LoadBooksFailed) isBooksEvent()    {}
func (LoadBookFailed) isBooksEvent()     {}
func (LoadBooksSucceeded) isBooksEvent() {}
func (LoadBookSucceeded) isBooksEvent()  {}
func (SelectBook) isBooksEvent()         {}
func (RateUp) isBooksEvent()             {}
func (RateDown) isBooksEvent()           {}
func (AddBookSuccess) isBooksEvent()     {}
