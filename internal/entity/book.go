package entity

import "time"

// Book is a catalog entry as the client sees it. ISBN is the identity key.
type Book struct {
	ID          string    `json:"id,omitempty"`
	ISBN        string    `json:"isbn"`
	Title       string    `json:"title"`
	Subtitle    string    `json:"subtitle,omitempty"`
	Description string    `json:"description,omitempty"`
	Authors     []string  `json:"authors,omitempty"`
	Publisher   string    `json:"publisher,omitempty"`
	Rating      int       `json:"rating"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
