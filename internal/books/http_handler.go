package books

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"bookshelf/internal/entity"
	"bookshelf/internal/httpx"
)

type HTTPHandler struct {
	store   *Store
	effects *Effects
}

func NewHTTPHandler(store *Store, effects *Effects) *HTTPHandler {
	return &HTTPHandler{store: store, effects: effects}
}

// Routes registers the book endpoints on mux.
func (h *HTTPHandler) Routes(mux *http.ServeMux) {
	mux.HandleFunc("GET /books", h.State)
	mux.HandleFunc("POST /books", h.Add)
	mux.HandleFunc("POST /books/load", h.Load)
	mux.HandleFunc("GET /books/{isbn}", h.GetByISBN)
	mux.HandleFunc("POST /books/{isbn}/select", h.Select)
	mux.HandleFunc("POST /books/{isbn}/rate-up", h.RateUp)
	mux.HandleFunc("POST /books/{isbn}/rate-down", h.RateDown)
}

type addBookRequest struct {
	ISBN        string   `json:"isbn" validate:"required,isbn"`
	Title       string   `json:"title" validate:"required,max=255"`
	Subtitle    string   `json:"subtitle" validate:"max=255"`
	Description string   `json:"description"`
	Authors     []string `json:"authors"`
	Publisher   string   `json:"publisher" validate:"max=255"`
	Rating      int      `json:"rating" validate:"rating"`
}

// State handles GET /books
func (h *HTTPHandler) State(w http.ResponseWriter, r *http.Request) {
	st := h.store.State()
	httpx.JSONSuccess(w, r, st, map[string]any{"total": len(st.Books)})
}

// Load handles POST /books/load
func (h *HTTPHandler) Load(w http.ResponseWriter, r *http.Request) {
	if err := h.effects.LoadBooks(r.Context()); err != nil {
		h.writeError(w, r, err)
		return
	}
	st := h.store.State()
	httpx.JSONSuccess(w, r, st, map[string]any{"total": len(st.Books)})
}

// GetByISBN handles GET /books/{isbn}
func (h *HTTPHandler) GetByISBN(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathISBN(w, r)
	if !ok {
		return
	}
	b, err := h.effects.LoadBook(r.Context(), isbn)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// Add handles POST /books
func (h *HTTPHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req addBookRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "BAD_REQUEST", "Invalid JSON body", nil)
		return
	}
	if errs := httpx.ValidateStruct(req); errs != nil {
		httpx.JSONError(w, r, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid input", errs)
		return
	}

	b, err := h.effects.AddBook(r.Context(), entity.Book{
		ISBN:        req.ISBN,
		Title:       req.Title,
		Subtitle:    req.Subtitle,
		Description: req.Description,
		Authors:     req.Authors,
		Publisher:   req.Publisher,
		Rating:      req.Rating,
	})
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONCreated(w, r, b)
}

// Select handles POST /books/{isbn}/select
func (h *HTTPHandler) Select(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathISBN(w, r)
	if !ok {
		return
	}
	st := h.store.Dispatch(SelectBook{ISBN: isbn})
	httpx.JSONSuccess(w, r, st, nil)
}

// RateUp handles POST /books/{isbn}/rate-up
func (h *HTTPHandler) RateUp(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathISBN(w, r)
	if !ok {
		return
	}
	b, err := h.effects.RateUp(r.Context(), isbn)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

// RateDown handles POST /books/{isbn}/rate-down
func (h *HTTPHandler) RateDown(w http.ResponseWriter, r *http.Request) {
	isbn, ok := pathISBN(w, r)
	if !ok {
		return
	}
	b, err := h.effects.RateDown(r.Context(), isbn)
	if err != nil {
		h.writeError(w, r, err)
		return
	}
	httpx.JSONSuccess(w, r, b, nil)
}

func pathISBN(w http.ResponseWriter, r *http.Request) (string, bool) {
	isbn := strings.TrimSpace(r.PathValue("isbn"))
	if isbn == "" {
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
		return "", false
	}
	return isbn, true
}

func (h *HTTPHandler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		httpx.JSONError(w, r, http.StatusNotFound, "NOT_FOUND", "ISBN not found", nil)
	case errors.Is(err, ErrAlreadyExists):
		httpx.JSONError(w, r, http.StatusConflict, "CONFLICT", "A book with this ISBN already exists", nil)
	default:
		httpx.JSONError(w, r, http.StatusInternalServerError, "INTERNAL_ERROR", "Internal server error", nil)
	}
}
