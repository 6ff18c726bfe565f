// Package catalog provides the in-memory book store backing the HTTP API.
//
// Repository satisfies the BookCatalog and BookCounter interfaces that
// internal/http declares on the consumer side. The compile-time checks
// live in internal/interfaces/checks.go, since this package cannot
// import internal/http without a cycle.
//
// # Usage
//
//	repo := catalog.NewRepository()
//	id, err := repo.Create(input)
package catalog

import (
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bondopangaji/bookshelf-api/internal/entities"
)

var (
	// ErrMissingName is returned when a write carries no book name.
	ErrMissingName = errors.New("book name is required")

	// ErrPageCountExceeded is returned when readPage is greater than pageCount.
	ErrPageCountExceeded = errors.New("readPage cannot be greater than pageCount")

	// ErrNotFound is returned when no book with the requested id exists.
	ErrNotFound = errors.New("book not found")

	// ErrInsertFailed is returned when a created book cannot be read back.
	ErrInsertFailed = errors.New("book could not be added")
)

// Filter narrows List results. A zero Filter matches every book.
// Name matches as a case-insensitive substring; Reading and Finished
// match exactly when set. All set fields must match.
type Filter struct {
	Name     string
	Reading  *bool
	Finished *bool
}

func (f Filter) matches(book entities.Book) bool {
	if f.Name != "" && !strings.Contains(strings.ToLower(book.Name), strings.ToLower(f.Name)) {
		return false
	}
	if f.Reading != nil && book.Reading != *f.Reading {
		return false
	}
	if f.Finished != nil && book.Finished != *f.Finished {
		return false
	}
	return true
}

// Repository holds all books in process memory. The slice keeps
// insertion order, which is also the order List reports.
type Repository struct {
	mu    sync.RWMutex
	books []entities.Book
	newID func() string
}

// NewRepository creates an empty catalog repository.
func NewRepository() *Repository {
	return &Repository{newID: uuid.NewString}
}

// validate checks the client-supplied fields shared by Create and UpdateByID.
func validate(input entities.BookInput) error {
	if input.Name == "" {
		return ErrMissingName
	}
	if input.ReadPage > input.PageCount {
		return ErrPageCountExceeded
	}
	return nil
}

// Create validates the input, stores a new book and returns its id.
// The record is read back by id after the append; if that lookup
// misses, the insert did not take and ErrInsertFailed is returned.
func (r *Repository) Create(input entities.BookInput) (string, error) {
	if err := validate(input); err != nil {
		return "", err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	now := time.Now()
	book := entities.Book{
		ID:         r.newID(),
		Name:       input.Name,
		Year:       input.Year,
		Author:     input.Author,
		Summary:    input.Summary,
		Publisher:  input.Publisher,
		PageCount:  input.PageCount,
		ReadPage:   input.ReadPage,
		Finished:   input.ReadPage == input.PageCount,
		Reading:    input.Reading,
		InsertedAt: now,
		UpdatedAt:  now,
	}
	r.books = append(r.books, book)

	if _, ok := r.indexOf(book.ID); !ok {
		return "", ErrInsertFailed
	}
	return book.ID, nil
}

// List returns summaries of all books matching the filter, in
// insertion order. The result is never nil.
func (r *Repository) List(filter Filter) []entities.BookSummary {
	r.mu.RLock()
	defer r.mu.RUnlock()

	summaries := make([]entities.BookSummary, 0, len(r.books))
	for _, book := range r.books {
		if filter.matches(book) {
			summaries = append(summaries, book.ToSummary())
		}
	}
	return summaries
}

// GetByID retrieves a single book by its id.
func (r *Repository) GetByID(id string) (entities.Book, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	i, ok := r.indexOf(id)
	if !ok {
		return entities.Book{}, ErrNotFound
	}
	return r.books[i], nil
}

// UpdateByID replaces every client-supplied field of an existing book.
// The id and insertedAt are preserved, updatedAt is refreshed and
// finished is re-derived. Existence is checked before validation, so
// an unknown id reports ErrNotFound even for invalid input.
func (r *Repository) UpdateByID(id string, input entities.BookInput) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		return ErrNotFound
	}
	if err := validate(input); err != nil {
		return err
	}

	book := &r.books[i]
	book.Name = input.Name
	book.Year = input.Year
	book.Author = input.Author
	book.Summary = input.Summary
	book.Publisher = input.Publisher
	book.PageCount = input.PageCount
	book.ReadPage = input.ReadPage
	book.Finished = input.ReadPage == input.PageCount
	book.Reading = input.Reading
	book.UpdatedAt = time.Now()
	return nil
}

// DeleteByID removes a book. Remaining books keep their relative order.
func (r *Repository) DeleteByID(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	i, ok := r.indexOf(id)
	if !ok {
		return ErrNotFound
	}
	r.books = append(r.books[:i], r.books[i+1:]...)
	return nil
}

// Count returns the number of stored books.
func (r *Repository) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.books)
}

// indexOf returns the slice index of the book with the given id.
// Callers must hold mu.
func (r *Repository) indexOf(id string) (int, bool) {
	for i := range r.books {
		if r.books[i].ID == id {
			return i, true
		}
	}
	return 0, false
}
