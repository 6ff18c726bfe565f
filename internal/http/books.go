package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bondopangaji/bookshelf-api/internal/catalog"
	"github.com/bondopangaji/bookshelf-api/internal/entities"
)

// BookCatalog defines the store operations used by the books controller.
type BookCatalog interface {
	Create(input entities.BookInput) (string, error)
	List(filter catalog.Filter) []entities.BookSummary
	GetByID(id string) (entities.Book, error)
	UpdateByID(id string, input entities.BookInput) error
	DeleteByID(id string) error
}

type BooksController struct {
	catalog BookCatalog
}

func NewBooksController(catalog BookCatalog) *BooksController {
	return &BooksController{catalog: catalog}
}

// CreateBook adds a new book to the catalog
// POST /books
func (bc *BooksController) CreateBook(c *gin.Context) {
	var input entities.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := bc.catalog.Create(input)
	switch {
	case errors.Is(err, catalog.ErrMissingName), errors.Is(err, catalog.ErrPageCountExceeded):
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		respondInternalError(c, err, "create book")
		return
	}

	respondCreated(c, "book added successfully", gin.H{"bookId": id})
}

// ListBooks returns summaries of all books matching the query filters
// GET /books
func (bc *BooksController) ListBooks(c *gin.Context) {
	filter := catalog.Filter{
		Name:     c.Query("name"),
		Reading:  boolQuery(c, "reading"),
		Finished: boolQuery(c, "finished"),
	}

	books := bc.catalog.List(filter)
	respondData(c, gin.H{"books": books})
}

// GetBookByID returns the full record of a single book
// GET /books/:id
func (bc *BooksController) GetBookByID(c *gin.Context) {
	book, err := bc.catalog.GetByID(c.Param("id"))
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondFail(c, http.StatusNotFound, err.Error())
		return
	case err != nil:
		respondInternalError(c, err, "get book")
		return
	}

	respondData(c, gin.H{"book": book})
}

// UpdateBook replaces all client-supplied fields of an existing book
// PUT /books/:id
func (bc *BooksController) UpdateBook(c *gin.Context) {
	id := c.Param("id")

	var input entities.BookInput
	if err := c.ShouldBindJSON(&input); err != nil {
		respondFail(c, http.StatusBadRequest, "invalid request body")
		return
	}

	err := bc.catalog.UpdateByID(id, input)
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondFail(c, http.StatusNotFound, err.Error())
		return
	case errors.Is(err, catalog.ErrMissingName), errors.Is(err, catalog.ErrPageCountExceeded):
		respondFail(c, http.StatusBadRequest, err.Error())
		return
	case err != nil:
		respondInternalError(c, err, "update book")
		return
	}

	respondMessage(c, "book updated successfully")
}

// DeleteBook removes a book from the catalog
// DELETE /books/:id
func (bc *BooksController) DeleteBook(c *gin.Context) {
	err := bc.catalog.DeleteByID(c.Param("id"))
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		respondFail(c, http.StatusNotFound, err.Error())
		return
	case err != nil:
		respondInternalError(c, err, "delete book")
		return
	}

	respondMessage(c, "book deleted successfully")
}
