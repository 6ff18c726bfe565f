package interfaces

// Compile-time checks that concrete types satisfy their interfaces,
// catching missing methods at build time rather than runtime.
//
// To verify all checks pass: go build ./internal/interfaces/...

import (
	"github.com/bondopangaji/bookshelf-api/internal/catalog"
	"github.com/bondopangaji/bookshelf-api/internal/http"
)

// BookCatalog implementations
var _ http.BookCatalog = (*catalog.Repository)(nil)

// BookCounter implementations
var _ http.BookCounter = (*catalog.Repository)(nil)
