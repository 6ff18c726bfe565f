// Package interfaces documents the abstractions the application is wired
// through and holds their compile-time implementation checks.
//
// The HTTP layer declares its store interfaces on the consumer side:
//
//   - BookCatalog: catalog operations behind the books routes (internal/http/books.go)
//   - BookCounter: catalog size for health reporting (internal/http/health.go)
//
// Both are implemented by catalog.Repository. The catalog package cannot
// assert that itself, because importing internal/http from there would be
// an import cycle, so the checks are collected here instead.
//
// # Adding a New Store Backend
//
// A replacement store only needs to satisfy the interfaces above:
//
//  1. Implement the BookCatalog methods (and Count, if the health
//     endpoint should report its size).
//
//  2. Add a compile-time check in checks.go:
//
//     var _ http.BookCatalog = (*MyStore)(nil)
//
//  3. Wire it in internal/entrypoint.Run in place of catalog.NewRepository.
package interfaces
