package http

// RouterConfig contains all dependencies and configuration needed
// to create the HTTP router.
type RouterConfig struct {
	// Core dependencies
	Catalog BookCatalog
	Counter BookCounter

	// Application info
	Version string
}
