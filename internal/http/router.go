package http

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/bondopangaji/bookshelf-api/internal/logger"
)

// NewRouter creates and configures the HTTP router with all endpoints.
// Uses RouterConfig to receive all dependencies, improving testability
// and reducing parameter count.
func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.New()
	router.Use(logger.RequestLogger())
	router.Use(gin.CustomRecovery(recoveryHandler))

	// Any origin may call the API
	router.Use(cors.Default())

	booksController := NewBooksController(cfg.Catalog)
	health := NewHealthController(cfg.Counter, cfg.Version)

	// Health endpoints
	router.GET("/health", health.Status)
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
		})
	})

	// Books API endpoints
	router.POST("/books", booksController.CreateBook)
	router.GET("/books", booksController.ListBooks)
	router.GET("/books/:id", booksController.GetBookByID)
	router.PUT("/books/:id", booksController.UpdateBook)
	router.DELETE("/books/:id", booksController.DeleteBook)

	return router
}

// recoveryHandler turns an uncaught panic into a 500 fail envelope
// carrying the fault's message.
func recoveryHandler(c *gin.Context, recovered any) {
	message := "internal server error"
	switch v := recovered.(type) {
	case error:
		message = v.Error()
	case string:
		message = v
	}

	log := logger.Get()
	log.Error().
		Str("path", c.Request.URL.Path).
		Str("panic", message).
		Msg("recovered from panic")

	c.AbortWithStatusJSON(http.StatusInternalServerError, Response{
		Status:  statusFail,
		Message: message,
	})
}
