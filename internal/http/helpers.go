package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/bondopangaji/bookshelf-api/internal/logger"
)

const (
	statusSuccess = "success"
	statusFail    = "fail"
)

// --- Response Types ---

// Response is the envelope wrapping every API response body.
// Status is "success" or "fail"; Message and Data are optional.
type Response struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
	Data    any    `json:"data,omitempty"`
}

// --- Success Response Helpers ---

// respondData sends a 200 OK success envelope carrying data.
func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, Response{Status: statusSuccess, Data: data})
}

// respondCreated sends a 201 Created success envelope with a message and data.
func respondCreated(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{Status: statusSuccess, Message: message, Data: data})
}

// respondMessage sends a 200 OK success envelope with a message only.
func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, Response{Status: statusSuccess, Message: message})
}

// --- Error Response Helpers ---

// respondFail sends a fail envelope with the given status code.
func respondFail(c *gin.Context, status int, message string) {
	c.JSON(status, Response{Status: statusFail, Message: message})
}

// respondInternalError logs the error and sends a 500 fail envelope.
// The error message is part of the response contract, so unlike most
// APIs it is surfaced to the client rather than hidden.
func respondInternalError(c *gin.Context, err error, context string) {
	log := logger.Get()
	log.Error().Err(err).Str("context", context).Msg("request failed")
	c.JSON(http.StatusInternalServerError, Response{Status: statusFail, Message: err.Error()})
}

// --- Parameter Parsing ---

// boolQuery reads a query parameter as an optional boolean filter.
// "0" means false and any other value means true. Absent or empty
// parameters return nil, leaving the filter unset.
func boolQuery(c *gin.Context, name string) *bool {
	value, ok := c.GetQuery(name)
	if !ok || value == "" {
		return nil
	}
	b := value != "0"
	return &b
}
