package http

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

// BookCounter reports the catalog size for health checks.
type BookCounter interface {
	Count() int
}

type HealthResponse struct {
	Status  string `json:"status"`
	Time    string `json:"time"`
	Version string `json:"version,omitempty"`
	Books   int    `json:"books"`
}

type HealthController struct {
	counter BookCounter
	version string
}

func NewHealthController(counter BookCounter, version string) *HealthController {
	return &HealthController{
		counter: counter,
		version: version,
	}
}

// Status reports process health and the current catalog size. The
// catalog lives in process memory, so a reachable process is a
// healthy one.
func (h *HealthController) Status(c *gin.Context) {
	books := 0
	if h.counter != nil {
		books = h.counter.Count()
	}

	c.IndentedJSON(http.StatusOK, HealthResponse{
		Status:  "healthy",
		Time:    time.Now().Format(time.RFC3339),
		Version: h.version,
		Books:   books,
	})
}
