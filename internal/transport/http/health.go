package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct {
	LedgerEnabled bool
	CacheEnabled  bool
	EventsEnabled bool
	Streams       func() int
}

func (h *HealthHandler) Health(c *gin.Context) {
	streams := 0
	if h.Streams != nil {
		streams = h.Streams()
	}
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"ledger":  h.LedgerEnabled,
		"cache":   h.CacheEnabled,
		"events":  h.EventsEnabled,
		"streams": streams,
	})
}
