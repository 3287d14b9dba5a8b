package http

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connectz/internal/domain"
	"github.com/iamasit07/connectz/internal/service/replay"
	"github.com/iamasit07/connectz/pkg/uid"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

type ReplayService interface {
	Classify(ctx context.Context, name string, data []byte) (*domain.Verdict, error)
	Get(ctx context.Context, id string) (*domain.Verdict, error)
	Recent(ctx context.Context, limit int) ([]domain.Verdict, error)
}

type ReplayHandler struct {
	Service        ReplayService
	MaxUploadBytes int64
}

func NewReplayHandler(svc ReplayService, maxUploadBytes int64) *ReplayHandler {
	return &ReplayHandler{Service: svc, MaxUploadBytes: maxUploadBytes}
}

// Upload classifies the request body as a game description
func (h *ReplayHandler) Upload(c *gin.Context) {
	body := http.MaxBytesReader(c.Writer, c.Request.Body, h.MaxUploadBytes)
	data, err := io.ReadAll(body)
	if err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			c.JSON(http.StatusRequestEntityTooLarge, gin.H{"error": "Replay too large"})
			return
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Failed to read replay"})
		return
	}

	name := c.DefaultQuery("name", "upload")
	verdict, err := h.Service.Classify(c.Request.Context(), name, data)
	if err != nil {
		log.Printf("[REPLAY] Classification of %s aborted: %v", name, err)
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Classification aborted"})
		return
	}

	c.JSON(http.StatusOK, verdict)
}

func (h *ReplayHandler) List(c *gin.Context) {
	limit := defaultListLimit
	if raw := c.Query("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid limit"})
			return
		}
		limit = min(n, maxListLimit)
	}

	verdicts, err := h.Service.Recent(c.Request.Context(), limit)
	if err != nil {
		h.ledgerError(c, err)
		return
	}
	c.JSON(http.StatusOK, verdicts)
}

func (h *ReplayHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if !uid.IsReplayID(id) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Replay not found"})
		return
	}

	verdict, err := h.Service.Get(c.Request.Context(), id)
	if err != nil {
		h.ledgerError(c, err)
		return
	}
	if verdict == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Replay not found"})
		return
	}
	c.JSON(http.StatusOK, verdict)
}

func (h *ReplayHandler) ledgerError(c *gin.Context, err error) {
	if errors.Is(err, replay.ErrLedgerDisabled) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}
	log.Printf("[REPLAY] Ledger query failed: %v", err)
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch replays"})
}
