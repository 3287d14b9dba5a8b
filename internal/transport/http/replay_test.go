package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connectz/internal/domain"
	"github.com/iamasit07/connectz/internal/service/replay"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

// stubService classifies for real and serves ledger reads from a fixed map.
type stubService struct {
	verdicts  map[string]*domain.Verdict
	ledgerErr error
	limit     int
	name      string
}

func (s *stubService) Classify(_ context.Context, name string, data []byte) (*domain.Verdict, error) {
	s.name = name
	res := replay.Run(data)
	return &domain.Verdict{ID: "v1", Name: name, Outcome: res.Outcome, Code: res.Outcome.Code(), Moves: res.Moves}, nil
}

func (s *stubService) Get(_ context.Context, id string) (*domain.Verdict, error) {
	if s.ledgerErr != nil {
		return nil, s.ledgerErr
	}
	return s.verdicts[id], nil
}

func (s *stubService) Recent(_ context.Context, limit int) ([]domain.Verdict, error) {
	if s.ledgerErr != nil {
		return nil, s.ledgerErr
	}
	s.limit = limit
	out := []domain.Verdict{}
	for _, v := range s.verdicts {
		out = append(out, *v)
	}
	return out, nil
}

const (
	knownID   = "6f1c2b9e-3d4a-4c5b-9e8f-0a1b2c3d4e5f"
	unknownID = "0e6d1f6a-8b1c-4f39-a2f5-1c0b6a7d9e42"
)

func newTestRouter(svc ReplayService, maxUpload int64) *gin.Engine {
	h := NewReplayHandler(svc, maxUpload)
	r := gin.New()
	r.POST("/api/replays", h.Upload)
	r.GET("/api/replays", h.List)
	r.GET("/api/replays/:id", h.Get)
	health := &HealthHandler{LedgerEnabled: true, EventsEnabled: true, Streams: func() int { return 2 }}
	r.GET("/api/health", health.Health)
	return r
}

func do(r *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(method, target, strings.NewReader(body)))
	return w
}

func TestUploadClassifies(t *testing.T) {
	svc := &stubService{}
	r := newTestRouter(svc, 1024)

	w := do(r, http.MethodPost, "/api/replays?name=game.txt", "4 4 4\n1\n2\n1\n2\n1\n2\n1\n")
	require.Equal(t, http.StatusOK, w.Code)

	var got domain.Verdict
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, domain.OutcomeWinPlayer1, got.Outcome)
	assert.Equal(t, "1", got.Code)
	assert.Equal(t, 7, got.Moves)
	assert.Equal(t, "game.txt", svc.name)

	do(r, http.MethodPost, "/api/replays", "7 6 4")
	assert.Equal(t, "upload", svc.name)
}

func TestUploadTooLarge(t *testing.T) {
	r := newTestRouter(&stubService{}, 8)
	w := do(r, http.MethodPost, "/api/replays", "7 6 4\n1\n2\n3\n4\n")
	assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
}

func TestGetReplay(t *testing.T) {
	svc := &stubService{verdicts: map[string]*domain.Verdict{
		knownID: {ID: knownID, Outcome: domain.OutcomeDraw, Code: "0"},
	}}
	r := newTestRouter(svc, 1024)

	w := do(r, http.MethodGet, "/api/replays/"+knownID, "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"outcome":"draw"`)

	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/replays/"+unknownID, "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/api/replays/zzz", "").Code)
}

func TestListReplaysLimit(t *testing.T) {
	svc := &stubService{verdicts: map[string]*domain.Verdict{}}
	r := newTestRouter(svc, 1024)

	tests := []struct {
		query string
		code  int
		limit int
	}{
		{"", http.StatusOK, defaultListLimit},
		{"?limit=5", http.StatusOK, 5},
		{"?limit=1000", http.StatusOK, maxListLimit},
		{"?limit=0", http.StatusBadRequest, 0},
		{"?limit=ten", http.StatusBadRequest, 0},
	}
	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			svc.limit = 0
			w := do(r, http.MethodGet, "/api/replays"+tt.query, "")
			assert.Equal(t, tt.code, w.Code)
			assert.Equal(t, tt.limit, svc.limit)
		})
	}
}

func TestLedgerErrors(t *testing.T) {
	r := newTestRouter(&stubService{ledgerErr: replay.ErrLedgerDisabled}, 1024)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/replays", "").Code)
	assert.Equal(t, http.StatusServiceUnavailable, do(r, http.MethodGet, "/api/replays/"+knownID, "").Code)

	r = newTestRouter(&stubService{ledgerErr: errors.New("db down")}, 1024)
	assert.Equal(t, http.StatusInternalServerError, do(r, http.MethodGet, "/api/replays", "").Code)
}

func TestHealth(t *testing.T) {
	r := newTestRouter(&stubService{}, 1024)
	w := do(r, http.MethodGet, "/api/health", "")
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "ok", body["status"])
	assert.Equal(t, true, body["ledger"])
	assert.Equal(t, false, body["cache"])
	assert.Equal(t, true, body["events"])
	assert.Equal(t, float64(2), body["streams"])
}
