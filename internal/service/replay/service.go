package replay

import (
	"bytes"
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/iamasit07/connectz/internal/domain"
	"github.com/iamasit07/connectz/internal/events"
	"github.com/iamasit07/connectz/internal/gamefile"
	"github.com/iamasit07/connectz/pkg/uid"
	"golang.org/x/crypto/blake2b"
)

const verdictKeyPrefix = "connectz:verdict:"

var ErrLedgerDisabled = errors.New("verdict ledger is not configured")

type Ledger interface {
	Save(ctx context.Context, v *domain.Verdict) error
	GetByID(ctx context.Context, id string) (*domain.Verdict, error)
	ListRecent(ctx context.Context, limit int) ([]domain.Verdict, error)
}

type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, bool, error)
}

type Publisher interface {
	ProduceEvent(ctx context.Context, eventType string, data interface{}) error
}

// Service classifies uploaded replays. Ledger, cache and events are optional
// and never change a verdict.
type Service struct {
	ledger   Ledger          // Optional, can be nil
	cache    CacheRepository // Optional, can be nil
	events   Publisher       // Optional, can be nil
	cacheTTL time.Duration
	now      func() time.Time
}

func NewService(ledger Ledger, cache CacheRepository, events Publisher, cacheTTL time.Duration) *Service {
	return &Service{
		ledger:   ledger,
		cache:    cache,
		events:   events,
		cacheTTL: cacheTTL,
		now:      time.Now,
	}
}

// Digest is the hex blake2b-256 of a replay's bytes
func Digest(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:])
}

// Run replays data in memory
func Run(data []byte, opts ...domain.Option) domain.Result {
	return domain.Replay(gamefile.NewReaderSource(bytes.NewReader(data)), opts...)
}

// Classify returns the verdict for data, reusing a cached verdict for
// identical bytes.
func (s *Service) Classify(ctx context.Context, name string, data []byte) (*domain.Verdict, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	digest := Digest(data)
	if cached := s.lookup(ctx, digest); cached != nil {
		return cached, nil
	}

	res := Run(data)
	v := &domain.Verdict{
		ID:        uid.NewReplayID(),
		Name:      name,
		Digest:    digest,
		Outcome:   res.Outcome,
		Code:      res.Outcome.Code(),
		Moves:     res.Moves,
		Geometry:  res.Geometry,
		CreatedAt: s.now().UTC(),
	}
	log.Printf("[REPLAY] %s (%s) classified as %s after %d moves", v.ID, name, v.Outcome, v.Moves)

	if s.ledger != nil {
		if err := s.ledger.Save(ctx, v); err != nil {
			log.Printf("[REPLAY] Failed to record verdict %s: %v", v.ID, err)
		}
	}
	s.store(ctx, v)

	if s.events != nil {
		if err := s.events.ProduceEvent(ctx, events.EventReplayClassified, v); err != nil {
			log.Printf("[REPLAY] Failed to publish verdict %s: %v", v.ID, err)
		}
	}
	return v, nil
}

func (s *Service) lookup(ctx context.Context, digest string) *domain.Verdict {
	if s.cache == nil {
		return nil
	}
	raw, found, err := s.cache.Get(ctx, verdictKeyPrefix+digest)
	if err != nil {
		log.Printf("[REPLAY] Cache lookup failed: %v", err)
		return nil
	}
	if !found {
		return nil
	}
	var v domain.Verdict
	if err := json.Unmarshal([]byte(raw), &v); err != nil {
		log.Printf("[REPLAY] Discarding unreadable cache entry %s: %v", digest, err)
		return nil
	}
	v.Cached = true
	return &v
}

func (s *Service) store(ctx context.Context, v *domain.Verdict) {
	if s.cache == nil {
		return
	}
	raw, err := json.Marshal(v)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, verdictKeyPrefix+v.Digest, string(raw), s.cacheTTL); err != nil {
		log.Printf("[REPLAY] Cache store failed: %v", err)
	}
}

// Get returns nil, nil when no verdict has the id
func (s *Service) Get(ctx context.Context, id string) (*domain.Verdict, error) {
	if s.ledger == nil {
		return nil, ErrLedgerDisabled
	}
	return s.ledger.GetByID(ctx, id)
}

func (s *Service) Recent(ctx context.Context, limit int) ([]domain.Verdict, error) {
	if s.ledger == nil {
		return nil, ErrLedgerDisabled
	}
	return s.ledger.ListRecent(ctx, limit)
}
