package cleanup

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

type countingPruner struct {
	mu    sync.Mutex
	calls int
	days  int
	err   error
}

func (p *countingPruner) DeleteOlderThan(_ context.Context, days int) (int64, error) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.calls++
	p.days = days
	return 3, p.err
}

func (p *countingPruner) snapshot() (int, int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls, p.days
}

func TestWorkerPrunesImmediatelyAndPeriodically(t *testing.T) {
	p := &countingPruner{}
	w := NewWorker(p, 30)
	w.Interval = 10 * time.Millisecond
	w.Start()
	defer w.Stop()

	assert.Eventually(t, func() bool {
		calls, _ := p.snapshot()
		return calls >= 3
	}, time.Second, 5*time.Millisecond)

	_, days := p.snapshot()
	assert.Equal(t, 30, days)
}

func TestWorkerSurvivesErrors(t *testing.T) {
	p := &countingPruner{err: errors.New("db down")}
	w := NewWorker(p, 7)
	w.Interval = 10 * time.Millisecond
	w.Start()
	defer w.Stop()

	assert.Eventually(t, func() bool {
		calls, _ := p.snapshot()
		return calls >= 2
	}, time.Second, 5*time.Millisecond)
}
