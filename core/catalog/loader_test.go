package catalog

import (
	"context"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"trade-ledger/core/ledger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubSource struct {
	cards []*ledger.Card
	err   error
	calls atomic.Int32
	delay time.Duration
}

func (s *stubSource) Name() string { return "stub" }

func (s *stubSource) Load(context.Context) ([]*ledger.Card, error) {
	s.calls.Add(1)
	time.Sleep(s.delay)
	return s.cards, s.err
}

func TestLoaderReload(t *testing.T) {
	card, _ := ledger.NewCard("Izzet Charm", []string{"RNA"}, []string{"Instant"})
	src := &stubSource{cards: []*ledger.Card{card}}
	l := NewLoader(src, New(nil), zap.NewNop())

	n, err := l.Reload(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, n)
	assert.Equal(t, 1, l.Catalog().Len())
}

func TestLoaderReload_FailureKeepsCatalog(t *testing.T) {
	card, _ := ledger.NewCard("Izzet Charm", []string{"RNA"}, []string{"Instant"})
	cat := New([]*ledger.Card{card})
	l := NewLoader(&stubSource{err: assert.AnError}, cat, zap.NewNop())

	_, err := l.Reload(context.Background())
	assert.ErrorIs(t, err, assert.AnError)
	assert.Equal(t, 1, cat.Len())
}

func TestLoaderReload_Concurrent(t *testing.T) {
	src := &stubSource{delay: 50 * time.Millisecond}
	l := NewLoader(src, New(nil), zap.NewNop())

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = l.Reload(context.Background())
		}()
	}
	wg.Wait()

	assert.Less(t, src.calls.Load(), int32(8))
}
