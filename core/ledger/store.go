package ledger

import (
	"strings"
	"sync"

	"github.com/cespare/xxhash/v2"
)

// DefaultShards is the shard count used when NewStore is given a non-positive value.
const DefaultShards = 32

// Store is a concurrent owner -> Ledger map. Owners are spread across shards,
// and a shard lock is held only while looking up or inserting a ledger.
type Store struct {
	shards []*shard
}

type shard struct {
	mu      sync.RWMutex
	ledgers map[string]*Ledger
}

// NewStore creates a store with the given number of shards.
func NewStore(shards int) *Store {
	if shards <= 0 {
		shards = DefaultShards
	}
	s := &Store{shards: make([]*shard, shards)}
	for i := range s.shards {
		s.shards[i] = &shard{ledgers: make(map[string]*Ledger)}
	}
	return s
}

func (s *Store) shardFor(owner string) *shard {
	return s.shards[xxhash.Sum64String(owner)%uint64(len(s.shards))]
}

// GetOrCreate returns the owner's ledger, creating an empty private one on
// first access. Concurrent callers for the same owner receive the same ledger.
func (s *Store) GetOrCreate(owner string) *Ledger {
	sh := s.shardFor(owner)

	sh.mu.RLock()
	l, ok := sh.ledgers[owner]
	sh.mu.RUnlock()
	if ok {
		return l
	}

	sh.mu.Lock()
	defer sh.mu.Unlock()
	if l, ok := sh.ledgers[owner]; ok {
		return l
	}
	l = New()
	sh.ledgers[strings.Clone(owner)] = l
	return l
}

// Get returns the owner's ledger if one was ever created.
func (s *Store) Get(owner string) (*Ledger, bool) {
	sh := s.shardFor(owner)
	sh.mu.RLock()
	defer sh.mu.RUnlock()
	l, ok := sh.ledgers[owner]
	return l, ok
}

// Len returns the number of owners with a ledger.
func (s *Store) Len() int {
	n := 0
	for _, sh := range s.shards {
		sh.mu.RLock()
		n += len(sh.ledgers)
		sh.mu.RUnlock()
	}
	return n
}

// Range calls fn for every owner and ledger until fn returns false.
// Each shard is snapshotted before fn runs, so fn may call back into the store.
func (s *Store) Range(fn func(owner string, l *Ledger) bool) {
	type pair struct {
		owner  string
		ledger *Ledger
	}
	for _, sh := range s.shards {
		sh.mu.RLock()
		pairs := make([]pair, 0, len(sh.ledgers))
		for owner, l := range sh.ledgers {
			pairs = append(pairs, pair{owner, l})
		}
		sh.mu.RUnlock()

		for _, p := range pairs {
			if !fn(p.owner, p.ledger) {
				return
			}
		}
	}
}
