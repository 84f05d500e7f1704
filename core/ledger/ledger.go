package ledger

import (
	"fmt"
	"slices"
	"strings"
	"sync"
)

const (
	// BannerPublic is the summary banner of a public ledger.
	BannerPublic = "This tradelist is public."
	// BannerPrivate is the summary banner of a private ledger.
	BannerPrivate = "This tradelist is private."
	// EmptyBody is the summary body of a ledger with no entries.
	EmptyBody = "Nothing here yet."
)

// Ledger holds one owner's cards, grouped by card name.
// Under a name there is at most one entry per chosen printing, and
// entries are pruned as soon as their count reaches zero.
type Ledger struct {
	mu     sync.RWMutex
	names  []string
	cards  map[string][]*Entry
	public bool
}

// New returns an empty private ledger.
func New() *Ledger {
	return &Ledger{cards: make(map[string][]*Entry)}
}

// SetPublic marks the ledger as publicly viewable.
func (l *Ledger) SetPublic() {
	l.mu.Lock()
	l.public = true
	l.mu.Unlock()
}

// SetPrivate marks the ledger as private.
func (l *Ledger) SetPrivate() {
	l.mu.Lock()
	l.public = false
	l.mu.Unlock()
}

// IsPublic reports the visibility flag.
func (l *Ledger) IsPublic() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.public
}

// Add merges entry into the ledger. An existing entry with exactly the same
// chosen printing absorbs the count; otherwise the entry is appended.
func (l *Ledger) Add(entry Entry) error {
	if entry.Identity.IsZero() {
		return ErrInvalidCard
	}
	if entry.Count < 0 {
		return fmt.Errorf("%w: %d", ErrInvalidQuantity, entry.Count)
	}
	if entry.Count == 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	name := entry.Identity.Name()
	list, ok := l.cards[name]
	if !ok {
		l.names = append(l.names, name)
		l.cards[name] = []*Entry{{Identity: entry.Identity, Count: entry.Count}}
		return nil
	}
	if existing := findPrinting(list, entry.Identity.Printing()); existing != nil {
		return existing.Increase(entry.Count)
	}
	l.cards[name] = append(list, &Entry{Identity: entry.Identity, Count: entry.Count})
	return nil
}

// Remove drains up to entry.Count copies from the entry with exactly the
// same chosen printing and returns how many were removed.
func (l *Ledger) Remove(entry Entry) int {
	if entry.Count <= 0 || entry.Identity.IsZero() {
		return 0
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	name := entry.Identity.Name()
	list, ok := l.cards[name]
	if !ok {
		return 0
	}
	idx := slices.IndexFunc(list, func(e *Entry) bool {
		return e.Identity.Printing() == entry.Identity.Printing()
	})
	if idx < 0 {
		return 0
	}

	removed := list[idx].Decrease(entry.Count)
	if list[idx].Count == 0 {
		list = slices.Delete(list, idx, idx+1)
	}
	if len(list) == 0 {
		delete(l.cards, name)
		l.names = slices.DeleteFunc(l.names, func(n string) bool { return n == name })
	} else {
		l.cards[name] = list
	}
	return removed
}

// Contains reports whether any entry under the candidate's name matches it,
// treating an absent printing on either side as a wildcard.
func (l *Ledger) Contains(candidate Identity) bool {
	l.mu.RLock()
	defer l.mu.RUnlock()

	for _, e := range l.cards[candidate.Name()] {
		if Matches(e.Identity, candidate) {
			return true
		}
	}
	return false
}

// Count returns the count held for exactly this identity's printing.
func (l *Ledger) Count(id Identity) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if e := findPrinting(l.cards[id.Name()], id.Printing()); e != nil {
		return e.Count
	}
	return 0
}

// Total returns the count held for name across all printings.
func (l *Ledger) Total(name string) int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	total := 0
	for _, e := range l.cards[name] {
		total += e.Count
	}
	return total
}

// Len returns the number of distinct entries.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	n := 0
	for _, list := range l.cards {
		n += len(list)
	}
	return n
}

// IsEmpty reports whether the ledger holds no entries.
func (l *Ledger) IsEmpty() bool {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.names) == 0
}

// Entries returns copies of all entries in render order.
func (l *Ledger) Entries() []Entry {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.entriesLocked()
}

func (l *Ledger) entriesLocked() []Entry {
	out := make([]Entry, 0, len(l.names))
	for _, name := range l.names {
		for _, e := range l.cards[name] {
			out = append(out, *e)
		}
	}
	return out
}

func findPrinting(list []*Entry, printing string) *Entry {
	for _, e := range list {
		if e.Identity.Printing() == printing {
			return e
		}
	}
	return nil
}

// Summary is the structured form of a rendered ledger.
type Summary struct {
	Title  string `json:"title"`
	Banner string `json:"banner"`
	Body   string `json:"body"`
}

// Listing is a rendered ledger: one text line per entry plus a summary.
type Listing struct {
	Lines   []string `json:"lines"`
	Public  bool     `json:"public"`
	Summary Summary  `json:"summary"`
}

// Empty reports whether the listing has no lines.
func (ls Listing) Empty() bool { return len(ls.Lines) == 0 }

// Text returns the plain-text block, one entry per line.
func (ls Listing) Text() string { return strings.Join(ls.Lines, "\n") }

// Render produces a deterministic listing of the ledger for owner.
// Names appear in first-insertion order, printings in insertion order.
func (l *Ledger) Render(owner string) Listing {
	l.mu.RLock()
	entries := l.entriesLocked()
	public := l.public
	l.mu.RUnlock()

	return renderEntries(owner, entries, public)
}

// RenderEmpty renders the listing of an owner that has no ledger.
func RenderEmpty(owner string) Listing {
	return renderEntries(owner, nil, false)
}

func renderEntries(owner string, entries []Entry, public bool) Listing {
	lines := make([]string, 0, len(entries))
	for _, e := range entries {
		lines = append(lines, e.String())
	}

	banner := BannerPrivate
	if public {
		banner = BannerPublic
	}
	body := strings.Join(lines, "\n")
	if body == "" {
		body = EmptyBody
	}
	return Listing{
		Lines:  lines,
		Public: public,
		Summary: Summary{
			Title:  fmt.Sprintf("%s's Tradelist", owner),
			Banner: banner,
			Body:   body,
		},
	}
}
