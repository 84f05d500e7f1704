package tradelist

import (
	"errors"
	"fmt"

	"trade-ledger/core/ledger"
	"trade-ledger/core/logger"
	"trade-ledger/core/metrics"

	"go.uber.org/zap"
)

var (
	// ErrPrivate is returned when another user views a private tradelist.
	ErrPrivate = errors.New("tradelist: tradelist is private")
	// ErrUnknownCard is returned when a card name is not in the catalog.
	ErrUnknownCard = errors.New("tradelist: unknown card")
)

// Catalog resolves card names to catalog cards.
type Catalog interface {
	Lookup(name string) (*ledger.Card, bool)
}

// Status is the outcome of a single line.
type Status string

const (
	StatusApplied Status = "applied"
	StatusPartial Status = "partial"
	StatusSkipped Status = "skipped"
	StatusFailed  Status = "failed"
)

// LineResult reports what happened to one requested line.
type LineResult struct {
	Line    Line   `json:"line"`
	Status  Status `json:"status"`
	Applied int    `json:"applied"`
	Reason  string `json:"reason,omitempty"`
}

// Result aggregates the line results of an add or remove request.
type Result struct {
	Owner   string       `json:"owner"`
	Lines   []LineResult `json:"lines"`
	Applied int          `json:"applied"`
	Skipped int          `json:"skipped"`
	Failed  int          `json:"failed"`
}

func (r *Result) record(lr LineResult) {
	r.Lines = append(r.Lines, lr)
	switch lr.Status {
	case StatusApplied, StatusPartial:
		r.Applied++
	case StatusSkipped:
		r.Skipped++
	case StatusFailed:
		r.Failed++
	}
}

// Response is a rendered tradelist: a plain-text block plus an embed.
type Response struct {
	Owner   string         `json:"owner"`
	Content string         `json:"content"`
	Embed   ledger.Summary `json:"embed"`
	Public  bool           `json:"public"`
	Empty   bool           `json:"empty"`
}

// Service applies gateway commands to the ledger store.
type Service struct {
	catalog Catalog
	store   *ledger.Store
	metrics *metrics.Metrics
	logger  *zap.Logger
}

// NewService creates a new tradelist service.
func NewService(catalog Catalog, store *ledger.Store, m *metrics.Metrics, logger *zap.Logger) *Service {
	return &Service{
		catalog: catalog,
		store:   store,
		metrics: m,
		logger:  logger,
	}
}

// View renders owner's tradelist for the owner.
func (s *Service) View(owner string) Response {
	resp, _ := s.ViewAs(owner, owner)
	return resp
}

// ViewAs renders owner's tradelist for viewer. Other viewers may only see
// public tradelists. An owner without a ledger gets an empty response.
func (s *Service) ViewAs(viewer, owner string) (Response, error) {
	l, ok := s.store.Get(owner)
	if !ok {
		s.metrics.Operation("view", metrics.OutcomeSkipped)
		return newResponse(owner, ledger.RenderEmpty(owner)), nil
	}
	if viewer != owner && !l.IsPublic() {
		s.metrics.Operation("view", metrics.OutcomeFailed)
		return Response{}, fmt.Errorf("%w: %s", ErrPrivate, owner)
	}
	s.metrics.Operation("view", metrics.OutcomeApplied)
	return newResponse(owner, l.Render(owner)), nil
}

func newResponse(owner string, listing ledger.Listing) Response {
	return Response{
		Owner:   owner,
		Content: listing.Text(),
		Embed:   listing.Summary,
		Public:  listing.Public,
		Empty:   listing.Empty(),
	}
}

// resolve turns a line into a ledger entry.
// A catalog miss returns a zero identity and no error.
func (s *Service) resolve(line Line) (ledger.Entry, bool, error) {
	card, ok := s.catalog.Lookup(line.Name)
	if !ok {
		return ledger.Entry{}, false, nil
	}
	id, err := ledger.WithPrinting(card, line.Printing)
	if err != nil {
		return ledger.Entry{}, true, err
	}
	entry, err := ledger.NewEntry(id, line.Quantity)
	return entry, true, err
}

// Add applies every line to owner's ledger. Unknown cards are skipped and
// invalid lines fail individually; the batch is never aborted.
func (s *Service) Add(owner string, lines []Line) Result {
	log := logger.WithOwner(s.logger, owner)
	res := Result{Owner: owner}

	var l *ledger.Ledger
	for _, line := range lines {
		entry, found, err := s.resolve(line)
		switch {
		case !found:
			res.record(LineResult{Line: line, Status: StatusSkipped, Reason: ErrUnknownCard.Error()})
			s.metrics.Operation("add", metrics.OutcomeSkipped)
			continue
		case err != nil:
			res.record(LineResult{Line: line, Status: StatusFailed, Reason: err.Error()})
			s.metrics.Operation("add", metrics.OutcomeFailed)
			continue
		case entry.Count == 0:
			res.record(LineResult{Line: line, Status: StatusSkipped, Reason: "zero quantity"})
			s.metrics.Operation("add", metrics.OutcomeSkipped)
			continue
		}

		if l == nil {
			l = s.store.GetOrCreate(owner)
		}
		if err := l.Add(entry); err != nil {
			log.Warn("Add rejected", zap.Stringer("line", line), zap.Error(err))
			res.record(LineResult{Line: line, Status: StatusFailed, Reason: err.Error()})
			s.metrics.Operation("add", metrics.OutcomeFailed)
			continue
		}
		res.record(LineResult{Line: line, Status: StatusApplied, Applied: entry.Count})
		s.metrics.Operation("add", metrics.OutcomeApplied)
		s.metrics.CardsMoved("add", entry.Count)
	}

	s.metrics.SetOwners(s.store.Len())
	log.Debug("Add processed",
		zap.Int("applied", res.Applied),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	return res
}

// Remove drains every line from owner's ledger. Missing entries and unknown
// cards are skipped; a line that removes fewer copies than requested is partial.
func (s *Service) Remove(owner string, lines []Line) Result {
	log := logger.WithOwner(s.logger, owner)
	res := Result{Owner: owner}

	l, hasLedger := s.store.Get(owner)
	for _, line := range lines {
		entry, found, err := s.resolve(line)
		switch {
		case !found:
			res.record(LineResult{Line: line, Status: StatusSkipped, Reason: ErrUnknownCard.Error()})
			s.metrics.Operation("remove", metrics.OutcomeSkipped)
			continue
		case err != nil:
			res.record(LineResult{Line: line, Status: StatusFailed, Reason: err.Error()})
			s.metrics.Operation("remove", metrics.OutcomeFailed)
			continue
		case entry.Count == 0:
			res.record(LineResult{Line: line, Status: StatusSkipped, Reason: "zero quantity"})
			s.metrics.Operation("remove", metrics.OutcomeSkipped)
			continue
		case !hasLedger:
			res.record(LineResult{Line: line, Status: StatusSkipped, Reason: "not in tradelist"})
			s.metrics.Operation("remove", metrics.OutcomeSkipped)
			continue
		}

		removed := l.Remove(entry)
		lr := LineResult{Line: line, Applied: removed}
		switch {
		case removed == 0:
			lr.Status = StatusSkipped
			lr.Reason = "not in tradelist"
			s.metrics.Operation("remove", metrics.OutcomeSkipped)
		case removed < entry.Count:
			lr.Status = StatusPartial
			lr.Reason = fmt.Sprintf("only %d of %d removed", removed, entry.Count)
			s.metrics.Operation("remove", metrics.OutcomeApplied)
		default:
			lr.Status = StatusApplied
			s.metrics.Operation("remove", metrics.OutcomeApplied)
		}
		s.metrics.CardsMoved("remove", removed)
		res.record(lr)
	}

	log.Debug("Remove processed",
		zap.Int("applied", res.Applied),
		zap.Int("skipped", res.Skipped),
		zap.Int("failed", res.Failed))
	return res
}

// SetVisibility makes owner's tradelist public or private.
func (s *Service) SetVisibility(owner string, public bool) {
	l := s.store.GetOrCreate(owner)
	if public {
		l.SetPublic()
	} else {
		l.SetPrivate()
	}
	s.metrics.Operation("visibility", metrics.OutcomeApplied)
	s.metrics.SetOwners(s.store.Len())
	logger.WithOwner(s.logger, owner).Info("Visibility changed", zap.Bool("public", public))
}

// Contains reports whether owner holds the card, any printing when printing is empty.
func (s *Service) Contains(owner, name, printing string) (bool, error) {
	card, ok := s.catalog.Lookup(name)
	if !ok {
		return false, fmt.Errorf("%w: %s", ErrUnknownCard, name)
	}
	id, err := ledger.WithPrinting(card, printing)
	if err != nil {
		return false, err
	}
	l, ok := s.store.Get(owner)
	if !ok {
		return false, nil
	}
	return l.Contains(id), nil
}
