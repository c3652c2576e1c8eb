package directory

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/krvjanand/physician-directory/internal/models"
	"github.com/krvjanand/physician-directory/internal/query"
)

// Session drives a user's search against a Client. Rapid filter changes can
// make responses arrive out of order, so every search is stamped with a
// monotonically increasing sequence number and a response only lands if no
// later request has landed already. Search failures are absorbed into an
// empty result and logged; the listing never sees an error.
type Session struct {
	client *Client
	seq    atomic.Uint64

	mu      sync.Mutex
	spec    query.FilterSpec
	pages   query.Pagination
	applied uint64
	result  query.Result
}

func NewSession(client *Client, perPage int) *Session {
	return &Session{
		client: client,
		pages:  query.Pagination{Page: 1, PerPage: perPage},
		result: query.Result{Providers: []models.Provider{}},
	}
}

// SetFilters replaces the active filter specification, resets to page 1, and
// re-runs the search.
func (s *Session) SetFilters(ctx context.Context, spec query.FilterSpec) query.Result {
	s.mu.Lock()
	s.spec = spec
	s.pages.Reset()
	page, perPage := s.pages.Page, s.pages.PerPage
	s.mu.Unlock()
	return s.search(ctx, spec, page, perPage)
}

// GoToPage clamps n into the known page range and fetches that page with the
// current filters.
func (s *Session) GoToPage(ctx context.Context, n int) query.Result {
	s.mu.Lock()
	page := s.pages.GoTo(n)
	spec, perPage := s.spec, s.pages.PerPage
	s.mu.Unlock()
	return s.search(ctx, spec, page, perPage)
}

func (s *Session) search(ctx context.Context, spec query.FilterSpec, page, perPage int) query.Result {
	id := s.seq.Add(1)

	result, err := s.client.Search(ctx, spec, page, perPage)
	if err != nil {
		s.client.log.Warn().Err(err).Msg("provider search failed, showing empty results")
		result = query.Result{Providers: []models.Provider{}}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if id < s.applied {
		// A newer request already delivered; this response is stale.
		return s.result
	}
	s.applied = id
	s.result = result
	s.pages.SetTotal(result.Total)
	return s.result
}

// Current returns the last accepted result.
func (s *Session) Current() query.Result {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.result
}

// Page returns the current page number.
func (s *Session) Page() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pages.Page
}

// TotalPages returns the page count for the last accepted result.
func (s *Session) TotalPages() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.pages.TotalPages()
}
