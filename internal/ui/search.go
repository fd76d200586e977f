package ui

import (
	"context"
	"sync"

	"followup_tracker/internal/model"
)

// SearchFunc fetches one page of converts for a query.
type SearchFunc func(ctx context.Context, query string) ([]model.Convert, error)

// Searcher serializes concurrent search submissions. Every Submit gets a
// generation number; a response only lands if its generation is still the
// newest, so a slow early response can never overwrite the results of a
// later query.
type Searcher struct {
	fetch SearchFunc

	mu      sync.Mutex
	gen     uint64
	query   string
	results []model.Convert
	err     error
}

// NewSearcher creates a Searcher around fetch.
func NewSearcher(fetch SearchFunc) *Searcher {
	return &Searcher{fetch: fetch}
}

// Submit starts a search in the background and returns a channel closed
// when this particular submission has finished, whether its results were
// applied or discarded as stale.
func (s *Searcher) Submit(ctx context.Context, query string) <-chan struct{} {
	s.mu.Lock()
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		defer close(done)
		results, err := s.fetch(ctx, query)

		s.mu.Lock()
		defer s.mu.Unlock()
		if gen != s.gen {
			// A newer submission exists; this response is stale.
			return
		}
		s.query = query
		s.results = results
		s.err = err
	}()
	return done
}

// Reset invalidates any in-flight submissions and clears held results.
// Screens call it when navigating away so a lingering response cannot leak
// into the next visit.
func (s *Searcher) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gen++
	s.query = ""
	s.results = nil
	s.err = nil
}

// Results returns the query and result set of the newest applied response.
func (s *Searcher) Results() (string, []model.Convert, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.query, s.results, s.err
}
