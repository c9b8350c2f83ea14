package searcher

import "time"

type Option func(s *Searcher)

// WithGoroutines searches the root's successors concurrently
func WithGoroutines(goroutines int) Option {
	return func(s *Searcher) {
		if goroutines > 0 {
			s.goroutines = goroutines
		}
	}
}

// WithTimeout bounds a search by a deadline. An interrupted search returns the best
// root move fully searched so far along with the context error.
func WithTimeout(timeout time.Duration) Option {
	return func(s *Searcher) {
		if timeout > 0 {
			s.timeout = timeout
		}
	}
}

// WithoutPruning degrades the search to plain minimax
func WithoutPruning() Option {
	return func(s *Searcher) {
		s.pruning = false
	}
}

func WithMetrics() Option {
	return func(s *Searcher) {
		s.collect = true
	}
}
