package federation

import (
	"github.com/jonboulle/clockwork"
)

// Option applies a construction option to the Service.
type Option func(*Service)

// WithCache substitutes the cache backend (default: in-memory).
func WithCache(cache Cache) Option {
	return func(s *Service) {
		s.cache = cache
	}
}

// WithEventStore attaches a durable store consulted for past-date event
// queries before any provider is contacted.
func WithEventStore(store EventStore) Option {
	return func(s *Service) {
		s.store = store
	}
}

// WithServiceClock substitutes the time source, for tests.
func WithServiceClock(clock clockwork.Clock) Option {
	return func(s *Service) {
		s.clock = clock
	}
}

type callOptions struct {
	forceRefresh bool
}

// CallOption adjusts a single federated call.
type CallOption func(*callOptions)

// ForceRefresh bypasses the cache for this call: the cached entry is
// dropped and the result is fetched from providers again.
func ForceRefresh() CallOption {
	return func(o *callOptions) {
		o.forceRefresh = true
	}
}

func applyCallOptions(opts []CallOption) callOptions {
	var options callOptions
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
