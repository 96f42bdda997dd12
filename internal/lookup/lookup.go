// Package lookup answers whether an email appears in the record dataset.
package lookup

import (
	"context"
	"errors"

	"matchmaker/internal/config"
	"matchmaker/internal/dataset"
)

// ErrNoSource is returned when a Service has no dataset source.
var ErrNoSource = errors.New("lookup: no dataset source configured")

// Service checks queries against a dataset source. It holds no state
// between calls and is safe for concurrent use.
type Service struct {
	source  dataset.Source
	matcher Matcher
}

// New creates a lookup service. A nil matcher defaults to Substring.
func New(source dataset.Source, matcher Matcher) *Service {
	if matcher == nil {
		matcher = Substring
	}
	return &Service{source: source, matcher: matcher}
}

// MatcherFromConfig returns the match policy selected by cfg.
func MatcherFromConfig(cfg *config.Config) Matcher {
	if cfg.IsExactMatch() {
		return ExactField{Column: cfg.MatchColumn}
	}
	return Substring
}

// Source returns the dataset source the service reads from.
func (s *Service) Source() dataset.Source {
	return s.source
}

// Lookup loads the dataset and reports whether any line matches query.
// A storage failure is returned as an error wrapping dataset.ErrUnavailable
// and is never reported as a plain false.
func (s *Service) Lookup(ctx context.Context, query string) (bool, error) {
	if s.source == nil {
		return false, ErrNoSource
	}

	lines, err := s.source.Lines(ctx)
	if err != nil {
		return false, err
	}

	for _, line := range lines {
		if s.matcher.Match(line, query) {
			return true, nil
		}
	}
	return false, nil
}
