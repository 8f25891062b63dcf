package qt

import (
	"context"
	"fmt"
	"log/slog"
)

// Service runs the full fetch-and-extract pipeline for the QT skill.
type Service struct {
	fetcher *Fetcher
	log     *slog.Logger
}

// NewService creates a Service around the given fetcher.
func NewService(f *Fetcher, log *slog.Logger) *Service {
	return &Service{fetcher: f, log: log}
}

// SourceURL returns the upstream URL the service reads from.
func (s *Service) SourceURL() string {
	return s.fetcher.URL()
}

// Today fetches and extracts the current devotional. Any fetch or parse
// failure is returned as an error; extraction-tier gaps degrade to
// placeholders inside the Devotional instead.
func (s *Service) Today(ctx context.Context) (*Devotional, error) {
	body, err := s.fetcher.Fetch(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch devotional: %w", err)
	}

	d, err := Extract(body, s.fetcher.URL())
	if err != nil {
		return nil, fmt.Errorf("extract devotional: %w", err)
	}

	s.log.Debug("devotional extracted", "title", d.Title, "commentary_len", len(d.Commentary))
	return d, nil
}
