package qt

import (
	"context"
	"io"
	"log/slog"
	"testing"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestServiceToday(t *testing.T) {
	fixture := string(loadFixture(t, "../../testdata/qt_today.html"))

	t.Run("success", func(t *testing.T) {
		f := NewFetcher(&mockTransport{body: fixture, statusCode: 200}, DefaultBaseURL, DefaultVariant)
		svc := NewService(f, discardLogger())

		d, err := svc.Today(context.Background())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if d.Title != "복 있는 사람 (2026-08-24)" {
			t.Errorf("title = %q", d.Title)
		}
		if d.SourceURL != f.URL() {
			t.Errorf("source URL = %q, want %q", d.SourceURL, f.URL())
		}
	})

	t.Run("fetch failure", func(t *testing.T) {
		f := NewFetcher(&mockTransport{err: io.ErrUnexpectedEOF}, DefaultBaseURL, DefaultVariant)
		svc := NewService(f, discardLogger())

		if _, err := svc.Today(context.Background()); err == nil {
			t.Fatal("expected error, got nil")
		}
	})
}
