package qt

import (
	"regexp"
	"strings"
)

// Reference holds the split scripture passage range and optional hymn number.
type Reference struct {
	Scripture string
	Hymn      string
}

var (
	// Leading "본문" label with optional colon, as rendered in #bibleinfo_box.
	refLabelRe = regexp.MustCompile(`^본문\s*:?\s*`)

	// Embedded hymn sub-label: optional opening paren, "찬송" optionally
	// followed by "가", optional colon. Example: "시편 1:1-6 (찬송 : 1장)".
	hymnLabelRe = regexp.MustCompile(`\(?\s*찬송가?\s*:?\s*`)
)

// SplitReference splits the combined reference line from the page into a
// scripture range and a hymn number. When the hymn sub-label is missing the
// whole label-stripped string becomes the scripture reference and Hymn stays
// empty; that is a degraded result, not an error.
func SplitReference(raw string) Reference {
	s := refLabelRe.ReplaceAllString(strings.TrimSpace(raw), "")

	loc := hymnLabelRe.FindStringIndex(s)
	if loc == nil {
		return Reference{Scripture: strings.TrimSpace(s)}
	}

	hymn := strings.TrimSpace(s[loc[1]:])
	hymn = strings.TrimSpace(strings.TrimSuffix(hymn, ")"))

	return Reference{
		Scripture: strings.TrimSpace(s[:loc[0]]),
		Hymn:      hymn,
	}
}
