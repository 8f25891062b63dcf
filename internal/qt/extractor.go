package qt

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// Devotional is the content extracted from one day's page.
// It is built fresh per request and never persisted.
type Devotional struct {
	Title      string
	Reference  Reference
	Commentary string
	SourceURL  string
}

// Page regions, matching the upstream markup.
const (
	titleSelector     = "#bible_text"
	referenceSelector = "#bibleinfo_box"
	bodySelector      = ".body_cont"
)

// Placeholders substituted when an optional region is missing. A missing
// region never fails the pipeline; only a fetch failure does.
const (
	placeholderTitle       = "제목 없음"
	placeholderReference   = "본문 정보 없음"
	placeholderNoContainer = "해설 내용을 불러올 수 없습니다."
	placeholderEmptyBody   = "해설 내용을 찾을 수 없습니다 (HTML 구조 변경 가능성)."
)

const subheadingMarker = "📖 "

// Subheadings that suppress their section from the reply.
var excludedSubheadings = []string{"나의 적용", "기도하기"}

// Extract parses the raw page body and builds a Devotional.
// Missing title, reference, or body regions degrade to placeholders.
func Extract(body []byte, sourceURL string) (*Devotional, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("parse html: %w", err)
	}

	d := &Devotional{SourceURL: sourceURL}

	d.Title = blockText(doc.Find(titleSelector).First())
	if d.Title == "" {
		d.Title = placeholderTitle
	}

	if raw := blockText(doc.Find(referenceSelector).First()); raw != "" {
		d.Reference = SplitReference(raw)
	} else {
		d.Reference = Reference{Scripture: placeholderReference}
	}

	d.Commentary = composeCommentary(doc)
	return d, nil
}

// composeCommentary walks the direct child blocks of the body container in
// document order. Intro blocks (b_text) and body blocks (text) are appended
// with blank-line separators; subheadings (g_text) get the marker glyph
// prefix. An excluded subheading suppresses all body blocks until the next
// non-excluded subheading.
func composeCommentary(doc *goquery.Document) string {
	container := doc.Find(bodySelector).First()
	if container.Length() == 0 {
		return placeholderNoContainer
	}

	var b strings.Builder
	skipSection := false

	container.ChildrenFiltered("div").Each(func(_ int, blk *goquery.Selection) {
		text := blockText(blk)
		if text == "" {
			return
		}
		switch {
		case blk.HasClass("b_text"):
			b.WriteString(text)
			b.WriteString("\n\n")
		case blk.HasClass("g_text"):
			if isExcludedSubheading(text) {
				skipSection = true
				return
			}
			skipSection = false
			b.WriteString(subheadingMarker)
			b.WriteString(text)
			b.WriteString("\n")
		case blk.HasClass("text"):
			if !skipSection {
				b.WriteString(text)
				b.WriteString("\n\n")
			}
		}
	})

	composed := b.String()
	if strings.TrimSpace(composed) == "" {
		return placeholderEmptyBody
	}
	return composed
}

func isExcludedSubheading(text string) bool {
	for _, marker := range excludedSubheadings {
		if strings.Contains(text, marker) {
			return true
		}
	}
	return false
}

// blockText collects the trimmed text nodes under a selection in document
// order, joined with newlines. Empty fragments are dropped.
func blockText(sel *goquery.Selection) string {
	var parts []string
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.TextNode {
			if t := strings.TrimSpace(n.Data); t != "" {
				parts = append(parts, t)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	for _, n := range sel.Nodes {
		walk(n)
	}
	return strings.Join(parts, "\n")
}
