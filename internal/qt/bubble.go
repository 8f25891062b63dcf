package qt

import (
	"fmt"
	"strings"
)

// Bubble budgets, measured in runes. The platform caps a bubble at 1000
// characters; 950 leaves margin for the client's own decorations.
const (
	bubbleSoftLimit = 950
	bubbleHardLimit = 1000
)

const overflowSuffix = "\n...(내용 더 있음)"

// Header builds the heading prepended to the first bubble.
func Header(d *Devotional) string {
	var b strings.Builder
	b.WriteString("✝오늘의 QT(순)✝\n\n")
	fmt.Fprintf(&b, "[%s]\n", d.Title)
	b.WriteString(d.Reference.Scripture)
	if d.Reference.Hymn != "" {
		fmt.Fprintf(&b, "\n찬송가 : %s", d.Reference.Hymn)
	}
	b.WriteString("\n\n")
	return b.String()
}

// Trailer returns the fixed closing bubble with the source link.
func Trailer(sourceURL string) string {
	return fmt.Sprintf("🔗 해설 전문 보기:\n%s\n\n🌟아침에 말씀으로 시작하며 하나님의 은혜 충만으로 하루를 시작해 보아요🌟", sourceURL)
}

// Bubbles segments a devotional into the ordered reply bubbles:
// header plus as much commentary as fits under the 950 budget, then the
// commentary remainder (truncated with a suffix if it alone exceeds 1000),
// then the fixed trailer. Overflow past the second bubble is dropped rather
// than wrapped, keeping the bubble count at 2 or 3.
func Bubbles(d *Devotional) []string {
	header := Header(d)
	body := []rune(d.Commentary)

	budget := bubbleSoftLimit - len([]rune(header))
	if budget < 0 {
		budget = 0
	}
	cut := min(budget, len(body))

	bubbles := []string{header + string(body[:cut])}

	if rest := body[cut:]; len(rest) > 0 {
		second := string(rest)
		if len(rest) > bubbleHardLimit {
			second = string(rest[:bubbleSoftLimit]) + overflowSuffix
		}
		bubbles = append(bubbles, second)
	}

	return append(bubbles, Trailer(d.SourceURL))
}
