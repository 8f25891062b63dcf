package qt

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSplitReference(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Reference
	}{
		{
			name: "standard shape",
			raw:  "본문 : 시편 1:1-6 (찬송 : 1장)",
			want: Reference{Scripture: "시편 1:1-6", Hymn: "1장"},
		},
		{
			name: "hymn label with ga suffix and no colon",
			raw:  "본문: 요한복음 3:16-21 (찬송가 545장)",
			want: Reference{Scripture: "요한복음 3:16-21", Hymn: "545장"},
		},
		{
			name: "no hymn",
			raw:  "본문 : 창세기 1:1-10",
			want: Reference{Scripture: "창세기 1:1-10"},
		},
		{
			name: "no leading label",
			raw:  "시편 23:1-6 (찬송 : 28장)",
			want: Reference{Scripture: "시편 23:1-6", Hymn: "28장"},
		},
		{
			name: "tight whitespace",
			raw:  "  본문:시편 90:1-12(찬송:484장)  ",
			want: Reference{Scripture: "시편 90:1-12", Hymn: "484장"},
		},
		{
			name: "hymn without parentheses",
			raw:  "본문 : 이사야 40:27-31 찬송 : 370장",
			want: Reference{Scripture: "이사야 40:27-31", Hymn: "370장"},
		},
		{
			name: "empty input",
			raw:  "",
			want: Reference{},
		},
		{
			name: "label only",
			raw:  "본문 :",
			want: Reference{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := SplitReference(tt.raw)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("SplitReference(%q) mismatch (-want +got):\n%s", tt.raw, diff)
			}
		})
	}
}
