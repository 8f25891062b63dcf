package qt

import (
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func loadFixture(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path) //nolint:gosec // test-only fixture loading
	if err != nil {
		t.Fatalf("read fixture %s: %v", path, err)
	}
	return data
}

func TestExtractFixture(t *testing.T) {
	body := loadFixture(t, "../../testdata/qt_today.html")

	d, err := Extract(body, DefaultBaseURL+"?qt_ty=QT6")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if diff := cmp.Diff("복 있는 사람 (2026-08-24)", d.Title); diff != "" {
		t.Errorf("title mismatch (-want +got):\n%s", diff)
	}
	wantRef := Reference{Scripture: "시편 1:1-6", Hymn: "1장"}
	if diff := cmp.Diff(wantRef, d.Reference); diff != "" {
		t.Errorf("reference mismatch (-want +got):\n%s", diff)
	}

	wantCommentary := "복 있는 사람의 길과 악인의 길이 선명하게 대비됩니다.\n\n" +
		"📖 성경 이해\n" +
		"복 있는 사람은 악인들의 꾀를 따르지 않고\n여호와의 율법을\n즐거워합니다.\n\n" +
		"시냇가에 심은 나무처럼 철을 따라 열매를 맺습니다.\n\n"
	if diff := cmp.Diff(wantCommentary, d.Commentary); diff != "" {
		t.Errorf("commentary mismatch (-want +got):\n%s", diff)
	}

	// The excluded sections must leave no trace in the reply.
	for _, excluded := range []string{"나의 적용", "기도하기", "어떤 길 위에", "주야로 묵상하게"} {
		if strings.Contains(d.Commentary, excluded) {
			t.Errorf("commentary contains excluded text %q", excluded)
		}
	}
}

func TestExtractDegraded(t *testing.T) {
	tests := []struct {
		name           string
		html           string
		wantTitle      string
		wantReference  Reference
		wantCommentary string
	}{
		{
			name:           "missing everything",
			html:           `<html><body><p>renovated page</p></body></html>`,
			wantTitle:      placeholderTitle,
			wantReference:  Reference{Scripture: placeholderReference},
			wantCommentary: placeholderNoContainer,
		},
		{
			name: "container with no qualifying blocks",
			html: `<html><body>
				<div id="bible_text">제목</div>
				<div id="bibleinfo_box">본문 : 시편 1:1-6</div>
				<div class="body_cont"><div class="other">광고</div></div>
			</body></html>`,
			wantTitle:      "제목",
			wantReference:  Reference{Scripture: "시편 1:1-6"},
			wantCommentary: placeholderEmptyBody,
		},
		{
			name: "only excluded sections",
			html: `<html><body>
				<div id="bible_text">제목</div>
				<div id="bibleinfo_box">본문 : 시편 1:1-6</div>
				<div class="body_cont">
					<div class="g_text">나의 적용</div>
					<div class="text">적용 내용</div>
					<div class="g_text">기도하기</div>
					<div class="text">기도 내용</div>
				</div>
			</body></html>`,
			wantTitle:      "제목",
			wantReference:  Reference{Scripture: "시편 1:1-6"},
			wantCommentary: placeholderEmptyBody,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := Extract([]byte(tt.html), DefaultBaseURL)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if diff := cmp.Diff(tt.wantTitle, d.Title); diff != "" {
				t.Errorf("title mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantReference, d.Reference); diff != "" {
				t.Errorf("reference mismatch (-want +got):\n%s", diff)
			}
			if diff := cmp.Diff(tt.wantCommentary, d.Commentary); diff != "" {
				t.Errorf("commentary mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestComposeCommentarySkipToggle(t *testing.T) {
	// A non-excluded subheading after an excluded one resumes inclusion.
	html := `<html><body><div class="body_cont">
		<div class="g_text">나의 적용</div>
		<div class="text">건너뛸 내용</div>
		<div class="g_text">말씀 묵상</div>
		<div class="text">이어지는 내용</div>
	</div></body></html>`

	d, err := Extract([]byte(html), DefaultBaseURL)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "📖 말씀 묵상\n이어지는 내용\n\n"
	if diff := cmp.Diff(want, d.Commentary); diff != "" {
		t.Errorf("commentary mismatch (-want +got):\n%s", diff)
	}
}
