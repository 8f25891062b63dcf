package kakao

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestTextResponseJSON(t *testing.T) {
	resp := TextResponse("첫 번째", "두 번째")

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	want := `{"version":"2.0","template":{"outputs":[{"simpleText":{"text":"첫 번째"}},{"simpleText":{"text":"두 번째"}}]}}`
	if diff := cmp.Diff(want, string(data)); diff != "" {
		t.Errorf("JSON mismatch (-want +got):\n%s", diff)
	}
}

func TestWithQuickReplies(t *testing.T) {
	resp := TextResponse("본문").WithQuickReplies(QuickReply{
		MessageText: "오늘의 QT",
		Action:      "message",
		Label:       "🔄 다시보기",
	})

	data, err := json.Marshal(resp)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded SkillResponse
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if diff := cmp.Diff(resp, decoded); diff != "" {
		t.Errorf("round trip mismatch (-want +got):\n%s", diff)
	}
	if len(decoded.Template.QuickReplies) != 1 {
		t.Fatalf("expected 1 quick reply, got %d", len(decoded.Template.QuickReplies))
	}
}

func TestSkillPayloadUserID(t *testing.T) {
	raw := `{"userRequest":{"utterance":"던전 현황","user":{"id":"user-abc"}}}`

	var p SkillPayload
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if p.UserID() != "user-abc" {
		t.Errorf("UserID() = %q, want %q", p.UserID(), "user-abc")
	}
	if p.UserRequest.Utterance != "던전 현황" {
		t.Errorf("utterance = %q", p.UserRequest.Utterance)
	}
}
