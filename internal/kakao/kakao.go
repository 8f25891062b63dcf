// Package kakao defines the KakaoTalk skill server request and response envelopes.
package kakao

// SkillPayload is the request body a Kakao skill server receives.
// Only the fields the bot actually reads are declared.
type SkillPayload struct {
	UserRequest struct {
		Utterance string `json:"utterance"`
		User      struct {
			ID string `json:"id"`
		} `json:"user"`
	} `json:"userRequest"`
}

// UserID returns the Kakao user identifier from the payload.
func (p *SkillPayload) UserID() string {
	return p.UserRequest.User.ID
}

// SkillResponse is the envelope returned to the Kakao platform.
type SkillResponse struct {
	Version  string   `json:"version"`
	Template Template `json:"template"`
}

// Template holds the response outputs and optional quick replies.
type Template struct {
	Outputs      []Output     `json:"outputs"`
	QuickReplies []QuickReply `json:"quickReplies,omitempty"`
}

// Output is a single response component. The bot only emits simpleText bubbles.
type Output struct {
	SimpleText *SimpleText `json:"simpleText,omitempty"`
}

// SimpleText is a plain text chat bubble.
type SimpleText struct {
	Text string `json:"text"`
}

// QuickReply is a suggested follow-up action shown under the reply.
type QuickReply struct {
	MessageText string `json:"messageText"`
	Action      string `json:"action"`
	Label       string `json:"label"`
}

// Version is the skill response schema version the platform expects.
const Version = "2.0"

// TextResponse builds a response with one text bubble per element of texts.
func TextResponse(texts ...string) SkillResponse {
	outputs := make([]Output, 0, len(texts))
	for _, t := range texts {
		outputs = append(outputs, Output{SimpleText: &SimpleText{Text: t}})
	}
	return SkillResponse{
		Version:  Version,
		Template: Template{Outputs: outputs},
	}
}

// WithQuickReplies returns a copy of the response with the given quick replies attached.
func (r SkillResponse) WithQuickReplies(qrs ...QuickReply) SkillResponse {
	r.Template.QuickReplies = qrs
	return r
}
