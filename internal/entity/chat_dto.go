package entity

// ChatRequest is the body of a chat completion request. Each request
// replays the trimmed history; the server keeps no conversation state.
type ChatRequest struct {
	Messages         []ConversationMessage `json:"messages"`
	GiveDirectAnswer *bool                 `json:"giveDirectAnswer,omitempty"`
}

// DirectAnswer resolves the teaching-mode flag, defaulting to direct
// answers when the caller did not set it.
func (r *ChatRequest) DirectAnswer() bool {
	if r.GiveDirectAnswer == nil {
		return true
	}
	return *r.GiveDirectAnswer
}
