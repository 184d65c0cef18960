package chat

import "github.com/liutentor/tentor-backend/internal/entity"

// lastMessages returns the trailing n messages in original order. The
// input is returned unchanged when it already fits the window.
func lastMessages(messages []entity.ConversationMessage, n int) []entity.ConversationMessage {
	if n <= 0 {
		return nil
	}
	if len(messages) <= n {
		return messages
	}
	return messages[len(messages)-n:]
}
