package validator

import (
	"fmt"

	"github.com/liutentor/tentor-backend/internal/config"
	"github.com/liutentor/tentor-backend/internal/entity"
)

// Validator validates request bodies and path parameters at the HTTP
// boundary, before anything reaches the resolver or assembler.
type Validator struct {
	cfg config.ChatConfig
}

func NewValidator(cfg config.ChatConfig) *Validator {
	return &Validator{cfg: cfg}
}

// ValidateChatRequest validates a chat completion request body.
func (v *Validator) ValidateChatRequest(req *entity.ChatRequest) error {
	if len(req.Messages) == 0 {
		return fmt.Errorf("%w: at least one message is required", entity.ErrMissingField)
	}

	if len(req.Messages) > v.cfg.MaxMessages {
		return fmt.Errorf("%w: got %d, max %d", entity.ErrTooManyMessages, len(req.Messages), v.cfg.MaxMessages)
	}

	for i, msg := range req.Messages {
		if !msg.Role.IsValid() {
			return fmt.Errorf("%w: message %d has unknown role %q", entity.ErrInvalidParameter, i, msg.Role)
		}
		if msg.Content.Parts == nil && msg.Content.Text == "" {
			return fmt.Errorf("%w: message %d has empty content", entity.ErrMissingField, i)
		}
	}

	return nil
}
