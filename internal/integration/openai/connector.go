package openai

import (
	"context"
	"encoding/base64"
	"fmt"

	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/liutentor/tentor-backend/internal/config"
	"github.com/liutentor/tentor-backend/internal/entity"
	openai "github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/packages/ssestream"
	"go.uber.org/zap"
)

// Connector invokes chat completions against the model provider and
// exposes the response as an entity.ChunkStream.
type Connector struct {
	client openai.Client
	model  openai.ChatModel
	logger *zap.Logger
}

func NewConnector(cfg config.OpenAIConfig, logger *zap.Logger) *Connector {
	opts := []option.RequestOption{option.WithAPIKey(cfg.APIKey)}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	return &Connector{
		client: openai.NewClient(opts...),
		model:  openai.ChatModel(cfg.Model),
		logger: logger,
	}
}

// StreamCompletion issues a single model invocation. No retries: a
// failed or truncated stream is final for the request.
func (c *Connector) StreamCompletion(ctx context.Context, pc *entity.PromptContext) (entity.ChunkStream, error) {
	messages, err := toProviderMessages(pc)
	if err != nil {
		return nil, err
	}

	invocationID := uuid.NewString()
	ctxzap.Info(ctx, "model invocation issued",
		zap.String("invocation_id", invocationID),
		zap.String("model", string(c.model)),
		zap.Int("message_count", len(messages)),
	)

	stream := c.client.Chat.Completions.NewStreaming(ctx, openai.ChatCompletionNewParams{
		Model:    c.model,
		Messages: messages,
	})

	// A request-level failure (bad key, unreachable host) is visible
	// before the first read; surface it instead of an empty stream.
	if err := stream.Err(); err != nil {
		return nil, fmt.Errorf("%w: %v", entity.ErrModelInvocation, err)
	}

	return &chunkStream{stream: stream}, nil
}

// chunkStream adapts the provider SSE stream, skipping empty deltas so
// callers only see actual text increments.
type chunkStream struct {
	stream  *ssestream.Stream[openai.ChatCompletionChunk]
	current string
}

func (s *chunkStream) Next() bool {
	for s.stream.Next() {
		chunk := s.stream.Current()
		if len(chunk.Choices) == 0 {
			continue
		}
		delta := chunk.Choices[0].Delta.Content
		if delta == "" {
			continue
		}
		s.current = delta
		return true
	}
	return false
}

func (s *chunkStream) Current() string { return s.current }

func (s *chunkStream) Err() error { return s.stream.Err() }

func (s *chunkStream) Close() error { return s.stream.Close() }

func toProviderMessages(pc *entity.PromptContext) ([]openai.ChatCompletionMessageParamUnion, error) {
	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(pc.Messages)+1)

	// System directive rides the side channel as the leading message;
	// the assembler guarantees it appears exactly once.
	if pc.System != "" {
		messages = append(messages, openai.SystemMessage(pc.System))
	}

	for i, m := range pc.Messages {
		switch m.Role {
		case entity.RoleSystem:
			messages = append(messages, openai.SystemMessage(m.Content.PlainText()))
		case entity.RoleAssistant:
			messages = append(messages, openai.AssistantMessage(m.Content.PlainText()))
		case entity.RoleUser:
			if m.Content.Parts == nil {
				messages = append(messages, openai.UserMessage(m.Content.Text))
				continue
			}
			parts, err := toContentParts(m.Content.Parts)
			if err != nil {
				return nil, fmt.Errorf("message %d: %w", i, err)
			}
			messages = append(messages, openai.UserMessage(parts))
		default:
			return nil, fmt.Errorf("%w: unsupported role %q", entity.ErrInvalidParameter, m.Role)
		}
	}

	return messages, nil
}

func toContentParts(parts []entity.ContentPart) ([]openai.ChatCompletionContentPartUnionParam, error) {
	out := make([]openai.ChatCompletionContentPartUnionParam, 0, len(parts))
	for _, p := range parts {
		switch p.Type {
		case entity.PartTypeText:
			out = append(out, openai.TextContentPart(p.Text))
		case entity.PartTypeFile:
			doc := p.Document
			// The chat completions API only accepts inline file data;
			// references must be resolved by the fetcher beforehand.
			if doc == nil || !doc.Inline() {
				return nil, fmt.Errorf("%w: file part has no inline content", entity.ErrDocumentUnavailable)
			}
			name := doc.Name
			if name == "" {
				name = "document.pdf"
			}
			dataURI := fmt.Sprintf("data:%s;base64,%s", doc.MediaType, base64.StdEncoding.EncodeToString(doc.Data))
			out = append(out, openai.FileContentPart(openai.ChatCompletionContentPartFileFileParam{
				FileData: openai.String(dataURI),
				Filename: openai.String(name),
			}))
		default:
			return nil, fmt.Errorf("%w: unknown content part type %q", entity.ErrInvalidParameter, p.Type)
		}
	}
	return out, nil
}
