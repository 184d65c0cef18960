package entity

import (
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
)

// MessageRole is the author of a conversation message.
type MessageRole string

const (
	RoleUser      MessageRole = "user"
	RoleAssistant MessageRole = "assistant"
	RoleSystem    MessageRole = "system"
)

func (r MessageRole) IsValid() bool {
	switch r {
	case RoleUser, RoleAssistant, RoleSystem:
		return true
	}
	return false
}

const (
	PartTypeText = "text"
	PartTypeFile = "file"
)

// Document is opaque document content: either a locator (URL) or
// pre-fetched inline bytes. Consumers must not assume which form they
// get; the fetcher collaborator decides.
type Document struct {
	Name      string
	MediaType string
	URL       string
	Data      []byte
}

// Inline reports whether the document carries its content in-band.
func (d *Document) Inline() bool {
	return len(d.Data) > 0
}

// ContentPart is one element of a multi-part message body.
type ContentPart struct {
	Type     string
	Text     string
	Document *Document
}

// MessageContent is either plain text or an ordered sequence of parts.
// When Parts is non-nil it takes precedence over Text.
type MessageContent struct {
	Text  string
	Parts []ContentPart
}

// PlainText flattens the content to text, ignoring file parts.
func (c *MessageContent) PlainText() string {
	if c.Parts == nil {
		return c.Text
	}
	var sb strings.Builder
	for _, p := range c.Parts {
		if p.Type == PartTypeText {
			sb.WriteString(p.Text)
		}
	}
	return sb.String()
}

// ConversationMessage is one turn of the conversation, either supplied
// by the caller or synthesized by the prompt assembler.
type ConversationMessage struct {
	Role    MessageRole    `json:"role"`
	Content MessageContent `json:"content"`
}

// PromptContext is the final request-scoped message sequence submitted
// to the model: exactly one system directive (side channel) followed by
// the ordered messages. Built fresh per request, never persisted.
type PromptContext struct {
	System   string
	Messages []ConversationMessage
}

// ChunkStream is a lazy, finite, non-restartable sequence of text
// increments produced by a model invocation. Next advances the stream,
// Current returns the latest increment, Err reports why the stream
// stopped, Close releases the upstream call.
type ChunkStream interface {
	Next() bool
	Current() string
	Err() error
	Close() error
}

// incomingPart mirrors the wire shape of a content part:
// {type:"text",text} or {type:"file",data,mediaType}.
type incomingPart struct {
	Type      string          `json:"type"`
	Text      string          `json:"text,omitempty"`
	Data      json.RawMessage `json:"data,omitempty"`
	MediaType string          `json:"mediaType,omitempty"`
}

// UnmarshalJSON accepts either a JSON string or an array of typed parts.
func (c *MessageContent) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		c.Text = text
		c.Parts = nil
		return nil
	}

	var raw []incomingPart
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("content must be a string or an array of parts: %w", err)
	}

	parts := make([]ContentPart, 0, len(raw))
	for i, p := range raw {
		switch p.Type {
		case PartTypeText:
			parts = append(parts, ContentPart{Type: PartTypeText, Text: p.Text})
		case PartTypeFile:
			doc, err := decodeFilePart(p)
			if err != nil {
				return fmt.Errorf("content part %d: %w", i, err)
			}
			parts = append(parts, ContentPart{Type: PartTypeFile, Document: doc})
		default:
			return fmt.Errorf("content part %d: unknown type %q", i, p.Type)
		}
	}
	c.Parts = parts
	return nil
}

// decodeFilePart interprets the "data" field of a file part as either a
// URL reference or a base64 payload.
func decodeFilePart(p incomingPart) (*Document, error) {
	var data string
	if err := json.Unmarshal(p.Data, &data); err != nil {
		return nil, fmt.Errorf("file data must be a string: %w", err)
	}

	doc := &Document{MediaType: p.MediaType}
	if strings.HasPrefix(data, "http://") || strings.HasPrefix(data, "https://") {
		doc.URL = data
		return doc, nil
	}

	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		return nil, fmt.Errorf("file data is neither a URL nor valid base64: %w", err)
	}
	doc.Data = decoded
	return doc, nil
}
