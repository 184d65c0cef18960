package openai

import (
	"errors"
	"testing"

	"github.com/liutentor/tentor-backend/internal/entity"
)

func TestToProviderMessages_SystemRidesFirst(t *testing.T) {
	pc := &entity.PromptContext{
		System: "Du är en studiementor.",
		Messages: []entity.ConversationMessage{
			{Role: entity.RoleUser, Content: entity.MessageContent{Text: "hej"}},
			{Role: entity.RoleAssistant, Content: entity.MessageContent{Text: "hej hej"}},
		},
	}

	messages, err := toProviderMessages(pc)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(messages) != 3 {
		t.Fatalf("expected system + 2 turns, got %d", len(messages))
	}
	if messages[0].OfSystem == nil {
		t.Fatal("expected leading system message")
	}
	if messages[1].OfUser == nil || messages[2].OfAssistant == nil {
		t.Fatal("expected user then assistant turns")
	}
}

func TestToProviderMessages_RejectsUnknownRole(t *testing.T) {
	pc := &entity.PromptContext{
		Messages: []entity.ConversationMessage{
			{Role: "robot", Content: entity.MessageContent{Text: "x"}},
		},
	}

	_, err := toProviderMessages(pc)
	if !errors.Is(err, entity.ErrInvalidParameter) {
		t.Fatalf("expected ErrInvalidParameter, got %v", err)
	}
}

func TestToContentParts_InlineFileAndCaption(t *testing.T) {
	parts, err := toContentParts([]entity.ContentPart{
		{Type: entity.PartTypeFile, Document: &entity.Document{
			Name:      "tddd86.pdf",
			MediaType: "application/pdf",
			Data:      []byte("%PDF-1.4"),
		}},
		{Type: entity.PartTypeText, Text: "Här är tentamen."},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(parts))
	}
	if parts[0].OfFile == nil {
		t.Fatal("expected a file part first")
	}
	if got := parts[0].OfFile.File.Filename.Value; got != "tddd86.pdf" {
		t.Fatalf("unexpected filename %q", got)
	}
	if parts[1].OfText == nil || parts[1].OfText.Text != "Här är tentamen." {
		t.Fatal("expected the trailing caption text part")
	}
}

func TestToContentParts_ReferenceWithoutInlineDataFails(t *testing.T) {
	_, err := toContentParts([]entity.ContentPart{
		{Type: entity.PartTypeFile, Document: &entity.Document{URL: "https://store/exam.pdf"}},
	})
	if !errors.Is(err, entity.ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
}

func TestStaticStream_YieldsAllChunksThenStops(t *testing.T) {
	s := NewStaticStream("a", "b", "c")

	var got []string
	for s.Next() {
		got = append(got, s.Current())
	}

	if len(got) != 3 || got[0] != "a" || got[2] != "c" {
		t.Fatalf("unexpected chunks %v", got)
	}
	if s.Err() != nil {
		t.Fatalf("unexpected error: %v", s.Err())
	}
	if err := s.Close(); err != nil {
		t.Fatalf("unexpected close error: %v", err)
	}
	if s.Next() {
		t.Fatal("closed stream must not yield")
	}
}
