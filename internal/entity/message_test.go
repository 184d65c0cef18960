package entity

import (
	"encoding/base64"
	"encoding/json"
	"testing"
)

func TestMessageContent_UnmarshalString(t *testing.T) {
	var c MessageContent
	if err := json.Unmarshal([]byte(`"hej på dig"`), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Text != "hej på dig" || c.Parts != nil {
		t.Fatalf("unexpected content: %+v", c)
	}
}

func TestMessageContent_UnmarshalTextParts(t *testing.T) {
	raw := `[{"type":"text","text":"del ett"},{"type":"text","text":" del två"}]`

	var c MessageContent
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Parts) != 2 {
		t.Fatalf("expected 2 parts, got %d", len(c.Parts))
	}
	if got := c.PlainText(); got != "del ett del två" {
		t.Fatalf("unexpected flattened text %q", got)
	}
}

func TestMessageContent_UnmarshalFilePartURL(t *testing.T) {
	raw := `[{"type":"file","data":"https://store/exam.pdf","mediaType":"application/pdf"}]`

	var c MessageContent
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := c.Parts[0].Document
	if doc == nil || doc.URL != "https://store/exam.pdf" {
		t.Fatalf("expected URL reference, got %+v", doc)
	}
	if doc.Inline() {
		t.Fatal("URL reference must not report inline content")
	}
}

func TestMessageContent_UnmarshalFilePartBase64(t *testing.T) {
	payload := base64.StdEncoding.EncodeToString([]byte("%PDF-1.4 test"))
	raw := `[{"type":"file","data":"` + payload + `","mediaType":"application/pdf"}]`

	var c MessageContent
	if err := json.Unmarshal([]byte(raw), &c); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	doc := c.Parts[0].Document
	if doc == nil || !doc.Inline() {
		t.Fatalf("expected inline content, got %+v", doc)
	}
	if string(doc.Data) != "%PDF-1.4 test" {
		t.Fatalf("unexpected decoded data %q", doc.Data)
	}
}

func TestMessageContent_UnmarshalRejectsUnknownPartType(t *testing.T) {
	var c MessageContent
	if err := json.Unmarshal([]byte(`[{"type":"video","text":"x"}]`), &c); err == nil {
		t.Fatal("expected error for unknown part type")
	}
}

func TestMessageContent_UnmarshalRejectsBadFileData(t *testing.T) {
	var c MessageContent
	if err := json.Unmarshal([]byte(`[{"type":"file","data":"not-base64!!!"}]`), &c); err == nil {
		t.Fatal("expected error for file data that is neither URL nor base64")
	}
}

func TestChatRequest_DirectAnswerDefault(t *testing.T) {
	var req ChatRequest
	if err := json.Unmarshal([]byte(`{"messages":[{"role":"user","content":"hej"}]}`), &req); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !req.DirectAnswer() {
		t.Fatal("expected direct answers by default")
	}

	var guided ChatRequest
	if err := json.Unmarshal([]byte(`{"messages":[],"giveDirectAnswer":false}`), &guided); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if guided.DirectAnswer() {
		t.Fatal("expected guided mode when giveDirectAnswer is false")
	}
}
