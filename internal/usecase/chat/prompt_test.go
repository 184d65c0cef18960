package chat

import (
	"strings"
	"testing"

	"github.com/liutentor/tentor-backend/internal/entity"
)

func TestBuildSystemPrompt_SolutionAccess(t *testing.T) {
	withSolution := buildSystemPrompt(true, true)
	if !strings.Contains(withSolution, "tillgång till både tentan och lösningen") {
		t.Fatal("expected solution access sentence when a solution exists")
	}

	withoutSolution := buildSystemPrompt(false, true)
	if !strings.Contains(withoutSolution, "ingen lösning tillgänglig") {
		t.Fatal("expected no-solution sentence when no solution exists")
	}
	if strings.Contains(withoutSolution, "både tentan och lösningen") {
		t.Fatal("no-solution prompt must not claim solution access")
	}
}

func TestBuildSystemPrompt_TeachingStyle(t *testing.T) {
	direct := buildSystemPrompt(true, true)
	if !strings.Contains(direct, "direkta svar") {
		t.Fatal("expected direct-answer directive")
	}

	guided := buildSystemPrompt(true, false)
	if !strings.Contains(guided, "ge INTE det direkta svaret") {
		t.Fatal("expected guided directive withholding the answer")
	}
	if strings.Contains(guided, "visa den fullständiga lösningen") {
		t.Fatal("guided prompt must not instruct full solutions")
	}
}

func TestBuildSystemPrompt_AlwaysCarriesLanguageAndMathRules(t *testing.T) {
	for _, hasSolution := range []bool{true, false} {
		for _, direct := range []bool{true, false} {
			p := buildSystemPrompt(hasSolution, direct)
			if !strings.Contains(p, "Svara på svenska.") {
				t.Fatalf("prompt (solution=%v, direct=%v) missing language directive", hasSolution, direct)
			}
			if !strings.Contains(p, "LaTeX") {
				t.Fatalf("prompt (solution=%v, direct=%v) missing math formatting rules", hasSolution, direct)
			}
		}
	}
}

func TestDocumentMessage_ExamOnly(t *testing.T) {
	examDoc := &entity.Document{Name: "exam.pdf", MediaType: "application/pdf", Data: []byte("%PDF")}

	msg := documentMessage(examDoc, nil)
	if msg.Role != entity.RoleUser {
		t.Fatalf("expected user role, got %q", msg.Role)
	}
	if len(msg.Content.Parts) != 2 {
		t.Fatalf("expected 2 parts (file + caption), got %d", len(msg.Content.Parts))
	}
	if msg.Content.Parts[0].Type != entity.PartTypeFile || msg.Content.Parts[0].Document != examDoc {
		t.Fatal("expected first part to carry the exam document")
	}
	if got := msg.Content.Parts[1].Text; got != "Här är tentamen." {
		t.Fatalf("unexpected caption %q", got)
	}
}

func TestDocumentMessage_WithSolution(t *testing.T) {
	examDoc := &entity.Document{Name: "exam.pdf"}
	solutionDoc := &entity.Document{Name: "solution.pdf"}

	msg := documentMessage(examDoc, solutionDoc)
	if len(msg.Content.Parts) != 3 {
		t.Fatalf("expected 3 parts (2 files + caption), got %d", len(msg.Content.Parts))
	}
	if msg.Content.Parts[1].Document != solutionDoc {
		t.Fatal("expected second part to carry the solution document")
	}
	if got := msg.Content.Parts[2].Text; got != "Här är tentamen och lösningen." {
		t.Fatalf("unexpected caption %q", got)
	}
}

func TestBuildPromptContext_DocumentMessageComesFirst(t *testing.T) {
	examDoc := &entity.Document{Name: "exam.pdf"}
	history := []entity.ConversationMessage{userMsg("fråga 1"), userMsg("fråga 2")}

	pc := buildPromptContext(examDoc, nil, history, 10, true)

	if len(pc.Messages) != 3 {
		t.Fatalf("expected 3 messages, got %d", len(pc.Messages))
	}
	if pc.Messages[0].Content.Parts == nil {
		t.Fatal("expected leading document message")
	}
	if pc.Messages[1].Content.Text != "fråga 1" || pc.Messages[2].Content.Text != "fråga 2" {
		t.Fatal("expected history after the document message, in order")
	}
	if pc.System == "" {
		t.Fatal("expected system directive to be set")
	}
}

func TestBuildPromptContext_WindowsHistory(t *testing.T) {
	examDoc := &entity.Document{Name: "exam.pdf"}
	history := make([]entity.ConversationMessage, 25)
	for i := range history {
		history[i] = userMsg(string(rune('a' + i)))
	}

	pc := buildPromptContext(examDoc, nil, history, 10, true)

	// 1 document message + trailing 10 of the history.
	if len(pc.Messages) != 11 {
		t.Fatalf("expected 11 messages, got %d", len(pc.Messages))
	}
	if pc.Messages[1].Content.Text != history[15].Content.Text {
		t.Fatal("expected history trimmed to the trailing window")
	}
}

func TestBuildPromptContext_SystemReflectsSolutionPresence(t *testing.T) {
	examDoc := &entity.Document{Name: "exam.pdf"}
	solutionDoc := &entity.Document{Name: "solution.pdf"}

	with := buildPromptContext(examDoc, solutionDoc, nil, 10, true)
	if !strings.Contains(with.System, "lösningen") {
		t.Fatal("expected system prompt to mention solution access")
	}

	without := buildPromptContext(examDoc, nil, nil, 10, true)
	if !strings.Contains(without.System, "ingen lösning") {
		t.Fatal("expected system prompt to state missing solution")
	}
}
