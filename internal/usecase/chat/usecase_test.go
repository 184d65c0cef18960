package chat

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/liutentor/tentor-backend/internal/config"
	"github.com/liutentor/tentor-backend/internal/entity"
	"go.uber.org/zap"
)

type stubExamRepo struct {
	exam *entity.Exam
	err  error
}

func (s *stubExamRepo) GetExam(ctx context.Context, id int64) (*entity.Exam, error) {
	return s.exam, s.err
}

type stubSolutionRepo struct {
	solution *entity.Solution
	err      error
	calls    int
}

func (s *stubSolutionRepo) GetFirstByExam(ctx context.Context, examID int64) (*entity.Solution, error) {
	s.calls++
	return s.solution, s.err
}

type stubFetcher struct {
	docs map[string]*entity.Document
	err  error
}

func (s *stubFetcher) FetchDocument(ctx context.Context, locator string) (*entity.Document, error) {
	if s.err != nil {
		return nil, s.err
	}
	doc, ok := s.docs[locator]
	if !ok {
		return nil, fmt.Errorf("%w: %s", entity.ErrDocumentUnavailable, locator)
	}
	return doc, nil
}

type stubModel struct {
	captured *entity.PromptContext
	stream   entity.ChunkStream
	err      error
}

func (s *stubModel) StreamCompletion(ctx context.Context, pc *entity.PromptContext) (entity.ChunkStream, error) {
	s.captured = pc
	return s.stream, s.err
}

type fakeStream struct{ done bool }

func (f *fakeStream) Next() bool      { return false }
func (f *fakeStream) Current() string { return "" }
func (f *fakeStream) Err() error      { return nil }
func (f *fakeStream) Close() error    { f.done = true; return nil }

func testChatConfig() config.ChatConfig {
	return config.ChatConfig{HistoryWindow: 10, MaxMessages: 50}
}

func TestStreamCompletion_ExamNotFound(t *testing.T) {
	solutions := &stubSolutionRepo{}
	uc := NewUsecase(
		&stubExamRepo{err: entity.ErrExamNotFound},
		solutions,
		&stubFetcher{},
		&stubModel{},
		testChatConfig(),
		zap.NewNop(),
	)

	_, err := uc.StreamCompletion(context.Background(), 42, &entity.ChatRequest{})
	if !errors.Is(err, entity.ErrExamNotFound) {
		t.Fatalf("expected ErrExamNotFound, got %v", err)
	}
	if solutions.calls != 0 {
		t.Fatal("solution lookup must not run for an unknown exam")
	}
}

func TestStreamCompletion_AssemblesContextWithSolution(t *testing.T) {
	exam := &entity.Exam{ID: 7, PDFURL: "https://store/exam.pdf"}
	solution := &entity.Solution{ID: 1, ExamID: 7, PDFURL: "https://store/solution.pdf"}
	model := &stubModel{stream: &fakeStream{}}

	uc := NewUsecase(
		&stubExamRepo{exam: exam},
		&stubSolutionRepo{solution: solution},
		&stubFetcher{docs: map[string]*entity.Document{
			exam.PDFURL:     {Name: "exam.pdf", Data: []byte("%PDF-exam")},
			solution.PDFURL: {Name: "solution.pdf", Data: []byte("%PDF-sol")},
		}},
		model,
		testChatConfig(),
		zap.NewNop(),
	)

	history := []entity.ConversationMessage{userMsg("förklara uppgift 2")}
	stream, err := uc.StreamCompletion(context.Background(), 7, &entity.ChatRequest{Messages: history})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stream == nil {
		t.Fatal("expected a chunk stream")
	}

	pc := model.captured
	if pc == nil {
		t.Fatal("model was not invoked")
	}
	if len(pc.Messages) != 2 {
		t.Fatalf("expected document message + 1 history turn, got %d", len(pc.Messages))
	}
	// Exam file, solution file, caption.
	if len(pc.Messages[0].Content.Parts) != 3 {
		t.Fatalf("expected 3 document parts, got %d", len(pc.Messages[0].Content.Parts))
	}
	if pc.Messages[1].Content.Text != "förklara uppgift 2" {
		t.Fatal("expected caller history after the document message")
	}
}

func TestStreamCompletion_NoSolutionIsValid(t *testing.T) {
	exam := &entity.Exam{ID: 7, PDFURL: "https://store/exam.pdf"}
	model := &stubModel{stream: &fakeStream{}}

	uc := NewUsecase(
		&stubExamRepo{exam: exam},
		&stubSolutionRepo{solution: nil},
		&stubFetcher{docs: map[string]*entity.Document{
			exam.PDFURL: {Name: "exam.pdf", Data: []byte("%PDF-exam")},
		}},
		model,
		testChatConfig(),
		zap.NewNop(),
	)

	_, err := uc.StreamCompletion(context.Background(), 7, &entity.ChatRequest{
		Messages: []entity.ConversationMessage{userMsg("hej")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	pc := model.captured
	// Exam file and caption only.
	if len(pc.Messages[0].Content.Parts) != 2 {
		t.Fatalf("expected 2 document parts without a solution, got %d", len(pc.Messages[0].Content.Parts))
	}
	if got := pc.Messages[0].Content.Parts[1].Text; got != "Här är tentamen." {
		t.Fatalf("unexpected caption %q", got)
	}
}

func TestStreamCompletion_DocumentFetchFailure(t *testing.T) {
	exam := &entity.Exam{ID: 7, PDFURL: "https://store/exam.pdf"}

	uc := NewUsecase(
		&stubExamRepo{exam: exam},
		&stubSolutionRepo{},
		&stubFetcher{err: fmt.Errorf("%w: download failed", entity.ErrDocumentUnavailable)},
		&stubModel{},
		testChatConfig(),
		zap.NewNop(),
	)

	_, err := uc.StreamCompletion(context.Background(), 7, &entity.ChatRequest{
		Messages: []entity.ConversationMessage{userMsg("hej")},
	})
	if !errors.Is(err, entity.ErrDocumentUnavailable) {
		t.Fatalf("expected ErrDocumentUnavailable, got %v", err)
	}
}

func TestStreamCompletion_GuidedModeFlowsToPrompt(t *testing.T) {
	exam := &entity.Exam{ID: 7, PDFURL: "https://store/exam.pdf"}
	model := &stubModel{stream: &fakeStream{}}
	guided := false

	uc := NewUsecase(
		&stubExamRepo{exam: exam},
		&stubSolutionRepo{},
		&stubFetcher{docs: map[string]*entity.Document{
			exam.PDFURL: {Name: "exam.pdf", Data: []byte("%PDF-exam")},
		}},
		model,
		testChatConfig(),
		zap.NewNop(),
	)

	_, err := uc.StreamCompletion(context.Background(), 7, &entity.ChatRequest{
		Messages:         []entity.ConversationMessage{userMsg("hjälp")},
		GiveDirectAnswer: &guided,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pc := model.captured; pc == nil || !strings.Contains(pc.System, "ge INTE det direkta svaret") {
		t.Fatal("expected guided teaching directive in system prompt")
	}
}
