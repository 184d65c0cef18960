package chat

import (
	"context"
	"sync"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/liutentor/tentor-backend/internal/config"
	"github.com/liutentor/tentor-backend/internal/entity"
	"go.uber.org/zap"
)

// Usecase runs the request-to-model pipeline: resolve exam and
// solution, fetch documents, assemble the prompt context, invoke the
// model. Each request is independent; nothing is kept between calls.
type Usecase struct {
	exams     ExamRepository
	solutions SolutionRepository
	docs      DocumentFetcher
	model     ModelConnector
	cfg       config.ChatConfig
	logger    *zap.Logger
}

func NewUsecase(
	exams ExamRepository,
	solutions SolutionRepository,
	docs DocumentFetcher,
	model ModelConnector,
	cfg config.ChatConfig,
	logger *zap.Logger,
) *Usecase {
	return &Usecase{
		exams:     exams,
		solutions: solutions,
		docs:      docs,
		model:     model,
		cfg:       cfg,
		logger:    logger,
	}
}

// StreamCompletion resolves the exam context and starts a model
// invocation, returning the live chunk stream. Any error here happens
// before the first byte reaches the client.
func (u *Usecase) StreamCompletion(ctx context.Context, examID int64, req *entity.ChatRequest) (entity.ChunkStream, error) {
	exam, err := u.exams.GetExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	// Solution lookup only runs once the exam is confirmed to exist;
	// a missing solution is a valid state.
	solution, err := u.solutions.GetFirstByExam(ctx, examID)
	if err != nil {
		return nil, err
	}

	examDoc, solutionDoc, err := u.fetchDocuments(ctx, exam, solution)
	if err != nil {
		return nil, err
	}

	pc := buildPromptContext(examDoc, solutionDoc, req.Messages, u.cfg.HistoryWindow, req.DirectAnswer())

	ctxzap.Info(ctx, "prompt context assembled",
		zap.Int64("exam_id", exam.ID),
		zap.Bool("has_solution", solutionDoc != nil),
		zap.Bool("direct_answer", req.DirectAnswer()),
		zap.Int("message_count", len(pc.Messages)),
	)

	return u.model.StreamCompletion(ctx, pc)
}

// fetchDocuments retrieves the exam PDF and, when a solution exists,
// its PDF concurrently.
func (u *Usecase) fetchDocuments(ctx context.Context, exam *entity.Exam, solution *entity.Solution) (*entity.Document, *entity.Document, error) {
	var (
		wg          sync.WaitGroup
		examDoc     *entity.Document
		solutionDoc *entity.Document
		examErr     error
		solutionErr error
	)

	wg.Add(1)
	go func() {
		defer wg.Done()
		examDoc, examErr = u.docs.FetchDocument(ctx, exam.PDFURL)
	}()

	if solution != nil {
		wg.Add(1)
		go func() {
			defer wg.Done()
			solutionDoc, solutionErr = u.docs.FetchDocument(ctx, solution.PDFURL)
		}()
	}

	wg.Wait()

	if examErr != nil {
		return nil, nil, examErr
	}
	if solutionErr != nil {
		return nil, nil, solutionErr
	}

	return examDoc, solutionDoc, nil
}
