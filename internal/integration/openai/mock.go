package openai

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/liutentor/tentor-backend/internal/entity"
	"go.uber.org/zap"
)

// MockConnector streams a canned Swedish reply without calling the
// provider. Used for offline runs and development.
type MockConnector struct {
	logger *zap.Logger
}

func NewMockConnector(logger *zap.Logger) *MockConnector {
	return &MockConnector{logger: logger}
}

func (m *MockConnector) StreamCompletion(ctx context.Context, pc *entity.PromptContext) (entity.ChunkStream, error) {
	ctxzap.Info(ctx, "[MOCK] streaming canned completion",
		zap.Int("message_count", len(pc.Messages)),
	)

	return NewStaticStream(
		"Hej! ",
		"Jag har tittat på tentamen. ",
		"Uppgift 1 handlar om linjär algebra: ",
		"lös ekvationssystemet genom att radreducera matrisen. ",
		"Säg till om du vill gå igenom ett steg i taget.",
	), nil
}

// StaticStream is a ChunkStream over a fixed chunk slice.
type StaticStream struct {
	chunks []string
	pos    int
	closed bool
}

func NewStaticStream(chunks ...string) *StaticStream {
	return &StaticStream{chunks: chunks}
}

func (s *StaticStream) Next() bool {
	if s.closed || s.pos >= len(s.chunks) {
		return false
	}
	s.pos++
	return true
}

func (s *StaticStream) Current() string {
	if s.pos == 0 || s.pos > len(s.chunks) {
		return ""
	}
	return s.chunks[s.pos-1]
}

func (s *StaticStream) Err() error { return nil }

func (s *StaticStream) Close() error {
	s.closed = true
	return nil
}
