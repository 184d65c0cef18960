package storage

import (
	"context"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/liutentor/tentor-backend/internal/entity"
	"go.uber.org/zap"
)

// minimalPDF is a syntactically valid one-page empty PDF.
var minimalPDF = []byte("%PDF-1.4\n" +
	"1 0 obj<</Type/Catalog/Pages 2 0 R>>endobj\n" +
	"2 0 obj<</Type/Pages/Kids[3 0 R]/Count 1>>endobj\n" +
	"3 0 obj<</Type/Page/Parent 2 0 R/MediaBox[0 0 612 792]>>endobj\n" +
	"trailer<</Root 1 0 R>>\n" +
	"%%EOF\n")

// MockFetcher serves a tiny static PDF without touching the network.
type MockFetcher struct {
	logger *zap.Logger
}

func NewMockFetcher(logger *zap.Logger) *MockFetcher {
	return &MockFetcher{logger: logger}
}

func (m *MockFetcher) FetchDocument(ctx context.Context, locator string) (*entity.Document, error) {
	ctxzap.Info(ctx, "[MOCK] serving static document", zap.String("url", locator))

	return &entity.Document{
		Name:      "mock.pdf",
		MediaType: "application/pdf",
		URL:       locator,
		Data:      minimalPDF,
	}, nil
}
