package storage

import (
	"context"
	"fmt"
	"net/url"
	"path"

	"github.com/avast/retry-go/v4"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/liutentor/tentor-backend/internal/config"
	"github.com/liutentor/tentor-backend/internal/entity"
	"github.com/liutentor/tentor-backend/internal/integration/common"
	pkghttp "github.com/liutentor/tentor-backend/pkg/http"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const defaultMediaType = "application/pdf"

// Fetcher downloads exam documents from the PDF store and returns them
// as inline content. Fetched documents are cached by locator since the
// same exam PDF is requested on every turn of a conversation.
type Fetcher struct {
	config    config.StorageConfig
	connector *pkghttp.Connector
	cache     *gocache.Cache
	logger    *zap.Logger
}

func NewFetcher(cfg config.StorageConfig, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		config:    cfg,
		connector: common.NewBaseConnector(cfg.HTTPClientConfig),
		cache:     gocache.New(cfg.CacheTTL, 2*cfg.CacheTTL),
		logger:    logger,
	}
}

// FetchDocument resolves a locator to document content. Download
// failures surface as ErrDocumentUnavailable after retries.
func (f *Fetcher) FetchDocument(ctx context.Context, locator string) (*entity.Document, error) {
	if cached, ok := f.cache.Get(locator); ok {
		doc := cached.(*entity.Document)
		ctxzap.Debug(ctx, "document cache hit",
			zap.String("url", locator),
			zap.Int("size_bytes", len(doc.Data)),
		)
		return doc, nil
	}

	var data []byte
	var mediaType string
	err := retry.Do(
		func() error {
			var derr error
			data, mediaType, derr = f.connector.Download(ctx, locator)
			return derr
		},
		append(f.config.Retry.ToRetryOptions(), retry.Context(ctx))...,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: download %s: %v", entity.ErrDocumentUnavailable, locator, err)
	}

	if mediaType == "" {
		mediaType = defaultMediaType
	}

	doc := &entity.Document{
		Name:      documentName(locator),
		MediaType: mediaType,
		URL:       locator,
		Data:      data,
	}

	ctxzap.Info(ctx, "document fetched",
		zap.String("url", locator),
		zap.String("media_type", mediaType),
		zap.Int64("size_kb", int64(len(data))/1024),
	)

	f.cache.Set(locator, doc, gocache.DefaultExpiration)

	return doc, nil
}

func documentName(locator string) string {
	u, err := url.Parse(locator)
	if err != nil || u.Path == "" {
		return "document.pdf"
	}
	return path.Base(u.Path)
}
