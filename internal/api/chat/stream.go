package chat

import (
	"context"
	"errors"
	"io"
	"net/http"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/liutentor/tentor-backend/internal/entity"
	"github.com/liutentor/tentor-backend/internal/pkg/response"
	"go.uber.org/zap"
)

// relay forwards model chunks to the client as they arrive. Once the
// first chunk is written the response is committed: later failures can
// only truncate the stream, never change the status.
func (h *Handler) relay(ctx context.Context, w http.ResponseWriter, stream entity.ChunkStream) {
	defer stream.Close()

	flusher, canFlush := w.(http.Flusher)

	var (
		started bool
		chunks  int
		bytes   int
	)

	for stream.Next() {
		select {
		case <-ctx.Done():
			// Client went away or the request deadline fired; stop
			// pulling so the upstream call is released.
			ctxzap.Info(ctx, "stream aborted",
				zap.Int("chunks_sent", chunks),
				zap.NamedError("cause", ctx.Err()),
			)
			return
		default:
		}

		chunk := stream.Current()

		if !started {
			w.Header().Set("Content-Type", "text/plain; charset=utf-8")
			w.Header().Set("Cache-Control", "no-cache")
			w.WriteHeader(http.StatusOK)
			started = true
		}

		n, err := io.WriteString(w, chunk)
		if err != nil {
			ctxzap.Info(ctx, "client closed connection mid-stream",
				zap.Int("chunks_sent", chunks),
				zap.Error(err),
			)
			return
		}
		bytes += n
		chunks++

		if canFlush {
			flusher.Flush()
		}
	}

	if err := stream.Err(); err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			ctxzap.Info(ctx, "stream aborted",
				zap.Int("chunks_sent", chunks),
				zap.NamedError("cause", err),
			)
			return
		}

		if !started {
			ctxzap.Error(ctx, "model invocation failed before first chunk", zap.Error(err))
			response.Error(w, http.StatusInternalServerError, "model invocation failed")
			return
		}

		// Bytes are already on the wire; the stream just ends here.
		ctxzap.Error(ctx, "stream failed mid-flight",
			zap.Int("chunks_sent", chunks),
			zap.Error(err),
		)
		return
	}

	ctxzap.Info(ctx, "stream completed",
		zap.Int("chunks_sent", chunks),
		zap.Int("bytes_sent", bytes),
	)
}
