package middleware

import (
	"fmt"
	"net/http"

	"github.com/liutentor/tentor-backend/internal/pkg/response"
)

// BodyLimit rejects oversized request bodies. The Content-Length check
// answers early for honest clients; MaxBytesReader guards the rest.
func BodyLimit(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > maxBytes {
				response.Error(w, http.StatusRequestEntityTooLarge,
					fmt.Sprintf("request body too large, max %dKB", maxBytes/1024))
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)
		})
	}
}
