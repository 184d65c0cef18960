package response

import (
	"encoding/json"
	"net/http"

	"github.com/liutentor/tentor-backend/internal/entity"
)

// JSON writes a JSON response
func JSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if data != nil {
		if err := json.NewEncoder(w).Encode(data); err != nil {
			// Can't change response at this point, just log
			http.Error(w, "Failed to encode response", http.StatusInternalServerError)
		}
	}
}

// Error writes an error envelope with the standard status text
func Error(w http.ResponseWriter, status int, message string) {
	JSON(w, status, entity.ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
	})
}

// NotFound writes the router-level 404 body with the requested path
func NotFound(w http.ResponseWriter, path string) {
	JSON(w, http.StatusNotFound, entity.ErrorResponse{
		Error: "Not Found",
		Path:  path,
	})
}

// Success writes a success response
func Success(w http.ResponseWriter, data any) {
	JSON(w, http.StatusOK, data)
}
