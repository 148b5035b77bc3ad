package response

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/dskvich/jarvis-assistant/pkg/logger"
)

// JSONResponseWriter renders API payloads. Errors are wrapped in a small
// envelope so clients can tell them apart from assistant output.
type JSONResponseWriter struct{}

func (j *JSONResponseWriter) WriteSuccessResponse(w http.ResponseWriter, data any) {
	j.write(w, http.StatusOK, data)
}

func (j *JSONResponseWriter) WriteErrorResponse(w http.ResponseWriter, statusCode int, message string) {
	j.write(w, statusCode, errorEnvelope{Error: message})
}

func (j *JSONResponseWriter) write(w http.ResponseWriter, statusCode int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		slog.Error("encoding api response", "status", statusCode, logger.Err(err))
	}
}

type errorEnvelope struct {
	Error string `json:"error"`
}
