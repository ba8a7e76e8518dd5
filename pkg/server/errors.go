package server

import (
	"log/slog"
	"net/http"

	"github.com/glossalab/glossa/pkg/errors"
	"github.com/glossalab/glossa/pkg/serializers"
)

// ErrorResponse is the uniform error envelope emitted by the chassis,
// matching the shape the API handlers use for their own failures.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}

// WriteError writes an error response using the uniform envelope. The
// structured code is logged with the request ID but only the message is
// exposed to the client.
func WriteError(w http.ResponseWriter, r *http.Request, statusCode int,
	code errors.ErrorCode, message string) {

	requestID, _ := r.Context().Value(contextKeyRequestID).(string)

	slog.Debug("writing error response",
		"code", code,
		"status", statusCode,
		"requestID", requestID,
		"path", r.URL.Path,
	)

	serializers.RespondJSON(w, statusCode, ErrorResponse{
		Success: false,
		Error:   message,
	})
}
