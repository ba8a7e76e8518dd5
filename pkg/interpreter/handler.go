package interpreter

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"github.com/glossalab/glossa/pkg/errors"
	"github.com/glossalab/glossa/pkg/serializers"
)

// Interpreter serves the content interpretation endpoints. It holds the
// fixed operation registry and no other state, so a single instance is
// safe for concurrent requests.
type Interpreter struct {
	registry *Registry
}

// New creates an Interpreter with the full operation registry.
func New() *Interpreter {
	return &Interpreter{registry: NewRegistry()}
}

// Registry exposes the operation registry for non-HTTP consumers.
func (i *Interpreter) Registry() *Registry {
	return i.registry
}

// HandleInterpret handles POST /interpret.
func (i *Interpreter) HandleInterpret(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		i.writeMethodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req InterpretRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		// Malformed payloads are reported through the catch-all path,
		// same as any other runtime failure.
		i.writeError(w, errors.Wrap(errors.ErrCodeInternal, "An error occurred", err))
		return
	}

	if req.ContentType == nil || req.Operation == nil || req.Input == nil {
		i.writeError(w, errors.New(errors.ErrCodeInvalidRequest,
			"Missing required fields. Please provide content_type, operation, and input."))
		return
	}

	contentType := *req.ContentType
	operation := *req.Operation

	if !i.registry.HasContentType(contentType) {
		i.writeError(w, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("Invalid content type. Supported types: %s",
				strings.Join(i.registry.ContentTypes(), ", "))))
		return
	}

	fn, ok := i.registry.Lookup(contentType, operation)
	if !ok {
		i.writeError(w, errors.New(errors.ErrCodeInvalidRequest,
			fmt.Sprintf("Invalid operation for %s. Supported operations: %s",
				contentType, strings.Join(i.registry.Operations(contentType), ", "))))
		return
	}

	opts := req.Options
	if opts == nil {
		opts = Options{}
	}

	result, err := fn(*req.Input, opts)
	if err != nil {
		i.writeError(w, errors.Wrap(errors.ErrCodeInternal, "An error occurred", err))
		return
	}

	serializers.RespondJSON(w, http.StatusOK, InterpretResponse{
		Success:        true,
		ContentType:    contentType,
		Operation:      operation,
		Input:          *req.Input,
		Result:         result,
		OptionsApplied: opts,
	})
}

// HandleOperations handles GET /operations.
func (i *Interpreter) HandleOperations(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		i.writeMethodNotAllowed(w, r, http.MethodGet)
		return
	}

	serializers.RespondJSON(w, http.StatusOK, OperationsResponse{
		Success:             true,
		AvailableOperations: i.registry.List(),
	})
}

// HandleAnalyze handles POST /analyze.
func (i *Interpreter) HandleAnalyze(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		i.writeMethodNotAllowed(w, r, http.MethodPost)
		return
	}

	var req AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		i.writeError(w, errors.Wrap(errors.ErrCodeInternal, "An error occurred", err))
		return
	}

	if req.Content == nil {
		i.writeError(w, errors.New(errors.ErrCodeInvalidRequest,
			"Missing required field: content"))
		return
	}

	serializers.RespondJSON(w, http.StatusOK, AnalyzeResponse{
		Success:  true,
		Analysis: Analyze(*req.Content),
	})
}

func (i *Interpreter) writeMethodNotAllowed(w http.ResponseWriter, r *http.Request, allow string) {
	slog.Error("method not allowed", "method", r.Method, "path", r.URL.Path)
	w.Header().Set("Allow", allow)
	i.writeError(w, errors.New(errors.ErrCodeMethodNotAllowed, "Method not allowed"))
}

// writeError reports a failure using the uniform error envelope. The
// envelope carries the plain message text; the structured code only
// selects the HTTP status and the log fields.
func (i *Interpreter) writeError(w http.ResponseWriter, serr *errors.StructuredError) {
	msg := serr.Message
	if serr.Cause != nil {
		msg = fmt.Sprintf("%s: %v", serr.Message, serr.Cause)
	}

	slog.Debug("request rejected", "code", serr.Code, "error", msg)

	serializers.RespondJSON(w, errors.HTTPStatus(serr.Code), ErrorResponse{
		Success: false,
		Error:   msg,
	})
}
