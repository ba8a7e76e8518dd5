package interpreter

import "fmt"

// ContentType routes a request to one of the fixed operation sets.
type ContentType string

const (
	// ContentTypeText covers plain prose operations.
	ContentTypeText ContentType = "text"
	// ContentTypeCode covers source code operations.
	ContentTypeCode ContentType = "code"
	// ContentTypeCreative covers prompt-driven creative operations.
	ContentTypeCreative ContentType = "creative"
)

// Options carries the untyped option values supplied with an interpret
// request. Operations ignore keys they do not read.
type Options map[string]any

// String returns the option value for key as a string, or fallback if the
// key is absent. Non-string values are stringified rather than rejected,
// preserving the permissive option handling existing clients rely on.
func (o Options) String(key, fallback string) string {
	v, ok := o[key]
	if !ok {
		return fallback
	}
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

// OperationFunc is a pure formatting function. It receives the request
// input and options and returns the formatted result.
type OperationFunc func(input string, opts Options) (string, error)

// InterpretRequest is the POST /interpret payload. Pointer fields
// distinguish a missing key from an empty value.
type InterpretRequest struct {
	ContentType *string `json:"content_type"`
	Operation   *string `json:"operation"`
	Input       *string `json:"input"`
	Options     Options `json:"options"`
}

// InterpretResponse is the success envelope for POST /interpret.
type InterpretResponse struct {
	Success        bool    `json:"success"`
	ContentType    string  `json:"content_type"`
	Operation      string  `json:"operation"`
	Input          string  `json:"input"`
	Result         string  `json:"result"`
	OptionsApplied Options `json:"options_applied"`
}

// OperationsResponse is the success envelope for GET /operations.
type OperationsResponse struct {
	Success             bool                `json:"success"`
	AvailableOperations map[string][]string `json:"available_operations"`
}

// AnalyzeRequest is the POST /analyze payload.
type AnalyzeRequest struct {
	Content *string `json:"content"`
}

// Analysis holds the computed content metrics.
type Analysis struct {
	Length               int         `json:"length"`
	WordCount            int         `json:"word_count"`
	SentenceCount        int         `json:"sentence_count"`
	Complexity           string      `json:"complexity"`
	PotentialContentType ContentType `json:"potential_content_type"`
}

// AnalyzeResponse is the success envelope for POST /analyze.
type AnalyzeResponse struct {
	Success  bool      `json:"success"`
	Analysis *Analysis `json:"analysis"`
}

// ErrorResponse is the uniform error envelope used by every endpoint.
type ErrorResponse struct {
	Success bool   `json:"success"`
	Error   string `json:"error"`
}
