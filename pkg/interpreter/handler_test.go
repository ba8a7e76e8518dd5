package interpreter

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func postJSON(t *testing.T, handler http.HandlerFunc, path, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()

	handler(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func TestInterpretAllOperations(t *testing.T) {
	i := New()

	for contentType, ops := range i.Registry().List() {
		for _, op := range ops {
			t.Run(contentType+"/"+op, func(t *testing.T) {
				payload := `{"content_type":"` + contentType + `","operation":"` + op + `","input":"sample input"}`
				w := postJSON(t, i.HandleInterpret, "/interpret", payload)

				if w.Code != http.StatusOK {
					t.Fatalf("expected status 200, got %d: %s", w.Code, w.Body.String())
				}

				body := decodeBody(t, w)
				if body["success"] != true {
					t.Error("expected success to be true")
				}
				if body["content_type"] != contentType {
					t.Errorf("expected content_type %q, got %v", contentType, body["content_type"])
				}
				if body["operation"] != op {
					t.Errorf("expected operation %q, got %v", op, body["operation"])
				}
				if body["input"] != "sample input" {
					t.Errorf("expected input to be echoed, got %v", body["input"])
				}
				result, _ := body["result"].(string)
				if result == "" {
					t.Error("expected non-empty result")
				}
			})
		}
	}
}

func TestInterpretSummarizeExample(t *testing.T) {
	i := New()

	w := postJSON(t, i.HandleInterpret, "/interpret",
		`{"content_type":"text","operation":"summarize","input":"Hello world"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	result, _ := body["result"].(string)
	if !strings.HasPrefix(result, "Summary: Hello world") {
		t.Errorf("expected result to start with 'Summary: Hello world', got %q", result)
	}
}

func TestInterpretOptionsApplied(t *testing.T) {
	i := New()

	w := postJSON(t, i.HandleInterpret, "/interpret",
		`{"content_type":"text","operation":"transform","input":"hello","options":{"style":"formal"}}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["result"] != "Transformed (formal): hello" {
		t.Errorf("unexpected result: %v", body["result"])
	}

	applied, ok := body["options_applied"].(map[string]any)
	if !ok {
		t.Fatalf("expected options_applied object, got %T", body["options_applied"])
	}
	if applied["style"] != "formal" {
		t.Errorf("expected applied style 'formal', got %v", applied["style"])
	}
}

func TestInterpretOmittedOptionsEchoedAsEmptyObject(t *testing.T) {
	i := New()

	w := postJSON(t, i.HandleInterpret, "/interpret",
		`{"content_type":"text","operation":"expand","input":"hi"}`)

	body := decodeBody(t, w)
	applied, ok := body["options_applied"].(map[string]any)
	if !ok {
		t.Fatalf("expected options_applied object, got %T", body["options_applied"])
	}
	if len(applied) != 0 {
		t.Errorf("expected empty options_applied, got %v", applied)
	}
}

func TestInterpretValidation(t *testing.T) {
	i := New()

	tests := []struct {
		name        string
		payload     string
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "missing input",
			payload:     `{"content_type":"text","operation":"summarize"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Missing required fields. Please provide content_type, operation, and input.",
		},
		{
			name:        "missing everything",
			payload:     `{}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Missing required fields. Please provide content_type, operation, and input.",
		},
		{
			name:        "unknown content type",
			payload:     `{"content_type":"audio","operation":"summarize","input":"hi"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid content type. Supported types: text, code, creative",
		},
		{
			name:        "empty content type counts as present",
			payload:     `{"content_type":"","operation":"summarize","input":"hi"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid content type. Supported types: text, code, creative",
		},
		{
			name:        "unknown operation for content type",
			payload:     `{"content_type":"code","operation":"story","input":"hi"}`,
			wantStatus:  http.StatusBadRequest,
			wantMessage: "Invalid operation for code. Supported operations: explain, optimize, debug",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, i.HandleInterpret, "/interpret", tt.payload)

			if w.Code != tt.wantStatus {
				t.Fatalf("expected status %d, got %d", tt.wantStatus, w.Code)
			}

			body := decodeBody(t, w)
			if body["success"] != false {
				t.Error("expected success to be false")
			}
			if body["error"] != tt.wantMessage {
				t.Errorf("expected error %q, got %v", tt.wantMessage, body["error"])
			}
		})
	}
}

func TestInterpretMalformedBody(t *testing.T) {
	i := New()

	tests := []struct {
		name    string
		payload string
	}{
		{"invalid json", `{not json`},
		{"options is not an object", `{"content_type":"text","operation":"transform","input":"hi","options":[1,2]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := postJSON(t, i.HandleInterpret, "/interpret", tt.payload)

			if w.Code != http.StatusInternalServerError {
				t.Fatalf("expected status 500, got %d", w.Code)
			}

			body := decodeBody(t, w)
			if body["success"] != false {
				t.Error("expected success to be false")
			}
			errMsg, _ := body["error"].(string)
			if !strings.HasPrefix(errMsg, "An error occurred: ") {
				t.Errorf("expected error to start with 'An error occurred: ', got %q", errMsg)
			}
		})
	}
}

func TestInterpretMethodNotAllowed(t *testing.T) {
	i := New()

	req := httptest.NewRequest(http.MethodGet, "/interpret", nil)
	w := httptest.NewRecorder()

	i.HandleInterpret(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
	if w.Header().Get("Allow") != http.MethodPost {
		t.Errorf("expected Allow header %s, got %s", http.MethodPost, w.Header().Get("Allow"))
	}
}

func TestOperationsListing(t *testing.T) {
	i := New()

	req := httptest.NewRequest(http.MethodGet, "/operations", nil)
	w := httptest.NewRecorder()

	i.HandleOperations(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp OperationsResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("expected success to be true")
	}

	expected := map[string][]string{
		"text":     {"summarize", "expand", "transform"},
		"code":     {"explain", "optimize", "debug"},
		"creative": {"story", "poem", "ideas"},
	}

	if len(resp.AvailableOperations) != len(expected) {
		t.Fatalf("expected %d content types, got %d", len(expected), len(resp.AvailableOperations))
	}
	for contentType, ops := range expected {
		got, ok := resp.AvailableOperations[contentType]
		if !ok {
			t.Errorf("expected content type %q in listing", contentType)
			continue
		}
		if len(got) != len(ops) {
			t.Errorf("expected %d operations for %s, got %d", len(ops), contentType, len(got))
			continue
		}
		for idx, op := range ops {
			if got[idx] != op {
				t.Errorf("expected %s operation %d to be %q, got %q", contentType, idx, op, got[idx])
			}
		}
	}
}

func TestOperationsMethodNotAllowed(t *testing.T) {
	i := New()

	req := httptest.NewRequest(http.MethodPost, "/operations", nil)
	w := httptest.NewRecorder()

	i.HandleOperations(w, req)

	if w.Code != http.StatusMethodNotAllowed {
		t.Errorf("expected status 405, got %d", w.Code)
	}
}

func TestAnalyzeEndpoint(t *testing.T) {
	i := New()

	w := postJSON(t, i.HandleAnalyze, "/analyze", `{"content":"Write a poem about the sea?"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if !resp.Success {
		t.Error("expected success to be true")
	}
	if resp.Analysis == nil {
		t.Fatal("expected analysis to be set")
	}
	if resp.Analysis.WordCount != 6 {
		t.Errorf("expected word_count 6, got %d", resp.Analysis.WordCount)
	}
	if resp.Analysis.PotentialContentType != ContentTypeCreative {
		t.Errorf("expected potential_content_type creative, got %s", resp.Analysis.PotentialContentType)
	}
}

func TestAnalyzeMissingContent(t *testing.T) {
	i := New()

	w := postJSON(t, i.HandleAnalyze, "/analyze", `{}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status 400, got %d", w.Code)
	}

	body := decodeBody(t, w)
	if body["error"] != "Missing required field: content" {
		t.Errorf("unexpected error message: %v", body["error"])
	}
}

func TestAnalyzeMalformedBody(t *testing.T) {
	i := New()

	w := postJSON(t, i.HandleAnalyze, "/analyze", `{"content":`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status 500, got %d", w.Code)
	}
}

func TestAnalyzeEmptyContentIsPresent(t *testing.T) {
	i := New()

	w := postJSON(t, i.HandleAnalyze, "/analyze", `{"content":""}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}

	var resp AnalyzeResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Analysis.Length != 0 || resp.Analysis.Complexity != "simple" {
		t.Errorf("unexpected analysis for empty content: %+v", resp.Analysis)
	}
}
