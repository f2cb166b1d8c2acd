package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/moradia-ai/moradia/internal/domain"
)

func TestHandleDomainError_StatusMapping(t *testing.T) {
	cases := []struct {
		name   string
		err    error
		status int
	}{
		{"listing not found", domain.ErrNotFound, http.StatusNotFound},
		{"user not found", domain.ErrUserNotFound, http.StatusNotFound},
		{"email taken", domain.ErrEmailTaken, http.StatusConflict},
		{"invalid credentials", domain.ErrInvalidCredentials, http.StatusUnauthorized},
		{"unauthorized", domain.ErrUnauthorized, http.StatusUnauthorized},
		{"forbidden", domain.ErrForbidden, http.StatusForbidden},
		{"validation", domain.NewValidationError("area"), http.StatusBadRequest},
		{"empty model response", domain.ErrEmptyModelResponse, http.StatusBadGateway},
		{"malformed filter", domain.ErrMalformedFilter, http.StatusBadGateway},
		{"model provider error", domain.ErrModelProviderError, http.StatusBadGateway},
		{"wrapped sentinel", errorWrap(domain.ErrNotFound), http.StatusNotFound},
		{"unexpected", errors.New("pq: connection refused"), http.StatusInternalServerError},
	}

	s := &Server{logger: zap.NewNop()}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := httptest.NewRequest("GET", "/api/properties/abc", http.NoBody)
			rr := httptest.NewRecorder()
			s.handleDomainError(rr, req, tc.err)

			if rr.Code != tc.status {
				t.Errorf("status = %d, want %d", rr.Code, tc.status)
			}

			var resp errorEnvelope
			if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
				t.Fatalf("decode envelope: %v", err)
			}
			if resp.Status != tc.status {
				t.Errorf("envelope status = %d, want %d", resp.Status, tc.status)
			}
			if resp.Error != http.StatusText(tc.status) {
				t.Errorf("envelope error = %q, want %q", resp.Error, http.StatusText(tc.status))
			}
			if resp.Path != "/api/properties/abc" {
				t.Errorf("envelope path = %q", resp.Path)
			}
			if resp.Timestamp.IsZero() {
				t.Error("envelope timestamp is zero")
			}
		})
	}
}

func errorWrap(err error) error {
	return &wrappedErr{err}
}

type wrappedErr struct{ inner error }

func (w *wrappedErr) Error() string { return "get listing: " + w.inner.Error() }
func (w *wrappedErr) Unwrap() error { return w.inner }

func TestHandleDomainError_InternalDetailNotLeaked(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	req := httptest.NewRequest("GET", "/api/properties", http.NoBody)
	rr := httptest.NewRecorder()

	s.handleDomainError(rr, req, errors.New("dial tcp 10.0.0.5:5432: connect: connection refused"))

	var resp errorEnvelope
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if resp.Message != "internal error" {
		t.Errorf("message = %q, internals must not leak", resp.Message)
	}
}

func TestHandleDomainError_ValidationListsFields(t *testing.T) {
	s := &Server{logger: zap.NewNop()}
	req := httptest.NewRequest("POST", "/api/properties/sale", http.NoBody)
	rr := httptest.NewRecorder()

	s.handleDomainError(rr, req, domain.NewValidationError("salePrice", "area"))

	var resp errorEnvelope
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !strings.Contains(resp.Message, "salePrice") || !strings.Contains(resp.Message, "area") {
		t.Errorf("message = %q, want offending fields listed", resp.Message)
	}
}

func TestWriteSuccess_Envelope(t *testing.T) {
	rr := httptest.NewRecorder()
	writeSuccess(rr, http.StatusCreated, "property created", map[string]string{"id": "abc"})

	if rr.Code != http.StatusCreated {
		t.Fatalf("status = %d", rr.Code)
	}
	if ct := rr.Header().Get("Content-Type"); ct != "application/json" {
		t.Errorf("content type = %q", ct)
	}

	var resp struct {
		Success   bool              `json:"success"`
		Message   string            `json:"message"`
		Data      map[string]string `json:"data"`
		Timestamp string            `json:"timestamp"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("decode envelope: %v", err)
	}
	if !resp.Success {
		t.Error("success = false")
	}
	if resp.Message != "property created" {
		t.Errorf("message = %q", resp.Message)
	}
	if resp.Data["id"] != "abc" {
		t.Errorf("data = %v", resp.Data)
	}
	if resp.Timestamp == "" {
		t.Error("timestamp missing")
	}
}
