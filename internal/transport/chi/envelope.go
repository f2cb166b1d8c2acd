package chi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/moradia-ai/moradia/internal/domain"
)

// successEnvelope wraps every successful response body.
type successEnvelope struct {
	Success   bool      `json:"success"`
	Message   string    `json:"message"`
	Data      any       `json:"data"`
	Timestamp time.Time `json:"timestamp"`
}

// errorEnvelope wraps every error response body. Only the central error
// translator builds it; handlers never write error bodies themselves.
type errorEnvelope struct {
	Timestamp time.Time `json:"timestamp"`
	Status    int       `json:"status"`
	Error     string    `json:"error"`
	Message   string    `json:"message"`
	Path      string    `json:"path"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeSuccess(w http.ResponseWriter, status int, message string, data any) {
	writeJSON(w, status, successEnvelope{
		Success:   true,
		Message:   message,
		Data:      data,
		Timestamp: time.Now().UTC(),
	})
}

func writeError(w http.ResponseWriter, r *http.Request, status int, message string) {
	writeJSON(w, status, errorEnvelope{
		Timestamp: time.Now().UTC(),
		Status:    status,
		Error:     http.StatusText(status),
		Message:   message,
		Path:      r.URL.Path,
	})
}

// errorHandler tries to handle a domain error. Returns true if handled.
type errorHandler func(w http.ResponseWriter, r *http.Request, err error, msg string) bool

// sentinelHandler returns an errorHandler that matches a single sentinel error.
func sentinelHandler(sentinel error, status int) errorHandler {
	return func(w http.ResponseWriter, r *http.Request, err error, msg string) bool {
		if !errors.Is(err, sentinel) {
			return false
		}
		writeError(w, r, status, msg)
		return true
	}
}

// domainErrorHandlers maps domain sentinels to HTTP statuses, in match order.
// ErrValidation must come after the more specific sentinels that wrap it.
var domainErrorHandlers = []errorHandler{
	sentinelHandler(domain.ErrNotFound, http.StatusNotFound),
	sentinelHandler(domain.ErrUserNotFound, http.StatusNotFound),
	sentinelHandler(domain.ErrEmailTaken, http.StatusConflict),
	sentinelHandler(domain.ErrInvalidCredentials, http.StatusUnauthorized),
	sentinelHandler(domain.ErrUnauthorized, http.StatusUnauthorized),
	sentinelHandler(domain.ErrForbidden, http.StatusForbidden),
	sentinelHandler(domain.ErrValidation, http.StatusBadRequest),
	sentinelHandler(domain.ErrEmptyModelResponse, http.StatusBadGateway),
	sentinelHandler(domain.ErrMalformedFilter, http.StatusBadGateway),
	sentinelHandler(domain.ErrModelProviderError, http.StatusBadGateway),
}

// safeDomainMessage returns a client-facing message without exposing internals.
// Validation errors carry their field list, everything else reports the
// sentinel text only.
func safeDomainMessage(err error) string {
	var verr *domain.ValidationError
	if errors.As(err, &verr) {
		return verr.Error()
	}

	sentinels := []error{
		domain.ErrNotFound,
		domain.ErrUserNotFound,
		domain.ErrEmailTaken,
		domain.ErrInvalidCredentials,
		domain.ErrUnauthorized,
		domain.ErrForbidden,
		domain.ErrValidation,
		domain.ErrEmptyModelResponse,
		domain.ErrMalformedFilter,
		domain.ErrModelProviderError,
	}
	for _, s := range sentinels {
		if errors.Is(err, s) {
			return s.Error()
		}
	}
	return "internal error"
}

func (s *Server) handleDomainError(w http.ResponseWriter, r *http.Request, err error) {
	s.logger.Warn("domain error", zap.Error(err))
	msg := safeDomainMessage(err)
	for _, h := range domainErrorHandlers {
		if h(w, r, err, msg) {
			return
		}
	}
	s.logger.Error("internal error", zap.Error(err))
	writeError(w, r, http.StatusInternalServerError, "internal error")
}
