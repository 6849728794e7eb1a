// internal/adapters/rest/respond.go
package rest

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/mahabubulhasibshawon/spt-portal/internal/domain"
	"go.uber.org/zap"
)

const maxBodyBytes = 1 << 20

type errorItem struct {
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
}

type errorBody struct {
	Errors []errorItem `json:"errors"`
}

type messageBody struct {
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if v == nil {
		return
	}
	_ = json.NewEncoder(w).Encode(v)
}

func statusFor(kind domain.Kind) int {
	switch kind {
	case domain.KindInvalid:
		return http.StatusBadRequest
	case domain.KindNotFound:
		return http.StatusNotFound
	case domain.KindConflict:
		return http.StatusConflict
	case domain.KindForbidden:
		return http.StatusForbidden
	case domain.KindNotAuthorized:
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

// writeError is the single place errors become HTTP responses.
func writeError(w http.ResponseWriter, r *http.Request, logger *zap.Logger, err error) {
	var verr *ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusBadRequest, errorBody{Errors: verr.Items})
		return
	}

	var de *domain.Error
	if !errors.As(err, &de) || de.Kind == domain.KindInternal {
		logger.Error("request failed",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Error(err),
		)
		writeJSON(w, http.StatusInternalServerError, errorBody{Errors: []errorItem{{Message: "Internal Server Error"}}})
		return
	}
	writeJSON(w, statusFor(de.Kind), errorBody{Errors: []errorItem{{Message: de.Message, Field: de.Field}}})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		if errors.Is(err, io.EOF) {
			return domain.Invalid("request body is required")
		}
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			return domain.Invalid("request body is too large")
		}
		return domain.Invalid("request body is not valid JSON")
	}
	return nil
}
