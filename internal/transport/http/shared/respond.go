// Package shared holds response helpers used by every HTTP handler so error
// envelopes stay consistent across endpoints.
package shared

import (
	"encoding/json"
	"errors"
	"net/http"

	domainerrors "datablock/pkg/domain-errors"
)

// WriteJSON writes v as a JSON response with the given status code.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// WriteError translates a domain error into an HTTP status plus a JSON
// error envelope. Unknown errors map to 500 without leaking detail.
func WriteError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := domainerrors.CodeInternal
	message := "internal server error"

	var derr *domainerrors.Error
	if errors.As(err, &derr) {
		code = derr.Code
		message = derr.Message
		status = httpStatus(derr.Code)
	}

	WriteJSON(w, status, map[string]string{
		"error":   string(code),
		"message": message,
	})
}

func httpStatus(code domainerrors.Code) int {
	switch code {
	case domainerrors.CodeValidation, domainerrors.CodeBadRequest:
		return http.StatusBadRequest
	case domainerrors.CodeNotFound:
		return http.StatusNotFound
	case domainerrors.CodeUnauthorized:
		return http.StatusUnauthorized
	case domainerrors.CodeTimeout:
		return http.StatusGatewayTimeout
	default:
		return http.StatusInternalServerError
	}
}
