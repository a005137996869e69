package httpx

import (
	"bytes"
	"encoding/json"
	"net/http"

	apperrors "github.com/xgencloud/xgen-site/internal/errors"
)

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteError(w, http.StatusBadRequest, "Invalid request body")
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the given status code and data.
func WriteJSON(w http.ResponseWriter, code int, v any) {
	var buf bytes.Buffer
	if err := json.NewEncoder(&buf).Encode(v); err != nil {
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		// Response writer errors (e.g., client disconnect) can't be recovered from here.
		return
	}
}

// WriteError writes a JSON error body of the form {"detail": "..."}.
func WriteError(w http.ResponseWriter, code int, detail string) {
	WriteJSON(w, code, map[string]string{"detail": detail})
}

// WriteAppError maps an application error to an HTTP status and writes it.
// Unknown errors become an opaque 500.
func WriteAppError(w http.ResponseWriter, err error) {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeValidation:
		WriteError(w, http.StatusBadRequest, err.Error())
	case apperrors.ErrCodeConflict:
		// Duplicate registration responds 400; the public contract predates
		// this service and clients key on that status.
		WriteError(w, http.StatusBadRequest, err.Error())
	case apperrors.ErrCodeUnauthorized:
		WriteError(w, http.StatusUnauthorized, err.Error())
	case apperrors.ErrCodeNotFound:
		WriteError(w, http.StatusNotFound, err.Error())
	case apperrors.ErrCodeTimeout:
		WriteError(w, http.StatusGatewayTimeout, err.Error())
	default:
		WriteError(w, http.StatusInternalServerError, "Internal server error")
	}
}
