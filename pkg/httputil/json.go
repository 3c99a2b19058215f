package httputil

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	serrors "github.com/matzehuels/stackcheck/pkg/errors"
)

// MaxBodySize bounds request bodies accepted by DecodeJSON.
const MaxBodySize = 16 << 20

// ErrorResponse is the body written by WriteError.
type ErrorResponse struct {
	Code  serrors.Code `json:"code"`
	Error string       `json:"error"`
}

// WriteJSON writes v as JSON with the given status. Encoding failures are
// returned; the status line has already been sent by then.
func WriteJSON(w http.ResponseWriter, status int, v any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(v)
}

// WriteError writes err with the status for its code and returns that
// status.
func WriteError(w http.ResponseWriter, err error) int {
	code := serrors.CodeOf(err)
	msg := serrors.UserMessage(err)
	if code == serrors.ErrCodeInternal {
		msg = "internal error"
	}

	status := StatusFor(code)
	_ = WriteJSON(w, status, ErrorResponse{Code: code, Error: msg})
	return status
}

// StatusFor maps an error code to an HTTP status.
func StatusFor(code serrors.Code) int {
	switch code {
	case serrors.ErrCodeInvalidInput, serrors.ErrCodeInvalidFormat:
		return http.StatusBadRequest
	case serrors.ErrCodeNotFound:
		return http.StatusNotFound
	case serrors.ErrCodeTimeout:
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

// DecodeJSON decodes a single JSON object from the request body into v.
// Malformed bodies yield an INVALID_INPUT error.
func DecodeJSON(r *http.Request, v any) error {
	body := http.MaxBytesReader(nil, r.Body, MaxBodySize)
	defer body.Close()

	dec := json.NewDecoder(body)
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		return serrors.Wrap(serrors.ErrCodeInvalidInput, err, "invalid json body")
	}
	if err := dec.Decode(&struct{}{}); err != io.EOF {
		return serrors.New(serrors.ErrCodeInvalidInput, "body must contain only one JSON object")
	}
	return nil
}

// StatusWriter records the status code and bytes written through it.
type StatusWriter struct {
	http.ResponseWriter
	Status int
	Bytes  int
}

// WriteHeader records code and forwards it.
func (w *StatusWriter) WriteHeader(code int) {
	w.Status = code
	w.ResponseWriter.WriteHeader(code)
}

// Write records an implicit 200 when no header was written.
func (w *StatusWriter) Write(b []byte) (int, error) {
	if w.Status == 0 {
		w.Status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.Bytes += n
	return n, err
}

// Code returns the recorded status, 200 if nothing was written.
func (w *StatusWriter) Code() int {
	if w.Status == 0 {
		return http.StatusOK
	}
	return w.Status
}

// String formats the recorded status for logs.
func (w *StatusWriter) String() string {
	return fmt.Sprintf("%d (%d bytes)", w.Code(), w.Bytes)
}
