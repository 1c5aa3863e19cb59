package httpx

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	apperrors "github.com/jobdeck/jobdeck/internal/errors"
	"github.com/jobdeck/jobdeck/internal/validation"
)

// Envelope is the uniform JSON response shape. Every endpoint responds with
// it: data and pagination on success, message or field errors on failure.
type Envelope struct {
	Success    bool                    `json:"success"`
	Message    string                  `json:"message,omitempty"`
	Data       any                     `json:"data,omitempty"`
	Pagination any                     `json:"pagination,omitempty"`
	Errors     []validation.FieldError `json:"errors,omitempty"`
}

// DecodeJSON decodes JSON from the request body into the destination and handles errors.
// Returns true if successful, false if there was an error (error response already written).
func DecodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()

	if err := dec.Decode(dst); err != nil {
		WriteErrorMsg(w, http.StatusBadRequest, "Invalid JSON body: "+err.Error())
		return false
	}

	return true
}

// WriteJSON writes a JSON response with the given status code and value.
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

// WriteData writes a success envelope with data.
func WriteData(w http.ResponseWriter, code int, data any) {
	WriteJSON(w, code, Envelope{Success: true, Data: data})
}

// WriteDataMessage writes a success envelope with data and a message.
func WriteDataMessage(w http.ResponseWriter, code int, data any, message string) {
	WriteJSON(w, code, Envelope{Success: true, Data: data, Message: message})
}

// WritePage writes a success envelope with data and its pagination block.
func WritePage(w http.ResponseWriter, data, pagination any) {
	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: data, Pagination: pagination})
}

// WriteMessage writes a success envelope with only a message.
func WriteMessage(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Success: true, Message: message})
}

// WriteErrorMsg writes a failure envelope with a message.
func WriteErrorMsg(w http.ResponseWriter, code int, message string) {
	WriteJSON(w, code, Envelope{Success: false, Message: message})
}

// WriteFieldErrors writes a failure envelope carrying field-level errors.
func WriteFieldErrors(w http.ResponseWriter, errs []validation.FieldError) {
	WriteJSON(w, http.StatusBadRequest, Envelope{Success: false, Errors: errs})
}

// WriteError maps an application error onto the wire. Field validation
// failures carry an errors array; everything else carries a message.
func WriteError(w http.ResponseWriter, err error) {
	var fieldErrs validation.Errors
	if errors.As(err, &fieldErrs) {
		WriteFieldErrors(w, fieldErrs)
		return
	}

	// Classify database errors that escaped the service layer unmapped.
	mapped := apperrors.MapDBError(err)

	var appErr *apperrors.AppError
	if errors.As(mapped, &appErr) {
		WriteErrorMsg(w, statusForCode(appErr.Code), appErr.Message)
		return
	}

	WriteErrorMsg(w, http.StatusInternalServerError, err.Error())
}

func statusForCode(code apperrors.ErrorCode) int {
	switch code {
	case apperrors.ErrCodeNotFound:
		return http.StatusNotFound
	case apperrors.ErrCodeValidation:
		return http.StatusBadRequest
	case apperrors.ErrCodeConflict, apperrors.ErrCodeForeignKey:
		return http.StatusConflict
	case apperrors.ErrCodeTimeout:
		return http.StatusGatewayTimeout
	case apperrors.ErrCodeCanceled:
		return statusClientClosedRequest
	default:
		return http.StatusInternalServerError
	}
}

// statusClientClosedRequest is the nginx convention for canceled requests.
const statusClientClosedRequest = 499
