package handler

import (
	"net/http"
	"strings"
)

// ErrorResponse is the body of every non-2xx catalogue response.
type ErrorResponse struct {
	Error ErrorDetail `json:"error"`
}

// ErrorDetail carries a machine-readable code and a human message.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// notFoundBody returns an ErrorResponse for a missing resource.
// The caller supplies the message because the handler knows what was being
// looked up.
func notFoundBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "not_found", Message: message}}
}

// requestBody returns an ErrorResponse for a request rejected before reaching
// the catalogue or service layer (e.g. a malformed query parameter).
func requestBody(message string) ErrorResponse {
	return ErrorResponse{Error: ErrorDetail{Code: "validation_error", Message: message}}
}

func writeNotFound(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusNotFound, notFoundBody(message))
}

func writeBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, requestBody(message))
}

// unwrapMessage strips the "pkg.Type.Method: " wrapping prefixes from err,
// leaving the part worth showing to a caller.
// e.g. "service.BookingService.Submit: repo.SheetRepo.Append: not found: no sheets"
// → "not found: no sheets".
func unwrapMessage(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for {
		head, rest, ok := strings.Cut(msg, ": ")
		if !ok || !isCallSite(head) {
			return msg
		}
		msg = rest
	}
}

// isCallSite reports whether s looks like a "pkg.Type.Method" error prefix.
func isCallSite(s string) bool {
	return s != "" && !strings.ContainsAny(s, " \t") && strings.Contains(s, ".")
}
