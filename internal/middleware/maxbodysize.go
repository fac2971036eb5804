package middleware

import (
	"net/http"
	"strconv"
)

// NewMaxBodySizeHandler returns a middleware that limits incoming request body
// sizes to limit bytes.
//
// A request advertising a Content-Length above the limit is rejected with 413
// before the next handler runs. Otherwise the body is wrapped in
// http.MaxBytesReader, so a handler reading past the limit gets a
// *http.MaxBytesError and decides how to answer.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	body := []byte(`{"error":{"code":"payload_too_large","message":"request body exceeds ` +
		strconv.FormatInt(limit, 10) + ` bytes"}}` + "\n")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				_, _ = w.Write(body)
				return
			}
			r.Body = http.MaxBytesReader(w, r.Body, limit)
			next.ServeHTTP(w, r)
		})
	}
}
