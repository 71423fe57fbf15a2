package middleware

import (
	"fmt"
	"net/http"
)

// tooLargeBody is the JSON error written when a declared Content-Length is
// over the limit. Its shape matches the handler package's error responses.
const tooLargeBody = `{"error":{"code":"request_too_large","message":"request body exceeds %d bytes"}}` + "\n"

// NewMaxBodySizeHandler returns a middleware that limits request bodies to
// limit bytes. A request whose Content-Length is over the limit is rejected
// with 413 before the next handler runs. Otherwise the body is wrapped in
// http.MaxBytesReader, so a streamed body fails with *http.MaxBytesError once
// the limit is crossed and the decoding handler answers 413 itself.
//
// A limit <= 0 disables the check.
func NewMaxBodySizeHandler(limit int64) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.ContentLength > limit {
				w.Header().Set("Content-Type", "application/json")
				w.Header().Set("Connection", "close")
				w.WriteHeader(http.StatusRequestEntityTooLarge)
				fmt.Fprintf(w, tooLargeBody, limit)
				return
			}
			if r.Body != nil && r.Body != http.NoBody {
				r.Body = http.MaxBytesReader(w, r.Body, limit)
			}
			next.ServeHTTP(w, r)
		})
	}
}
