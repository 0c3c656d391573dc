package middleware

import "net/http"

// RawPath makes URL.RawPath always hold the path as it was sent, so an engine routing on
// the raw path never sees a pre-decoded segment.
func RawPath(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		r.URL.RawPath = r.URL.EscapedPath()
		next.ServeHTTP(w, r)
	})
}
