package hints

import (
	"net/http"
	"strings"
)

// defaultAcceptCH lists the hint headers this module consumes.
var defaultAcceptCH = []string{HeaderBrands, HeaderPlatform, HeaderPlatformVersion}

// Middleware returns a middleware that advertises the given client hint
// headers via Accept-CH on every response. Browsers start sending the
// high-entropy headers on subsequent requests once they have seen the
// advertisement. With no arguments it advertises the headers this package
// parses.
func Middleware(hintHeaders ...string) func(http.Handler) http.Handler {
	if len(hintHeaders) == 0 {
		hintHeaders = defaultAcceptCH
	}
	value := strings.Join(hintHeaders, ", ")

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Accept-CH", value)
			next.ServeHTTP(w, r)
		})
	}
}
