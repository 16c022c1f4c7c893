// Package hints parses User-Agent Client Hints, the structured alternative to
// the free-text User-Agent header.
//
// Chromium-based browsers describe themselves through a family of Sec-CH-UA-*
// headers encoded as HTTP Structured Field Values (RFC 8941). The low-entropy
// headers (brand list, platform name) are sent unconditionally; high-entropy
// headers such as the platform version are only sent after the server opts in
// by advertising them in an Accept-CH response header. That negotiation is the
// server-side equivalent of the browser's asynchronous
// navigator.userAgentData.getHighEntropyValues call, and the Source interface
// mirrors it: Hints is synchronous, HighEntropy takes a context.
//
// # Usage
//
// Advertise the hints on every response and read them where needed:
//
//	mux := chi.NewRouter()
//	mux.Use(hints.Middleware())
//	mux.Get("/whoami", func(w http.ResponseWriter, r *http.Request) {
//		src := hints.NewRequestSource(r)
//		if snap, ok := src.Hints(); ok {
//			fmt.Fprintf(w, "platform=%s", snap.Platform)
//		}
//	})
//
// # Error Handling
//
// Hint headers are advisory. Malformed structured field values are treated
// the same as absent ones and never produce an error; the only error surface
// is HighEntropy, which returns ErrUnavailable for hint-less clients and the
// context error on cancellation.
package hints
