package hints

import "errors"

var (
	// ErrUnavailable is returned by HighEntropy when the client sent no hint
	// headers at all, typically because the browser does not implement the
	// Client Hints API or the Accept-CH negotiation has not happened yet.
	ErrUnavailable = errors.New("client hints unavailable")
)
