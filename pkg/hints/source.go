package hints

import (
	"context"
	"net/http"
)

// Source provides access to the ambient client-hints data of a single client.
// Implementations must be read-only: repeated calls with unchanged ambient
// state return identical results.
type Source interface {
	// Hints returns the synchronously available low-entropy snapshot. The
	// second return value is false when the client sent no hint data.
	Hints() (Snapshot, bool)

	// HighEntropy requests the high-entropy fields (currently the platform
	// version) on top of the low-entropy snapshot. It honors ctx cancellation
	// and returns ErrUnavailable when the client exposes no hints at all.
	HighEntropy(ctx context.Context) (Snapshot, error)

	// Supported reports whether the client advertises structured hints.
	// It never fails; absence maps to false.
	Supported() bool
}

// RequestSource is a Source backed by the headers of a single HTTP request.
//
// High-entropy fields are only present when a previous response advertised
// them via Accept-CH (see Middleware), which makes HighEntropy the server-side
// half of the browser's asynchronous getHighEntropyValues round trip.
type RequestSource struct {
	header http.Header
}

// NewRequestSource returns a Source reading from the request's headers.
func NewRequestSource(r *http.Request) *RequestSource {
	return &RequestSource{header: r.Header}
}

// Supported reports whether the request carries any structured hint header.
func (s *RequestSource) Supported() bool {
	if s == nil || s.header == nil {
		return false
	}
	return s.header.Get(HeaderBrands) != "" || s.header.Get(HeaderPlatform) != ""
}

// Hints extracts the low-entropy snapshot from the request headers.
func (s *RequestSource) Hints() (Snapshot, bool) {
	if s == nil || s.header == nil {
		return Snapshot{}, false
	}
	return FromHeader(s.header)
}

// HighEntropy extracts the full snapshot including the platform version.
func (s *RequestSource) HighEntropy(ctx context.Context) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}
	if s == nil || s.header == nil {
		return Snapshot{}, ErrUnavailable
	}

	snap, _ := FromHeader(s.header)
	snap.PlatformVersion = parseItemString(s.header.Get(HeaderPlatformVersion))
	if snap.Empty() {
		return Snapshot{}, ErrUnavailable
	}
	return snap, nil
}
