package resolver

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/clientenv/pkg/hints"
	"github.com/dmitrymomot/clientenv/pkg/useragent"
)

// Resolver answers environment descriptor queries for a single client from
// injected read-only ambient sources: the free-text user agent, an optional
// client-hints source and a clock. Resolvers are cheap to construct and hold
// no mutable state, so one is built per request and discarded.
type Resolver struct {
	userAgent string
	source    hints.Source
	now       func() time.Time
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithSource sets the client-hints source. Without one, every operation
// falls back to user-agent heuristics and SupportsClientHints reports false.
func WithSource(src hints.Source) Option {
	return func(r *Resolver) { r.source = src }
}

// WithClock overrides the wall clock, primarily for deterministic tests.
// Nil clocks are ignored.
func WithClock(now func() time.Time) Option {
	return func(r *Resolver) {
		if now != nil {
			r.now = now
		}
	}
}

// New returns a Resolver over the given user agent string.
func New(userAgent string, opts ...Option) *Resolver {
	r := &Resolver{
		userAgent: userAgent,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// FromRequest returns a Resolver over the ambient identity data of an HTTP
// request: its User-Agent header and its client-hint headers.
func FromRequest(req *http.Request, opts ...Option) *Resolver {
	base := []Option{WithSource(hints.NewRequestSource(req))}
	return New(req.UserAgent(), append(base, opts...)...)
}

// OSName resolves the operating system name. The structured platform hint is
// preferred verbatim when present; otherwise the user agent is matched in
// fixed priority order (Windows, macOS, Android, Linux).
func (r *Resolver) OSName() Result {
	if r.source != nil {
		if snap, ok := r.source.Hints(); ok && snap.Platform != "" {
			return resolved(snap.Platform, OriginHints)
		}
	}

	if r.userAgent == "" {
		return fallback(Unknown, OriginNone, ReasonMissing)
	}

	name := useragent.ParseOS(strings.ToLower(r.userAgent))
	if name == useragent.OSUnknown {
		return fallback(Unknown, OriginUserAgent, ReasonUnrecognized)
	}
	return resolved(name, OriginUserAgent)
}

// OSDetails resolves a descriptive operating system version string. It makes
// at most one high-entropy hint request and suspends until that request
// resolves or fails, then falls through the user-agent tiers. Failures never
// escape; they only demote the result to the next tier.
func (r *Resolver) OSDetails(ctx context.Context) Result {
	sourceFailed := false
	if r.source != nil {
		snap, err := r.source.HighEntropy(ctx)
		switch {
		case err == nil && snap.Platform != "":
			if detail, ok := detailFromHints(snap); ok {
				return resolved(detail, OriginHints)
			}
		case err != nil && !errors.Is(err, hints.ErrUnavailable):
			sourceFailed = true
		}
	}

	if r.userAgent != "" {
		if detail := useragent.ParseOSDetail(r.userAgent); detail != useragent.OSUnknown {
			return resolved(detail, OriginUserAgent)
		}
	}

	if sourceFailed {
		return fallback(Unknown, OriginHints, ReasonSourceError)
	}
	return fallback(Unknown, OriginNone, ReasonMissing)
}

// detailFromHints renders a platform description from a high-entropy
// snapshot. For Windows the platform version major is mapped to a marketed
// release: Chromium reports 13 and above on Windows 11 hosts. The mapping is
// a heuristic, not a certainty, and the label says so while carrying the raw
// version string for transparency.
//
// A Windows platform without a negotiated platformVersion — the normal state
// before the Accept-CH round trip completes — carries no release information,
// so it is reported as unresolved and the caller falls through to the richer
// user-agent tier.
func detailFromHints(snap hints.Snapshot) (string, bool) {
	if strings.EqualFold(snap.Platform, "Windows") {
		if snap.PlatformVersion == "" {
			return "", false
		}
		major, err := strconv.Atoi(strings.SplitN(snap.PlatformVersion, ".", 2)[0])
		if err == nil {
			release := "Windows 10"
			if major >= 13 {
				release = "Windows 11"
			}
			return fmt.Sprintf("%s (client-hint indicated, platformVersion %s, heuristic)", release, snap.PlatformVersion), true
		}
	}

	if snap.PlatformVersion != "" {
		return snap.Platform + " " + snap.PlatformVersion, true
	}
	return snap.Platform, true
}

// Browser resolves the browser name and version. A structured brands list is
// preferred, picking by priority: Chrome family, Edge, Firefox, then the
// first listed brand. Otherwise the user agent is matched through the fixed
// pattern order of the useragent package. The ctx parameter keeps the calling
// convention uniform with OSDetails; the brands read itself is synchronous.
func (r *Resolver) Browser(_ context.Context) Result {
	if r.source != nil {
		if snap, ok := r.source.Hints(); ok && len(snap.Brands) > 0 {
			brand := pickBrand(snap.Brands)
			return resolved(strings.TrimSpace(brand.Name+" "+brand.Version), OriginHints)
		}
	}

	if r.userAgent == "" {
		return fallback(Unknown, OriginNone, ReasonMissing)
	}

	browser := useragent.ParseBrowser(strings.ToLower(r.userAgent))
	if browser.Name == useragent.BrowserUnknown {
		return fallback(
			fmt.Sprintf("%s (%s)", Unknown, useragent.FirstToken(r.userAgent)),
			OriginUserAgent,
			ReasonUnrecognized,
		)
	}
	return resolved(browser.Label(), OriginUserAgent)
}

// brandPriority orders brand selection. Groups are tried in order and the
// first brand whose name contains a group keyword wins. The order is
// deliberately reproduced from the original policy, including its known
// sensitivity to brand lists carrying several matching entries.
var brandPriority = [][]string{
	{"google chrome", "chromium", "chrome"},
	{"edge", "edg"},
	{"firefox"},
}

func pickBrand(brands []hints.Brand) hints.Brand {
	for _, group := range brandPriority {
		for _, brand := range brands {
			lower := strings.ToLower(brand.Name)
			for _, keyword := range group {
				if strings.Contains(lower, keyword) {
					return brand
				}
			}
		}
	}
	return brands[0]
}

// UserAgent returns the raw user agent string verbatim, or Unavailable when
// the ambient environment exposes none.
func (r *Resolver) UserAgent() Result {
	if r.userAgent == "" {
		return fallback(Unavailable, OriginNone, ReasonMissing)
	}
	return resolved(r.userAgent, OriginUserAgent)
}

// dateTimeLayout approximates locale-style date rendering. Go's standard
// library has no locale-aware formatting, so a fixed readable layout is used.
const dateTimeLayout = "Monday, January 2, 2006 15:04:05"

// LocalDateTime returns the wall-clock date and time in a human-readable form.
func (r *Resolver) LocalDateTime() Result {
	if r.now == nil {
		return fallback(Unavailable, OriginNone, ReasonMissing)
	}
	return resolved(r.now().Format(dateTimeLayout), OriginClock)
}

// LocalTime returns the wall-clock time of day as zero-padded HH:MM:SS.
func (r *Resolver) LocalTime() Result {
	if r.now == nil {
		return fallback(Unavailable, OriginNone, ReasonMissing)
	}
	return resolved(r.now().Format("15:04:05"), OriginClock)
}

// SupportsClientHints reports whether the client exposes the structured
// client-hints API. It never fails; any absence maps to false.
func (r *Resolver) SupportsClientHints() bool {
	return r.source != nil && r.source.Supported()
}
