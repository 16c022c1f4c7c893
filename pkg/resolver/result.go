package resolver

// Sentinel values returned when an operation cannot produce a real answer.
// String operations never return an empty value.
const (
	// Unknown is reported when identity heuristics recognize nothing.
	Unknown = "Unknown"

	// Unavailable is reported when the ambient source itself is missing.
	Unavailable = "Unavailable"
)

// Origin identifies which ambient source produced a result value.
type Origin string

const (
	// OriginHints marks values resolved from structured client hints.
	OriginHints Origin = "client-hints"

	// OriginUserAgent marks values resolved from the free-text user agent.
	OriginUserAgent Origin = "user-agent"

	// OriginClock marks values read from the wall clock.
	OriginClock Origin = "clock"

	// OriginNone marks sentinel results with no backing source.
	OriginNone Origin = ""
)

// Reason explains why a result value is a sentinel instead of a real answer,
// distinguishing "the source had nothing" from "the source failed".
type Reason string

const (
	// ReasonNone marks a successfully resolved value.
	ReasonNone Reason = ""

	// ReasonMissing marks a sentinel caused by an absent ambient source.
	ReasonMissing Reason = "missing"

	// ReasonUnrecognized marks a sentinel caused by input that no heuristic
	// could interpret.
	ReasonUnrecognized Reason = "unrecognized"

	// ReasonSourceError marks a sentinel caused by a failing source.
	ReasonSourceError Reason = "source_error"
)

// Result is the outcome of one resolver operation. Value is always non-empty;
// Reason is set only when Value is a sentinel.
type Result struct {
	Value  string `json:"value"`
	Origin Origin `json:"origin,omitempty"`
	Reason Reason `json:"reason,omitempty"`
}

// String returns the resolved value.
func (r Result) String() string { return r.Value }

// Resolved reports whether the result carries a real answer rather than a
// sentinel.
func (r Result) Resolved() bool { return r.Reason == ReasonNone }

func resolved(value string, origin Origin) Result {
	return Result{Value: value, Origin: origin}
}

func fallback(value string, origin Origin, reason Reason) Result {
	return Result{Value: value, Origin: origin, Reason: reason}
}
