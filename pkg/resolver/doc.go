// Package resolver turns the ambient identity data of a web client into
// human-readable environment descriptions: operating system name and detail,
// browser name and version, the raw user agent, local wall-clock readings
// and a client-hints capability flag.
//
// Two sources feed the resolution policy. Structured client hints (see the
// hints package) are preferred when present because they are explicit and
// machine-readable; the free-text User-Agent string is the fallback, parsed
// through the heuristics of the useragent package. The sources are injected
// rather than read from globals so tests can substitute fixed fixtures.
//
// Every operation is a stateless, idempotent query: no call mutates anything,
// results are computed fresh per call, and concurrent calls need no
// coordination.
//
// # Results instead of errors
//
// Operations never fail. Each returns a Result whose Value is always a
// non-empty string, with the Unknown or Unavailable sentinel standing in when
// no source could answer. The Origin and Reason fields let callers tell a
// hint-resolved value from a UA-parsed one, and a genuinely unrecognized
// client from a failing source, without any error plumbing.
//
// # Usage
//
//	res := resolver.FromRequest(r)
//	fmt.Println(res.OSName().Value)          // "Windows"
//	fmt.Println(res.OSDetails(ctx).Value)    // "Windows 11 (client-hint indicated, ...)"
//	fmt.Println(res.Browser(ctx).Value)      // "Google Chrome 118"
//	fmt.Println(res.SupportsClientHints())   // true
package resolver
