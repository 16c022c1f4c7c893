// Package useragent provides best-effort heuristics over free-text HTTP
// User-Agent strings.
//
// It identifies:
//   - Operating system name – Windows, macOS, Android, Linux or Unknown
//   - Operating system detail – marketed Windows release names derived from
//     the legacy NT kernel token, Android and macOS version numbers
//   - Browser name and version – Edge, Chrome, Opera, Firefox, Safari, …
//
// Parsing is performed with plain-string look-ups and pre-compiled regular
// expressions – no heavyweight dependency on the upstream Chromium UA-parser –
// which keeps allocations low and makes the package suitable for high-traffic
// servers and edge environments.
//
// # Detection order
//
// Matching order is fixed and significant. Operating systems are tested as
// Windows, macOS, Android, then Linux (Android UA strings embed a Linux
// token). Browsers are tested as Edge, Chrome, Opera, Firefox, then Safari;
// the Chrome rule excludes agents carrying "opr/" or "edg/" markers, since
// Opera and Edge both embed a Chrome token.
//
// The NT kernel token deserves a caveat: "Windows NT 10.0" is reported by
// both Windows 10 and Windows 11, so ParseOSDetail flags it as ambiguous
// instead of guessing. This lossiness is inherent to the format, not a
// defect of the parser.
//
// # Usage
//
// Import the package:
//
//	import "github.com/dmitrymomot/clientenv/pkg/useragent"
//
// Parse an incoming request's UA:
//
//	lower := strings.ToLower(r.UserAgent())
//	os := useragent.ParseOS(lower)
//	browser := useragent.ParseBrowser(lower)
//	log.Printf("client=%s on %s", browser.Label(), os)
//
// # Error Handling
//
// Every function in this package is total: malformed or empty input maps to
// the OSUnknown / BrowserUnknown sentinels, never to an error or a panic.
// Callers that need to distinguish why a value is unknown should use the
// resolver package, which wraps these heuristics in explicit result types.
package useragent
