// Package clientenv reports a web client's environment — operating system,
// browser identity, raw user agent, local time and a client-hints capability
// flag — as a self-describing module a host runtime can discover and call.
//
// The module publishes a Descriptor: an identifier, a display name and a
// fixed set of seven parameterless operations, each tagged as a reporter
// (string-valued) or a boolean query. A host mounts the module with Router
// and drives it over plain HTTP; each operation is answered from the calling
// request's ambient identity data (User-Agent header and the Sec-CH-UA client
// hint headers) by a fresh resolver, so the whole surface is stateless and
// idempotent.
//
// The heavy lifting lives in the subpackages:
//
//   - pkg/useragent – best-effort heuristics over the free-text UA string
//   - pkg/hints – User-Agent Client Hints parsing and Accept-CH negotiation
//   - pkg/resolver – the resolution policy combining both sources
//
// Responses never carry errors for unresolvable environments: every operation
// degrades to a documented sentinel value, with an origin and reason attached
// so callers can tell an unrecognized client from a failing source.
//
// # Usage
//
//	r := chi.NewRouter()
//	r.Use(hints.Middleware()) // advertise Accept-CH so browsers send hints
//	r.Mount("/env", clientenv.Router(clientenv.RouterOptions{}))
//
// A host then discovers the operations from GET /env/descriptor and calls
// them as GET /env/ops/{op}.
package clientenv
