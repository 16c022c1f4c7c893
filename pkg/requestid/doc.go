// Package requestid provides HTTP middleware and helpers for request
// correlation identifiers.
//
// Middleware attaches an ID to every request: a well-formed client-supplied
// "X-Request-ID" header is validated and reused, otherwise a new UUIDv4 is
// generated. The chosen ID is stored in the request context, echoed back in
// the response header, and exposed to structured logging through
// LoggerExtractor.
package requestid
