package clientenv

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/clientenv/pkg/resolver"
)

// RouterOptions configures the module router.
type RouterOptions struct {
	// Descriptor overrides the default self-description. The zero value
	// mounts NewDescriptor().
	Descriptor Descriptor

	// ResolverOptions are applied to every per-request resolver, e.g. a
	// fixed clock in tests.
	ResolverOptions []resolver.Option
}

// Router returns the module's HTTP surface for mounting into a host router:
//
//	r := chi.NewRouter()
//	r.Mount("/env", clientenv.Router(clientenv.RouterOptions{}))
//
// GET /descriptor serves the self-description payload; GET /ops/{op}
// evaluates one operation against the calling request's ambient identity
// headers. Each request gets its own resolver, so the surface is stateless
// and safe for concurrent use.
func Router(opts RouterOptions) chi.Router {
	desc := opts.Descriptor
	if desc.ID == "" {
		desc = NewDescriptor()
	}

	r := chi.NewRouter()
	r.Get("/descriptor", handleDescriptor(desc))
	r.Get("/ops/{op}", handleOperation(desc, opts.ResolverOptions))
	return r
}

func handleDescriptor(desc Descriptor) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, jsonResponse{Data: desc})
	}
}

// opResult is the wire form of one evaluated operation.
type opResult struct {
	Op     string          `json:"op"`
	Kind   OpKind          `json:"kind"`
	Value  any             `json:"value"`
	Origin resolver.Origin `json:"origin,omitempty"`
	Reason resolver.Reason `json:"reason,omitempty"`
}

func handleOperation(desc Descriptor, resolverOpts []resolver.Option) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "op")
		op, ok := desc.Operation(id)
		if !ok {
			writeJSON(w, http.StatusNotFound, jsonResponse{Error: &errorDetail{
				Code:    "unknown_operation",
				Message: "operation " + id + " is not part of the descriptor",
			}})
			return
		}

		res := resolver.FromRequest(r, resolverOpts...)
		out := opResult{Op: op.ID, Kind: op.Kind}

		switch op.ID {
		case OpOSName:
			fill(&out, res.OSName())
		case OpOSDetails:
			fill(&out, res.OSDetails(r.Context()))
		case OpBrowser:
			fill(&out, res.Browser(r.Context()))
		case OpUserAgent:
			fill(&out, res.UserAgent())
		case OpDateTime:
			fill(&out, res.LocalDateTime())
		case OpTime:
			fill(&out, res.LocalTime())
		case OpSupportsHints:
			out.Value = res.SupportsClientHints()
		default:
			// Descriptor entry without an implementation; a custom
			// Descriptor listed an ID this module does not provide.
			writeJSON(w, http.StatusNotImplemented, jsonResponse{Error: &errorDetail{
				Code: "unimplemented_operation",
			}})
			return
		}

		writeJSON(w, http.StatusOK, jsonResponse{Data: out})
	}
}

func fill(out *opResult, res resolver.Result) {
	out.Value = res.Value
	out.Origin = res.Origin
	out.Reason = res.Reason
}

// jsonResponse is the standard response envelope.
type jsonResponse struct {
	Data  any          `json:"data,omitempty"`
	Error *errorDetail `json:"error,omitempty"`
}

// errorDetail contains error information
type errorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, body jsonResponse) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
