package clientenv_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/dmitrymomot/clientenv"
	"github.com/dmitrymomot/clientenv/pkg/resolver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const uaChrome = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/118.0 Safari/537.36"

type envelope struct {
	Data  json.RawMessage `json:"data"`
	Error *struct {
		Code    string `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

type opResult struct {
	Op     string `json:"op"`
	Kind   string `json:"kind"`
	Value  any    `json:"value"`
	Origin string `json:"origin"`
	Reason string `json:"reason"`
}

func callOp(t *testing.T, handler http.Handler, op string, decorate func(*http.Request)) (*httptest.ResponseRecorder, envelope) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/ops/"+op, nil)
	if decorate != nil {
		decorate(req)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))
	return rec, env
}

func decodeOp(t *testing.T, env envelope) opResult {
	t.Helper()

	var out opResult
	require.NoError(t, json.Unmarshal(env.Data, &out))
	return out
}

func TestDescriptorEndpoint(t *testing.T) {
	handler := clientenv.Router(clientenv.RouterOptions{})

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/descriptor", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json; charset=utf-8", rec.Header().Get("Content-Type"))

	var env envelope
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &env))

	var desc clientenv.Descriptor
	require.NoError(t, json.Unmarshal(env.Data, &desc))

	assert.Equal(t, "clientenv", desc.ID)
	assert.Equal(t, "Client Environment", desc.Name)
	require.Len(t, desc.Operations, 7)

	probe, ok := desc.Operation(clientenv.OpSupportsHints)
	require.True(t, ok)
	assert.Equal(t, clientenv.OpKindBoolean, probe.Kind)

	for _, op := range desc.Operations {
		if op.ID != clientenv.OpSupportsHints {
			assert.Equal(t, clientenv.OpKindReporter, op.Kind, op.ID)
		}
	}
}

func TestOperationEndpoints(t *testing.T) {
	handler := clientenv.Router(clientenv.RouterOptions{})
	withUA := func(r *http.Request) { r.Header.Set("User-Agent", uaChrome) }

	t.Run("os_name from user agent", func(t *testing.T) {
		rec, env := callOp(t, handler, clientenv.OpOSName, withUA)
		require.Equal(t, http.StatusOK, rec.Code)

		out := decodeOp(t, env)
		assert.Equal(t, "Windows", out.Value)
		assert.Equal(t, "user-agent", out.Origin)
	})

	t.Run("os_name prefers client hints", func(t *testing.T) {
		_, env := callOp(t, handler, clientenv.OpOSName, func(r *http.Request) {
			r.Header.Set("User-Agent", uaChrome)
			r.Header.Set("Sec-CH-UA-Platform", `"macOS"`)
		})
		out := decodeOp(t, env)
		assert.Equal(t, "macOS", out.Value)
		assert.Equal(t, "client-hints", out.Origin)
	})

	t.Run("os_details with negotiated hints", func(t *testing.T) {
		_, env := callOp(t, handler, clientenv.OpOSDetails, func(r *http.Request) {
			r.Header.Set("Sec-CH-UA-Platform", `"Windows"`)
			r.Header.Set("Sec-CH-UA-Platform-Version", `"13.0.0"`)
		})
		out := decodeOp(t, env)
		value, ok := out.Value.(string)
		require.True(t, ok)
		assert.Contains(t, value, "Windows 11")
		assert.Contains(t, value, "13.0.0")
	})

	t.Run("browser from brand list", func(t *testing.T) {
		_, env := callOp(t, handler, clientenv.OpBrowser, func(r *http.Request) {
			r.Header.Set("Sec-CH-UA", `"Chromium";v="118", "Google Chrome";v="118", "Not=A?Brand";v="99"`)
		})
		out := decodeOp(t, env)
		assert.Equal(t, "Chromium 118", out.Value)
	})

	t.Run("user_agent verbatim", func(t *testing.T) {
		_, env := callOp(t, handler, clientenv.OpUserAgent, withUA)
		out := decodeOp(t, env)
		assert.Equal(t, uaChrome, out.Value)
	})

	t.Run("user_agent unavailable without header", func(t *testing.T) {
		_, env := callOp(t, handler, clientenv.OpUserAgent, nil)
		out := decodeOp(t, env)
		assert.Equal(t, "Unavailable", out.Value)
		assert.Equal(t, "missing", out.Reason)
	})

	t.Run("supports_client_hints boolean probe", func(t *testing.T) {
		_, env := callOp(t, handler, clientenv.OpSupportsHints, nil)
		out := decodeOp(t, env)
		assert.Equal(t, false, out.Value)

		_, env = callOp(t, handler, clientenv.OpSupportsHints, func(r *http.Request) {
			r.Header.Set("Sec-CH-UA", `"Google Chrome";v="118"`)
		})
		out = decodeOp(t, env)
		assert.Equal(t, true, out.Value)
	})

	t.Run("unknown operation", func(t *testing.T) {
		rec, env := callOp(t, handler, "nonsense", nil)
		assert.Equal(t, http.StatusNotFound, rec.Code)
		require.NotNil(t, env.Error)
		assert.Equal(t, "unknown_operation", env.Error.Code)
	})
}

func TestClockOperationsWithFixedClock(t *testing.T) {
	fixed := func() time.Time {
		return time.Date(2024, time.March, 1, 9, 5, 3, 0, time.UTC)
	}
	handler := clientenv.Router(clientenv.RouterOptions{
		ResolverOptions: []resolver.Option{resolver.WithClock(fixed)},
	})

	_, env := callOp(t, handler, clientenv.OpTime, nil)
	out := decodeOp(t, env)
	assert.Equal(t, "09:05:03", out.Value)
	assert.Equal(t, "clock", out.Origin)

	_, env = callOp(t, handler, clientenv.OpDateTime, nil)
	out = decodeOp(t, env)
	value, ok := out.Value.(string)
	require.True(t, ok)
	assert.Contains(t, value, "March 1, 2024")
}
