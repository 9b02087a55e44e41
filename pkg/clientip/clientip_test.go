package clientip_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/onboarding/pkg/clientip"
)

func newRequest(remoteAddr string, headers map[string]string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/", nil)
	r.RemoteAddr = remoteAddr
	for k, v := range headers {
		r.Header.Set(k, v)
	}
	return r
}

func TestGetIP_IgnoresHeadersFromUntrustedPeers(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"remote addr", nil, "192.0.2.10:5555", "192.0.2.10"},
		{"remote addr without port", nil, "192.0.2.10", "192.0.2.10"},
		{"ipv6 remote addr", nil, "[2001:db8::1]:443", "2001:db8::1"},
		{"ipv4 mapped", nil, "[::ffff:192.0.2.10]:80", "192.0.2.10"},
		{"forwarded for", map[string]string{"X-Forwarded-For": "198.51.100.2"}, "203.0.113.7:1", "203.0.113.7"},
		{"cloudflare", map[string]string{"CF-Connecting-IP": "198.51.100.2"}, "203.0.113.7:1", "203.0.113.7"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.2"}, "203.0.113.7:1", "203.0.113.7"},
		{"garbage", nil, "garbage", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, clientip.GetIP(newRequest(tt.remoteAddr, tt.headers)))
		})
	}
}

func TestResolver_TrustedProxies(t *testing.T) {
	t.Parallel()

	res, err := clientip.New(clientip.Config{TrustedProxies: []string{"10.0.0.0/8", " 192.0.2.1 "}})
	require.NoError(t, err)

	tests := []struct {
		name       string
		headers    map[string]string
		remoteAddr string
		want       string
	}{
		{"cloudflare wins", map[string]string{"CF-Connecting-IP": "203.0.113.1", "X-Forwarded-For": "198.51.100.2"}, "10.0.0.1:1", "203.0.113.1"},
		{"nearest untrusted hop", map[string]string{"X-Forwarded-For": "6.6.6.6, 198.51.100.2, 10.1.1.1"}, "10.0.0.1:1", "198.51.100.2"},
		{"every hop trusted", map[string]string{"X-Forwarded-For": "10.9.9.9, 10.1.1.1"}, "10.0.0.1:1", "10.9.9.9"},
		{"skips invalid entries", map[string]string{"X-Forwarded-For": "198.51.100.3, unknown"}, "10.0.0.1:1", "198.51.100.3"},
		{"real ip", map[string]string{"X-Real-IP": "198.51.100.4"}, "192.0.2.1:1", "198.51.100.4"},
		{"invalid headers fall back", map[string]string{"X-Real-IP": "nope", "CF-Connecting-IP": "999.1.1.1"}, "10.0.0.1:1", "10.0.0.1"},
		{"untrusted peer", map[string]string{"X-Forwarded-For": "198.51.100.2"}, "192.0.2.2:1", "192.0.2.2"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, res.GetIP(newRequest(tt.remoteAddr, tt.headers)))
		})
	}
}

func TestNew_InvalidTrustedProxy(t *testing.T) {
	t.Parallel()

	for _, v := range []string{"10.0.0.0/33", "proxy.local", "10.0.0"} {
		t.Run(v, func(t *testing.T) {
			t.Parallel()
			_, err := clientip.New(clientip.Config{TrustedProxies: []string{v}})
			assert.ErrorIs(t, err, clientip.ErrInvalidTrustedProxy)
			assert.ErrorIs(t, clientip.Config{TrustedProxies: []string{v}}.Validate(), clientip.ErrInvalidTrustedProxy)
		})
	}
}

func TestMiddleware(t *testing.T) {
	t.Parallel()

	capture := func(got *string) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			*got = clientip.FromContext(r.Context())
		})
	}

	var direct string
	clientip.Middleware(capture(&direct)).ServeHTTP(httptest.NewRecorder(),
		newRequest("192.0.2.10:1", map[string]string{"X-Forwarded-For": "198.51.100.7"}))
	assert.Equal(t, "192.0.2.10", direct)

	res, err := clientip.New(clientip.Config{TrustedProxies: []string{"192.0.2.0/24"}})
	require.NoError(t, err)

	var proxied string
	res.Middleware(capture(&proxied)).ServeHTTP(httptest.NewRecorder(),
		newRequest("192.0.2.10:1", map[string]string{"X-Forwarded-For": "198.51.100.7"}))
	assert.Equal(t, "198.51.100.7", proxied)
}
