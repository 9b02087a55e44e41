package clientip

import (
	"context"
	"fmt"
	"net"
	"net/http"
	"net/netip"
	"strings"
)

// Resolver finds the client address of a request. Forwarding headers are
// honored only when the direct peer is a trusted proxy.
type Resolver struct {
	trusted []netip.Prefix
}

// New builds a Resolver from cfg. An empty list trusts no proxy.
func New(cfg Config) (*Resolver, error) {
	trusted, err := parsePrefixes(cfg.TrustedProxies)
	if err != nil {
		return nil, err
	}
	return &Resolver{trusted: trusted}, nil
}

var direct = &Resolver{}

// GetIP returns the peer address of r, ignoring forwarding headers.
func GetIP(r *http.Request) string {
	return direct.GetIP(r)
}

// Middleware stores GetIP(r) in the request context.
func Middleware(next http.Handler) http.Handler {
	return direct.Middleware(next)
}

// GetIP returns the normalized client address of r, or an empty string when
// none is valid. Behind a trusted peer, CF-Connecting-IP wins, then the
// right-most untrusted X-Forwarded-For entry, then X-Real-IP.
func (res *Resolver) GetIP(r *http.Request) string {
	peer, ok := remoteAddr(r.RemoteAddr)
	if !ok {
		return ""
	}
	if !res.trusts(peer) {
		return peer.String()
	}

	if ip, ok := parseAddr(r.Header.Get("CF-Connecting-IP")); ok {
		return ip.String()
	}
	if ip, ok := res.forwardedFor(r.Header.Values("X-Forwarded-For")); ok {
		return ip.String()
	}
	if ip, ok := parseAddr(r.Header.Get("X-Real-IP")); ok {
		return ip.String()
	}
	return peer.String()
}

// Middleware stores the resolved address in the request context.
func (res *Resolver) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		next.ServeHTTP(w, r.WithContext(WithContext(r.Context(), res.GetIP(r))))
	})
}

// forwardedFor walks the chain from the nearest hop and returns the first
// address not owned by a trusted proxy. When every hop is trusted the
// left-most one is the client.
func (res *Resolver) forwardedFor(values []string) (netip.Addr, bool) {
	var hops []netip.Addr
	for _, v := range values {
		for part := range strings.SplitSeq(v, ",") {
			if ip, ok := parseAddr(part); ok {
				hops = append(hops, ip)
			}
		}
	}
	for i := len(hops) - 1; i >= 0; i-- {
		if !res.trusts(hops[i]) {
			return hops[i], true
		}
	}
	if len(hops) > 0 {
		return hops[0], true
	}
	return netip.Addr{}, false
}

func (res *Resolver) trusts(ip netip.Addr) bool {
	for _, p := range res.trusted {
		if p.Contains(ip) {
			return true
		}
	}
	return false
}

func remoteAddr(s string) (netip.Addr, bool) {
	if host, _, err := net.SplitHostPort(s); err == nil {
		s = host
	}
	return parseAddr(s)
}

func parseAddr(s string) (netip.Addr, bool) {
	ip, err := netip.ParseAddr(strings.TrimSpace(s))
	if err != nil {
		return netip.Addr{}, false
	}
	return ip.Unmap().WithZone(""), true
}

func parsePrefixes(values []string) ([]netip.Prefix, error) {
	prefixes := make([]netip.Prefix, 0, len(values))
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" {
			continue
		}
		if strings.Contains(v, "/") {
			p, err := netip.ParsePrefix(v)
			if err != nil {
				return nil, fmt.Errorf("%w: %q: %v", ErrInvalidTrustedProxy, v, err)
			}
			prefixes = append(prefixes, p.Masked())
			continue
		}
		ip, ok := parseAddr(v)
		if !ok {
			return nil, fmt.Errorf("%w: %q", ErrInvalidTrustedProxy, v)
		}
		prefixes = append(prefixes, netip.PrefixFrom(ip, ip.BitLen()))
	}
	return prefixes, nil
}

type contextKey struct{}

func WithContext(ctx context.Context, ip string) context.Context {
	return context.WithValue(ctx, contextKey{}, ip)
}

func FromContext(ctx context.Context) string {
	ip, _ := ctx.Value(contextKey{}).(string)
	return ip
}
