package jwt

import "context"

type payloadContextKey struct{}

// WithPayload stores a verified payload in ctx.
func WithPayload(ctx context.Context, p *Payload) context.Context {
	return context.WithValue(ctx, payloadContextKey{}, p)
}

// PayloadFromContext returns the payload stored by WithPayload.
func PayloadFromContext(ctx context.Context) (*Payload, bool) {
	p, ok := ctx.Value(payloadContextKey{}).(*Payload)
	return p, ok && p != nil
}
