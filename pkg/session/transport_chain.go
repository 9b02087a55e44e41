package session

import "net/http"

// Chain tries each source in order and returns the first token found.
type Chain []TokenSource

func NewChain(sources ...TokenSource) Chain {
	return Chain(sources)
}

func (c Chain) GetToken(r *http.Request) (string, error) {
	for _, src := range c {
		if token, err := src.GetToken(r); err == nil && token != "" {
			return token, nil
		}
	}
	return "", ErrTokenNotFound
}
