// Package core holds the HTTP error vocabulary shared by handlers and
// middleware. Each HTTPError pairs a status code with the key rendered as the
// "code" field of JSON error bodies.
package core
