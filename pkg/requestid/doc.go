// Package requestid assigns every HTTP request an identifier, exposes it via
// the X-Request-ID response header and the request context, and feeds it to
// the logger so all records of one request can be correlated.
package requestid
