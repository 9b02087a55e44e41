// Package session moves tokens between HTTP requests/responses and the
// server. Transports are small composable pieces: CookieTransport stores a
// token in a path-scoped cookie, HeaderSource reads "Bearer <token>" from
// a header, and Chain looks tokens up in a fixed order.
//
// CookieManager combines them into the access/refresh cookie pair used by
// the authentication service.
package session
