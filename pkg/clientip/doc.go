// Package clientip resolves the client address of an HTTP request for use as
// a rate-limit key and in logs.
//
// Forwarding headers (CF-Connecting-IP, X-Forwarded-For, X-Real-IP) are only
// read when the connection comes from a proxy listed in Config.TrustedProxies.
// Every other request is identified by its RemoteAddr, so a client cannot
// pick its own key by sending those headers.
//
//	res, err := clientip.New(clientip.Config{TrustedProxies: []string{"10.0.0.0/8"}})
//	if err != nil {
//		return err
//	}
//	r.Use(res.Middleware)
package clientip
