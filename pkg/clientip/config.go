package clientip

// Config lists the proxies allowed to report the client address through
// forwarding headers. Requests from any other peer are keyed by RemoteAddr.
type Config struct {
	TrustedProxies []string `env:"CLIENTIP_TRUSTED_PROXIES" envSeparator:","` // CIDRs or bare IPs, e.g. 10.0.0.0/8,192.0.2.1
}

func (c Config) Validate() error {
	_, err := parsePrefixes(c.TrustedProxies)
	return err
}
