package session

type Config struct {
	AccessCookieName  string `env:"SESSION_ACCESS_COOKIE" envDefault:"access_token"`     // AccessCookieName is the access token cookie, scoped to "/".
	RefreshCookieName string `env:"SESSION_REFRESH_COOKIE" envDefault:"refresh_token"`   // RefreshCookieName is the refresh token cookie.
	RefreshPath       string `env:"SESSION_REFRESH_PATH" envDefault:"/api/auth/refresh"` // RefreshPath limits the refresh cookie to the refresh endpoint.
	AuthHeader        string `env:"SESSION_AUTH_HEADER" envDefault:"Authorization"`      // AuthHeader carries "Bearer <token>".
}

func DefaultConfig() Config {
	return Config{
		AccessCookieName:  "access_token",
		RefreshCookieName: "refresh_token",
		RefreshPath:       "/api/auth/refresh",
		AuthHeader:        "Authorization",
	}
}
