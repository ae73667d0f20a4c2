package config

type Cookie struct{}

var _ CookieConfig = Cookie{}

func (Cookie) GetSessionCookieName() string {
	return GetEnv("SESSION_COOKIE_NAME", "cas_user")
}

// GetSessionCookieMaxAge returns the session cookie lifetime in seconds.
// Default is 8 hours; the server-side session itself has no expiry.
func (Cookie) GetSessionCookieMaxAge() int {
	return 60 * 60 * 8
}
