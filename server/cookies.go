package server

import "net/http"

// SetSessionCookie sets the signed session cookie. HttpOnly keeps it away
// from page scripts; SameSite=Lax still lets the CAS login redirect carry it.
func (s *Server) SetSessionCookie(w http.ResponseWriter, value string) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetSessionCookieName(),
		Value:    value,
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   s.config.GetSessionCookieMaxAge(),
	})
}

// ClearSessionCookie expires the session cookie. Attributes must match the
// ones used when setting it or browsers keep the old cookie around.
func (s *Server) ClearSessionCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.config.GetSessionCookieName(),
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1, // serialized as Max-Age=0
	})
}
