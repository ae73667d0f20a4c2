package server

import (
	"net/http"

	"github.com/rs/zerolog/log"

	"github.com/campushub/portal/cookiesig"
)

// LogoutHandler ends the local session (GET /api/auth/logout?redirect=...).
//
// The cookie's id half is used without signature verification: logout is
// idempotent and the worst a forged value achieves is deleting a session
// that does not exist.
func (s *Server) LogoutHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		redirectTo := r.URL.Query().Get("redirect")
		if redirectTo == "" {
			redirectTo = "/"
		}

		if cookie, err := r.Cookie(s.config.GetSessionCookieName()); err == nil {
			if sid := cookiesig.SessionIDFromCookie(cookie.Value); sid != "" {
				removed := s.store.DeleteByID(sid)
				log.Info().Str("sid", sessionIDPrefix(sid)).Bool("removed", removed).Msg("logout")
			}
		}

		s.ClearSessionCookie(w)
		http.Redirect(w, r, redirectTo, http.StatusFound)
	}
}
