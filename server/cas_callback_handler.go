package server

import (
	"net/http"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/campushub/portal/sessions"
)

// CasCallbackHandler is where CAS sends the browser back after login
// (GET /api/auth/cas/callback?ticket=...&redirect=...).
//
// The response is a redirect to the requested destination in every case.
// Validation failures change nothing server-side and are logged only: an
// unauthenticated browser gets no diagnostic detail, it just arrives at the
// destination without a session and will be challenged again.
func (s *Server) CasCallbackHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ticket := r.URL.Query().Get("ticket")
		redirectTo := r.URL.Query().Get("redirect")
		if redirectTo == "" {
			redirectTo = "/"
		}

		// No ticket means the request is not returning from login
		if ticket == "" {
			http.Redirect(w, r, redirectTo, http.StatusFound)
			return
		}

		// The service URL must reproduce, byte for byte, the one presented
		// to CAS during the login redirect, redirect parameter included.
		service := s.serviceURL(redirectTo)

		attrs, err := s.validator.Validate(r.Context(), ticket, service)
		if err != nil {
			ticketValidations.WithLabelValues("failed").Inc()
			http.Redirect(w, r, redirectTo, http.StatusFound)
			return
		}
		ticketValidations.WithLabelValues("success").Inc()

		authDate := attrs.AuthDate
		if authDate == "" {
			authDate = time.Now().Format(time.RFC3339)
		}

		session := s.store.Create(sessions.NewSession{
			Ticket:   ticket,
			User:     attrs.User,
			AuthDate: authDate,
			ClientIP: attrs.ClientIP,
			UAHash:   s.codec.UAHash(r.UserAgent()),
		})

		log.Info().
			Str("sid", sessionIDPrefix(session.ID)).
			Str("user", session.User.Mail).
			Msg("session established")

		s.SetSessionCookie(w, s.codec.Encode(session.ID))
		http.Redirect(w, r, redirectTo, http.StatusFound)
	}
}
