package server

import (
	"encoding/json"
	"io"
	"net/http"
	"regexp"

	"github.com/rs/zerolog/log"

	"github.com/campushub/portal/internal/errors"
)

// CAS single-logout payloads are SAML-ish XML; the only part this service
// needs is the SessionIndex element carrying the original service ticket.
var sessionIndexPattern = regexp.MustCompile(`(?i)<SessionIndex>([^<]+)</SessionIndex>`)

// sloMaxBodyBytes bounds the SLO request body; real payloads are a few
// hundred bytes.
const sloMaxBodyBytes = 64 << 10

// SloHandler processes CAS's asynchronous single-logout notification
// (POST /api/auth/cas/slo). A missing SessionIndex is the one failure the
// client gets to see, so the CAS server's retry logic can tell a malformed
// request from a silently accepted one.
func (s *Server) SloHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		body, err := io.ReadAll(io.LimitReader(r.Body, sloMaxBodyBytes))
		if err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "unreadable body"})
			return
		}

		m := sessionIndexPattern.FindSubmatch(body)
		if m == nil {
			log.Warn().Err(errors.ErrMissingSessionIndex).Msg("rejecting SLO payload")
			writeJSON(w, http.StatusBadRequest, map[string]any{"error": "no SessionIndex"})
			return
		}
		ticket := string(m[1])

		// Absence is not an error: the session may already be gone through
		// local logout or a restart.
		removed := s.store.DeleteByTicket(ticket)
		if removed {
			sloRemovals.Inc()
		}
		log.Info().Str("ticket", ticketPrefix(ticket)).Bool("removed", removed).Msg("SLO processed")

		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "removed": removed})
	}
}

// SloProbeHandler answers GET on the SLO route so the CAS side can verify
// the endpoint is alive.
func (s *Server) SloProbeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{"ok": true, "message": "CAS SLO endpoint"})
	}
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

// ticketPrefix truncates a ticket for logging
func ticketPrefix(ticket string) string {
	if len(ticket) <= 10 {
		return ticket
	}
	return ticket[:10] + "..."
}
