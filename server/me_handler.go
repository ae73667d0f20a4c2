package server

import "net/http"

// mePayload is the identity surface the portal shell and other collaborators
// consume: "is this caller authenticated, and as whom".
type mePayload struct {
	DisplayName string   `json:"displayName,omitempty"`
	GivenName   string   `json:"givenName,omitempty"`
	FamilyName  string   `json:"familyName,omitempty"`
	Mail        string   `json:"mail,omitempty"`
	Roles       []string `json:"roles,omitempty"`
	AuthDate    string   `json:"authDate,omitempty"`
}

// MeHandler returns the authenticated caller's identity attributes
// (GET /api/me). The route sits behind the gate, so reaching the handler
// means the session already checked out.
func (s *Server) MeHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		session, ok := SessionFromContext(r.Context())
		if !ok {
			// Only possible if the route was wired without the gate
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		writeJSON(w, http.StatusOK, mePayload{
			DisplayName: session.User.DisplayName,
			GivenName:   session.User.GivenName,
			FamilyName:  session.User.FamilyName,
			Mail:        session.User.Mail,
			Roles:       session.User.Roles,
			AuthDate:    session.AuthDate,
		})
	}
}
