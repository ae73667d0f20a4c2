package sessions

// Store defines the interface for session storage operations.
// Sessions live for the process lifetime only; there is no persistence and
// no expiry sweep, so a restart forces re-authentication everywhere.
type Store interface {
	// Create stores a new session with a freshly generated id. It never fails.
	Create(data NewSession) Session

	// Get retrieves a copy of a session by id
	Get(id string) (Session, bool)

	// DeleteByID removes a session and its ticket index entry, reporting
	// whether a session was actually removed
	DeleteByID(id string) bool

	// DeleteByTicket resolves the ticket index and removes the session it
	// points at, reporting whether anything was removed
	DeleteByTicket(ticket string) bool

	// FindIDByTicket is a pure index lookup with no side effects
	FindIDByTicket(ticket string) (string, bool)

	// Clear wipes all sessions and the ticket index
	Clear()
}
