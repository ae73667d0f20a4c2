package sessions

import "time"

// UserAttributes holds the identity attributes reported by CAS for a user.
// Every field is optional: a zero value means "unknown", not "empty".
type UserAttributes struct {
	DisplayName string
	GivenName   string
	FamilyName  string
	Mail        string
	Roles       []string
}

// Session binds an opaque identifier to a verified identity and the security
// fingerprint of the browser that established it.
type Session struct {
	ID        string         // Unique session identifier (UUID)
	Ticket    string         // CAS service ticket that produced this session (may be empty)
	User      UserAttributes // Identity attributes from the CAS validation response
	AuthDate  string         // Authentication timestamp reported by CAS
	ClientIP  string         // Client IP reported by CAS (may be empty)
	UAHash    string         // Keyed hash of the browser's User-Agent at creation time
	CreatedAt time.Time      // When the session was created
}

// NewSession carries the inputs for Store.Create. The ID and CreatedAt fields
// of the resulting Session are always generated by the store.
type NewSession struct {
	Ticket   string
	User     UserAttributes
	AuthDate string
	ClientIP string
	UAHash   string
}
