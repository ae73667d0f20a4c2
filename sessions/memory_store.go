package sessions

import (
	"fmt"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

var _ Store = (*MemoryStore)(nil)

// MemoryStore is the in-process session registry. The id map and the ticket
// index are guarded by a single lock so a concurrent create/delete pair can
// never leave one index pointing at an entry missing from the other.
type MemoryStore struct {
	sessions map[string]*Session
	tickets  map[string]string // Map CAS service tickets to session ids
	lock     sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		sessions: make(map[string]*Session),
		tickets:  make(map[string]string),
	}
}

func (ms *MemoryStore) Create(data NewSession) Session {
	session := &Session{
		ID:        newSessionID(),
		Ticket:    data.Ticket,
		User:      data.User,
		AuthDate:  data.AuthDate,
		ClientIP:  data.ClientIP,
		UAHash:    data.UAHash,
		CreatedAt: time.Now(),
	}

	ms.lock.Lock()
	defer ms.lock.Unlock()

	ms.sessions[session.ID] = session
	if session.Ticket != "" {
		// Re-pointing an already indexed ticket is intentional: the newest
		// session wins, the old one stays reachable by id only.
		ms.tickets[session.Ticket] = session.ID
	}
	return copySession(session)
}

func (ms *MemoryStore) Get(id string) (Session, bool) {
	ms.lock.RLock()
	defer ms.lock.RUnlock()

	session, ok := ms.sessions[id]
	if !ok {
		return Session{}, false
	}
	return copySession(session), true
}

func (ms *MemoryStore) DeleteByID(id string) bool {
	ms.lock.Lock()
	defer ms.lock.Unlock()
	return ms.deleteLocked(id)
}

func (ms *MemoryStore) DeleteByTicket(ticket string) bool {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	id, ok := ms.tickets[ticket]
	if !ok {
		return false
	}
	if !ms.deleteLocked(id) {
		// Index pointed at a session deleted through another path; drop the
		// stale entry but report nothing removed.
		delete(ms.tickets, ticket)
		return false
	}
	return true
}

func (ms *MemoryStore) FindIDByTicket(ticket string) (string, bool) {
	ms.lock.RLock()
	defer ms.lock.RUnlock()

	id, ok := ms.tickets[ticket]
	return id, ok
}

func (ms *MemoryStore) Clear() {
	ms.lock.Lock()
	defer ms.lock.Unlock()

	ms.sessions = make(map[string]*Session)
	ms.tickets = make(map[string]string)
}

func (ms *MemoryStore) deleteLocked(id string) bool {
	session, ok := ms.sessions[id]
	if !ok {
		return false
	}
	delete(ms.sessions, id)
	if session.Ticket != "" && ms.tickets[session.Ticket] == id {
		delete(ms.tickets, session.Ticket)
	}
	return true
}

func copySession(s *Session) Session {
	out := *s
	if s.User.Roles != nil {
		out.User.Roles = append([]string(nil), s.User.Roles...)
	}
	return out
}

// newSessionID returns a fresh UUID v4 string. If the crypto/rand source is
// unavailable it falls back to a pseudo-random id with the v4 bit layout,
// trading strict randomness for availability. The downgrade is never silent.
func newSessionID() string {
	id, err := uuid.NewRandom()
	if err != nil {
		log.Warn().Err(err).Msg("secure random source unavailable, using pseudo-random session id")
		return pseudoRandomUUID()
	}
	return id.String()
}

func pseudoRandomUUID() string {
	var b [16]byte
	for i := range b {
		b[i] = byte(rand.IntN(256))
	}
	b[6] = (b[6] & 0x0f) | 0x40 // version 4
	b[8] = (b[8] & 0x3f) | 0x80 // variant 10
	return fmt.Sprintf("%x-%x-%x-%x-%x", b[0:4], b[4:6], b[6:8], b[8:10], b[10:16])
}
