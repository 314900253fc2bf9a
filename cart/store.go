package cart

import (
	"sync"

	"github.com/google/uuid"
)

// Store holds one Session per operator login, keyed by the session ID minted
// at login. Everything lives in memory and dies with the process: a cart has
// no identity beyond the operator's session. The mutex serializes mutations
// the way the UI serializes clicks.
type Store struct {
	mu       sync.Mutex
	sessions map[uuid.UUID]Session
}

func NewStore() *Store {
	return &Store{sessions: make(map[uuid.UUID]Session)}
}

func (st *Store) Get(id uuid.UUID) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		return NewSession()
	}
	return s
}

// Update applies a pure transition to the stored session under the lock and
// returns the resulting state.
func (st *Store) Update(id uuid.UUID, fn func(Session) Session) Session {
	st.mu.Lock()
	defer st.mu.Unlock()

	s, ok := st.sessions[id]
	if !ok {
		s = NewSession()
	}
	s = fn(s)
	st.sessions[id] = s
	return s
}

// Clear discards the session's cart, used on checkout success, explicit
// clear, and logout.
func (st *Store) Clear(id uuid.UUID) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}
