package chat

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
)

// Session is one assistant conversation. Turns are append-only. Submissions
// are serialized by a dedicated lock so at most one remote call is in flight
// per session, mirroring the single disabled submit control of the UI; the
// transcript lock is only ever held briefly, so reads never wait on the
// network.
type Session struct {
	ID string

	submitMu sync.Mutex

	mu         sync.Mutex
	turns      []Turn
	lastActive time.Time
}

// Append adds turns to the transcript and returns the new length.
func (s *Session) Append(turns ...Turn) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.turns = append(s.turns, turns...)
	s.lastActive = time.Now()
	return len(s.turns)
}

// Turns returns a copy of the transcript in insertion order.
func (s *Session) Turns() []Turn {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Turn, len(s.turns))
	copy(out, s.turns)
	return out
}

// Len returns the transcript length.
func (s *Session) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.turns)
}

// BeginSubmit claims the session's single submission slot; a concurrent
// submission blocks here until the first one finishes. Release with EndSubmit.
func (s *Session) BeginSubmit() { s.submitMu.Lock() }

// EndSubmit releases the submission slot.
func (s *Session) EndSubmit() { s.submitMu.Unlock() }

// Store keeps live sessions in memory. Sessions idle past the TTL are swept;
// deleting a session is the navigation-away analogue and drops the transcript.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	idleTTL  time.Duration
}

// DefaultIdleTTL is how long an untouched session survives before sweeping.
const DefaultIdleTTL = 30 * time.Minute

// NewStore creates a session store with the given idle TTL.
func NewStore(idleTTL time.Duration) *Store {
	if idleTTL <= 0 {
		idleTTL = DefaultIdleTTL
	}
	return &Store{
		sessions: make(map[string]*Session),
		idleTTL:  idleTTL,
	}
}

// Create registers a new empty session.
func (st *Store) Create() *Session {
	s := &Session{
		ID:         uuid.New().String(),
		lastActive: time.Now(),
	}
	st.mu.Lock()
	st.sessions[s.ID] = s
	st.mu.Unlock()
	return s
}

// Get returns the session with the given ID, or nil.
func (st *Store) Get(id string) *Session {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return st.sessions[id]
}

// Delete removes a session and its transcript.
func (st *Store) Delete(id string) {
	st.mu.Lock()
	delete(st.sessions, id)
	st.mu.Unlock()
}

// Len returns the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

// Sweep drops sessions idle past the TTL and returns how many were removed.
func (st *Store) Sweep() int {
	cutoff := time.Now().Add(-st.idleTTL)

	st.mu.Lock()
	defer st.mu.Unlock()

	removed := 0
	for id, s := range st.sessions {
		s.mu.Lock()
		idle := s.lastActive.Before(cutoff)
		s.mu.Unlock()
		if idle {
			delete(st.sessions, id)
			removed++
		}
	}
	return removed
}

// StartSweeper sweeps on the given interval until ctx is cancelled.
func (st *Store) StartSweeper(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			st.Sweep()
		}
	}
}
