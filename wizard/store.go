package wizard

import (
	"sync"
	"time"
)

// Store keeps active sessions in memory only. Drafts are deliberately never
// persisted: whatever the outcome, an abandoned draft must be gone, so there
// is nothing to write to Mongo or Redis here.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	ttl      time.Duration
	stop     chan struct{}
	once     sync.Once
}

const DefaultSessionTTL = 30 * time.Minute

// NewStore starts a background sweep that evicts finished and idle sessions.
func NewStore(ttl time.Duration) *Store {
	if ttl <= 0 {
		ttl = DefaultSessionTTL
	}
	st := &Store{
		sessions: make(map[string]*Session),
		ttl:      ttl,
		stop:     make(chan struct{}),
	}
	go st.sweep()
	return st
}

func (st *Store) Add(s *Session) {
	st.mu.Lock()
	defer st.mu.Unlock()
	st.sessions[s.ID] = s
}

func (st *Store) Get(id string) (*Session, bool) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	s, ok := st.sessions[id]
	return s, ok
}

func (st *Store) Remove(id string) {
	st.mu.Lock()
	defer st.mu.Unlock()
	delete(st.sessions, id)
}

func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func (st *Store) Close() {
	st.once.Do(func() { close(st.stop) })
}

func (st *Store) sweep() {
	interval := st.ttl / 2
	if interval > time.Minute {
		interval = time.Minute
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-st.stop:
			return
		case now := <-ticker.C:
			st.evictStale(now)
		}
	}
}

func (st *Store) evictStale(now time.Time) {
	st.mu.Lock()
	defer st.mu.Unlock()
	for id, s := range st.sessions {
		if s.finished() || s.idleSince(now) > st.ttl {
			delete(st.sessions, id)
		}
	}
}
