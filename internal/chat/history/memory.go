package history

import (
	"context"
	"sync"
	"time"
)

// MemoryStore is the single-instance default. Access is mutex-guarded;
// a sweeper drops sessions idle longer than the TTL and runs until
// Close is called.
type MemoryStore struct {
	mu       sync.Mutex
	sessions map[string]*session
	ttl      time.Duration

	done      chan struct{}
	closeOnce sync.Once
}

type session struct {
	entries []string
	touched time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	s := &MemoryStore{
		sessions: make(map[string]*session),
		ttl:      ttl,
		done:     make(chan struct{}),
	}

	go s.sweep()
	return s
}

// Close stops the sweeper goroutine. The store itself stays usable.
func (s *MemoryStore) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *MemoryStore) Append(_ context.Context, sessionID string, entry string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		sess = &session{}
		s.sessions[sessionID] = sess
	}

	sess.entries = append(sess.entries, entry)
	if len(sess.entries) > MaxEntries {
		sess.entries = sess.entries[len(sess.entries)-MaxEntries:]
	}
	sess.touched = time.Now()

	return nil
}

func (s *MemoryStore) Recent(_ context.Context, sessionID string, n int) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess, ok := s.sessions[sessionID]
	if !ok {
		return nil, nil
	}

	entries := sess.entries
	if len(entries) > n {
		entries = entries[len(entries)-n:]
	}

	out := make([]string, len(entries))
	copy(out, entries)
	return out, nil
}

func (s *MemoryStore) sweep() {
	interval := s.ttl
	if interval <= 0 {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-s.done:
			return
		case <-ticker.C:
		}

		cutoff := time.Now().Add(-s.ttl)

		s.mu.Lock()
		for id, sess := range s.sessions {
			if sess.touched.Before(cutoff) {
				delete(s.sessions, id)
			}
		}
		s.mu.Unlock()
	}
}

// Compile-time check
var _ Store = (*MemoryStore)(nil)
