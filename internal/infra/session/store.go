package session

import (
	"sync"
	"time"

	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/pkg/clock"
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

// Store holds edit sessions in memory for the lifetime of a browser session.
// There is deliberately no durable backing: the remote backend is the system
// of record and a session dies with its TTL or an explicit logout.
type Store struct {
	// reads also take the exclusive lock: getLocked evicts expired entries
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	entries map[uuid.UUID]*entry
}

type entry struct {
	sess      *registration.EditSession
	expiresAt time.Time
}

func NewStore(cfg config.SessionConfig, clk clock.Clock) *Store {
	return &Store{
		ttl:     cfg.TTL,
		clock:   clk,
		entries: make(map[uuid.UUID]*entry),
	}
}

func (s *Store) Put(sess *registration.EditSession) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	s.entries[sess.ID] = &entry{
		sess:      sess,
		expiresAt: s.clock.Now().Add(s.ttl),
	}
}

// Update runs fn on the session under the store lock. fn must not block;
// backend calls happen between Update calls, which is what makes the
// edit-session generation guard meaningful.
func (s *Store) Update(id uuid.UUID, fn func(*registration.EditSession) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.getLocked(id)
	if err != nil {
		return err
	}
	e.expiresAt = s.clock.Now().Add(s.ttl)
	return fn(e.sess)
}

func (s *Store) Snapshot(id uuid.UUID) (registration.Snapshot, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.getLocked(id)
	if err != nil {
		return registration.Snapshot{}, err
	}
	return e.sess.Snapshot(), nil
}

// Document returns the latest confirmation document attached to a session.
func (s *Store) Document(id uuid.UUID) (string, []byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, err := s.getLocked(id)
	if err != nil {
		return "", nil, err
	}
	if len(e.sess.Document) == 0 {
		return "", nil, errs.ErrNoDocument
	}
	data := make([]byte, len(e.sess.Document))
	copy(data, e.sess.Document)
	return e.sess.DocumentName, data, nil
}

func (s *Store) Delete(id uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, id)
}

func (s *Store) getLocked(id uuid.UUID) (*entry, error) {
	e, ok := s.entries[id]
	if !ok {
		return nil, errs.ErrSessionNotFound
	}
	if s.clock.Now().After(e.expiresAt) {
		delete(s.entries, id)
		return nil, errs.ErrSessionExpired
	}
	return e, nil
}

func (s *Store) purgeLocked() {
	now := s.clock.Now()
	for id, e := range s.entries {
		if now.After(e.expiresAt) {
			delete(s.entries, id)
		}
	}
}
