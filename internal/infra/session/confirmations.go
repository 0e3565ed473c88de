package session

import (
	"sync"
	"time"

	"expo-gateway/internal/pkg/clock"
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/pkg/errs"

	"github.com/google/uuid"
)

// PendingConfirmation binds a computed price and human-readable summary to
// the exact payload that will be submitted when the user confirms. A
// confirmation is single-use and expires on its own.
type PendingConfirmation struct {
	ID        uuid.UUID
	Kind      string
	SessionID uuid.UUID // uuid.Nil for the new-registration flow
	Summary   string
	Payload   any
	ExpiresAt time.Time
}

type ConfirmationStore struct {
	mu      sync.Mutex
	ttl     time.Duration
	clock   clock.Clock
	pending map[uuid.UUID]*PendingConfirmation
}

func NewConfirmationStore(cfg config.SessionConfig, clk clock.Clock) *ConfirmationStore {
	return &ConfirmationStore{
		ttl:     cfg.ConfirmationTTL,
		clock:   clk,
		pending: make(map[uuid.UUID]*PendingConfirmation),
	}
}

func (s *ConfirmationStore) Put(kind string, sessionID uuid.UUID, summary string, payload any) *PendingConfirmation {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.purgeLocked()
	pc := &PendingConfirmation{
		ID:        uuid.New(),
		Kind:      kind,
		SessionID: sessionID,
		Summary:   summary,
		Payload:   payload,
		ExpiresAt: s.clock.Now().Add(s.ttl),
	}
	s.pending[pc.ID] = pc
	return pc
}

// Take removes and returns the confirmation; each one can be consumed once.
func (s *ConfirmationStore) Take(id uuid.UUID) (*PendingConfirmation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	pc, ok := s.pending[id]
	if !ok {
		return nil, errs.ErrConfirmationNotFound
	}
	delete(s.pending, id)
	if s.clock.Now().After(pc.ExpiresAt) {
		return nil, errs.ErrConfirmationExpired
	}
	return pc, nil
}

// Drop discards any pending confirmations for a session, used when the user
// dismisses a dialog or the session ends.
func (s *ConfirmationStore) Drop(sessionID uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for id, pc := range s.pending {
		if pc.SessionID == sessionID {
			delete(s.pending, id)
		}
	}
}

func (s *ConfirmationStore) purgeLocked() {
	now := s.clock.Now()
	for id, pc := range s.pending {
		if now.After(pc.ExpiresAt) {
			delete(s.pending, id)
		}
	}
}
