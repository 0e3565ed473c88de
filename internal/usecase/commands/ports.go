package commands

import (
	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/infra/session"

	"github.com/google/uuid"
)

// Confirmation kinds of the shared quote→confirm protocol.
const (
	kindRegister = "register"
	kindUpdate   = "update"
	kindCancel   = "cancel"
)

// SessionWriteStore is the write side of the edit-session store. Update
// serializes access to one session; callers keep backend round-trips outside
// of it.
type SessionWriteStore interface {
	Put(sess *registration.EditSession)
	Update(id uuid.UUID, fn func(*registration.EditSession) error) error
	Snapshot(id uuid.UUID) (registration.Snapshot, error)
	Delete(id uuid.UUID)
}

type ConfirmationStore interface {
	Put(kind string, sessionID uuid.UUID, summary string, payload any) *session.PendingConfirmation
	Take(id uuid.UUID) (*session.PendingConfirmation, error)
	Drop(sessionID uuid.UUID)
}

// QuoteResult is the reviewable half of the two-step commit: a summary the
// user must explicitly acknowledge, and the confirmation id that the commit
// request has to present. FinalPrice is nil for cancellations.
type QuoteResult struct {
	ConfirmationID uuid.UUID
	Summary        string
	FinalPrice     *float64
}
