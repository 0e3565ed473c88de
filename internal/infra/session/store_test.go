//go:build unit

package session_test

import (
	"testing"
	"time"

	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/infra/session"
	"expo-gateway/internal/pkg/clock"
	"expo-gateway/internal/pkg/config"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(clk clock.Clock) *session.Store {
	return session.NewStore(config.SessionConfig{TTL: 30 * time.Minute}, clk)
}

func newEditSession() *registration.EditSession {
	return registration.NewEditSession("ana@example.com", builder.NewRecordBuilder().BuildDomain())
}

func TestStore(t *testing.T) {
	t.Run("put and snapshot round-trip", func(t *testing.T) {
		store := newStore(clock.NewRealClock())
		sess := newEditSession()
		store.Put(sess)

		snap, err := store.Snapshot(sess.ID)
		require.NoError(t, err)
		assert.Equal(t, sess.ID, snap.ID)
		assert.Equal(t, "ana@example.com", snap.Email)
	})

	t.Run("unknown id", func(t *testing.T) {
		store := newStore(clock.NewRealClock())
		_, err := store.Snapshot(uuid.New())
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("expires after the TTL", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := newStore(clk)
		sess := newEditSession()
		store.Put(sess)

		clk.Add(31 * time.Minute)

		_, err := store.Snapshot(sess.ID)
		assert.ErrorIs(t, err, errs.ErrSessionExpired)

		// gone for good, even if the clock were to rewind
		_, err = store.Snapshot(sess.ID)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})

	t.Run("update slides the TTL", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := newStore(clk)
		sess := newEditSession()
		store.Put(sess)

		clk.Add(20 * time.Minute)
		require.NoError(t, store.Update(sess.ID, func(*registration.EditSession) error { return nil }))
		clk.Add(20 * time.Minute)

		_, err := store.Snapshot(sess.ID)
		assert.NoError(t, err)
	})

	t.Run("update mutates under the store", func(t *testing.T) {
		store := newStore(clock.NewRealClock())
		sess := newEditSession()
		store.Put(sess)

		err := store.Update(sess.ID, func(s *registration.EditSession) error {
			_, _, err := s.ChangeSelection([]int64{2}, 5)
			return err
		})
		require.NoError(t, err)

		snap, err := store.Snapshot(sess.ID)
		require.NoError(t, err)
		assert.Equal(t, []int64{2}, snap.SelectedDays)
		assert.Equal(t, 5, snap.Attendees)
	})

	t.Run("delete removes the session", func(t *testing.T) {
		store := newStore(clock.NewRealClock())
		sess := newEditSession()
		store.Put(sess)
		store.Delete(sess.ID)

		_, err := store.Snapshot(sess.ID)
		assert.ErrorIs(t, err, errs.ErrSessionNotFound)
	})
}

func TestStoreDocument(t *testing.T) {
	store := newStore(clock.NewRealClock())
	sess := newEditSession()
	store.Put(sess)

	t.Run("no document attached", func(t *testing.T) {
		_, _, err := store.Document(sess.ID)
		assert.ErrorIs(t, err, errs.ErrNoDocument)
	})

	t.Run("returns a detached copy", func(t *testing.T) {
		require.NoError(t, store.Update(sess.ID, func(s *registration.EditSession) error {
			s.AttachDocument("Prijava_TOK-12345.pdf", []byte("%PDF-1.4"))
			return nil
		}))

		name, data, err := store.Document(sess.ID)
		require.NoError(t, err)
		assert.Equal(t, "Prijava_TOK-12345.pdf", name)

		data[0] = 'X'
		_, again, err := store.Document(sess.ID)
		require.NoError(t, err)
		assert.Equal(t, byte('%'), again[0])
	})
}

func TestConfirmationStore(t *testing.T) {
	newConfirmations := func(clk clock.Clock) *session.ConfirmationStore {
		return session.NewConfirmationStore(config.SessionConfig{ConfirmationTTL: 10 * time.Minute}, clk)
	}

	t.Run("take is single use", func(t *testing.T) {
		store := newConfirmations(clock.NewRealClock())
		pc := store.Put("register", uuid.Nil, "summary", "payload")

		got, err := store.Take(pc.ID)
		require.NoError(t, err)
		assert.Equal(t, "payload", got.Payload)

		_, err = store.Take(pc.ID)
		assert.ErrorIs(t, err, errs.ErrConfirmationNotFound)
	})

	t.Run("expired confirmation cannot be consumed", func(t *testing.T) {
		clk := clock.NewMockClock(time.Now())
		store := newConfirmations(clk)
		pc := store.Put("update", uuid.New(), "summary", "payload")

		clk.Add(11 * time.Minute)

		_, err := store.Take(pc.ID)
		assert.ErrorIs(t, err, errs.ErrConfirmationExpired)
	})

	t.Run("drop discards a session's confirmations only", func(t *testing.T) {
		store := newConfirmations(clock.NewRealClock())
		sessionID := uuid.New()
		mine := store.Put("cancel", sessionID, "summary", "payload")
		other := store.Put("cancel", uuid.New(), "summary", "payload")

		store.Drop(sessionID)

		_, err := store.Take(mine.ID)
		assert.ErrorIs(t, err, errs.ErrConfirmationNotFound)
		_, err = store.Take(other.ID)
		assert.NoError(t, err)
	})
}
