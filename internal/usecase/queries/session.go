package queries

import (
	"context"

	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/usecase/readmodel"

	"github.com/google/uuid"
)

// SessionReadStore is the read side of the edit-session store.
type SessionReadStore interface {
	Snapshot(id uuid.UUID) (registration.Snapshot, error)
	Document(id uuid.UUID) (string, []byte, error)
}

type SessionQueries interface {
	GetSession(ctx context.Context, id uuid.UUID) (*readmodel.SessionRM, error)
	GetDocument(ctx context.Context, id uuid.UUID) (name string, data []byte, err error)
}

type sessionQueriesImpl struct {
	store SessionReadStore
}

func NewSessionQueries(store SessionReadStore) SessionQueries {
	return &sessionQueriesImpl{store: store}
}

func (q *sessionQueriesImpl) GetSession(_ context.Context, id uuid.UUID) (*readmodel.SessionRM, error) {
	snap, err := q.store.Snapshot(id)
	if err != nil {
		return nil, err
	}
	rm, err := readmodel.NewSessionRM(snap)
	if err != nil {
		return nil, errs.Wrap(err, "building session read model")
	}
	return rm, nil
}

func (q *sessionQueriesImpl) GetDocument(_ context.Context, id uuid.UUID) (string, []byte, error) {
	return q.store.Document(id)
}
