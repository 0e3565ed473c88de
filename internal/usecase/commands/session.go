package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/domain/schedule"
	"expo-gateway/internal/pkg/clock"
	"expo-gateway/internal/pkg/document"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/pkg/jwt"
	"expo-gateway/internal/usecase/readmodel"
	"expo-gateway/internal/usecase/shared"

	"github.com/google/uuid"
)

// priceRecalcFailed is held in the session state so the detail view can show
// it next to the price placeholder; it mirrors the original client copy.
const priceRecalcFailed = "Ne mogu da izračunam novu cenu."

const cancelSummary = "Otkazivanjem prijave vaš token postaje nevažeći. Nastaviti?"

type LoginResult struct {
	SessionID   uuid.UUID
	CookieToken string
	Session     *readmodel.SessionRM
}

// SessionCommands drive the manage flow: login-by-token, edit reconciliation
// against the pricing oracle, and the update/cancel confirmation workflows.
type SessionCommands interface {
	Login(ctx context.Context, email, token string) (*LoginResult, error)
	ChangeSelection(ctx context.Context, id uuid.UUID, dayIDs []int64, attendees int) (*readmodel.SessionRM, error)
	QuoteUpdate(ctx context.Context, id uuid.UUID) (*QuoteResult, error)
	ConfirmUpdate(ctx context.Context, id, confirmationID uuid.UUID) (*readmodel.SessionRM, error)
	QuoteCancel(ctx context.Context, id uuid.UUID) (*QuoteResult, error)
	ConfirmCancel(ctx context.Context, id, confirmationID uuid.UUID) (*readmodel.SessionRM, error)
	Dismiss(ctx context.Context, id uuid.UUID) (*readmodel.SessionRM, error)
	Logout(ctx context.Context, id uuid.UUID) error
}

type updatePayload struct {
	Token     string
	Email     string
	DayIDs    []int64
	Attendees int
}

type cancelPayload struct {
	Token string
	Email string
}

type sessionCommandsImpl struct {
	gateway       shared.ExpoGateway
	store         SessionWriteStore
	confirmations ConfirmationStore
	jwtService    *jwt.Service
	clock         clock.Clock
}

func NewSessionCommands(
	gateway shared.ExpoGateway,
	store SessionWriteStore,
	confirmations ConfirmationStore,
	jwtService *jwt.Service,
	clk clock.Clock,
) SessionCommands {
	return &sessionCommandsImpl{
		gateway:       gateway,
		store:         store,
		confirmations: confirmations,
		jwtService:    jwtService,
		clock:         clk,
	}
}

func (s *sessionCommandsImpl) Login(ctx context.Context, email, token string) (*LoginResult, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	token = strings.TrimSpace(token)

	record, err := s.gateway.Login(ctx, email, token)
	if err != nil {
		return nil, err
	}

	sess := registration.NewEditSession(email, *record)
	s.store.Put(sess)

	cookieToken, err := s.jwtService.GenerateToken(sess.ID, email)
	if err != nil {
		s.store.Delete(sess.ID)
		return nil, errs.Wrap(err, "signing session token")
	}

	rm, err := readmodel.NewSessionRM(sess.Snapshot())
	if err != nil {
		return nil, errs.Wrap(err, "building session read model")
	}
	return &LoginResult{
		SessionID:   sess.ID,
		CookieToken: cookieToken,
		Session:     rm,
	}, nil
}

// ChangeSelection applies a day/attendee edit and reconciles the candidate
// price. The oracle round-trip happens outside the store lock; the session
// generation recorded before the call decides on arrival whether the result
// is still current, so a slow response never overwrites a fresher edit.
func (s *sessionCommandsImpl) ChangeSelection(ctx context.Context, id uuid.UUID, dayIDs []int64, attendees int) (*readmodel.SessionRM, error) {
	var (
		gen       uint64
		recompute bool
		req       shared.PriceRequest
	)
	err := s.store.Update(id, func(sess *registration.EditSession) error {
		var err error
		gen, recompute, err = sess.ChangeSelection(dayIDs, attendees)
		if err != nil {
			return err
		}
		if recompute {
			req = shared.PriceRequest{
				Attendees: sess.Attendees,
				DayIDs:    append([]int64(nil), sess.SelectedDays...),
				Token:     sess.Record.Token,
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if recompute {
		price, priceErr := s.gateway.ComputePrice(ctx, req)
		applyErr := s.store.Update(id, func(sess *registration.EditSession) error {
			if priceErr != nil {
				if !sess.ApplyPriceError(gen, priceRecalcFailed) {
					slog.Debug("discarded stale price error", "session_id", id, "generation", gen)
				}
				return nil
			}
			if !sess.ApplyPrice(gen, price) {
				slog.Debug("discarded stale price", "session_id", id, "generation", gen)
			}
			return nil
		})
		if applyErr != nil {
			return nil, applyErr
		}
	}

	return s.sessionRM(id)
}

func (s *sessionCommandsImpl) QuoteUpdate(ctx context.Context, id uuid.UUID) (*QuoteResult, error) {
	// Day labels for the summary come from the schedule snapshot; without it
	// the raw ids are still shown.
	info, err := s.gateway.FetchEventInfo(ctx)
	if err != nil {
		info = nil
	}

	var (
		payload updatePayload
		summary string
		price   *float64
	)
	err = s.store.Update(id, func(sess *registration.EditSession) error {
		if err := sess.BeginConfirmUpdate(); err != nil {
			return err
		}
		payload = updatePayload{
			Token:     sess.Record.Token,
			Email:     sess.Email,
			DayIDs:    append([]int64(nil), sess.SelectedDays...),
			Attendees: sess.Attendees,
		}
		if sess.CandidatePrice != nil {
			p := *sess.CandidatePrice
			price = &p
		}
		summary = updateSummary(info, payload, price)
		return nil
	})
	if err != nil {
		return nil, err
	}

	pc := s.confirmations.Put(kindUpdate, id, summary, payload)
	return &QuoteResult{ConfirmationID: pc.ID, Summary: summary, FinalPrice: price}, nil
}

func (s *sessionCommandsImpl) ConfirmUpdate(ctx context.Context, id, confirmationID uuid.UUID) (*readmodel.SessionRM, error) {
	pc, err := s.confirmations.Take(confirmationID)
	if err != nil {
		return nil, err
	}
	payload, ok := pc.Payload.(updatePayload)
	if !ok || pc.Kind != kindUpdate || pc.SessionID != id {
		return nil, errs.ErrConfirmationNotFound
	}

	if err := s.store.Update(id, func(sess *registration.EditSession) error {
		return sess.BeginSubmit()
	}); err != nil {
		return nil, err
	}

	res, err := s.gateway.Update(ctx, shared.UpdateRequest{
		Token:     payload.Token,
		Email:     payload.Email,
		DayIDs:    payload.DayIDs,
		Attendees: payload.Attendees,
	})
	if err != nil {
		if failErr := s.store.Update(id, func(sess *registration.EditSession) error {
			sess.FailSubmit()
			return nil
		}); failErr != nil {
			return nil, failErr
		}
		return nil, err
	}

	if err := s.store.Update(id, func(sess *registration.EditSession) error {
		sess.CompleteUpdate(*res)

		doc, renderErr := document.Render(document.Data{
			Token:         sess.Record.Token,
			Email:         sess.Email,
			Attendees:     sess.Record.Attendees,
			DayIDs:        sess.Record.DayIDs,
			OriginalPrice: sess.Record.OriginalPrice,
			FinalPrice:    sess.Record.FinalPrice,
			Title:         document.TitleUpdate,
			IssuedAt:      s.clock.Now(),
		})
		if renderErr != nil {
			slog.Error("failed to render updated confirmation document", "error", renderErr, "token", sess.Record.Token)
			return nil
		}
		sess.AttachDocument(document.FileName(sess.Record.Token), doc)
		return nil
	}); err != nil {
		return nil, err
	}

	return s.sessionRM(id)
}

func (s *sessionCommandsImpl) QuoteCancel(_ context.Context, id uuid.UUID) (*QuoteResult, error) {
	var payload cancelPayload
	err := s.store.Update(id, func(sess *registration.EditSession) error {
		if err := sess.BeginConfirmCancel(); err != nil {
			return err
		}
		payload = cancelPayload{Token: sess.Record.Token, Email: sess.Email}
		return nil
	})
	if err != nil {
		return nil, err
	}

	pc := s.confirmations.Put(kindCancel, id, cancelSummary, payload)
	return &QuoteResult{ConfirmationID: pc.ID, Summary: cancelSummary}, nil
}

func (s *sessionCommandsImpl) ConfirmCancel(ctx context.Context, id, confirmationID uuid.UUID) (*readmodel.SessionRM, error) {
	pc, err := s.confirmations.Take(confirmationID)
	if err != nil {
		return nil, err
	}
	payload, ok := pc.Payload.(cancelPayload)
	if !ok || pc.Kind != kindCancel || pc.SessionID != id {
		return nil, errs.ErrConfirmationNotFound
	}

	if err := s.store.Update(id, func(sess *registration.EditSession) error {
		return sess.BeginSubmit()
	}); err != nil {
		return nil, err
	}

	if err := s.gateway.Cancel(ctx, payload.Token, payload.Email); err != nil {
		if failErr := s.store.Update(id, func(sess *registration.EditSession) error {
			sess.FailSubmit()
			return nil
		}); failErr != nil {
			return nil, failErr
		}
		return nil, err
	}

	if err := s.store.Update(id, func(sess *registration.EditSession) error {
		sess.CompleteCancel()
		return nil
	}); err != nil {
		return nil, err
	}

	return s.sessionRM(id)
}

func (s *sessionCommandsImpl) Dismiss(_ context.Context, id uuid.UUID) (*readmodel.SessionRM, error) {
	s.confirmations.Drop(id)
	if err := s.store.Update(id, func(sess *registration.EditSession) error {
		sess.DismissConfirmation()
		return nil
	}); err != nil {
		return nil, err
	}
	return s.sessionRM(id)
}

func (s *sessionCommandsImpl) Logout(_ context.Context, id uuid.UUID) error {
	s.confirmations.Drop(id)
	s.store.Delete(id)
	return nil
}

func (s *sessionCommandsImpl) sessionRM(id uuid.UUID) (*readmodel.SessionRM, error) {
	snap, err := s.store.Snapshot(id)
	if err != nil {
		return nil, err
	}
	rm, err := readmodel.NewSessionRM(snap)
	if err != nil {
		return nil, errs.Wrap(err, "building session read model")
	}
	return rm, nil
}

func updateSummary(info *schedule.EventInfo, payload updatePayload, price *float64) string {
	labels := make([]string, len(payload.DayIDs))
	for i, dayID := range payload.DayIDs {
		if info != nil {
			labels[i] = info.DayLabel(dayID)
		} else {
			labels[i] = fmt.Sprintf("#%d", dayID)
		}
	}
	priceText := "—"
	if price != nil {
		priceText = fmt.Sprintf("%.2f RSD", *price)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Broj osoba: %d\n", payload.Attendees)
	fmt.Fprintf(&b, "Dani:\n- %s\n\n", strings.Join(labels, "\n- "))
	fmt.Fprintf(&b, "Nova finalna cena: %s\n\n", priceText)
	b.WriteString("Želite li da sačuvate izmene?")
	return b.String()
}
