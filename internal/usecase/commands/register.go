package commands

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"expo-gateway/internal/pkg/clock"
	"expo-gateway/internal/pkg/document"
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/usecase/shared"

	"github.com/google/uuid"
)

type RegisterOutcome struct {
	Token              string
	OriginalPrice      float64
	FinalPrice         float64
	GeneratedPromoCode string
	DocumentName       string
	Document           []byte
}

// RegistrationCommands run the new-registration confirmation workflow:
// Quote validates the form and obtains an authoritative price, Confirm
// submits the exact payload the quote was bound to.
type RegistrationCommands interface {
	Quote(ctx context.Context, form shared.RegisterForm) (*QuoteResult, error)
	Confirm(ctx context.Context, confirmationID uuid.UUID) (*RegisterOutcome, error)
}

type registerPayload struct {
	Form       shared.RegisterForm
	FinalPrice float64
}

type registrationCommandsImpl struct {
	gateway       shared.ExpoGateway
	confirmations ConfirmationStore
	clock         clock.Clock
}

func NewRegistrationCommands(gateway shared.ExpoGateway, confirmations ConfirmationStore, clk clock.Clock) RegistrationCommands {
	return &registrationCommandsImpl{
		gateway:       gateway,
		confirmations: confirmations,
		clock:         clk,
	}
}

func (r *registrationCommandsImpl) Quote(ctx context.Context, form shared.RegisterForm) (*QuoteResult, error) {
	if len(form.DayIDs) == 0 {
		return nil, errs.ErrNoDaysSelected
	}
	if form.Attendees < 1 {
		return nil, errs.ErrInvalidAttendees
	}

	info, err := r.gateway.FetchEventInfo(ctx)
	if err != nil {
		return nil, err
	}
	for _, id := range form.DayIDs {
		if !info.HasDay(id) {
			return nil, errs.ErrUnknownDay
		}
	}

	form.Email = strings.TrimSpace(form.Email)
	form.PromoCode = normalizePromo(form.PromoCode)

	// An edit quote would carry the record token; a new registration has none.
	price, err := r.gateway.ComputePrice(ctx, shared.PriceRequest{
		Attendees: form.Attendees,
		DayIDs:    form.DayIDs,
		PromoCode: form.PromoCode,
		Token:     "",
	})
	if err != nil {
		return nil, errs.Mark(err, errs.ErrPriceComputation)
	}

	summary := registerSummary(form, price)
	pc := r.confirmations.Put(kindRegister, uuid.Nil, summary, registerPayload{Form: form, FinalPrice: price})

	return &QuoteResult{
		ConfirmationID: pc.ID,
		Summary:        summary,
		FinalPrice:     &price,
	}, nil
}

func (r *registrationCommandsImpl) Confirm(ctx context.Context, confirmationID uuid.UUID) (*RegisterOutcome, error) {
	pc, err := r.confirmations.Take(confirmationID)
	if err != nil {
		return nil, err
	}
	payload, ok := pc.Payload.(registerPayload)
	if !ok || pc.Kind != kindRegister {
		return nil, errs.ErrConfirmationNotFound
	}

	res, err := r.gateway.Register(ctx, payload.Form)
	if err != nil {
		return nil, err
	}

	outcome := &RegisterOutcome{
		Token:              res.Token,
		OriginalPrice:      res.OriginalPrice,
		FinalPrice:         res.FinalPrice,
		GeneratedPromoCode: res.GeneratedPromoCode,
	}

	doc, err := document.Render(document.Data{
		Token:         res.Token,
		Email:         payload.Form.Email,
		Attendees:     payload.Form.Attendees,
		DayIDs:        payload.Form.DayIDs,
		OriginalPrice: res.OriginalPrice,
		FinalPrice:    res.FinalPrice,
		Title:         document.TitleRegistration,
		IssuedAt:      r.clock.Now(),
	})
	if err != nil {
		// The registration itself succeeded; the document is best-effort.
		slog.Error("failed to render confirmation document", "error", err, "token", res.Token)
	} else {
		outcome.DocumentName = document.FileName(res.Token)
		outcome.Document = doc
	}

	return outcome, nil
}

func registerSummary(form shared.RegisterForm, price float64) string {
	address := form.Address1
	if form.Address2 != nil && *form.Address2 != "" {
		address += ", " + *form.Address2
	}
	promo := "nema"
	if form.PromoCode != nil {
		promo = *form.PromoCode
	}

	var b strings.Builder
	b.WriteString("Potvrdite prijavu:\n")
	fmt.Fprintf(&b, "Ime: %s\n", form.FirstName)
	fmt.Fprintf(&b, "Prezime: %s\n", form.LastName)
	fmt.Fprintf(&b, "Adresa: %s\n", address)
	fmt.Fprintf(&b, "Email: %s\n", form.Email)
	fmt.Fprintf(&b, "Broj osoba: %d\n", form.Attendees)
	fmt.Fprintf(&b, "Dani: %s\n", joinDayIDs(form.DayIDs))
	fmt.Fprintf(&b, "Promo kod: %s\n", promo)
	fmt.Fprintf(&b, "\nFinalna cena: %.2f RSD", price)
	return b.String()
}

func joinDayIDs(ids []int64) string {
	parts := make([]string, len(ids))
	for i, id := range ids {
		parts[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(parts, ", ")
}

func normalizePromo(promo *string) *string {
	if promo == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*promo)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}
