package shared

import (
	"context"
	"fmt"

	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/domain/schedule"

	cr "github.com/cockroachdb/errors"
)

// PriceRequest asks the backend pricing oracle for a final price. Token is
// empty for a new-registration quote and carries the record token when
// editing an existing registration, so the backend can apply per-registration
// promo continuity.
type PriceRequest struct {
	Attendees int
	DayIDs    []int64
	PromoCode *string
	Token     string
}

type RegisterForm struct {
	FirstName      string
	LastName       string
	Profession     *string
	Address1       string
	Address2       *string
	PostalCode     string
	City           string
	Country        string
	Email          string
	EmailConfirmed bool
	DayIDs         []int64
	Attendees      int
	PromoCode      *string
}

type RegisterResult struct {
	Token              string
	OriginalPrice      float64
	FinalPrice         float64
	GeneratedPromoCode string
}

type UpdateRequest struct {
	Token     string
	Email     string
	DayIDs    []int64
	Attendees int
	PromoCode *string
}

// ExpoGateway is the outbound port to the remote registration backend, which
// owns pricing, promo validation, persistence and authentication.
type ExpoGateway interface {
	FetchEventInfo(ctx context.Context) (*schedule.EventInfo, error)
	ComputePrice(ctx context.Context, req PriceRequest) (float64, error)
	Register(ctx context.Context, form RegisterForm) (*RegisterResult, error)
	Login(ctx context.Context, email, token string) (*registration.Record, error)
	Cancel(ctx context.Context, token, email string) error
	Update(ctx context.Context, req UpdateRequest) (*registration.UpdateResult, error)
}

// Rejection is a non-success backend response. Details carries the backend's
// human-readable `error.details` text and may be empty, in which case callers
// fall back to a generic message.
type Rejection struct {
	Status  int
	Details string
}

func (e *Rejection) Error() string {
	if e.Details == "" {
		return fmt.Sprintf("backend rejected request with status %d", e.Status)
	}
	return fmt.Sprintf("backend rejected request with status %d: %s", e.Status, e.Details)
}

func AsRejection(err error) (*Rejection, bool) {
	var rej *Rejection
	if cr.As(err, &rej) {
		return rej, true
	}
	return nil, false
}

// RejectionDetails extracts the backend detail text, or the fallback when
// the error is not a rejection or carries no detail.
func RejectionDetails(err error, fallback string) string {
	if rej, ok := AsRejection(err); ok && rej.Details != "" {
		return rej.Details
	}
	return fallback
}
