package request

import (
	"strings"

	"expo-gateway/internal/usecase/shared"

	"github.com/google/uuid"
)

// QuoteRegistrationRequest carries the full registration form. JSON names
// match the backend's field names so the frontend submits one shape. The
// consent checkbox is unchecked by default and forwarded as submitted.
type QuoteRegistrationRequest struct {
	FirstName      string  `json:"ime" binding:"required"`
	LastName       string  `json:"prezime" binding:"required"`
	Profession     *string `json:"profesija,omitempty"`
	Address1       string  `json:"adresa1" binding:"required"`
	Address2       *string `json:"adresa2,omitempty"`
	PostalCode     string  `json:"postanskiBroj" binding:"required"`
	City           string  `json:"mesto" binding:"required"`
	Country        string  `json:"drzava" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	EmailConfirmed bool    `json:"emailPotvrdjen"`
	DayIDs         []int64 `json:"expoDanIDs" binding:"required"`
	Attendees      int     `json:"brojOsoba" binding:"required"`
	PromoCode      *string `json:"promoKod,omitempty"`
}

func (r QuoteRegistrationRequest) ToForm() shared.RegisterForm {
	return shared.RegisterForm{
		FirstName:      strings.TrimSpace(r.FirstName),
		LastName:       strings.TrimSpace(r.LastName),
		Profession:     r.Profession,
		Address1:       strings.TrimSpace(r.Address1),
		Address2:       r.Address2,
		PostalCode:     strings.TrimSpace(r.PostalCode),
		City:           strings.TrimSpace(r.City),
		Country:        strings.TrimSpace(r.Country),
		Email:          r.Email,
		EmailConfirmed: r.EmailConfirmed,
		DayIDs:         r.DayIDs,
		Attendees:      r.Attendees,
		PromoCode:      r.PromoCode,
	}
}

// ConfirmRequest commits a previously issued quote.
type ConfirmRequest struct {
	ConfirmationID uuid.UUID `json:"confirmationId" binding:"required"`
}
