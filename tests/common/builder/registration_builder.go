//go:build unit

package builder

import (
	"expo-gateway/internal/domain/registration"
	reqdto "expo-gateway/internal/handler/dto/request"
	"expo-gateway/internal/pkg/ptr"
)

type RegistrationBuilder struct {
	FirstName      string
	LastName       string
	Address1       string
	City           string
	Country        string
	Email          string
	EmailConfirmed bool
	DayIDs         []int64
	Attendees      int
	PromoCode      *string
}

func NewRegistrationBuilder() *RegistrationBuilder {
	return &RegistrationBuilder{
		FirstName:      "Petar",
		LastName:       "Petrović",
		Address1:       "Bulevar kralja Aleksandra 73",
		City:           "Beograd",
		Country:        "Srbija",
		Email:          "petar@example.com",
		EmailConfirmed: true,
		DayIDs:         []int64{1, 2},
		Attendees:      2,
	}
}

func (b *RegistrationBuilder) WithDays(ids ...int64) *RegistrationBuilder {
	b.DayIDs = ids
	return b
}

func (b *RegistrationBuilder) WithAttendees(n int) *RegistrationBuilder {
	b.Attendees = n
	return b
}

func (b *RegistrationBuilder) WithPromoCode(code string) *RegistrationBuilder {
	b.PromoCode = ptr.Of(code)
	return b
}

func (b *RegistrationBuilder) BuildDTO() reqdto.QuoteRegistrationRequest {
	return reqdto.QuoteRegistrationRequest{
		FirstName:      b.FirstName,
		LastName:       b.LastName,
		Address1:       b.Address1,
		PostalCode:     "11000",
		City:           b.City,
		Country:        b.Country,
		Email:          b.Email,
		EmailConfirmed: b.EmailConfirmed,
		DayIDs:         b.DayIDs,
		Attendees:      b.Attendees,
		PromoCode:      b.PromoCode,
	}
}

type RecordBuilder struct {
	Token       string
	Attendees   int
	DayIDs      []int64
	IsCancelled bool
	FinalPrice  float64
}

func NewRecordBuilder() *RecordBuilder {
	return &RecordBuilder{
		Token:      "TOK-12345",
		Attendees:  2,
		DayIDs:     []int64{1, 2},
		FinalPrice: 2400,
	}
}

func (b *RecordBuilder) WithToken(token string) *RecordBuilder {
	b.Token = token
	return b
}

func (b *RecordBuilder) Cancelled() *RecordBuilder {
	b.IsCancelled = true
	return b
}

func (b *RecordBuilder) BuildDomain() registration.Record {
	status := "Aktivna"
	if b.IsCancelled {
		status = registration.StatusCancelled
	}
	return registration.Record{
		Token:         b.Token,
		Status:        status,
		RegisteredAt:  "2024-04-02T10:00:00Z",
		OriginalPrice: 3000,
		FinalPrice:    b.FinalPrice,
		IsEarlyBird:   true,
		Attendees:     b.Attendees,
		UserID:        42,
		FirstName:     "Petar",
		LastName:      "Petrović",
		IsCancelled:   b.IsCancelled,
		DayIDs:        b.DayIDs,
	}
}
