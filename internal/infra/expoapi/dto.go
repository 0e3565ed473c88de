package expoapi

import (
	"expo-gateway/internal/domain/registration"
	"expo-gateway/internal/domain/schedule"
)

// Wire DTOs mirror the backend's Serbian field names exactly.

type slotDTO struct {
	ID       int64  `json:"izlozbaID"`
	Artist   string `json:"umetnik"`
	OpensAt  string `json:"vremeOtvaranja"`
	ClosesAt string `json:"vremeZatvaranja"`
}

type dayDTO struct {
	ID        int64     `json:"expoDanID"`
	Date      string    `json:"datum"`
	Theme     string    `json:"tema"`
	Slots     []slotDTO `json:"izlozbe"`
	SeatsLeft int       `json:"slobodnaMesta"`
}

type eventInfoDTO struct {
	ID                int64    `json:"manifestacijaID"`
	Name              string   `json:"naziv"`
	City              string   `json:"grad"`
	Venue             string   `json:"lokacija"`
	StartDate         string   `json:"datumPocetka"`
	EndDate           string   `json:"datumZavrsetka"`
	Description       string   `json:"dodatneInfo"`
	MaxVisitorsPerDay int      `json:"maxPosetilacaPoDanu"`
	Days              []dayDTO `json:"expoDani"`
}

func (d *eventInfoDTO) toDomain() *schedule.EventInfo {
	days := make([]schedule.Day, 0, len(d.Days))
	for _, dd := range d.Days {
		slots := make([]schedule.Slot, 0, len(dd.Slots))
		for _, s := range dd.Slots {
			slots = append(slots, schedule.Slot{
				ID:       s.ID,
				Artist:   s.Artist,
				OpensAt:  s.OpensAt,
				ClosesAt: s.ClosesAt,
			})
		}
		days = append(days, schedule.Day{
			ID:        dd.ID,
			Date:      dd.Date,
			Theme:     dd.Theme,
			SeatsLeft: dd.SeatsLeft,
			Slots:     slots,
		})
	}
	return &schedule.EventInfo{
		ID:                d.ID,
		Name:              d.Name,
		City:              d.City,
		Venue:             d.Venue,
		StartDate:         d.StartDate,
		EndDate:           d.EndDate,
		Description:       d.Description,
		MaxVisitorsPerDay: d.MaxVisitorsPerDay,
		Days:              days,
	}
}

type errorDetailDTO struct {
	Details *string `json:"details"`
}

type errorEnvelope struct {
	Error *errorDetailDTO `json:"error"`
}

type priceRequestDTO struct {
	Token     string  `json:"token"`
	Attendees int     `json:"brojOsoba"`
	DayIDs    []int64 `json:"expoDanIDs"`
	PromoCode *string `json:"promoKod,omitempty"`
}

type registerRequestDTO struct {
	FirstName      string  `json:"ime"`
	LastName       string  `json:"prezime"`
	Profession     *string `json:"profesija,omitempty"`
	Address1       string  `json:"adresa1"`
	Address2       *string `json:"adresa2,omitempty"`
	PostalCode     string  `json:"postanskiBroj"`
	City           string  `json:"mesto"`
	Country        string  `json:"drzava"`
	Email          string  `json:"email"`
	EmailConfirmed bool    `json:"emailPotvrdjen"`
	DayIDs         []int64 `json:"expoDanIDs"`
	Attendees      int     `json:"brojOsoba"`
	PromoCode      *string `json:"promoKod,omitempty"`
}

type registerResponseDTO struct {
	Token              string          `json:"token"`
	OriginalPrice      float64         `json:"originalPrice"`
	FinalPrice         float64         `json:"finalPrice"`
	GeneratedPromoCode string          `json:"generatedPromoKod"`
	Error              *errorDetailDTO `json:"error"`
}

type loginRequestDTO struct {
	Email string `json:"email"`
	Token string `json:"token"`
}

type recordResponseDTO struct {
	Token         string  `json:"token"`
	Status        string  `json:"statusPrijave"`
	RegisteredAt  string  `json:"datumPrijave"`
	OriginalPrice float64 `json:"originalPrice"`
	FinalPrice    float64 `json:"finalPrice"`
	IsEarlyBird   bool    `json:"isEarlyBird"`
	Attendees     int     `json:"brojOsoba"`
	UserID        int64   `json:"korisnikID"`
	FirstName     string  `json:"ime"`
	LastName      string  `json:"prezime"`
	IsCancelled   bool    `json:"isCancelled"`
	DayIDs        []int64 `json:"expoDanIDs"`
}

func (d *recordResponseDTO) toDomain() *registration.Record {
	return &registration.Record{
		Token:         d.Token,
		Status:        d.Status,
		RegisteredAt:  d.RegisteredAt,
		OriginalPrice: d.OriginalPrice,
		FinalPrice:    d.FinalPrice,
		IsEarlyBird:   d.IsEarlyBird,
		Attendees:     d.Attendees,
		UserID:        d.UserID,
		FirstName:     d.FirstName,
		LastName:      d.LastName,
		IsCancelled:   d.IsCancelled,
		DayIDs:        d.DayIDs,
	}
}

type cancelRequestDTO struct {
	Token string `json:"token"`
	Email string `json:"email"`
}

type updateRequestDTO struct {
	Token     string  `json:"token"`
	Email     string  `json:"email"`
	DayIDs    []int64 `json:"expoDanIDs"`
	Attendees int     `json:"brojOsoba"`
	PromoCode *string `json:"promoKod,omitempty"`
}

// updateResponseDTO is deliberately all-optional: the backend is not
// guaranteed to echo every field back.
type updateResponseDTO struct {
	Token         *string  `json:"token"`
	Status        *string  `json:"statusPrijave"`
	Attendees     *int     `json:"brojOsoba"`
	OriginalPrice *float64 `json:"originalPrice"`
	FinalPrice    *float64 `json:"finalPrice"`
	DayIDs        []int64  `json:"expoDanIDs"`
}

func (d *updateResponseDTO) toDomain() *registration.UpdateResult {
	return &registration.UpdateResult{
		Token:         d.Token,
		Status:        d.Status,
		Attendees:     d.Attendees,
		OriginalPrice: d.OriginalPrice,
		FinalPrice:    d.FinalPrice,
		DayIDs:        d.DayIDs,
	}
}
