package readmodel

import (
	"expo-gateway/internal/domain/registration"

	"github.com/jinzhu/copier"
)

// SessionRM is the detail/edit view state: the confirmed record, the pending
// edits, the provisional price and the guard flags driving the UI controls.
type SessionRM struct {
	Record         RecordRM `json:"prijava"`
	Email          string   `json:"email"`
	SelectedDays   []int64  `json:"selectedDays"`
	Attendees      int      `json:"brojOsoba"`
	State          string   `json:"state"`
	CandidatePrice *float64 `json:"novaCena"` // null renders as the neutral placeholder
	PriceError     string   `json:"priceError,omitempty"`
	CanUpdate      bool     `json:"canUpdate"`
	CanCancel      bool     `json:"canCancel"`
	CancelLabel    string   `json:"cancelLabel"`
	HasDocument    bool     `json:"hasDocument"`
}

type RecordRM struct {
	Token         string  `json:"token"`
	Status        string  `json:"statusPrijave"`
	RegisteredAt  string  `json:"datumPrijave"`
	OriginalPrice float64 `json:"originalPrice"`
	FinalPrice    float64 `json:"finalPrice"`
	IsEarlyBird   bool    `json:"isEarlyBird"`
	Attendees     int     `json:"brojOsoba"`
	FirstName     string  `json:"ime"`
	LastName      string  `json:"prezime"`
	IsCancelled   bool    `json:"isCancelled"`
	DayIDs        []int64 `json:"expoDanIDs"`
}

func NewSessionRM(snap registration.Snapshot) (*SessionRM, error) {
	var record RecordRM
	if err := copier.Copy(&record, &snap.Record); err != nil {
		return nil, err
	}

	cancelLabel := "Otkaži prijavu"
	if snap.Record.IsCancelled {
		cancelLabel = "Već otkazano"
	}

	return &SessionRM{
		Record:         record,
		Email:          snap.Email,
		SelectedDays:   snap.SelectedDays,
		Attendees:      snap.Attendees,
		State:          string(snap.State),
		CandidatePrice: snap.CandidatePrice,
		PriceError:     snap.PriceError,
		CanUpdate:      snap.CanUpdate,
		CanCancel:      snap.CanCancel,
		CancelLabel:    cancelLabel,
		HasDocument:    snap.HasDocument,
	}, nil
}
