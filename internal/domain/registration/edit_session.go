package registration

import (
	"expo-gateway/internal/pkg/errs"
	"expo-gateway/internal/pkg/ptr"

	"github.com/google/uuid"
)

// State labels of the edit reconciliation machine:
//
//	Viewing → Editing → PriceRecalculating → PriceReady | PriceError
//	PriceReady/PriceError → (further edits) → PriceRecalculating
//	→ ConfirmingUpdate → Submitting → Viewing | back to prior state
//	Viewing → ConfirmingCancel → Submitting → Viewing(cancelled) | back
type State string

const (
	StateViewing            State = "viewing"
	StateEditing            State = "editing"
	StatePriceRecalculating State = "price_recalculating"
	StatePriceReady         State = "price_ready"
	StatePriceError         State = "price_error"
	StateConfirmingUpdate   State = "confirming_update"
	StateConfirmingCancel   State = "confirming_cancel"
	StateSubmitting         State = "submitting"
)

// EditSession is the editable in-memory representation of one registration,
// reconciled against the pricing oracle on every edit. It is not safe for
// concurrent use by itself; the session store serializes access.
type EditSession struct {
	ID     uuid.UUID
	Email  string // write-once at login, read-only afterwards
	Record *Record

	SelectedDays   []int64
	Attendees      int
	State          State
	CandidatePrice *float64
	PriceError     string

	Document     []byte
	DocumentName string

	// generation invalidates in-flight price computations: a quote started
	// for generation N is discarded on arrival when the session has moved on.
	generation uint64
	// resume is the state restored when a submission fails, so the user's
	// in-progress edits survive the failed attempt.
	resume State
}

func NewEditSession(email string, rec Record) *EditSession {
	days := make([]int64, len(rec.DayIDs))
	copy(days, rec.DayIDs)
	attendees := rec.Attendees
	if attendees < 1 {
		attendees = 1
	}
	return &EditSession{
		ID:           uuid.New(),
		Email:        email,
		Record:       &rec,
		SelectedDays: days,
		Attendees:    attendees,
		State:        StateViewing,
	}
}

func (s *EditSession) CanUpdate() bool {
	return s.Record != nil && s.Email != "" && !s.Record.IsCancelled &&
		len(s.SelectedDays) > 0 && s.Attendees >= 1 && s.State != StateSubmitting
}

func (s *EditSession) CanCancel() bool {
	return s.Record != nil && s.Email != "" && !s.Record.IsCancelled &&
		s.State != StateSubmitting
}

// ChangeSelection applies a new day selection and attendee count. Attendee
// counts below 1 are floored to 1, mirroring the form input. It reports the
// generation to tag the follow-up price computation with, and whether a
// computation is needed at all: an empty selection resets the candidate
// price to the neutral placeholder instead.
func (s *EditSession) ChangeSelection(days []int64, attendees int) (uint64, bool, error) {
	if s.Record == nil || s.Record.IsCancelled {
		return 0, false, errs.ErrRecordCancelled
	}
	if s.State == StateSubmitting {
		return 0, false, errs.ErrSubmissionInFlight
	}
	if attendees < 1 {
		attendees = 1
	}

	s.SelectedDays = make([]int64, len(days))
	copy(s.SelectedDays, days)
	s.Attendees = attendees
	s.CandidatePrice = nil
	s.PriceError = ""

	if len(s.SelectedDays) == 0 {
		s.State = StateEditing
		return 0, false, nil
	}

	s.generation++
	s.State = StatePriceRecalculating
	return s.generation, true, nil
}

// ApplyPrice records the oracle result for the given generation. A stale
// result (older generation) is discarded and never overwrites fresher state.
func (s *EditSession) ApplyPrice(gen uint64, price float64) bool {
	if gen != s.generation {
		return false
	}
	s.CandidatePrice = &price
	s.PriceError = ""
	s.State = StatePriceReady
	return true
}

func (s *EditSession) ApplyPriceError(gen uint64, msg string) bool {
	if gen != s.generation {
		return false
	}
	s.CandidatePrice = nil
	s.PriceError = msg
	s.State = StatePriceError
	return true
}

func (s *EditSession) BeginConfirmUpdate() error {
	if err := s.updateGuard(); err != nil {
		return err
	}
	s.resume = s.State
	s.State = StateConfirmingUpdate
	return nil
}

func (s *EditSession) BeginConfirmCancel() error {
	if err := s.cancelGuard(); err != nil {
		return err
	}
	s.resume = s.State
	s.State = StateConfirmingCancel
	return nil
}

// BeginSubmit moves a confirmed action into flight. Only one submission may
// be outstanding at a time.
func (s *EditSession) BeginSubmit() error {
	switch s.State {
	case StateConfirmingUpdate, StateConfirmingCancel:
		s.State = StateSubmitting
		return nil
	case StateSubmitting:
		return errs.ErrSubmissionInFlight
	default:
		return errs.ErrConfirmationNotFound
	}
}

// CompleteUpdate replaces record fields with the server response. Optional
// fields keep their local values; a missing day list means the local
// selection is authoritative.
func (s *EditSession) CompleteUpdate(res UpdateResult) {
	rec := s.Record
	rec.Token = ptr.ValueOr(res.Token, rec.Token)
	rec.Status = ptr.ValueOr(res.Status, rec.Status)
	rec.Attendees = ptr.ValueOr(res.Attendees, s.Attendees)
	rec.OriginalPrice = ptr.ValueOr(res.OriginalPrice, rec.OriginalPrice)
	switch {
	case res.FinalPrice != nil:
		rec.FinalPrice = *res.FinalPrice
	case s.CandidatePrice != nil:
		rec.FinalPrice = *s.CandidatePrice
	}
	if res.DayIDs != nil {
		rec.DayIDs = append([]int64(nil), res.DayIDs...)
	} else {
		rec.DayIDs = append([]int64(nil), s.SelectedDays...)
	}

	s.SelectedDays = append([]int64(nil), rec.DayIDs...)
	s.Attendees = rec.Attendees
	s.CandidatePrice = nil
	s.PriceError = ""
	s.State = StateViewing
}

func (s *EditSession) CompleteCancel() {
	s.Record.IsCancelled = true
	s.Record.Status = StatusCancelled
	s.CandidatePrice = nil
	s.PriceError = ""
	s.State = StateViewing
}

// FailSubmit returns to the state the confirmation was opened from; the
// user's in-progress edits are retained.
func (s *EditSession) FailSubmit() {
	s.State = s.resume
}

// DismissConfirmation closes an open confirmation without submitting.
func (s *EditSession) DismissConfirmation() {
	if s.State == StateConfirmingUpdate || s.State == StateConfirmingCancel {
		s.State = s.resume
	}
}

func (s *EditSession) AttachDocument(name string, data []byte) {
	s.DocumentName = name
	s.Document = data
}

func (s *EditSession) updateGuard() error {
	switch {
	case s.Record == nil || s.Record.IsCancelled:
		return errs.ErrRecordCancelled
	case s.Email == "":
		return errs.ErrEmailMissing
	case len(s.SelectedDays) == 0:
		return errs.ErrNoDaysSelected
	case s.State == StateSubmitting:
		return errs.ErrSubmissionInFlight
	}
	return nil
}

func (s *EditSession) cancelGuard() error {
	switch {
	case s.Record == nil || s.Record.IsCancelled:
		return errs.ErrRecordCancelled
	case s.Email == "":
		return errs.ErrEmailMissing
	case s.State == StateSubmitting:
		return errs.ErrSubmissionInFlight
	}
	return nil
}

// Snapshot is a detached copy handed to the read side.
type Snapshot struct {
	ID             uuid.UUID
	Email          string
	Record         Record
	SelectedDays   []int64
	Attendees      int
	State          State
	CandidatePrice *float64
	PriceError     string
	CanUpdate      bool
	CanCancel      bool
	HasDocument    bool
	DocumentName   string
}

func (s *EditSession) Snapshot() Snapshot {
	snap := Snapshot{
		ID:           s.ID,
		Email:        s.Email,
		SelectedDays: append([]int64(nil), s.SelectedDays...),
		Attendees:    s.Attendees,
		State:        s.State,
		PriceError:   s.PriceError,
		CanUpdate:    s.CanUpdate(),
		CanCancel:    s.CanCancel(),
		HasDocument:  len(s.Document) > 0,
		DocumentName: s.DocumentName,
	}
	if s.Record != nil {
		snap.Record = *s.Record
		snap.Record.DayIDs = append([]int64(nil), s.Record.DayIDs...)
	}
	if s.CandidatePrice != nil {
		p := *s.CandidatePrice
		snap.CandidatePrice = &p
	}
	return snap
}
