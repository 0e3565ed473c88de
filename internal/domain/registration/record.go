package registration

// StatusCancelled is the lifecycle label stamped locally after a successful
// cancellation; the backend returns no record body on cancel.
const StatusCancelled = "Otkazana"

// Record is a visitor's registration as returned by the backend login. The
// token is the sole credential for later lookup. The record is mutated
// locally only after successful update/cancel responses.
type Record struct {
	Token         string
	Status        string
	RegisteredAt  string
	OriginalPrice float64
	FinalPrice    float64
	IsEarlyBird   bool
	Attendees     int
	UserID        int64
	FirstName     string
	LastName      string
	IsCancelled   bool
	DayIDs        []int64
}

// UpdateResult carries the fields of a successful backend update response.
// Every field except DayIDs is optional; absent fields leave the local value
// in place. A nil DayIDs means the backend did not confirm the day list, in
// which case the locally selected days are authoritative.
type UpdateResult struct {
	Token         *string
	Status        *string
	Attendees     *int
	OriginalPrice *float64
	FinalPrice    *float64
	DayIDs        []int64
}
