package request

type LoginRequest struct {
	Email string `json:"email" binding:"required,email"`
	Token string `json:"token" binding:"required"`
}

// SelectionRequest replaces the edit selection wholesale. An empty day list
// is valid and resets the candidate price to the neutral placeholder.
type SelectionRequest struct {
	DayIDs    []int64 `json:"expoDanIDs"`
	Attendees int     `json:"brojOsoba" binding:"required"`
}
