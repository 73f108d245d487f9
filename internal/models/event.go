package models

type EventStatus string

const (
	StatusPending  EventStatus = "Pending"
	StatusApproved EventStatus = "Approved"
	StatusRejected EventStatus = "Rejected"
)

type Event struct {
	ID              string      `json:"id"`
	Title           string      `json:"title"`
	Description     string      `json:"description"`
	ClubName        string      `json:"clubName"`
	ClubID          string      `json:"clubId"`
	Date            string      `json:"date"`
	Time            string      `json:"time"`
	Location        string      `json:"location"`
	Category        string      `json:"category"`
	ImageURL        string      `json:"imageUrl,omitempty"`
	Capacity        int         `json:"capacity"`
	RegisteredCount int         `json:"registeredCount"`
	Status          EventStatus `json:"status"`

	// Digital approval documents attached by the submitting club.
	HODLetterURL       string `json:"hodLetterUrl,omitempty"`
	PrincipalLetterURL string `json:"principalLetterUrl,omitempty"`
}

// IsFull reports whether the event has no seats left.
func (e *Event) IsFull() bool {
	return e.RegisteredCount >= e.Capacity
}
