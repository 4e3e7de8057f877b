package models

import "time"

const (
	SessionRequested = "requested"
	SessionConfirmed = "confirmed"
	SessionCompleted = "completed"
	SessionCancelled = "cancelled"
)

// Session is a booked meeting between a tutor and a learner against one
// offer's capacity.
type Session struct {
	ID          string    `json:"id"`
	OfferID     string    `json:"offerId"`
	TutorID     string    `json:"tutorId"`
	LearnerID   string    `json:"learnerId"`
	ScheduledAt time.Time `json:"scheduledAt"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func ValidSessionStatus(status string) bool {
	switch status {
	case SessionRequested, SessionConfirmed, SessionCompleted, SessionCancelled:
		return true
	}
	return false
}

// SessionUpdate carries the session fields a caller may change. The store
// does not enforce a status transition table; any status may follow any
// other, except that cancellation goes through CancelSession so capacity is
// restored.
type SessionUpdate struct {
	ScheduledAt *time.Time
	Status      *string
}
