package models

import "time"

// Review is append-only: there is no update or delete path once written.
type Review struct {
	ID         string    `json:"id"`
	SessionID  string    `json:"sessionId"`
	ReviewerID string    `json:"reviewerId"`
	RevieweeID string    `json:"revieweeId"`
	Rating     int       `json:"rating"`
	Comment    string    `json:"comment"`
	CreatedAt  time.Time `json:"createdAt"`
}
