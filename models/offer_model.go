package models

import "time"

// SkillOffer is a tutor's published listing with a finite pool of bookable
// sessions. AvailableSessions only moves on booking and cancellation.
type SkillOffer struct {
	ID                string    `json:"id"`
	TutorID           string    `json:"tutorId"`
	Title             string    `json:"title"`
	Description       string    `json:"description"`
	Category          string    `json:"category"`
	Duration          int       `json:"duration"` // minutes
	Price             float64   `json:"price"`
	AvailableSessions int       `json:"availableSessions"`
	Rating            float64   `json:"rating"`
	TotalBookings     int       `json:"totalBookings"`
	CreatedAt         time.Time `json:"createdAt"`
	UpdatedAt         time.Time `json:"updatedAt"`
}

// Categories an offer may be listed under.
var OfferCategories = []string{
	"Programming",
	"Music",
	"Art",
	"Fitness",
	"Language",
	"Cooking",
	"Photography",
	"Other",
}

func ValidCategory(category string) bool {
	for _, c := range OfferCategories {
		if c == category {
			return true
		}
	}
	return false
}

// OfferUpdate carries the offer fields an owner may change. Capacity is
// deliberately absent: it moves only on booking and cancellation.
type OfferUpdate struct {
	Title       *string
	Description *string
	Category    *string
	Duration    *int
	Price       *float64
}
