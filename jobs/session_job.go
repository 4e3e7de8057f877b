package jobs

import (
	"context"
	"log"
	"time"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/store"
)

// completionGrace is how long past its scheduled time a confirmed session
// must be before the sweep marks it completed.
const completionGrace = 5 * time.Minute

type SessionJobs struct {
	catalog *store.CatalogStore
}

func NewSessionJobs(catalog *store.CatalogStore) *SessionJobs {
	return &SessionJobs{catalog: catalog}
}

// CompleteElapsedSessions marks confirmed sessions whose scheduled time has
// passed as completed. It only goes through the public UpdateSession path.
func (j *SessionJobs) CompleteElapsedSessions() {
	log.Println("Running job: CompleteElapsedSessions...")

	cutoff := time.Now().Add(-completionGrace)
	completed := 0
	for _, session := range j.catalog.Sessions() {
		if session.Status != models.SessionConfirmed || !session.ScheduledAt.Before(cutoff) {
			continue
		}
		status := models.SessionCompleted
		if _, err := j.catalog.UpdateSession(context.Background(), session.ID, models.SessionUpdate{Status: &status}); err != nil {
			log.Printf("Error completing session %s: %v", session.ID, err)
			continue
		}
		completed++
	}

	if completed == 0 {
		log.Println("No elapsed sessions found.")
		return
	}
	log.Printf("Marked %d session(s) as completed.", completed)
}
