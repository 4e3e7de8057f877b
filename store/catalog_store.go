package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"sync"
	"time"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/storage"
)

// Storage keys for the four catalog collections.
const (
	keyOffers   = "offers"
	keySessions = "sessions"
	keyReviews  = "reviews"
	keyReports  = "reports"
)

var (
	// ErrForbidden is returned when the acting user is neither the owner of
	// the record nor an admin.
	ErrForbidden       = errors.New("forbidden")
	ErrOfferNotFound   = errors.New("offer not found")
	ErrSessionNotFound = errors.New("session not found")
	ErrReportNotFound  = errors.New("report not found")
)

// CatalogStore owns the offer, session, review and report collections. Every
// mutation rewrites the affected collection to storage in full and then
// replaces the in-memory slice; reads hand out copies only.
type CatalogStore struct {
	mu  sync.Mutex
	kv  storage.KV
	ids idGenerator

	offers   []models.SkillOffer
	sessions []models.Session
	reviews  []models.Review
	reports  []models.Report
}

func NewCatalogStore(kv storage.KV) *CatalogStore {
	return &CatalogStore{kv: kv}
}

// Load restores all four collections. A missing offers snapshot seeds the
// sample catalog; the other collections simply start empty.
func (s *CatalogStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	found, err := loadCollection(ctx, s.kv, keyOffers, &s.offers)
	if err != nil {
		return err
	}
	if !found {
		s.offers = sampleOffers()
		s.saveOffers(ctx, s.offers)
	}
	if _, err := loadCollection(ctx, s.kv, keySessions, &s.sessions); err != nil {
		return err
	}
	if _, err := loadCollection(ctx, s.kv, keyReviews, &s.reviews); err != nil {
		return err
	}
	if _, err := loadCollection(ctx, s.kv, keyReports, &s.reports); err != nil {
		return err
	}
	return nil
}

func loadCollection[T any](ctx context.Context, kv storage.KV, key string, dest *[]T) (bool, error) {
	data, err := kv.Get(ctx, key)
	if errors.Is(err, storage.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("load %s: %w", key, err)
	}
	if err := json.Unmarshal(data, dest); err != nil {
		return false, fmt.Errorf("decode %s: %w", key, err)
	}
	return true, nil
}

// AddOffer appends a new offer under a fresh id and timestamps. Fields on
// the draft other than id/createdAt/updatedAt are kept as given.
func (s *CatalogStore) AddOffer(ctx context.Context, draft models.SkillOffer) models.SkillOffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	draft.ID = s.ids.Next("offer_")
	draft.CreatedAt = now
	draft.UpdatedAt = now

	s.saveOffers(ctx, append(cloneOffers(s.offers), draft))
	return draft
}

// UpdateOffer merges the given fields into the offer and restamps updatedAt.
// Only the owning tutor or an admin may update an offer.
func (s *CatalogStore) UpdateOffer(ctx context.Context, id string, actor models.User, updates models.OfferUpdate) (models.SkillOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.offerIndex(id)
	if idx < 0 {
		return models.SkillOffer{}, ErrOfferNotFound
	}
	if err := authorize(actor, s.offers[idx].TutorID); err != nil {
		return models.SkillOffer{}, err
	}

	next := cloneOffers(s.offers)
	offer := &next[idx]
	if updates.Title != nil {
		offer.Title = *updates.Title
	}
	if updates.Description != nil {
		offer.Description = *updates.Description
	}
	if updates.Category != nil {
		offer.Category = *updates.Category
	}
	if updates.Duration != nil {
		offer.Duration = *updates.Duration
	}
	if updates.Price != nil {
		offer.Price = *updates.Price
	}
	offer.UpdatedAt = time.Now().UTC()

	s.saveOffers(ctx, next)
	return *offer, nil
}

// DeleteOffer removes exactly the offer with the given id, preserving the
// relative order of the rest. Only the owning tutor or an admin may delete.
func (s *CatalogStore) DeleteOffer(ctx context.Context, id string, actor models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.offerIndex(id)
	if idx < 0 {
		return ErrOfferNotFound
	}
	if err := authorize(actor, s.offers[idx].TutorID); err != nil {
		return err
	}

	next := make([]models.SkillOffer, 0, len(s.offers)-1)
	for _, offer := range s.offers {
		if offer.ID != id {
			next = append(next, offer)
		}
	}
	s.saveOffers(ctx, next)
	return nil
}

// GetOffer returns a snapshot of one offer.
func (s *CatalogStore) GetOffer(id string) (models.SkillOffer, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.offerIndex(id)
	if idx < 0 {
		return models.SkillOffer{}, ErrOfferNotFound
	}
	return s.offers[idx], nil
}

// BookSession appends a new session and, when the referenced offer exists
// and still has capacity, decrements its availableSessions by one. The
// session is created either way; callers are expected to pre-validate
// capacity before booking.
func (s *CatalogStore) BookSession(ctx context.Context, draft models.Session) models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := time.Now().UTC()
	draft.ID = s.ids.Next("session_")
	draft.CreatedAt = now
	draft.UpdatedAt = now
	if draft.Status == "" {
		draft.Status = models.SessionRequested
	}

	if idx := s.offerIndex(draft.OfferID); idx >= 0 && s.offers[idx].AvailableSessions > 0 {
		next := cloneOffers(s.offers)
		next[idx].AvailableSessions--
		next[idx].UpdatedAt = now
		s.saveOffers(ctx, next)
	}

	s.saveSessions(ctx, append(cloneSessions(s.sessions), draft))
	return draft
}

// UpdateSession merges the given fields into the session and restamps
// updatedAt. Status transitions other than cancellation go through here;
// no transition table is enforced.
func (s *CatalogStore) UpdateSession(ctx context.Context, id string, updates models.SessionUpdate) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.updateSessionLocked(ctx, id, updates)
}

func (s *CatalogStore) updateSessionLocked(ctx context.Context, id string, updates models.SessionUpdate) (models.Session, error) {
	idx := s.sessionIndex(id)
	if idx < 0 {
		return models.Session{}, ErrSessionNotFound
	}

	next := cloneSessions(s.sessions)
	session := &next[idx]
	if updates.ScheduledAt != nil {
		session.ScheduledAt = *updates.ScheduledAt
	}
	if updates.Status != nil {
		session.Status = *updates.Status
	}
	session.UpdatedAt = time.Now().UTC()

	s.saveSessions(ctx, next)
	return *session, nil
}

// CancelSession restores one unit of capacity to the session's offer and
// marks the session cancelled. Cancelling an already-cancelled session is a
// no-op, so capacity cannot be over-restored by repeated calls.
func (s *CatalogStore) CancelSession(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sessionIndex(id)
	if idx < 0 {
		return ErrSessionNotFound
	}
	session := s.sessions[idx]
	if session.Status == models.SessionCancelled {
		return nil
	}

	if offerIdx := s.offerIndex(session.OfferID); offerIdx >= 0 {
		next := cloneOffers(s.offers)
		next[offerIdx].AvailableSessions++
		next[offerIdx].UpdatedAt = time.Now().UTC()
		s.saveOffers(ctx, next)
	}

	status := models.SessionCancelled
	_, err := s.updateSessionLocked(ctx, id, models.SessionUpdate{Status: &status})
	return err
}

// GetSession returns a snapshot of one session.
func (s *CatalogStore) GetSession(id string) (models.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.sessionIndex(id)
	if idx < 0 {
		return models.Session{}, ErrSessionNotFound
	}
	return s.sessions[idx], nil
}

// AddReview appends a review under a fresh id and timestamp. Reviews are
// append-only; referenced ids are not checked.
func (s *CatalogStore) AddReview(ctx context.Context, draft models.Review) models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = s.ids.Next("review_")
	draft.CreatedAt = time.Now().UTC()

	s.saveReviews(ctx, append(cloneReviews(s.reviews), draft))
	return draft
}

// AddReport appends a report under a fresh id and timestamp, defaulting its
// status to pending.
func (s *CatalogStore) AddReport(ctx context.Context, draft models.Report) models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()

	draft.ID = s.ids.Next("report_")
	draft.CreatedAt = time.Now().UTC()
	if draft.Status == "" {
		draft.Status = models.ReportPending
	}

	s.saveReports(ctx, append(cloneReports(s.reports), draft))
	return draft
}

// ResolveReport moves a report to the given status. Exposed to moderation
// only; the reporting UI never mutates status.
func (s *CatalogStore) ResolveReport(ctx context.Context, id, status string) (models.Report, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := -1
	for i := range s.reports {
		if s.reports[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.Report{}, ErrReportNotFound
	}

	next := cloneReports(s.reports)
	next[idx].Status = status
	s.saveReports(ctx, next)
	return next[idx], nil
}

// SearchOffers returns offers whose title or description contains the query
// case-insensitively, and whose category equals the given one when it is
// non-empty. An empty query matches every offer.
func (s *CatalogStore) SearchOffers(query, category string) []models.SkillOffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	q := strings.ToLower(query)
	var out []models.SkillOffer
	for _, offer := range s.offers {
		matchesQuery := strings.Contains(strings.ToLower(offer.Title), q) ||
			strings.Contains(strings.ToLower(offer.Description), q)
		matchesCategory := category == "" || offer.Category == category
		if matchesQuery && matchesCategory {
			out = append(out, offer)
		}
	}
	return out
}

// GetUserOffers returns the offers owned by the given tutor.
func (s *CatalogStore) GetUserOffers(userID string) []models.SkillOffer {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.SkillOffer
	for _, offer := range s.offers {
		if offer.TutorID == userID {
			out = append(out, offer)
		}
	}
	return out
}

// GetUserSessions returns the sessions the user participates in, as tutor or
// as learner.
func (s *CatalogStore) GetUserSessions(userID string) []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Session
	for _, session := range s.sessions {
		if session.TutorID == userID || session.LearnerID == userID {
			out = append(out, session)
		}
	}
	return out
}

// GetUserReviews returns the reviews written about the given user.
func (s *CatalogStore) GetUserReviews(userID string) []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []models.Review
	for _, review := range s.reviews {
		if review.RevieweeID == userID {
			out = append(out, review)
		}
	}
	return out
}

// Offers returns a snapshot of the offer collection.
func (s *CatalogStore) Offers() []models.SkillOffer {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneOffers(s.offers)
}

// Sessions returns a snapshot of the session collection.
func (s *CatalogStore) Sessions() []models.Session {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneSessions(s.sessions)
}

// Reviews returns a snapshot of the review collection.
func (s *CatalogStore) Reviews() []models.Review {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneReviews(s.reviews)
}

// Reports returns a snapshot of the report collection.
func (s *CatalogStore) Reports() []models.Report {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneReports(s.reports)
}

func (s *CatalogStore) offerIndex(id string) int {
	for i := range s.offers {
		if s.offers[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *CatalogStore) sessionIndex(id string) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// authorize passes when the actor owns the record or is an admin.
func authorize(actor models.User, ownerID string) error {
	if actor.ID == ownerID || actor.Role == models.RoleAdmin {
		return nil
	}
	return ErrForbidden
}

// The save helpers persist the full collection and then install it as the
// in-memory snapshot. Persistence failures are logged and swallowed; memory
// stays authoritative. Callers must hold the mutex.

func (s *CatalogStore) saveOffers(ctx context.Context, next []models.SkillOffer) {
	persistCollection(ctx, s.kv, keyOffers, next)
	s.offers = next
}

func (s *CatalogStore) saveSessions(ctx context.Context, next []models.Session) {
	persistCollection(ctx, s.kv, keySessions, next)
	s.sessions = next
}

func (s *CatalogStore) saveReviews(ctx context.Context, next []models.Review) {
	persistCollection(ctx, s.kv, keyReviews, next)
	s.reviews = next
}

func (s *CatalogStore) saveReports(ctx context.Context, next []models.Report) {
	persistCollection(ctx, s.kv, keyReports, next)
	s.reports = next
}

func persistCollection[T any](ctx context.Context, kv storage.KV, key string, collection []T) {
	if collection == nil {
		collection = []T{}
	}
	data, err := json.Marshal(collection)
	if err != nil {
		log.Printf("Error encoding %s: %v", key, err)
		return
	}
	if err := kv.Set(ctx, key, data); err != nil {
		log.Printf("Error saving %s: %v", key, err)
	}
}

func cloneOffers(offers []models.SkillOffer) []models.SkillOffer {
	return append([]models.SkillOffer{}, offers...)
}

func cloneSessions(sessions []models.Session) []models.Session {
	return append([]models.Session{}, sessions...)
}

func cloneReviews(reviews []models.Review) []models.Review {
	return append([]models.Review{}, reviews...)
}

func cloneReports(reports []models.Report) []models.Report {
	return append([]models.Report{}, reports...)
}

// sampleOffers seeds the catalog the first time the app runs.
func sampleOffers() []models.SkillOffer {
	now := time.Now().UTC()
	return []models.SkillOffer{
		{
			ID:                "offer_1",
			TutorID:           "u1",
			Title:             "Python Programming Basics",
			Description:       "Learn Python from scratch with hands-on projects and real-world examples.",
			Category:          "Programming",
			Duration:          60,
			Price:             0,
			AvailableSessions: 5,
			Rating:            4.8,
			TotalBookings:     12,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                "offer_2",
			TutorID:           "u2",
			Title:             "Guitar Lessons for Beginners",
			Description:       "Master the basics of guitar playing with acoustic and electric guitar techniques.",
			Category:          "Music",
			Duration:          45,
			Price:             0,
			AvailableSessions: 3,
			Rating:            4.9,
			TotalBookings:     8,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                "offer_3",
			TutorID:           "u3",
			Title:             "Digital Art & Design",
			Description:       "Learn digital painting, graphic design, and creative techniques using modern tools.",
			Category:          "Art",
			Duration:          90,
			Price:             0,
			AvailableSessions: 4,
			Rating:            4.7,
			TotalBookings:     15,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
		{
			ID:                "offer_4",
			TutorID:           "u4",
			Title:             "Yoga & Meditation",
			Description:       "Discover mindfulness, stress relief, and physical wellness through yoga practice.",
			Category:          "Fitness",
			Duration:          60,
			Price:             0,
			AvailableSessions: 6,
			Rating:            4.6,
			TotalBookings:     20,
			CreatedAt:         now,
			UpdatedAt:         now,
		},
	}
}
