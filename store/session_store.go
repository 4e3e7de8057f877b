// Package store holds the two state containers at the core of SkillSwap:
// the session store (the authenticated user) and the catalog store (offers,
// sessions, reviews and reports). Each store owns its collections for the
// process lifetime, serializes mutations behind a mutex and mirrors every
// change to persistent storage as a full JSON snapshot. Persistence failures
// are logged and swallowed; the in-memory state stays authoritative.
package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"

	"golang.org/x/crypto/bcrypt"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/storage"
)

const keyUser = "user"

// ErrInvalidCredentials is returned by SignIn for any pair other than the
// demo credential.
var ErrInvalidCredentials = errors.New("invalid credentials")

// SessionStore holds at most one authenticated user and mirrors it to
// storage under the "user" key.
type SessionStore struct {
	mu   sync.Mutex
	kv   storage.KV
	ids  idGenerator
	user *models.User

	demoEmail string
	demoHash  []byte
}

func NewSessionStore(kv storage.KV, demoEmail, demoPassword string) *SessionStore {
	hash, err := bcrypt.GenerateFromPassword([]byte(demoPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Fatalf("🔥 Failed to hash demo password: %v", err)
	}
	return &SessionStore{
		kv:        kv,
		demoEmail: demoEmail,
		demoHash:  hash,
	}
}

// demoUser is the fixed profile installed when the demo credential matches.
func (s *SessionStore) demoUser() models.User {
	return models.User{
		ID:            "u1",
		Email:         s.demoEmail,
		Name:          "Your Name",
		Bio:           "Passionate developer and musician.",
		Skills:        []string{"React Native", "Guitar", "Photography"},
		Rating:        4.8,
		TotalSessions: 12,
		Role:          models.RoleStudent,
	}
}

// Load restores the persisted user, if any. The store starts unauthenticated
// when no snapshot exists.
func (s *SessionStore) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.kv.Get(ctx, keyUser)
	if errors.Is(err, storage.ErrNotFound) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("load user: %w", err)
	}
	var user models.User
	if err := json.Unmarshal(data, &user); err != nil {
		return fmt.Errorf("decode user: %w", err)
	}
	s.user = &user
	return nil
}

// SignIn validates the given pair against the demo credential. On match the
// fixed demo profile replaces any previously signed-in user; on mismatch the
// current user is left untouched.
func (s *SessionStore) SignIn(ctx context.Context, email, password string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if email != s.demoEmail || bcrypt.CompareHashAndPassword(s.demoHash, []byte(password)) != nil {
		return models.User{}, ErrInvalidCredentials
	}

	user := s.demoUser()
	s.user = &user
	s.persist(ctx)
	return cloneUser(user), nil
}

// SignUp always succeeds: it installs a blank student profile under a fresh
// time-based id. The password is neither stored nor validated. Any
// previously signed-in user is replaced.
func (s *SessionStore) SignUp(ctx context.Context, email, password, name string) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	user := models.User{
		ID:            s.ids.Next("u"),
		Email:         email,
		Name:          name,
		Bio:           "",
		Skills:        []string{},
		Rating:        0,
		TotalSessions: 0,
		Role:          models.RoleStudent,
	}
	s.user = &user
	s.persist(ctx)
	return cloneUser(user), nil
}

// SignOut clears the in-memory user and removes the persisted record.
// Idempotent.
func (s *SessionStore) SignOut(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = nil
	if err := s.kv.Remove(ctx, keyUser); err != nil {
		log.Printf("Error removing user: %v", err)
	}
}

// UpdateProfile shallow-merges the given fields into the current user. No-op
// when nobody is signed in.
func (s *SessionStore) UpdateProfile(ctx context.Context, updates models.ProfileUpdate) (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, false
	}

	user := cloneUser(*s.user)
	if updates.Name != nil {
		user.Name = *updates.Name
	}
	if updates.Bio != nil {
		user.Bio = *updates.Bio
	}
	if updates.ProfilePicture != nil {
		user.ProfilePicture = *updates.ProfilePicture
	}
	if updates.Skills != nil {
		user.Skills = append([]string{}, (*updates.Skills)...)
	}
	s.user = &user
	s.persist(ctx)
	return cloneUser(user), true
}

// User returns a snapshot of the current user, if any.
func (s *SessionStore) User() (models.User, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.user == nil {
		return models.User{}, false
	}
	return cloneUser(*s.user), true
}

// persist mirrors the current user to storage. Failures are logged and
// swallowed; memory stays authoritative. Callers must hold the mutex.
func (s *SessionStore) persist(ctx context.Context) {
	data, err := json.Marshal(s.user)
	if err != nil {
		log.Printf("Error encoding user: %v", err)
		return
	}
	if err := s.kv.Set(ctx, keyUser, data); err != nil {
		log.Printf("Error saving user: %v", err)
	}
}

func cloneUser(u models.User) models.User {
	u.Skills = append([]string{}, u.Skills...)
	return u
}
