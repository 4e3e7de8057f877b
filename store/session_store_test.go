package store_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skillswap/backend/models"
	"github.com/skillswap/backend/storage"
	"github.com/skillswap/backend/store"
)

const (
	demoEmail    = "test@student.com"
	demoPassword = "12345"
)

func newSessions(t *testing.T) (*store.SessionStore, *storage.MemoryStore) {
	t.Helper()
	kv := storage.NewMemoryStore()
	return store.NewSessionStore(kv, demoEmail, demoPassword), kv
}

func TestSignInDemoCredential(t *testing.T) {
	sessions, _ := newSessions(t)

	user, err := sessions.SignIn(context.Background(), demoEmail, demoPassword)
	require.NoError(t, err)

	assert.Equal(t, "u1", user.ID)
	assert.Equal(t, demoEmail, user.Email)
	assert.Equal(t, "Your Name", user.Name)
	assert.Equal(t, "Passionate developer and musician.", user.Bio)
	assert.Equal(t, []string{"React Native", "Guitar", "Photography"}, user.Skills)
	assert.Equal(t, 4.8, user.Rating)
	assert.Equal(t, 12, user.TotalSessions)
	assert.Equal(t, models.RoleStudent, user.Role)

	current, ok := sessions.User()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestSignInRejectsEverythingElse(t *testing.T) {
	sessions, _ := newSessions(t)

	tests := []struct {
		name     string
		email    string
		password string
	}{
		{"wrong password", demoEmail, "54321"},
		{"wrong email", "other@student.com", demoPassword},
		{"both wrong", "other@student.com", "hunter2"},
		{"empty password", demoEmail, ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := sessions.SignIn(context.Background(), tc.email, tc.password)
			assert.ErrorIs(t, err, store.ErrInvalidCredentials)
		})
	}
}

func TestSignInFailureLeavesCurrentUser(t *testing.T) {
	sessions, _ := newSessions(t)
	ctx := context.Background()

	signedIn, err := sessions.SignIn(ctx, demoEmail, demoPassword)
	require.NoError(t, err)

	_, err = sessions.SignIn(ctx, demoEmail, "wrong")
	require.ErrorIs(t, err, store.ErrInvalidCredentials)

	current, ok := sessions.User()
	require.True(t, ok)
	assert.Equal(t, signedIn, current)
}

func TestSignUpAlwaysSucceedsWithBlankProfile(t *testing.T) {
	sessions, _ := newSessions(t)
	ctx := context.Background()

	first, err := sessions.SignUp(ctx, "new@user.com", "whatever", "New User")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(first.ID, "u"))
	assert.Equal(t, "new@user.com", first.Email)
	assert.Equal(t, "New User", first.Name)
	assert.Empty(t, first.Bio)
	assert.Empty(t, first.Skills)
	assert.Zero(t, first.Rating)
	assert.Zero(t, first.TotalSessions)
	assert.Equal(t, models.RoleStudent, first.Role)

	second, err := sessions.SignUp(ctx, "another@user.com", "whatever", "Another")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, second.ID)

	// The second sign-up replaces the first user.
	current, ok := sessions.User()
	require.True(t, ok)
	assert.Equal(t, second.ID, current.ID)
}

func TestSignOut(t *testing.T) {
	sessions, kv := newSessions(t)
	ctx := context.Background()

	_, err := sessions.SignIn(ctx, demoEmail, demoPassword)
	require.NoError(t, err)

	sessions.SignOut(ctx)
	_, ok := sessions.User()
	assert.False(t, ok)

	_, err = kv.Get(ctx, "user")
	assert.ErrorIs(t, err, storage.ErrNotFound)

	// Idempotent.
	sessions.SignOut(ctx)
	_, ok = sessions.User()
	assert.False(t, ok)
}

func TestUpdateProfile(t *testing.T) {
	sessions, _ := newSessions(t)
	ctx := context.Background()

	_, err := sessions.SignIn(ctx, demoEmail, demoPassword)
	require.NoError(t, err)

	bio := "Now teaching Go."
	skills := []string{"Go", "Guitar"}
	updated, ok := sessions.UpdateProfile(ctx, models.ProfileUpdate{Bio: &bio, Skills: &skills})
	require.True(t, ok)

	assert.Equal(t, "Now teaching Go.", updated.Bio)
	assert.Equal(t, []string{"Go", "Guitar"}, updated.Skills)
	// Untouched fields survive the merge.
	assert.Equal(t, "Your Name", updated.Name)
	assert.Equal(t, "u1", updated.ID)
}

func TestUpdateProfileSignedOut(t *testing.T) {
	sessions, _ := newSessions(t)

	name := "Nobody"
	_, ok := sessions.UpdateProfile(context.Background(), models.ProfileUpdate{Name: &name})
	assert.False(t, ok)
}

func TestLoadRestoresPersistedUser(t *testing.T) {
	sessions, kv := newSessions(t)
	ctx := context.Background()

	signedIn, err := sessions.SignIn(ctx, demoEmail, demoPassword)
	require.NoError(t, err)

	reopened := store.NewSessionStore(kv, demoEmail, demoPassword)
	require.NoError(t, reopened.Load(ctx))

	current, ok := reopened.User()
	require.True(t, ok)
	assert.Equal(t, signedIn, current)
}

func TestLoadWithoutSnapshotStartsSignedOut(t *testing.T) {
	sessions, _ := newSessions(t)
	require.NoError(t, sessions.Load(context.Background()))

	_, ok := sessions.User()
	assert.False(t, ok)
}

// failingKV rejects every write, standing in for broken device storage.
type failingKV struct{}

func (failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	return nil, storage.ErrNotFound
}

func (failingKV) Set(ctx context.Context, key string, value []byte) error {
	return errors.New("disk full")
}

func (failingKV) Remove(ctx context.Context, key string) error {
	return errors.New("disk full")
}

func TestPersistenceFailureKeepsMemoryAuthoritative(t *testing.T) {
	sessions := store.NewSessionStore(failingKV{}, demoEmail, demoPassword)
	ctx := context.Background()

	user, err := sessions.SignIn(ctx, demoEmail, demoPassword)
	require.NoError(t, err)

	current, ok := sessions.User()
	require.True(t, ok)
	assert.Equal(t, user, current)

	sessions.SignOut(ctx)
	_, ok = sessions.User()
	assert.False(t, ok)
}
