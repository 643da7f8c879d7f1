package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wellness/backend/models"
)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "db.json")
	return New(path, nil), path
}

func TestLoadSeedsOnFirstAccess(t *testing.T) {
	st, path := newTestStore(t)

	snap, err := st.Load()
	require.NoError(t, err)

	assert.Len(t, snap.Users, 2)
	assert.Len(t, snap.Resources, 4)
	assert.Len(t, snap.Programs, 3)
	assert.Equal(t, 22, snap.Usage.DailyLogins)
	assert.Len(t, snap.Enrollments["student@wellness.local"], 2)

	// The seed must have been written durably
	_, err = os.Stat(path)
	assert.NoError(t, err)
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st, _ := newTestStore(t)

	snap, err := st.Load()
	require.NoError(t, err)
	require.NoError(t, st.Save(snap))

	again, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, snap, again)
}

func TestSavePersistsMutations(t *testing.T) {
	st, _ := newTestStore(t)

	snap, err := st.Load()
	require.NoError(t, err)

	snap.Usage.DailyLogins++
	snap.Users = append(snap.Users, models.User{
		Email: "new@wellness.local", Password: "pw", Role: models.RoleStudent, Name: "New",
	})
	require.NoError(t, st.Save(snap))

	again, err := st.Load()
	require.NoError(t, err)
	assert.Equal(t, 23, again.Usage.DailyLogins)
	assert.Len(t, again.Users, 3)
}

func TestCorruptDurableCopyReseeds(t *testing.T) {
	st, path := newTestStore(t)
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o600))

	snap, err := st.Load()
	require.NoError(t, err)
	assert.Len(t, snap.Users, 2)
	assert.Equal(t, 22, snap.Usage.DailyLogins)
}

func TestCustomSeedIsUsedAndNotAliased(t *testing.T) {
	path := filepath.Join(t.TempDir(), "db.json")
	seed := &models.Snapshot{
		Users: []models.User{{Email: "only@wellness.local", Password: "pw", Role: models.RoleAdmin, Name: "Only"}},
	}
	st := New(path, seed)

	snap, err := st.Load()
	require.NoError(t, err)
	require.Len(t, snap.Users, 1)

	// Mutating the loaded snapshot must not leak back into the seed
	snap.Users[0].Name = "Changed"
	assert.Equal(t, "Only", seed.Users[0].Name)
}

func TestLoadSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "seed.yaml")
	fixture := `
users:
  - email: demo@wellness.local
    password: pw
    role: STUDENT
    name: Demo
programs:
  - id: p9
    title: Test Program
    description: d
    duration: 2 weeks
usage:
  dailyLogins: 1
`
	require.NoError(t, os.WriteFile(path, []byte(fixture), 0o600))

	snap, err := LoadSeedFile(path)
	require.NoError(t, err)
	assert.Equal(t, "demo@wellness.local", snap.Users[0].Email)
	assert.Equal(t, "p9", snap.Programs[0].ID)
	assert.Equal(t, 1, snap.Usage.DailyLogins)
	assert.NotNil(t, snap.Enrollments)
}

func TestSessionStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "session.json")
	sessions := NewSessionStore(path)

	rec, err := sessions.Current()
	require.NoError(t, err)
	assert.Nil(t, rec)

	profile := models.SessionProfile{Email: "student@wellness.local", Role: models.RoleStudent, Name: "Demo Student"}
	require.NoError(t, sessions.Save("tok-1", profile))

	rec, err = sessions.Current()
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, "tok-1", rec.Token)
	assert.Equal(t, profile, rec.User)

	require.NoError(t, sessions.Clear())
	rec, err = sessions.Current()
	require.NoError(t, err)
	assert.Nil(t, rec)
}
