package kvstore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	repo := NewMemory()

	v, err := repo.Get("missing")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, repo.Set(KeyName, "Anna"))
	v, err = repo.Get(KeyName)
	require.NoError(t, err)
	assert.Equal(t, "Anna", v)

	require.NoError(t, repo.Delete(KeyName))
	v, err = repo.Get(KeyName)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestSQLiteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	repo, err := OpenSQLite(path)
	require.NoError(t, err)
	defer repo.Close()

	v, err := repo.Get("missing")
	require.NoError(t, err)
	assert.Equal(t, "", v)

	require.NoError(t, repo.Set(KeyPhone, "9991234567"))
	require.NoError(t, repo.Set(KeyPhone, "5550001122"))

	v, err = repo.Get(KeyPhone)
	require.NoError(t, err)
	assert.Equal(t, "5550001122", v)

	require.NoError(t, repo.Delete(KeyPhone))
	v, err = repo.Get(KeyPhone)
	require.NoError(t, err)
	assert.Equal(t, "", v)
}

func TestSQLiteSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.db")

	repo, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, repo.Set(KeyRegistered, "true"))
	require.NoError(t, repo.Close())

	reopened, err := OpenSQLite(path)
	require.NoError(t, err)
	defer reopened.Close()

	v, err := reopened.Get(KeyRegistered)
	require.NoError(t, err)
	assert.Equal(t, "true", v)
}

func TestRegistrationRoundTrip(t *testing.T) {
	repo := NewMemory()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, SaveRegistration(repo, "Anna", "9991234567", "FRIEND10", at))

	reg, err := LoadRegistration(repo)
	require.NoError(t, err)
	assert.True(t, reg.Registered)
	assert.Equal(t, "Anna", reg.Name)
	assert.Equal(t, "9991234567", reg.Phone)
	assert.Equal(t, "FRIEND10", reg.InviteCode)
	assert.Equal(t, at.Unix(), reg.RegisteredAt.Unix())
	assert.True(t, reg.SkippedAt.IsZero())
}

func TestSkipClearsFlagNameAndPhone(t *testing.T) {
	repo := NewMemory()
	at := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, SaveRegistration(repo, "Anna", "9991234567", "", at))
	require.NoError(t, SaveSkip(repo, at.Add(time.Hour)))

	reg, err := LoadRegistration(repo)
	require.NoError(t, err)
	assert.False(t, reg.Registered)
	assert.Empty(t, reg.Name)
	assert.Empty(t, reg.Phone)
	assert.Equal(t, at.Add(time.Hour).Unix(), reg.SkippedAt.Unix())
}

func TestUnreadableTimestampReadsAsUnset(t *testing.T) {
	repo := NewMemory()
	require.NoError(t, repo.Set(KeySkippedAt, "not-a-number"))

	reg, err := LoadRegistration(repo)
	require.NoError(t, err)
	assert.True(t, reg.SkippedAt.IsZero())
}
