package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"say-to-plan/internal/errors"
	"say-to-plan/internal/repository"
)

func setupTestDB(t *testing.T) *SQLiteRepository {
	t.Helper()
	repo, err := New(filepath.Join(t.TempDir(), "stp.db"))
	require.NoError(t, err)
	t.Cleanup(func() { repo.Close() })
	return repo
}

func sampleRecords(owner string) []repository.TaskRecord {
	created := time.Date(2026, 10, 18, 8, 15, 0, 123000000, time.Local)
	due := time.Date(2026, 10, 19, 23, 59, 59, 999000000, time.Local)
	return []repository.TaskRecord{
		{ID: "t2", Description: "Call mom", CreatedAt: created.Add(time.Minute), DueDate: &due, OwnerID: owner},
		{ID: "t1", Description: "Buy milk", Completed: true, CreatedAt: created, OwnerID: owner},
	}
}

func TestLoad_MissingOwnerIsEmpty(t *testing.T) {
	repo := setupTestDB(t)

	records, err := repo.Load(context.Background(), "alice")
	require.NoError(t, err)
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()
	want := sampleRecords("alice")

	require.NoError(t, repo.Save(ctx, "alice", want))

	got, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, len(want))

	for i := range want {
		assert.Equal(t, want[i].ID, got[i].ID)
		assert.Equal(t, want[i].Description, got[i].Description)
		assert.Equal(t, want[i].Completed, got[i].Completed)
		assert.True(t, want[i].CreatedAt.Equal(got[i].CreatedAt), "createdAt %v != %v", want[i].CreatedAt, got[i].CreatedAt)
		if want[i].DueDate == nil {
			assert.Nil(t, got[i].DueDate)
		} else {
			require.NotNil(t, got[i].DueDate)
			assert.True(t, want[i].DueDate.Equal(*got[i].DueDate))
		}
	}
}

func TestSave_OverwritesCollection(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "alice", sampleRecords("alice")))
	require.NoError(t, repo.Save(ctx, "alice", sampleRecords("alice")[:1]))

	got, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "t2", got[0].ID)
}

func TestOwnersArePartitioned(t *testing.T) {
	repo := setupTestDB(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, "alice", sampleRecords("alice")))
	require.NoError(t, repo.Save(ctx, "bob", nil))

	bob, err := repo.Load(ctx, "bob")
	require.NoError(t, err)
	assert.Empty(t, bob)

	alice, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, alice, 2)

	owners, err := repo.Owners(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"alice", "bob"}, owners)
}

func TestSchemaVersion(t *testing.T) {
	repo := setupTestDB(t)

	version, err := repo.SchemaVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1), version)
}

func TestBlankOwnerRejected(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.Load(context.Background(), "")
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))

	err = repo.Save(context.Background(), "", nil)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeInvalidInput))
}

func TestCorruptPayloadIsStorageError(t *testing.T) {
	repo := setupTestDB(t)

	_, err := repo.db.Exec(`INSERT INTO task_collections (collection_key, owner_id, payload, updated_at) VALUES (?, ?, ?, ?)`,
		"saytoplan:tasks:alice", "alice", "{broken", FormatTimeForDB(time.Now()))
	require.NoError(t, err)

	_, err = repo.Load(context.Background(), "alice")
	require.Error(t, err)
	assert.True(t, errors.IsErrorType(err, errors.ErrorTypeStorage))
}

func TestInMemoryDatabase(t *testing.T) {
	repo, err := New(":memory:")
	require.NoError(t, err)
	defer repo.Close()

	ctx := context.Background()
	require.NoError(t, repo.Save(ctx, "alice", sampleRecords("alice")))
	got, err := repo.Load(ctx, "alice")
	require.NoError(t, err)
	assert.Len(t, got, 2)
}
