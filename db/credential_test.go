package db_test

import (
	"testing"

	"github.com/dmaraujo/agendo/db"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

// setupTestDBForCredential sets up an in-memory SQLite database for testing purposes.
func setupTestDBForCredential(t *testing.T) *gorm.DB {
	dbObject, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, dbObject.AutoMigrate(&db.Credential{}))
	return dbObject
}

func TestGetCredential_ReturnsStoredPair(t *testing.T) {
	testDB := setupTestDBForCredential(t)
	db.Db = testDB

	cred := &db.Credential{AccessToken: "access-token", RefreshToken: "refresh-token"}
	err := db.UpsertCredential(cred)
	require.NoError(t, err)

	retrieved, err := db.GetCredential()
	require.NoError(t, err)
	assert.NotNil(t, retrieved)
	assert.Equal(t, "access-token", retrieved.AccessToken)
	assert.Equal(t, "refresh-token", retrieved.RefreshToken)
}

func TestGetCredential_ReturnsNilWhenAbsent(t *testing.T) {
	testDB := setupTestDBForCredential(t)
	db.Db = testDB

	retrieved, err := db.GetCredential()
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestGetCredential_ReturnsErrorForUninitializedDB(t *testing.T) {
	db.Db = nil

	retrieved, err := db.GetCredential()
	assert.Error(t, err)
	assert.Nil(t, retrieved)
}

func TestUpsertCredential_ReplacesBothMembers(t *testing.T) {
	testDB := setupTestDBForCredential(t)
	db.Db = testDB

	require.NoError(t, db.UpsertCredential(&db.Credential{AccessToken: "old-access", RefreshToken: "old-refresh"}))
	require.NoError(t, db.UpsertCredential(&db.Credential{AccessToken: "new-access", RefreshToken: "new-refresh"}))

	retrieved, err := db.GetCredential()
	require.NoError(t, err)
	require.NotNil(t, retrieved)
	assert.Equal(t, "new-access", retrieved.AccessToken)
	assert.Equal(t, "new-refresh", retrieved.RefreshToken)

	var count int64
	testDB.Model(&db.Credential{}).Count(&count)
	assert.Equal(t, int64(1), count, "only one credential row should ever exist")
}

func TestClearCredential_RemovesBothMembers(t *testing.T) {
	testDB := setupTestDBForCredential(t)
	db.Db = testDB

	require.NoError(t, db.UpsertCredential(&db.Credential{AccessToken: "access", RefreshToken: "refresh"}))
	require.NoError(t, db.ClearCredential())

	retrieved, err := db.GetCredential()
	require.NoError(t, err)
	assert.Nil(t, retrieved)
}

func TestClearCredential_IsNoOpWhenEmpty(t *testing.T) {
	testDB := setupTestDBForCredential(t)
	db.Db = testDB

	require.NoError(t, db.ClearCredential())
}
