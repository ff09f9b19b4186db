package db_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/dmaraujo/agendo/db"
	"github.com/stretchr/testify/require"
)

func TestCredentialRepositoryUpsertGetClear(t *testing.T) {
	temp := t.TempDir()
	db.Path = filepath.Join(temp, "agendo.db")
	require.NoError(t, db.InitDB())
	t.Cleanup(func() { _ = db.CloseDB() })

	repo := db.NewCredentialRepository(db.GetDB())
	ctx := context.Background()

	// Absent before first save
	cred, err := repo.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, cred)

	// Upsert
	require.NoError(t, repo.Upsert(ctx, &db.Credential{AccessToken: "a1", RefreshToken: "r1"}))
	cred, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	require.Equal(t, "a1", cred.AccessToken)

	// Upsert again replaces the same row
	require.NoError(t, repo.Upsert(ctx, &db.Credential{AccessToken: "a2", RefreshToken: "r2"}))
	cred, err = repo.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, cred)
	require.Equal(t, "a2", cred.AccessToken)
	require.Equal(t, "r2", cred.RefreshToken)

	// Clear
	require.NoError(t, repo.Clear(ctx))
	cred, err = repo.Get(ctx)
	require.NoError(t, err)
	require.Nil(t, cred)
}

func TestCredentialRepositoryUninitialized(t *testing.T) {
	repo := db.NewCredentialRepository(nil)
	ctx := context.Background()

	_, err := repo.Get(ctx)
	require.Error(t, err)
	require.Error(t, repo.Upsert(ctx, &db.Credential{}))
	require.Error(t, repo.Clear(ctx))
}
