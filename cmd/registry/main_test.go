package main

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/coursework/internal/config"
	"github.com/mmynk/coursework/internal/models"
	"github.com/mmynk/coursework/internal/storage/jsonfile"
	"github.com/mmynk/coursework/internal/storage/sqlite"
)

func TestRunVersion(t *testing.T) {
	assert.NoError(t, run([]string{"-version"}))
}

func TestRunRejectsUnknownFlag(t *testing.T) {
	assert.Error(t, run([]string{"-nope"}))
}

func TestOpenStore(t *testing.T) {
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		cfg := config.Default()
		cfg.UsersFile = filepath.Join(dir, "users.json")

		store, err := openStore(cfg)
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &jsonfile.Store{}, store)
	})

	t.Run("sqlite", func(t *testing.T) {
		cfg := config.Default()
		cfg.Storage = config.BackendSQLite
		cfg.DBPath = filepath.Join(dir, "users.db")

		store, err := openStore(cfg)
		require.NoError(t, err)
		defer store.Close()
		assert.IsType(t, &sqlite.Store{}, store)

		ctx := context.Background()
		want := []models.User{{FullName: "Amy", Age: 20, Address: "Delhi", RollNumber: 1, Courses: []string{"A", "B", "C", "D"}}}
		require.NoError(t, store.SaveUsers(ctx, want))
		got, err := store.LoadUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})
}
