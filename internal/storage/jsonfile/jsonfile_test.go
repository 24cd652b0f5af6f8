package jsonfile

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/coursework/internal/models"
	"github.com/mmynk/coursework/internal/storage"
)

func TestStore(t *testing.T) {
	ctx := context.Background()

	t.Run("missing file loads empty", func(t *testing.T) {
		s := New(filepath.Join(t.TempDir(), "users.json"))
		users, err := s.LoadUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("whitespace file loads empty", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.json")
		require.NoError(t, os.WriteFile(path, []byte("  \n\t"), 0644))

		users, err := New(path).LoadUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, users)
	})

	t.Run("corrupt file is an error", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "users.json")
		require.NoError(t, os.WriteFile(path, []byte("[{not json"), 0644))

		_, err := New(path).LoadUsers(ctx)
		assert.Error(t, err)
		assert.Empty(t, storage.LoadOrEmpty(ctx, New(path)))
	})

	t.Run("save then load", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "nested", "users.json")
		s := New(path)
		want := []models.User{
			{FullName: "Alice", Age: 21, Address: "12 Park Lane", RollNumber: 1, Courses: []string{"A", "B", "C", "D"}},
			{FullName: "Bob", Age: 22, Address: "3 High St", RollNumber: 2, Courses: []string{"C", "D", "E", "F"}},
		}
		require.NoError(t, s.SaveUsers(ctx, want))

		got, err := s.LoadUsers(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "\n  {\n    \"fullName\": \"Alice\",")
		assert.Contains(t, string(data), "\"rollNumber\": 2")
	})

	t.Run("save overwrites previous snapshot", func(t *testing.T) {
		s := New(filepath.Join(t.TempDir(), "users.json"))
		require.NoError(t, s.SaveUsers(ctx, []models.User{{FullName: "Old", RollNumber: 1}}))
		require.NoError(t, s.SaveUsers(ctx, nil))

		got, err := s.LoadUsers(ctx)
		require.NoError(t, err)
		assert.Empty(t, got)

		entries, err := os.ReadDir(filepath.Dir(s.Path()))
		require.NoError(t, err)
		assert.Len(t, entries, 1, "temp files must not be left behind")
	})
}
