// Package storage provides abstractions for persisting the user registry.
package storage

import (
	"context"
	"log/slog"

	"github.com/mmynk/coursework/internal/models"
)

// UserStore defines full-snapshot persistence for the registry.
// This abstraction allows swapping backends (JSON file, SQLite)
// without changing the commands.
type UserStore interface {
	// LoadUsers returns every persisted user. A missing or empty store
	// yields an empty slice and no error.
	LoadUsers(ctx context.Context) ([]models.User, error)

	// SaveUsers replaces everything previously persisted with users.
	// The write is all-or-nothing.
	SaveUsers(ctx context.Context, users []models.User) error

	// Close releases any resources held by the store.
	Close() error
}

// LoadOrEmpty loads users from store. Unreadable or corrupt data is logged
// and treated as an empty registry, so startup never fails on bad data.
func LoadOrEmpty(ctx context.Context, store UserStore) []models.User {
	users, err := store.LoadUsers(ctx)
	if err != nil {
		slog.Error("Failed to load users, starting empty", "error", err)
		return []models.User{}
	}
	return users
}
