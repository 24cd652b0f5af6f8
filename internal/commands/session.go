package commands

import (
	"context"
	"errors"
	"log/slog"

	"github.com/google/uuid"

	"github.com/mmynk/coursework/internal/storage"
)

const menu = `
Menu:
1. Add User
2. Display Users
3. Delete User
4. Save Users
5. Exit`

// Session is one interactive registry run.
type Session struct {
	deps     *Deps
	logger   *slog.Logger
	commands map[string]Command
}

// NewSession wires the five menu commands.
func NewSession(deps *Deps) *Session {
	logger := slog.With("session_id", uuid.New().String())

	s := &Session{deps: deps, logger: logger}
	s.commands = map[string]Command{
		"1": WithLogging(logger, AddUser{deps}),
		"2": WithLogging(logger, DisplayUsers{deps}),
		"3": WithLogging(logger, DeleteUser{deps}),
		"4": WithLogging(logger, SaveUsers{deps}),
		"5": WithLogging(logger, Exit{deps}),
	}
	return s
}

// Load replaces the registry contents with the persisted users.
func (s *Session) Load(ctx context.Context) {
	users := storage.LoadOrEmpty(ctx, s.deps.Store)
	s.deps.Repo.SetUsers(users)
	s.logger.Info("Registry loaded", "count", len(users))
	s.deps.Printer.Statusf("Loaded %d users from disk.", len(users))
}

// Run shows the menu until the exit command is chosen, which returns nil.
// Any prompter error, such as io.EOF, ends the session and is returned.
func (s *Session) Run(ctx context.Context) error {
	for {
		if err := ctx.Err(); err != nil {
			return err
		}

		s.deps.Printer.Statusf("%s", menu)
		choice, err := s.deps.Prompter.Ask("Enter your choice: ")
		if err != nil {
			return err
		}

		cmd, ok := s.commands[choice]
		if !ok {
			s.deps.Printer.Statusf("Invalid option. Please choose 1-5.")
			continue
		}

		if err := cmd.Execute(ctx); err != nil {
			if errors.Is(err, ErrExit) {
				return nil
			}
			return err
		}
	}
}
