// Package commands implements the registry menu: one Command per menu entry
// and the Session loop that dispatches them.
package commands

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/mmynk/coursework/internal/console"
	"github.com/mmynk/coursework/internal/metrics"
	"github.com/mmynk/coursework/internal/registry"
	"github.com/mmynk/coursework/internal/storage"
)

// ErrExit is returned by the exit command to end the session.
var ErrExit = errors.New("exit requested")

// Command is one menu action. Problems with the user's input are reported
// to the user and are not errors; Execute only fails when the session
// cannot continue.
type Command interface {
	Name() string
	Execute(ctx context.Context) error
}

// Deps are the collaborators shared by every command.
type Deps struct {
	Repo     *registry.Repository
	Factory  *registry.Factory
	Store    storage.UserStore
	Prompter console.Prompter
	Printer  *console.Printer
	Metrics  *metrics.Metrics
}

// AddUser prompts for a new user and adds it to the registry.
type AddUser struct{ *Deps }

func (c AddUser) Name() string { return "add" }

func (c AddUser) Execute(ctx context.Context) error {
	answers, err := askAll(c.Prompter,
		"Enter user's full name: ",
		"Enter user's age: ",
		"Enter user's address: ",
		"Enter user's roll number: ",
		"Enter 4 courses (A-F) comma-separated: ",
	)
	if err != nil {
		return err
	}

	raw := registry.RawUser{
		FullName: &answers[0],
		Address:  &answers[2],
		Courses:  parseCourses(answers[4]),
	}
	if raw.Age, err = parseNumber("age", answers[1]); err != nil {
		c.Printer.Statusf("Error: %v", err)
		return nil
	}
	if raw.RollNumber, err = parseNumber("roll number", answers[3]); err != nil {
		c.Printer.Statusf("Error: %v", err)
		return nil
	}

	user, err := c.Factory.CreateUser(raw)
	if err != nil {
		var verr *registry.ValidationError
		if errors.As(err, &verr) {
			c.Metrics.ValidationFailures.WithLabelValues(string(verr.Rule)).Inc()
		}
		slog.Debug("User rejected", "error", err)
		c.Printer.Statusf("Error: %v", err)
		return nil
	}

	c.Repo.AddUser(user)
	c.Metrics.UsersAdded.Inc()
	slog.Info("User added", "roll_number", user.RollNumber, "count", c.Repo.Len())
	c.Printer.Statusf("User added successfully.")
	return nil
}

// DisplayUsers prints the registry ordered by a field the user picks.
type DisplayUsers struct{ *Deps }

func (c DisplayUsers) Name() string { return "display" }

func (c DisplayUsers) Execute(ctx context.Context) error {
	users := c.Repo.Users()
	if len(users) == 0 {
		c.Printer.Statusf("No users to display.")
		return nil
	}

	answers, err := askAll(c.Prompter,
		"Sort by (fullName, rollNumber, age, address): ",
		"Order (asc/desc): ",
	)
	if err != nil {
		return err
	}

	field, fieldErr := registry.ParseSortField(answers[0])
	order, orderErr := registry.ParseSortOrder(answers[1])
	if fieldErr != nil || orderErr != nil {
		c.Printer.Statusf("Error: Invalid field or order.")
		return nil
	}

	sorted, err := registry.SortUsers(users, field, order)
	if err != nil {
		c.Printer.Statusf("Error: %v", err)
		return nil
	}
	c.Printer.Users(sorted)
	return nil
}

// DeleteUser removes a user by roll number.
type DeleteUser struct{ *Deps }

func (c DeleteUser) Name() string { return "delete" }

func (c DeleteUser) Execute(ctx context.Context) error {
	answer, err := c.Prompter.Ask("Enter roll number to delete: ")
	if err != nil {
		return err
	}

	roll, err := strconv.Atoi(answer)
	if err != nil {
		c.Printer.Statusf("Error: roll number must be a whole number, got %q", answer)
		return nil
	}

	if !c.Repo.DeleteUser(roll) {
		c.Printer.Statusf("Roll number not found.")
		return nil
	}
	c.Metrics.UsersDeleted.Inc()
	slog.Info("User deleted", "roll_number", roll)
	c.Printer.Statusf("User deleted.")
	return nil
}

// SaveUsers writes the registry to storage.
type SaveUsers struct{ *Deps }

func (c SaveUsers) Name() string { return "save" }

func (c SaveUsers) Execute(ctx context.Context) error {
	save(ctx, c.Deps)
	return nil
}

// Exit optionally saves, then ends the session.
type Exit struct{ *Deps }

func (c Exit) Name() string { return "exit" }

func (c Exit) Execute(ctx context.Context) error {
	answer, err := c.Prompter.Ask("Do you want to save before exiting? (y/n): ")
	if err != nil {
		return err
	}
	if strings.EqualFold(answer, "y") {
		save(ctx, c.Deps)
	}
	c.Printer.Statusf("Exiting CLI...")
	return ErrExit
}

// save writes a snapshot. A storage failure is reported and logged; the
// in-memory registry is unaffected.
func save(ctx context.Context, d *Deps) {
	users := d.Repo.Users()
	if err := d.Store.SaveUsers(ctx, users); err != nil {
		d.Metrics.RegistrySaves.WithLabelValues("error").Inc()
		slog.Error("Failed to save users", "error", err)
		d.Printer.Statusf("Error: could not save users: %v", err)
		return
	}
	d.Metrics.RegistrySaves.WithLabelValues("ok").Inc()
	slog.Info("Users saved", "count", len(users))
	d.Printer.Statusf("User data saved to disk.")
}

func askAll(p console.Prompter, prompts ...string) ([]string, error) {
	answers := make([]string, len(prompts))
	for i, prompt := range prompts {
		answer, err := p.Ask(prompt)
		if err != nil {
			return nil, err
		}
		answers[i] = answer
	}
	return answers, nil
}

// parseNumber treats a blank answer as missing so the required-field rule
// reports it.
func parseNumber(field, text string) (*float64, error) {
	if text == "" {
		return nil, nil
	}
	n, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, fmt.Errorf("%s must be a number, got %q", field, text)
	}
	return &n, nil
}

// parseCourses splits a comma-separated answer. A blank answer is missing.
func parseCourses(text string) []string {
	if text == "" {
		return nil
	}
	return registry.NormalizeCourses(strings.Split(text, ","))
}
