package registry

import (
	"cmp"
	"slices"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/coursework/internal/models"
)

// Repository holds the canonical, always-sorted list of users for one
// session. It is not safe for concurrent use.
//
// Canonical order is full name by locale-aware collation, then roll number
// ascending.
type Repository struct {
	users    []models.User
	collator *collate.Collator
}

// NewRepository creates an empty repository.
func NewRepository() *Repository {
	return &Repository{collator: collate.New(language.English)}
}

// AddUser appends user and restores canonical order.
func (r *Repository) AddUser(user models.User) {
	r.users = append(r.users, user)
	r.sort()
}

// DeleteUser removes every user with the roll number and reports whether
// anything was removed.
func (r *Repository) DeleteUser(rollNumber int) bool {
	before := len(r.users)
	r.users = slices.DeleteFunc(r.users, func(u models.User) bool {
		return u.RollNumber == rollNumber
	})
	return len(r.users) < before
}

// Users returns a copy of the users in canonical order.
func (r *Repository) Users() []models.User {
	return slices.Clone(r.users)
}

// SetUsers replaces the contents with a copy of users, then sorts.
func (r *Repository) SetUsers(users []models.User) {
	r.users = slices.Clone(users)
	r.sort()
}

// ClearUsers empties the repository.
func (r *Repository) ClearUsers() {
	r.users = nil
}

// HasRollNumber implements RollNumberChecker.
func (r *Repository) HasRollNumber(rollNumber int) bool {
	return slices.ContainsFunc(r.users, func(u models.User) bool {
		return u.RollNumber == rollNumber
	})
}

// Len returns the number of users.
func (r *Repository) Len() int {
	return len(r.users)
}

func (r *Repository) sort() {
	slices.SortStableFunc(r.users, func(a, b models.User) int {
		return cmp.Or(
			r.collator.CompareString(a.FullName, b.FullName),
			cmp.Compare(a.RollNumber, b.RollNumber),
		)
	})
}
