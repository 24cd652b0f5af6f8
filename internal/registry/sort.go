package registry

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/mmynk/coursework/internal/models"
)

// SortField is a user attribute the display can be ordered by.
type SortField string

const (
	SortByFullName   SortField = "fullname"
	SortByAge        SortField = "age"
	SortByAddress    SortField = "address"
	SortByRollNumber SortField = "rollnumber"
)

// SortOrder is the display direction.
type SortOrder string

const (
	Ascending  SortOrder = "asc"
	Descending SortOrder = "desc"
)

var (
	ErrEmptyUserList    = errors.New("invalid or empty user list provided for sorting")
	ErrInvalidSortField = errors.New("invalid sort field")
	ErrInvalidSortOrder = errors.New("invalid sort order")
)

// ParseSortField accepts field names case-insensitively ("fullName" → fullname).
func ParseSortField(text string) (SortField, error) {
	switch f := SortField(strings.ToLower(strings.TrimSpace(text))); f {
	case SortByFullName, SortByAge, SortByAddress, SortByRollNumber:
		return f, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortField, text)
	}
}

// ParseSortOrder accepts "asc" or "desc" case-insensitively.
func ParseSortOrder(text string) (SortOrder, error) {
	switch o := SortOrder(strings.ToLower(strings.TrimSpace(text))); o {
	case Ascending, Descending:
		return o, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrInvalidSortOrder, text)
	}
}

// SortUsers returns a new slice ordered by field. Text fields compare
// case-insensitively, numbers numerically; ties keep their input order.
// users is not modified.
func SortUsers(users []models.User, field SortField, order SortOrder) ([]models.User, error) {
	if len(users) == 0 {
		return nil, ErrEmptyUserList
	}

	var compare func(a, b models.User) int
	switch field {
	case SortByFullName:
		compare = func(a, b models.User) int {
			return cmp.Compare(strings.ToLower(a.FullName), strings.ToLower(b.FullName))
		}
	case SortByAge:
		compare = func(a, b models.User) int { return cmp.Compare(a.Age, b.Age) }
	case SortByAddress:
		compare = func(a, b models.User) int {
			return cmp.Compare(strings.ToLower(a.Address), strings.ToLower(b.Address))
		}
	case SortByRollNumber:
		compare = func(a, b models.User) int { return cmp.Compare(a.RollNumber, b.RollNumber) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortField, string(field))
	}

	switch order {
	case Ascending:
	case Descending:
		asc := compare
		compare = func(a, b models.User) int { return -asc(a, b) }
	default:
		return nil, fmt.Errorf("%w: %q", ErrInvalidSortOrder, string(order))
	}

	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, compare)
	return sorted, nil
}
