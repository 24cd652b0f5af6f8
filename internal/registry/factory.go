package registry

import (
	"strings"

	"github.com/mmynk/coursework/internal/models"
)

// Factory validates raw data and builds users from it.
type Factory struct {
	validator *Validator
}

// NewFactory creates a factory that validates with v.
func NewFactory(v *Validator) *Factory {
	return &Factory{validator: v}
}

// CreateUser validates raw and returns the normalized user. Validation
// errors are returned unchanged. The user is not added to the repository.
func (f *Factory) CreateUser(raw RawUser) (models.User, error) {
	if err := f.validator.Validate(raw); err != nil {
		return models.User{}, err
	}

	return models.User{
		FullName:   strings.TrimSpace(*raw.FullName),
		Age:        int(*raw.Age),
		Address:    strings.TrimSpace(*raw.Address),
		RollNumber: int(*raw.RollNumber),
		Courses:    NormalizeCourses(raw.Courses),
	}, nil
}
