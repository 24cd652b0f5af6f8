// Package registry implements the in-memory user registry: validation,
// construction, the canonical sorted repository and display ordering.
package registry

import (
	"fmt"
	"math"
	"slices"
	"strings"
	"unicode"
)

// Rule identifies a validation rule group. Rules are checked in the order
// they are declared.
type Rule string

const (
	RuleRequired         Rule = "required"
	RuleFullName         Rule = "full_name"
	RuleAddress          Rule = "address"
	RuleAge              Rule = "age"
	RuleRollNumber       Rule = "roll_number"
	RuleCourses          Rule = "courses"
	RuleUniqueRollNumber Rule = "unique_roll_number"
)

const (
	RequiredCourses = 4
	MinAge          = 1
	MaxAge          = 100
)

// AllowedCourses are the course codes a user may choose from.
var AllowedCourses = []string{"A", "B", "C", "D", "E", "F"}

// ValidationError reports the first rule a user record violated.
type ValidationError struct {
	Rule    Rule
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

func fail(rule Rule, format string, args ...any) *ValidationError {
	return &ValidationError{Rule: rule, Message: fmt.Sprintf(format, args...)}
}

// RawUser is unvalidated user data. A nil field is missing; zero values are
// present and are judged by the field rules.
type RawUser struct {
	FullName   *string
	Age        *float64
	Address    *string
	RollNumber *float64
	Courses    []string
}

// RollNumberChecker reports whether a roll number is already taken.
type RollNumberChecker interface {
	HasRollNumber(rollNumber int) bool
}

// Validator checks raw user data against the registry rules.
type Validator struct {
	users RollNumberChecker
}

// NewValidator creates a validator that checks uniqueness against users.
func NewValidator(users RollNumberChecker) *Validator {
	return &Validator{users: users}
}

// Validate runs every rule in order and returns the first failure as a
// *ValidationError.
func (v *Validator) Validate(raw RawUser) error {
	if err := ValidateRequired(raw); err != nil {
		return err
	}
	if err := ValidateFullName(*raw.FullName); err != nil {
		return err
	}
	if err := ValidateAddress(*raw.Address); err != nil {
		return err
	}
	if err := ValidateAge(*raw.Age); err != nil {
		return err
	}
	if err := ValidateRollNumber(*raw.RollNumber); err != nil {
		return err
	}
	if _, err := ValidateCourses(raw.Courses); err != nil {
		return err
	}
	return v.ValidateUniqueRollNumber(int(*raw.RollNumber))
}

// ValidateRequired fails when any field is missing.
func ValidateRequired(raw RawUser) error {
	var missing []string
	if raw.FullName == nil {
		missing = append(missing, "full name")
	}
	if raw.Age == nil {
		missing = append(missing, "age")
	}
	if raw.Address == nil {
		missing = append(missing, "address")
	}
	if raw.RollNumber == nil {
		missing = append(missing, "roll number")
	}
	if raw.Courses == nil {
		missing = append(missing, "courses")
	}
	if len(missing) > 0 {
		return fail(RuleRequired, "All fields are required. Missing: %s.", strings.Join(missing, ", "))
	}
	return nil
}

// ValidateFullName requires a non-empty name of letters and spaces.
func ValidateFullName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return fail(RuleFullName, "Full Name must be a non-empty string.")
	}
	for _, r := range name {
		if !unicode.IsLetter(r) && r != ' ' {
			return fail(RuleFullName, "Full Name may contain only letters and spaces.")
		}
	}
	return nil
}

// ValidateAddress requires a non-blank address.
func ValidateAddress(address string) error {
	if strings.TrimSpace(address) == "" {
		return fail(RuleAddress, "Address must be a non-empty string.")
	}
	return nil
}

// ValidateAge requires a whole number between MinAge and MaxAge.
func ValidateAge(age float64) error {
	if !isWhole(age) || age < MinAge || age > MaxAge {
		return fail(RuleAge, "Age must be a whole number between %d and %d.", MinAge, MaxAge)
	}
	return nil
}

// ValidateRollNumber requires a positive whole number.
func ValidateRollNumber(rollNumber float64) error {
	if !isWhole(rollNumber) || rollNumber <= 0 || rollNumber > math.MaxInt32 {
		return fail(RuleRollNumber, "Roll Number must be a positive integer.")
	}
	return nil
}

// ValidateCourses requires exactly RequiredCourses distinct codes from
// AllowedCourses. It returns the trimmed, uppercased codes.
func ValidateCourses(courses []string) ([]string, error) {
	normalized := NormalizeCourses(courses)

	if len(normalized) != RequiredCourses {
		return nil, fail(RuleCourses, "Exactly %d courses must be selected, got %d.", RequiredCourses, len(normalized))
	}

	var invalid []string
	for _, c := range normalized {
		if !slices.Contains(AllowedCourses, c) {
			invalid = append(invalid, c)
		}
	}
	if len(invalid) > 0 {
		return nil, fail(RuleCourses, "Invalid course(s): %s. Choose from A-F only.", strings.Join(invalid, ", "))
	}

	seen := make(map[string]bool, len(normalized))
	for _, c := range normalized {
		if seen[c] {
			return nil, fail(RuleCourses, "Duplicate courses selected. Please select %d unique courses.", RequiredCourses)
		}
		seen[c] = true
	}
	return normalized, nil
}

// ValidateUniqueRollNumber fails when the roll number is already registered.
// It only reads the registry.
func (v *Validator) ValidateUniqueRollNumber(rollNumber int) error {
	if v.users != nil && v.users.HasRollNumber(rollNumber) {
		return fail(RuleUniqueRollNumber, "Roll Number %d already exists.", rollNumber)
	}
	return nil
}

// NormalizeCourses trims and uppercases each course code.
func NormalizeCourses(courses []string) []string {
	out := make([]string, len(courses))
	for i, c := range courses {
		out[i] = strings.ToUpper(strings.TrimSpace(c))
	}
	return out
}

func isWhole(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0) && f == math.Trunc(f)
}
