package models

// User represents a student record in the registry.
//
// Users are built by registry.Factory after validation and are never
// modified afterwards.
type User struct {
	// FullName is the trimmed display name (letters and spaces only).
	FullName string `json:"fullName"`

	// Age is in the range 1..100.
	Age int `json:"age"`

	// Address is the trimmed postal address.
	Address string `json:"address"`

	// RollNumber is the positive identifier, unique across the registry.
	RollNumber int `json:"rollNumber"`

	// Courses holds exactly 4 distinct course codes from A to F, uppercased.
	Courses []string `json:"courses"`
}
