package models

// Person represents a participant splitting the bill.
type Person struct {
	// ID is the unique identifier for the person (UUID format).
	ID string

	// Name is the display name of the person.
	Name string
}
