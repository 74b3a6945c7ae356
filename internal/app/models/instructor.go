package models

import "fmt"

// Instructor defines the instructor model based on the 'instructors' table
type Instructor struct {
	ID                 int64  `json:"id" db:"id" example:"1"`
	Name               string `json:"name" db:"name" example:"Joao Silva"`
	Login              string `json:"login" db:"login" example:"joao"`
	PasswordHash       string `json:"-" db:"password_hash"` // bcrypt, never serialized
	Specialty          string `json:"specialty" db:"specialty" example:"IT"`
	RegistrationNumber string `json:"registrationNumber" db:"registration_number" example:"REG001"`
}

// Summary returns a one-line human-readable description of the instructor.
func (i *Instructor) Summary() string {
	return fmt.Sprintf("Instructor: %s | Registration: %s | Specialty: %s", i.Name, i.RegistrationNumber, i.Specialty)
}
