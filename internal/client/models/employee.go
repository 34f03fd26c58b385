// Package models holds the client-side data shapes exchanged with the
// backend.
package models

import "strings"

type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}

// FullName joins the first and last name, skipping empty parts.
func (e Employee) FullName() string {
	return strings.TrimSpace(e.FirstName + " " + e.LastName)
}

// Page selects a slice of the employee list. Zero values leave the choice
// to the backend.
type Page struct {
	Number int
	Size   int
}

// EmployeeList is one page of employees plus the total the backend reported.
// Total is -1 when the backend did not say.
type EmployeeList struct {
	Items []Employee
	Total int
}
