package models

// Employee is a directory record. The JSON shape is the API contract shared
// with the client.
type Employee struct {
	ID        string `json:"id"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
}
