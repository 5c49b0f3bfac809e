package models

// Vaccine is a named lot with its remaining dose count.
type Vaccine struct {
	Name  string
	Doses int
}
