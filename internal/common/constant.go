package common

// DateLayout is the calendar date format accepted on input and printed on
// output. Single-digit months and days are accepted when parsing.
const (
	DateLayout      = "2006-01-02"
	DateInputLayout = "2006-1-2"
)
