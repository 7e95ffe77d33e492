package session

import "strings"

type Confirmation int

const (
	InvalidInput Confirmation = iota
	Accepted
	Rejected
)

// Confirm reads a yes/no answer, anything else is InvalidInput and should be
// asked again
func Confirm(input string) Confirmation {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "Y", "YES":
		return Accepted
	case "N", "NO":
		return Rejected
	}
	return InvalidInput
}
