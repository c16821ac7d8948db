package model

import (
	"strings"
	"unicode/utf16"
)

// EmailState represents the validation status of the profile email
type EmailState string

const (
	// EmailStateVoid means no email has been entered
	EmailStateVoid EmailState = "VOID"

	// EmailStateInvalid means the email is too short and has no "@"
	EmailStateInvalid EmailState = "INVALID"

	// EmailStateChecking means an availability check is in flight
	EmailStateChecking EmailState = "CHECKING"

	// EmailStateTaken is reserved for an unavailable address. No transition
	// produces it yet.
	EmailStateTaken EmailState = "TAKEN"

	// EmailStateOK means the check finished successfully
	EmailStateOK EmailState = "OK"
)

// MinEmailLength is the length below which an email without "@" is invalid.
// Length is counted in UTF-16 code units, see EmailLength.
const MinEmailLength = 3

// String returns the string representation of EmailState
func (s EmailState) String() string {
	return string(s)
}

// IsSettled returns true if no check is pending for this state
func (s EmailState) IsSettled() bool {
	return s != EmailStateChecking
}

// ClassifyEmail returns the immediate state for an email value and whether an
// availability check has to follow before the state can settle.
func ClassifyEmail(email string) (EmailState, bool) {
	switch {
	case email == "":
		return EmailStateVoid, false
	case EmailLength(email) < MinEmailLength && !strings.Contains(email, "@"):
		return EmailStateInvalid, false
	default:
		return EmailStateChecking, true
	}
}

// EmailLength returns the length of email in UTF-16 code units, the unit text
// fields report on Android and in the browser. Characters outside the BMP
// count as two.
func EmailLength(email string) int {
	return len(utf16.Encode([]rune(email)))
}
