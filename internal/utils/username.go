package utils

import (
	"errors"
	"regexp"
	"strings"

	goaway "github.com/TwiN/go-away"
)

var (
	ErrInvalidUsername = errors.New("invalid username")
	ErrProfaneUsername = errors.New("username contains naughty word")
)

// usernameShape: 4-20 chars, alphanumeric ends, dots/underscores allowed
// in between. Separator adjacency is checked separately since RE2 has no
// lookahead.
var usernameShape = regexp.MustCompile(`^[a-zA-Z0-9][a-zA-Z0-9._]{2,18}[a-zA-Z0-9]$`)

var adjacentSeparators = regexp.MustCompile(`[._]{2}`)

// ValidateUsername enforces the account naming rules: restricted
// pattern, no repeated separators, no profanity.
func ValidateUsername(username string) error {
	if !usernameShape.MatchString(username) {
		return ErrInvalidUsername
	}
	if adjacentSeparators.MatchString(username) {
		return ErrInvalidUsername
	}
	// screen separator-split words too, so "bad.word" style names don't
	// slip past the filter
	if goaway.IsProfane(username) {
		return ErrProfaneUsername
	}
	replaced := strings.NewReplacer(".", " ", "_", " ").Replace(username)
	if goaway.IsProfane(replaced) {
		return ErrProfaneUsername
	}
	return nil
}
