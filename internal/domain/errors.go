package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for error-kind discrimination.
// Services wrap these so callers can branch with errors.Is without parsing messages.
var (
	ErrInvalidInputType   = errors.New("invalid input")
	ErrMalformed          = errors.New("malformed ulid")
	ErrNumericParse       = errors.New("invalid number")
	ErrConflictingOptions = errors.New("conflicting options")
	ErrTimestampRange     = errors.New("timestamp out of range")
)

// ParseErrorKind narrows down why a ulid string was rejected.
type ParseErrorKind int

const (
	InvalidLength ParseErrorKind = iota + 1
	InvalidCharacter
	Overflow
)

func (k ParseErrorKind) String() string {
	switch k {
	case InvalidLength:
		return "invalid length"
	case InvalidCharacter:
		return "invalid character"
	case Overflow:
		return "overflow"
	default:
		return "unknown"
	}
}

// ParseError is returned for ulid text that is not a valid 26-character
// Crockford Base32 string. It always matches ErrMalformed.
type ParseError struct {
	Kind  ParseErrorKind
	Input string
	// Position is the zero-based character index of the offending
	// character, or -1 when the error is not tied to one character.
	Position int
	Char     rune
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case InvalidLength:
		return fmt.Sprintf("%s: %q has %s, want 26 characters", ErrMalformed, e.Input, e.Kind)
	case InvalidCharacter:
		return fmt.Sprintf("%s: %s %q at position %d", ErrMalformed, e.Kind, e.Char, e.Position)
	case Overflow:
		return fmt.Sprintf("%s: %q exceeds 128 bits", ErrMalformed, e.Input)
	default:
		return fmt.Sprintf("%s: %q", ErrMalformed, e.Input)
	}
}

func (e *ParseError) Unwrap() error { return ErrMalformed }
