package id

import (
	"errors"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-ulid/internal/domain"
	"github.com/oklog/ulid/v2"
)

// MaxTimestamp is the largest millisecond timestamp a ULID can hold (2^48 - 1).
const MaxTimestamp uint64 = 1<<48 - 1

// ID is a 128-bit ULID: a 48-bit millisecond timestamp followed by an
// 80-bit payload, big-endian. Its text form sorts the same way its bytes do.
type ID ulid.ULID

// FromParts builds an ID from a millisecond timestamp and a payload.
// Timestamps wider than 48 bits keep only their low 48 bits.
func FromParts(ms uint64, payload Payload) ID {
	var u ulid.ULID
	// Neither call can fail: ms is masked to 48 bits and payload is 10 bytes.
	_ = u.SetTime(ms & MaxTimestamp)
	_ = u.SetEntropy(payload[:])
	return ID(u)
}

// Timestamp converts t to milliseconds since the Unix epoch, truncated to 48 bits.
func Timestamp(t time.Time) uint64 {
	return uint64(t.UnixMilli()) & MaxTimestamp
}

// String returns the canonical 26-character upper-case encoding.
func (i ID) String() string { return ulid.ULID(i).String() }

// Format is the function form of ID.String.
func Format(i ID) string { return i.String() }

// Timestamp returns the 48-bit millisecond component.
func (i ID) Timestamp() uint64 { return ulid.ULID(i).Time() }

// Time returns the timestamp component as a UTC time with millisecond precision.
func (i ID) Time() time.Time { return time.UnixMilli(int64(i.Timestamp())).UTC() }

// Payload returns the 80-bit payload component.
func (i ID) Payload() Payload {
	var p Payload
	copy(p[:], i[6:])
	return p
}

// Split exposes both components for inspection: the UTC timestamp and the
// payload as an exact base-10 string.
func (i ID) Split() (time.Time, string) {
	return i.Time(), i.Payload().Decimal()
}

// Bytes returns a copy of the raw 16-byte representation.
func (i ID) Bytes() []byte {
	b := make([]byte, len(i))
	copy(b, i[:])
	return b
}

// Compare returns -1, 0 or 1 comparing i to other numerically.
func (i ID) Compare(other ID) int { return ulid.ULID(i).Compare(ulid.ULID(other)) }

func (i ID) MarshalText() ([]byte, error) { return []byte(i.String()), nil }

func (i *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*i = parsed
	return nil
}

// Parse decodes ulid text. Surrounding whitespace is ignored and letters
// are accepted in either case. Failures are *domain.ParseError values.
func Parse(text string) (ID, error) {
	s := strings.TrimSpace(text)
	if utf8.RuneCountInString(s) != ulid.EncodedSize {
		return ID{}, &domain.ParseError{Kind: domain.InvalidLength, Input: text, Position: -1}
	}

	pos := 0
	for _, r := range s {
		if !isEncodingRune(r) {
			return ID{}, &domain.ParseError{Kind: domain.InvalidCharacter, Input: text, Position: pos, Char: r}
		}
		pos++
	}

	// s is pure ASCII from here on, so ToUpper keeps its length.
	u, err := ulid.ParseStrict(strings.ToUpper(s))
	if err != nil {
		if errors.Is(err, ulid.ErrOverflow) {
			return ID{}, &domain.ParseError{Kind: domain.Overflow, Input: text, Position: 0, Char: rune(s[0])}
		}
		return ID{}, &domain.ParseError{Input: text, Position: -1}
	}
	return ID(u), nil
}

// MustParse is like Parse but panics on malformed input.
func MustParse(text string) ID {
	i, err := Parse(text)
	if err != nil {
		panic(err)
	}
	return i
}

func isEncodingRune(r rune) bool {
	if r >= utf8.RuneSelf {
		return false
	}
	if 'a' <= r && r <= 'z' {
		r -= 'a' - 'A'
	}
	return strings.IndexRune(ulid.Encoding, r) >= 0
}
