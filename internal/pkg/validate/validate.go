package validate

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-ulid/internal/domain"
)

// v is the package-level singleton validator. It is initialised once at
// package load time. Any custom type registrations must be made during init()
// before the first call to Struct.
var v = validator.New()

// Struct validates the given struct using its validate tags.
// The returned error wraps the domain error matching the first failed tag.
func Struct(s interface{}) error {
	if err := v.Struct(s); err != nil {
		ve, ok := err.(validator.ValidationErrors)
		if !ok {
			return fmt.Errorf("%w: %v", domain.ErrInvalidInputType, err)
		}
		var msgs []string
		for _, fe := range ve {
			msgs = append(msgs, fmt.Sprintf("field '%s' failed '%s'", fe.Field(), fe.Tag()))
		}
		return fmt.Errorf("%w: %s", kindFor(ve[0].Tag()), strings.Join(msgs, "; "))
	}
	return nil
}

func kindFor(tag string) error {
	switch tag {
	case "excluded_with":
		return domain.ErrConflictingOptions
	default:
		return domain.ErrInvalidInputType
	}
}
