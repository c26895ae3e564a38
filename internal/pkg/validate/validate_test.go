package validate

import (
	"testing"

	"github.com/go-ulid/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestStruct_ValidRequest(t *testing.T) {
	random := "12345"
	assert.NoError(t, Struct(domain.GenerateRequest{}))
	assert.NoError(t, Struct(domain.GenerateRequest{Random: &random}))
	assert.NoError(t, Struct(domain.GenerateRequest{Zeroed: true}))
	assert.NoError(t, Struct(domain.GenerateRequest{Oned: true}))
}

func TestStruct_ConflictingFlags(t *testing.T) {
	err := Struct(domain.GenerateRequest{Zeroed: true, Oned: true})
	assert.ErrorIs(t, err, domain.ErrConflictingOptions)
	assert.ErrorContains(t, err, "field 'Zeroed' failed 'excluded_with'")
}

func TestStruct_RandomTextLeftToPayload(t *testing.T) {
	for _, s := range []string{"", "abc", "-1", "1.5", "true"} {
		random := s
		assert.NoError(t, Struct(domain.GenerateRequest{Random: &random}), "input %q", s)
		assert.NoError(t, Struct(domain.GenerateRequest{Random: &random, Oned: true}), "input %q", s)
	}
}

func TestStruct_NonStruct(t *testing.T) {
	err := Struct("not a struct")
	assert.ErrorIs(t, err, domain.ErrInvalidInputType)
}
