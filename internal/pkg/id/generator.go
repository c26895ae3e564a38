package id

import (
	"crypto/rand"
	"fmt"
	"io"
	"time"

	"github.com/oklog/ulid/v2"
)

// GenerateOptions describes one ID to build. A nil Timestamp means "now".
type GenerateOptions struct {
	Timestamp *time.Time
	Payload   PayloadMode
}

// Generator builds IDs from a clock and an entropy source. It holds no
// mutable state and is safe for concurrent use when its entropy reader is.
type Generator struct {
	clock   func() time.Time
	entropy io.Reader
}

// GeneratorOption configures a Generator.
type GeneratorOption func(*Generator)

// WithClock overrides the wall clock used when no timestamp is supplied.
func WithClock(clock func() time.Time) GeneratorOption {
	return func(g *Generator) { g.clock = clock }
}

// WithEntropy overrides the source of random payloads.
func WithEntropy(r io.Reader) GeneratorOption {
	return func(g *Generator) { g.entropy = r }
}

// NewGenerator returns a Generator reading time.Now and crypto/rand.
func NewGenerator(opts ...GeneratorOption) *Generator {
	g := &Generator{clock: time.Now, entropy: rand.Reader}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Generate builds an ID. The only possible error comes from the entropy
// reader in Random mode.
func (g *Generator) Generate(opts GenerateOptions) (ID, error) {
	var ts time.Time
	if opts.Timestamp != nil {
		ts = *opts.Timestamp
	} else {
		ts = g.clock()
	}
	ms := Timestamp(ts)

	switch opts.Payload.Kind() {
	case PayloadFixed:
		return FromParts(ms, PayloadFromInt(opts.Payload.value)), nil
	case PayloadZeros:
		return FromParts(ms, Payload{}), nil
	case PayloadOnes:
		return FromParts(ms, onesPayload), nil
	default:
		u, err := ulid.New(ms, g.entropy)
		if err != nil {
			return ID{}, fmt.Errorf("read entropy: %w", err)
		}
		return ID(u), nil
	}
}

var defaultGenerator = NewGenerator()

// Generate builds an ID with the default generator. It panics only if
// crypto/rand fails, like ulid.MustNew.
func Generate(opts GenerateOptions) ID {
	i, err := defaultGenerator.Generate(opts)
	if err != nil {
		panic(err)
	}
	return i
}

// New generates a random ULID string for the current time.
func New() string {
	return Generate(GenerateOptions{}).String()
}
