package ulid

import (
	"context"
	"fmt"
	"log/slog"
	"math/big"
	"strconv"
	"strings"
	"time"

	"github.com/go-ulid/internal/domain"
	"github.com/go-ulid/internal/pkg/id"
	"github.com/go-ulid/internal/pkg/logger"
	"github.com/go-ulid/internal/pkg/validate"
)

type Service interface {
	Resolve(in domain.Input) (domain.GenerateRequest, error)
	Generate(ctx context.Context, req domain.GenerateRequest) (string, error)
	Parse(ctx context.Context, text string) (*domain.Parts, error)
}

type service struct {
	gen *id.Generator
	loc *time.Location
	log *slog.Logger
}

// NewService returns a Service that builds IDs with gen and reports parsed
// timestamps in loc. A nil loc means UTC.
func NewService(gen *id.Generator, loc *time.Location, log *slog.Logger) Service {
	if gen == nil {
		gen = id.NewGenerator()
	}
	if loc == nil {
		loc = time.UTC
	}
	if log == nil {
		log = logger.Discard()
	}
	return &service{gen: gen, loc: loc, log: log}
}

var (
	maxUint128 = new(big.Int).Sub(new(big.Int).Lsh(big.NewInt(1), 128), big.NewInt(1))
	maxTime    = time.UnixMilli(int64(id.MaxTimestamp)).UTC()
)

// Zoneless layouts are read in the service location.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02",
}

func (s *service) Resolve(in domain.Input) (domain.GenerateRequest, error) {
	req := domain.GenerateRequest{Random: in.Random}
	if in.Timestamp != nil {
		ts, err := parseTimestamp(*in.Timestamp, s.loc)
		if err != nil {
			return domain.GenerateRequest{}, err
		}
		req.Timestamp = &ts
	}
	return req, nil
}

func (s *service) Generate(ctx context.Context, req domain.GenerateRequest) (string, error) {
	if err := validate.Struct(req); err != nil {
		return "", err
	}
	mode, err := payloadMode(req)
	if err != nil {
		return "", err
	}
	if req.Timestamp != nil {
		if err := checkRange(*req.Timestamp); err != nil {
			return "", err
		}
	}

	u, err := s.gen.Generate(id.GenerateOptions{Timestamp: req.Timestamp, Payload: mode})
	if err != nil {
		return "", fmt.Errorf("generate ulid: %w", err)
	}
	s.log.DebugContext(ctx, "generated ulid", "ulid", u.String(), "payload", mode.Kind().String())
	return u.String(), nil
}

func (s *service) Parse(ctx context.Context, text string) (*domain.Parts, error) {
	u, err := id.Parse(text)
	if err != nil {
		return nil, err
	}
	ts, random := u.Split()
	s.log.DebugContext(ctx, "parsed ulid", "ulid", u.String(), "timestamp_ms", u.Timestamp())
	return &domain.Parts{Timestamp: ts.In(s.loc), Random: random}, nil
}

// payloadMode picks the padding flags over an explicit payload, then the
// explicit payload over random.
func payloadMode(req domain.GenerateRequest) (id.PayloadMode, error) {
	switch {
	case req.Zeroed && req.Oned:
		return id.PayloadMode{}, fmt.Errorf("%w: cannot set zeroed and oned at the same time", domain.ErrConflictingOptions)
	case req.Zeroed:
		return id.Zeros(), nil
	case req.Oned:
		return id.Ones(), nil
	case req.Random != nil:
		// SetString accepts a leading sign, so "+5" parses; negatives are rejected below.
		v, ok := new(big.Int).SetString(*req.Random, 10)
		if !ok || v.Sign() < 0 {
			return id.PayloadMode{}, fmt.Errorf("%w: %q is not an unsigned integer", domain.ErrNumericParse, *req.Random)
		}
		if v.Cmp(maxUint128) > 0 {
			return id.PayloadMode{}, fmt.Errorf("%w: %s is too large to fit in 128 bits", domain.ErrNumericParse, *req.Random)
		}
		return id.Fixed(v), nil
	default:
		return id.Random(), nil
	}
}

func checkRange(t time.Time) error {
	ms := t.UnixMilli()
	if ms < 0 || uint64(ms) > id.MaxTimestamp {
		return fmt.Errorf("%w: %s is outside 1970-01-01T00:00:00Z..%s",
			domain.ErrTimestampRange, t.Format(time.RFC3339Nano), maxTime.Format(time.RFC3339Nano))
	}
	return nil
}

// parseTimestamp accepts RFC 3339, zoneless date-times, bare dates, or a
// digits-only count of milliseconds since the epoch.
func parseTimestamp(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s != "" && strings.Trim(s, "0123456789") == "" {
		ms, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %s milliseconds", domain.ErrTimestampRange, s)
		}
		return time.UnixMilli(ms).UTC(), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, loc); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q is not a date", domain.ErrInvalidInputType, s)
}
