package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"time"
)

// GenerateRequest is a resolved request to build one ULID.
// At most one of Zeroed and Oned may be set; either one overrides Random,
// which is only parsed when neither flag is set.
type GenerateRequest struct {
	Timestamp *time.Time
	Random    *string
	Zeroed    bool `validate:"excluded_with=Oned"`
	Oned      bool
}

// Parts is the inspection record for a parsed ULID.
type Parts struct {
	Timestamp time.Time `json:"timestamp"`
	Random    string    `json:"random"`
}

// Input is the document accepted on the generate path: JSON null, a
// date-time string, or a record with optional "timestamp" and "random"
// fields. Random is kept as decimal text; JSON integers are converted.
type Input struct {
	Timestamp *string `json:"timestamp,omitempty"`
	Random    *string `json:"random,omitempty"`
}

var uint128Modulus = new(big.Int).Lsh(big.NewInt(1), 128)

// DecodeInput reads an Input document. Empty input is treated as null.
func DecodeInput(raw []byte) (Input, error) {
	var in Input
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return in, nil
	}
	if err := json.Unmarshal(raw, &in); err != nil {
		if errors.Is(err, ErrInvalidInputType) {
			return Input{}, err
		}
		return Input{}, fmt.Errorf("%w: %v", ErrInvalidInputType, err)
	}
	return in, nil
}

func (in *Input) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*in = Input{}
		return nil
	}

	switch b[0] {
	case '"':
		var ts string
		if err := json.Unmarshal(b, &ts); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInputType, err)
		}
		*in = Input{Timestamp: &ts}
		return nil
	case '{':
		var rec struct {
			Timestamp json.RawMessage `json:"timestamp"`
			Random    json.RawMessage `json:"random"`
		}
		if err := json.Unmarshal(b, &rec); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInputType, err)
		}
		out := Input{}
		if len(rec.Timestamp) > 0 && !bytes.Equal(rec.Timestamp, []byte("null")) {
			var ts string
			if err := json.Unmarshal(rec.Timestamp, &ts); err != nil {
				return fmt.Errorf("%w: timestamp must be a date string, got %s", ErrInvalidInputType, rec.Timestamp)
			}
			out.Timestamp = &ts
		}
		if len(rec.Random) > 0 && !bytes.Equal(rec.Random, []byte("null")) {
			r := decodeRandom(rec.Random)
			out.Random = &r
		}
		*in = out
		return nil
	default:
		return fmt.Errorf("%w: input of type %s is not supported", ErrInvalidInputType, jsonKind(b))
	}
}

// decodeRandom returns a string value verbatim and a JSON integer in decimal.
// Negative integers wrap to their 128-bit two's-complement value. Any other
// value is kept as its raw JSON text and only fails once it is used as a
// payload.
func decodeRandom(raw json.RawMessage) string {
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	n, ok := new(big.Int).SetString(string(raw), 10)
	if !ok {
		return string(raw)
	}
	if n.Sign() < 0 {
		n.Mod(n, uint128Modulus)
	}
	return n.String()
}

func jsonKind(b []byte) string {
	switch b[0] {
	case '[':
		return "list"
	case 't', 'f':
		return "bool"
	default:
		return "number"
	}
}
