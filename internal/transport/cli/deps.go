package cli

import (
	"context"

	"github.com/go-ulid/internal/domain"
)

// ULIDService is the minimal interface the commands require from the ulid service.
type ULIDService interface {
	Resolve(in domain.Input) (domain.GenerateRequest, error)
	Generate(ctx context.Context, req domain.GenerateRequest) (string, error)
	Parse(ctx context.Context, text string) (*domain.Parts, error)
}
