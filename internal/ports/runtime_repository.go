package ports

import (
	"context"

	"github.com/bnema/chanterm/internal/domain"
)

type RuntimeRepository interface {
	GetByProfile(ctx context.Context, name domain.ProfileName) (domain.Runtime, error)
	Save(ctx context.Context, runtime domain.Runtime) error
	Clear(ctx context.Context, name domain.ProfileName) error
}
