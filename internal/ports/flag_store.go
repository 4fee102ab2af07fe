package ports

import (
	"context"

	"github.com/bnema/mana-kadai/internal/domain"
)

type FlagStore interface {
	Load(ctx context.Context) (domain.NotifyState, error)
	Save(ctx context.Context, state domain.NotifyState) error
}
