package ports

import (
	"context"

	"github.com/bnema/mana-kadai/internal/domain"
)

type Notifier interface {
	SendRecord(ctx context.Context, record domain.Record) error
	SendNoAssignments(ctx context.Context) error
	SendError(ctx context.Context, message string) error
}

type Aggregator interface {
	PutDeadlines(ctx context.Context, records []domain.Record) error
}
