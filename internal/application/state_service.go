package application

import (
	"context"
	"fmt"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/bnema/mana-kadai/internal/ports"
)

// StateService exposes the notify flag to operators.
type StateService struct {
	flags ports.FlagStore
}

func NewStateService(flags ports.FlagStore) *StateService {
	return &StateService{flags: flags}
}

func (s *StateService) Show(ctx context.Context) (domain.NotifyState, error) {
	state, err := s.flags.Load(ctx)
	if err != nil {
		return domain.StateIdle, fmt.Errorf("load notify flag: %w", err)
	}
	return state, nil
}

// Reset clears the flag so the next empty run sends a notice again.
func (s *StateService) Reset(ctx context.Context) error {
	if err := s.flags.Save(ctx, domain.StateIdle); err != nil {
		return fmt.Errorf("reset notify flag: %w", err)
	}
	return nil
}
