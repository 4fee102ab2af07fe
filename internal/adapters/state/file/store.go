package file

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/bnema/mana-kadai/internal/domain"
	"github.com/bnema/mana-kadai/internal/ports"
)

const (
	stateDirMode    = 0o700
	stateFileMode   = 0o600
	tempFilePattern = ".manada-stat-*.tmp"
)

// Store keeps the notify flag in a single plain-text file. The file holds
// "notified" after a no-assignments notice and is empty otherwise.
type Store struct {
	path string
	mu   sync.RWMutex
}

var _ ports.FlagStore = (*Store)(nil)

func NewStore(path string) *Store {
	return &Store{path: filepath.Clean(path)}
}

func (s *Store) Path() string {
	return s.path
}

// Load treats a missing file as idle.
func (s *Store) Load(ctx context.Context) (domain.NotifyState, error) {
	if err := ctx.Err(); err != nil {
		return domain.StateIdle, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.StateIdle, nil
		}
		return domain.StateIdle, fmt.Errorf("read state file: %w", err)
	}

	if strings.TrimSpace(string(data)) == string(domain.StateNotified) {
		return domain.StateNotified, nil
	}

	return domain.StateIdle, nil
}

func (s *Store) Save(ctx context.Context, state domain.NotifyState) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	content := ""
	if state == domain.StateNotified {
		content = string(domain.StateNotified)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	return s.write([]byte(content))
}

func (s *Store) write(data []byte) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, stateDirMode); err != nil {
		return fmt.Errorf("create state directory: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp state file: %w", err)
	}

	if err := tempFile.Chmod(stateFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp state file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp state file: %w", err)
	}

	if err := os.Rename(tempName, s.path); err != nil {
		return fmt.Errorf("replace state file: %w", err)
	}
	cleanup = false

	return nil
}
