// Package profile persists the user's display name.
//
// Persistence is best effort: store failures are logged and never reach the
// caller, because the UI state is the source of truth for the session.
package profile

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/inovacc/fitbook/internal/store"
)

const (
	// NameKey is the storage key. Changing the stored representation needs a
	// new key.
	NameKey = "profile_name_v1"

	// DefaultName is shown until a name has been saved.
	DefaultName = "User Name"
)

// ErrInvalidName is returned when the trimmed name is empty.
var ErrInvalidName = errors.New("please enter a valid name")

// Service loads and saves the profile name.
type Service struct {
	kv     store.KV
	logger *slog.Logger
}

func NewService(kv store.KV, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}

	return &Service{kv: kv, logger: logger}
}

// Normalize trims value and rejects empty names.
func Normalize(value string) (string, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return "", ErrInvalidName
	}

	return trimmed, nil
}

// SaveName stores the trimmed name, replacing any previous one. Only
// ErrInvalidName is returned; an invalid name never touches the store.
func (s *Service) SaveName(ctx context.Context, value string) (string, error) {
	name, err := Normalize(value)
	if err != nil {
		return "", err
	}

	if err := s.kv.Set(ctx, NameKey, name); err != nil {
		s.logger.Warn("failed saving name", "key", NameKey, "error", err)
	}

	return name, nil
}

// LoadName returns the stored name, or false if none was saved or the store
// could not be read.
func (s *Service) LoadName(ctx context.Context) (string, bool) {
	v, ok, err := s.kv.Get(ctx, NameKey)
	if err != nil {
		s.logger.Warn("failed loading name", "key", NameKey, "error", err)

		return "", false
	}

	if !ok || v == "" {
		return "", false
	}

	return v, true
}

// DisplayName returns the stored name or DefaultName.
func (s *Service) DisplayName(ctx context.Context) string {
	if name, ok := s.LoadName(ctx); ok {
		return name
	}

	return DefaultName
}
