package profile

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/inovacc/fitbook/internal/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// spyKV counts calls and can be told to fail.
type spyKV struct {
	store.KV
	sets   int
	gets   int
	getErr error
	setErr error
}

func (s *spyKV) Get(ctx context.Context, key string) (string, bool, error) {
	s.gets++
	if s.getErr != nil {
		return "", false, s.getErr
	}

	return s.KV.Get(ctx, key)
}

func (s *spyKV) Set(ctx context.Context, key, value string) error {
	s.sets++
	if s.setErr != nil {
		return s.setErr
	}

	return s.KV.Set(ctx, key, value)
}

func newSpy() *spyKV {
	return &spyKV{KV: store.NewMemory()}
}

func quietLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, nil))
}

func TestSaveName_RejectsEmpty(t *testing.T) {
	for _, input := range []string{"", "   ", "\t\n"} {
		kv := newSpy()
		svc := NewService(kv, nil)

		_, err := svc.SaveName(context.Background(), input)
		assert.ErrorIs(t, err, ErrInvalidName)
		assert.Zero(t, kv.sets, "store must not be called for %q", input)
	}
}

func TestSaveName_Trims(t *testing.T) {
	kv := newSpy()
	svc := NewService(kv, nil)

	name, err := svc.SaveName(context.Background(), "  Alex  ")
	require.NoError(t, err)
	assert.Equal(t, "Alex", name)

	v, ok, err := kv.KV.Get(context.Background(), NameKey)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "Alex", v)
}

func TestSaveName_Overwrites(t *testing.T) {
	svc := NewService(store.NewMemory(), nil)

	_, err := svc.SaveName(context.Background(), "Alex")
	require.NoError(t, err)
	_, err = svc.SaveName(context.Background(), "Sam")
	require.NoError(t, err)

	name, ok := svc.LoadName(context.Background())
	assert.True(t, ok)
	assert.Equal(t, "Sam", name)
}

func TestSaveName_StoreFailureIsLogged(t *testing.T) {
	var buf bytes.Buffer

	kv := newSpy()
	kv.setErr = errors.New("disk full")
	svc := NewService(kv, quietLogger(&buf))

	name, err := svc.SaveName(context.Background(), "Alex")
	require.NoError(t, err, "persistence failures are not surfaced")
	assert.Equal(t, "Alex", name)
	assert.Equal(t, 1, kv.sets)
	assert.Contains(t, buf.String(), "failed saving name")
	assert.Contains(t, buf.String(), "disk full")
}

func TestLoadName_Absent(t *testing.T) {
	svc := NewService(store.NewMemory(), nil)

	name, ok := svc.LoadName(context.Background())
	assert.False(t, ok)
	assert.Empty(t, name)
	assert.Equal(t, DefaultName, svc.DisplayName(context.Background()))
}

func TestLoadName_StoreFailureDegradesToAbsent(t *testing.T) {
	var buf bytes.Buffer

	kv := newSpy()
	kv.getErr = errors.New("locked")
	svc := NewService(kv, quietLogger(&buf))

	name, ok := svc.LoadName(context.Background())
	assert.False(t, ok)
	assert.Empty(t, name)
	assert.Contains(t, buf.String(), "failed loading name")
}

func TestLoadName_Bolt(t *testing.T) {
	kv, err := store.NewBolt(t.TempDir() + "/profile.bolt")
	require.NoError(t, err)

	defer func() { _ = kv.Close() }()

	svc := NewService(kv, nil)

	_, err = svc.SaveName(context.Background(), " Priya ")
	require.NoError(t, err)

	assert.Equal(t, "Priya", svc.DisplayName(context.Background()))
}
