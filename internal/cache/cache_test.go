package cache

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"
)

// memory is an in-process Cache for exercising Through.
type memory struct {
	mu      sync.Mutex
	data    map[string][]byte
	failGet bool
	failSet bool
}

func newMemory() *memory { return &memory{data: map[string][]byte{}} }

func (m *memory) Get(_ context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failGet {
		return nil, errors.New("connection reset")
	}
	v, ok := m.data[key]
	if !ok {
		return nil, ErrMiss
	}
	return v, nil
}

func (m *memory) Set(_ context.Context, key string, value []byte, _ time.Duration) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failSet {
		return errors.New("read only replica")
	}
	m.data[key] = value
	return nil
}

func (m *memory) Close() error { return nil }

func TestKey(t *testing.T) {
	got := Key("zmanim", "2024-06-21", "31.7780", "35.2354")
	want := "zmanim:zmanim:2024-06-21:31.7780:35.2354"
	if got != want {
		t.Errorf("Key() = %q, want %q", got, want)
	}
}

func TestNoop(t *testing.T) {
	ctx := context.Background()
	var c Cache = Noop{}

	if err := c.Set(ctx, "k", []byte("v"), time.Minute); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if _, err := c.Get(ctx, "k"); !errors.Is(err, ErrMiss) {
		t.Errorf("Get() error = %v, want ErrMiss", err)
	}
}

func TestThrough(t *testing.T) {
	ctx := context.Background()
	c := newMemory()
	calls := 0
	fill := func() ([]byte, error) {
		calls++
		return []byte("computed"), nil
	}

	v, hit, err := Through(ctx, c, "k", time.Minute, fill)
	if err != nil || hit || string(v) != "computed" {
		t.Fatalf("first Through() = %q, %v, %v", v, hit, err)
	}

	v, hit, err = Through(ctx, c, "k", time.Minute, fill)
	if err != nil || !hit || string(v) != "computed" {
		t.Fatalf("second Through() = %q, %v, %v", v, hit, err)
	}
	if calls != 1 {
		t.Errorf("fill called %d times, want 1", calls)
	}
}

func TestThrough_CacheFailuresAreIgnored(t *testing.T) {
	ctx := context.Background()
	c := newMemory()
	c.failGet, c.failSet = true, true

	v, hit, err := Through(ctx, c, "k", time.Minute, func() ([]byte, error) { return []byte("ok"), nil })
	if err != nil {
		t.Fatalf("Through() error = %v", err)
	}
	if hit || string(v) != "ok" {
		t.Errorf("Through() = %q, %v, want ok, false", v, hit)
	}
}

func TestThrough_FillError(t *testing.T) {
	boom := errors.New("boom")
	c := newMemory()

	_, _, err := Through(context.Background(), c, "k", time.Minute, func() ([]byte, error) { return nil, boom })
	if !errors.Is(err, boom) {
		t.Errorf("Through() error = %v, want boom", err)
	}
	if len(c.data) != 0 {
		t.Error("failed fill was cached")
	}
}

func TestNewRedis_Unreachable(t *testing.T) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	if _, err := NewRedis(ctx, "127.0.0.1:1", nil); err == nil {
		t.Error("NewRedis() succeeded against a closed port")
	}
}
