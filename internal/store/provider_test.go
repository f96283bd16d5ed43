package store

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/redisgate/redisgate-go/internal/core/domain"
)

// fakeStore is a minimal Store used to exercise the provider lifecycle.
type fakeStore struct {
	closed atomic.Bool
}

func (f *fakeStore) Do(ctx context.Context, cmd domain.Command) (domain.Value, error) {
	return domain.StringValue("OK"), nil
}

func (f *fakeStore) DoBatch(ctx context.Context, batch domain.Batch) ([]domain.CommandResult, error) {
	return []domain.CommandResult{}, nil
}

func (f *fakeStore) Ping(ctx context.Context) (domain.Value, error) {
	return domain.StringValue("PONG"), nil
}

func (f *fakeStore) Close() error {
	f.closed.Store(true)
	return nil
}

func TestProvider_GetBuildsOnce(t *testing.T) {
	var builds atomic.Int32
	p := NewProvider(func() (Store, error) {
		builds.Add(1)
		return &fakeStore{}, nil
	})

	first, err := p.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	second, err := p.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}

	if first != second {
		t.Error("Get() should return the same client")
	}
	if got := builds.Load(); got != 1 {
		t.Errorf("build count = %d, want 1", got)
	}
}

func TestProvider_GetConcurrent(t *testing.T) {
	var builds atomic.Int32
	p := NewProvider(func() (Store, error) {
		builds.Add(1)
		return &fakeStore{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			if _, err := p.Get(); err != nil {
				t.Errorf("Get() error = %v", err)
			}
		}()
	}
	wg.Wait()

	if got := builds.Load(); got != 1 {
		t.Errorf("build count = %d, want 1", got)
	}
}

func TestProvider_BuildErrorRetries(t *testing.T) {
	var builds atomic.Int32
	boom := errors.New("dial failed")
	p := NewProvider(func() (Store, error) {
		if builds.Add(1) == 1 {
			return nil, boom
		}
		return &fakeStore{}, nil
	})

	if _, err := p.Get(); !errors.Is(err, boom) {
		t.Fatalf("Get() error = %v, want %v", err, boom)
	}

	// A failed build leaves no client behind; the next Get tries again.
	if _, err := p.Get(); err != nil {
		t.Fatalf("second Get() error = %v", err)
	}
	if got := builds.Load(); got != 2 {
		t.Errorf("build count = %d, want 2", got)
	}
}

func TestProvider_SetOverrides(t *testing.T) {
	p := NewProvider(func() (Store, error) {
		t.Fatal("build should not run when a client was injected")
		return nil, nil
	})

	injected := &fakeStore{}
	p.Set(injected)

	got, err := p.Get()
	if err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if got != injected {
		t.Error("Get() should return the injected client")
	}
}

func TestProvider_Close(t *testing.T) {
	fake := &fakeStore{}
	p := NewProvider(func() (Store, error) { return fake, nil })

	if _, err := p.Get(); err != nil {
		t.Fatalf("Get() error = %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}
	if !fake.closed.Load() {
		t.Error("Close() should close the built client")
	}

	// Closing an empty provider is a no-op.
	if err := p.Close(); err != nil {
		t.Errorf("second Close() error = %v", err)
	}
}
