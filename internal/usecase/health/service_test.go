package health

import (
	"context"
	"errors"
	"testing"
)

// --- Mocks ---

type mockCachePinger struct {
	err error
}

func (m *mockCachePinger) Ping(_ context.Context) error { return m.err }

type mockInventory struct {
	n int
}

func (m *mockInventory) Len() int { return m.n }

// --- Tests ---

func TestCheck_AllHealthy(t *testing.T) {
	svc := New(&mockCachePinger{}, &mockInventory{n: 5})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if r.Checks["inventory"] != CheckOK {
		t.Errorf("expected inventory %q, got %q", CheckOK, r.Checks["inventory"])
	}
	if r.Checks["cache"] != CheckOK {
		t.Errorf("expected cache %q, got %q", CheckOK, r.Checks["cache"])
	}
}

func TestCheck_EmptyInventory(t *testing.T) {
	svc := New(&mockCachePinger{}, &mockInventory{})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["inventory"] != CheckError {
		t.Errorf("expected inventory %q, got %q", CheckError, r.Checks["inventory"])
	}
}

func TestCheck_CacheError(t *testing.T) {
	svc := New(&mockCachePinger{err: errors.New("conn refused")}, &mockInventory{n: 5})
	r := svc.Check(context.Background())

	if r.Status != Degraded {
		t.Errorf("expected %q, got %q", Degraded, r.Status)
	}
	if r.Checks["cache"] != CheckError {
		t.Errorf("expected cache %q, got %q", CheckError, r.Checks["cache"])
	}
}

func TestCheck_NilCacheSkipped(t *testing.T) {
	svc := New(nil, &mockInventory{n: 1})
	r := svc.Check(context.Background())

	if r.Status != Healthy {
		t.Errorf("expected %q, got %q", Healthy, r.Status)
	}
	if _, ok := r.Checks["cache"]; ok {
		t.Error("cache check should be absent when caching is disabled")
	}
}
