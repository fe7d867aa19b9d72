package cache

import (
	"context"
	"testing"
	"time"

	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

type option struct {
	ID   string `json:"_id"`
	Name string `json:"name"`
}

func TestMemoryRoundTrip(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute, 0)
	defer c.Close()

	want := []option{{ID: "1", Name: "Goa"}}
	if err := c.Set(ctx, Key("hierarchy", "state", ""), want, 0); err != nil {
		t.Fatalf("Set: %v", err)
	}
	var got []option
	ok, err := c.Get(ctx, Key("hierarchy", "state", ""), &got)
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if len(got) != 1 || got[0] != want[0] {
		t.Fatalf("value: got=%v want=%v", got, want)
	}

	// Mutating the stored slice must not leak into later reads.
	want[0].Name = "changed"
	got = nil
	_, _ = c.Get(ctx, Key("hierarchy", "state", ""), &got)
	if got[0].Name != "Goa" {
		t.Fatalf("cache shares memory with caller: %v", got)
	}
}

func TestMemoryExpiry(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute, 0)
	if err := c.Set(ctx, "k", true, 10*time.Millisecond); err != nil {
		t.Fatalf("Set: %v", err)
	}
	time.Sleep(30 * time.Millisecond)
	var v bool
	if ok, _ := c.Get(ctx, "k", &v); ok {
		t.Fatalf("entry should have expired")
	}
}

func TestMemoryDeletePrefix(t *testing.T) {
	ctx := context.Background()
	c := NewMemory(time.Minute, 0)
	_ = c.Set(ctx, "hierarchy:state:", 1, 0)
	_ = c.Set(ctx, "hierarchy:division:abc", 2, 0)
	_ = c.Set(ctx, "revoked:xyz", 3, 0)

	if err := c.DeletePrefix(ctx, "hierarchy:"); err != nil {
		t.Fatalf("DeletePrefix: %v", err)
	}
	var n int
	if ok, _ := c.Get(ctx, "hierarchy:division:abc", &n); ok {
		t.Fatalf("prefixed key survived")
	}
	if ok, _ := c.Get(ctx, "revoked:xyz", &n); !ok || n != 3 {
		t.Fatalf("unrelated key removed")
	}
	if err := c.Delete(ctx, "revoked:xyz"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if ok, _ := c.Get(ctx, "revoked:xyz", &n); ok {
		t.Fatalf("Delete did not remove key")
	}
}

func TestNoop(t *testing.T) {
	var c Cache = Noop{}
	_ = c.Set(context.Background(), "k", 1, 0)
	var v int
	if ok, _ := c.Get(context.Background(), "k", &v); ok {
		t.Fatalf("noop cache should never hit")
	}
}
