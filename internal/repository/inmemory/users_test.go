package inmemory

import (
	"testing"
	"time"
)

type cachedProfile struct {
	Name string
}

func TestUserCacheExpires(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	cache := NewUserCache[cachedProfile]()
	cache.now = func() time.Time { return now }

	cache.SetByUserID("u-1", &cachedProfile{Name: "Ana"}, time.Minute)
	got, ok := cache.GetByUserID("u-1")
	if !ok || got.Name != "Ana" {
		t.Fatalf("expected cached value, got %+v %v", got, ok)
	}

	got.Name = "changed"
	again, _ := cache.GetByUserID("u-1")
	if again.Name != "Ana" {
		t.Fatalf("cache must hand out copies")
	}

	now = now.Add(time.Minute)
	if _, ok := cache.GetByUserID("u-1"); ok {
		t.Fatalf("expired value must be dropped")
	}
}

func TestUserCacheZeroTTLDeletes(t *testing.T) {
	cache := NewUserCache[cachedProfile]()
	cache.SetByUserID("u-1", &cachedProfile{Name: "Ana"}, time.Minute)
	cache.SetByUserID("u-1", &cachedProfile{Name: "Bia"}, 0)
	if _, ok := cache.GetByUserID("u-1"); ok {
		t.Fatalf("zero ttl must delete")
	}

	cache.SetByUserID("u-2", &cachedProfile{}, time.Minute)
	cache.Clear()
	if _, ok := cache.GetByUserID("u-2"); ok {
		t.Fatalf("clear must drop everything")
	}
}
