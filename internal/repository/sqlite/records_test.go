package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"aurora-app-go/internal/db"
	"aurora-app-go/internal/domain/habits"
	"aurora-app-go/internal/domain/records"
	"aurora-app-go/pkg/logger"
)

func openStore(t *testing.T, path string) *RecordStore {
	t.Helper()

	sqlDB, err := db.OpenSQLite(path, logger.Nop())
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = sqlDB.Close() })

	store, err := NewRecordStore(sqlDB)
	if err != nil {
		t.Fatalf("new store: %v", err)
	}
	return store
}

func TestRecordStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "aurora.db"))

	if _, found, err := store.Get(ctx, "missing"); err != nil || found {
		t.Fatalf("expected missing key, found=%v err=%v", found, err)
	}

	if err := store.Put(ctx, "aurora_local_habits", []byte(`[1]`)); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Put(ctx, "aurora_local_habits", []byte(`[1,2]`)); err != nil {
		t.Fatalf("overwrite: %v", err)
	}

	value, found, err := store.Get(ctx, "aurora_local_habits")
	if err != nil || !found || string(value) != `[1,2]` {
		t.Fatalf("unexpected value %q found=%v err=%v", value, found, err)
	}

	if err := store.Delete(ctx, "aurora_local_habits"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "aurora_local_habits"); err != nil {
		t.Fatalf("delete missing: %v", err)
	}
	if _, found, _ := store.Get(ctx, "aurora_local_habits"); found {
		t.Fatalf("expected key to be gone")
	}
}

func TestRecordStorePrefixIsLiteral(t *testing.T) {
	ctx := context.Background()
	store := openStore(t, filepath.Join(t.TempDir(), "aurora.db"))

	keys := map[string]string{
		"aurora_a%5Fb_habits": `"mine"`,
		"aurora_axb_habits":   `"other"`,
		"aurora_a%5Fbc_meals": `"longer owner"`,
	}
	for key, value := range keys {
		if err := store.Put(ctx, key, []byte(value)); err != nil {
			t.Fatalf("put %s: %v", key, err)
		}
	}

	listed, err := store.List(ctx, "aurora_a%5Fb_")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(listed) != 1 || string(listed["aurora_a%5Fb_habits"]) != `"mine"` {
		t.Fatalf("unexpected list %v", listed)
	}

	deleted, err := store.DeletePrefix(ctx, "aurora_a%5Fb_")
	if err != nil || deleted != 1 {
		t.Fatalf("deleted=%d err=%v", deleted, err)
	}
	rest, _ := store.List(ctx, "aurora_")
	if len(rest) != 2 {
		t.Fatalf("other namespaces must survive, got %v", rest)
	}
}

func TestRecordStoreSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "nested", "aurora.db")
	now := time.Date(2026, 2, 3, 9, 0, 0, 0, time.UTC)
	ns := records.LocalNamespace("aurora")

	first := openStore(t, path)
	repo := records.NewRepository(first, records.WithClock(func() time.Time { return now }), records.WithLocation(time.UTC))
	if _, err := habits.NewService(repo).Add(ctx, ns, habits.AddInput{Name: "Ler 10 páginas"}); err != nil {
		t.Fatalf("add habit: %v", err)
	}

	second := openStore(t, path)
	repo = records.NewRepository(second, records.WithClock(func() time.Time { return now }), records.WithLocation(time.UTC))
	items, err := habits.NewService(repo).List(ctx, ns)
	if err != nil {
		t.Fatalf("list habits: %v", err)
	}
	if items[len(items)-1].Name != "Ler 10 páginas" {
		t.Fatalf("habit not persisted: %+v", items)
	}
}
