package records

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"
	"time"
)

type fakeStore struct {
	mu      sync.Mutex
	items   map[string][]byte
	puts    int
	failPut string
}

func newFakeStore() *fakeStore {
	return &fakeStore{items: make(map[string][]byte)}
}

func (s *fakeStore) Get(ctx context.Context, key string) ([]byte, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	value, ok := s.items[key]
	return value, ok, nil
}

func (s *fakeStore) Put(ctx context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if key == s.failPut {
		return errors.New("store unavailable")
	}
	s.items[key] = append([]byte(nil), value...)
	s.puts++
	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, key)
	return nil
}

func (s *fakeStore) List(ctx context.Context, prefix string) (map[string][]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	result := make(map[string][]byte)
	for key, value := range s.items {
		if strings.HasPrefix(key, prefix) {
			result[key] = value
		}
	}
	return result, nil
}

func (s *fakeStore) DeletePrefix(ctx context.Context, prefix string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	deleted := 0
	for key := range s.items {
		if strings.HasPrefix(key, prefix) {
			delete(s.items, key)
			deleted++
		}
	}
	return deleted, nil
}

type item struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Today bool   `json:"today"`
}

func itemSpec() CollectionSpec[item] {
	return CollectionSpec[item]{
		Domain: DomainReminders,
		ID:     func(i item) string { return i.ID },
	}
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time { return c.now }

func newTestRepo(store Store, c *clock) *Repository {
	return NewRepository(store, WithClock(c.Now), WithLocation(time.UTC))
}

func TestNamespaceKeysDoNotCollide(t *testing.T) {
	a := NewNamespace("aurora", "a_b@x.com")
	b := NewNamespace("aurora", "a@x.com")

	if got := NewNamespace("aurora", "").Key(DomainHabits); got != "aurora_local_habits" {
		t.Fatalf("unexpected local key %q", got)
	}
	if got := NewNamespace("aurora", " Ana@Mail.com ").Key(DomainBio); got != "aurora_ana@mail.com_bio" {
		t.Fatalf("unexpected key %q", got)
	}
	if strings.HasPrefix(a.Key(DomainHabits), b.Prefix()) || strings.HasPrefix(b.Key(DomainHabits), a.Prefix()) {
		t.Fatalf("prefixes overlap: %q / %q", a.Prefix(), b.Prefix())
	}

	domain, ok := a.DomainOf(a.Key(DomainWorkSchedule))
	if !ok || domain != DomainWorkSchedule {
		t.Fatalf("expected work_schedule, got %q %v", domain, ok)
	}
	if _, ok := a.DomainOf(b.Key(DomainWorkSchedule)); ok {
		t.Fatalf("foreign key must not map to a domain")
	}
}

func TestCollectionDefaultsNotPersisted(t *testing.T) {
	store := newFakeStore()
	repo := newTestRepo(store, &clock{now: time.Now()})
	spec := itemSpec()
	spec.Defaults = func() []item { return []item{{ID: "1", Name: "seed"}} }
	col := Open(repo, LocalNamespace("aurora"), spec)

	items, err := col.Load(context.Background())
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(items) != 1 || items[0].ID != "1" {
		t.Fatalf("expected seeded defaults, got %+v", items)
	}
	if store.puts != 0 {
		t.Fatalf("defaults must not be written on load")
	}
}

func TestCollectionPrependAppendOrder(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(newFakeStore(), &clock{now: time.Now()})
	col := Open(repo, LocalNamespace("aurora"), itemSpec())

	for _, id := range []string{"a", "b"} {
		if err := col.Prepend(ctx, item{ID: id}); err != nil {
			t.Fatalf("prepend: %v", err)
		}
	}
	if err := col.Append(ctx, item{ID: "c"}); err != nil {
		t.Fatalf("append: %v", err)
	}

	items, _ := col.Load(ctx)
	got := []string{}
	for _, it := range items {
		got = append(got, it.ID)
	}
	if strings.Join(got, ",") != "b,a,c" {
		t.Fatalf("unexpected order %v", got)
	}

	if err := col.Append(ctx, item{ID: "a"}); !errors.Is(err, ErrDuplicateID) {
		t.Fatalf("expected ErrDuplicateID, got %v", err)
	}
	if err := col.Append(ctx, item{ID: " "}); !errors.Is(err, ErrMissingRecord) {
		t.Fatalf("expected ErrMissingRecord, got %v", err)
	}
}

func TestCollectionUpdate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(newFakeStore(), &clock{now: time.Now()})
	col := Open(repo, LocalNamespace("aurora"), itemSpec())
	_ = col.Append(ctx, item{ID: "a", Name: "old"})

	updated, err := col.Update(ctx, "a", func(i item) (item, error) {
		i.Name = "new"
		return i, nil
	})
	if err != nil || updated.Name != "new" {
		t.Fatalf("update: %+v %v", updated, err)
	}
	found, err := col.Find(ctx, "a")
	if err != nil || found.Name != "new" {
		t.Fatalf("find after update: %+v %v", found, err)
	}

	if _, err := col.Update(ctx, "missing", func(i item) (item, error) { return i, nil }); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestCollectionDeleteTwiceIsNoop(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(newFakeStore(), &clock{now: time.Now()})
	col := Open(repo, LocalNamespace("aurora"), itemSpec())
	_ = col.Append(ctx, item{ID: "a"})
	_ = col.Append(ctx, item{ID: "b"})

	removed, err := col.Delete(ctx, "a")
	if err != nil || !removed {
		t.Fatalf("first delete: removed=%v err=%v", removed, err)
	}
	removed, err = col.Delete(ctx, "a")
	if err != nil || removed {
		t.Fatalf("second delete must be a no-op: removed=%v err=%v", removed, err)
	}

	items, _ := col.Load(ctx)
	if len(items) != 1 || items[0].ID != "b" {
		t.Fatalf("unexpected items %+v", items)
	}
}

func TestDailyResetClearsOncePerDay(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	c := &clock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	repo := newTestRepo(store, c)
	ns := LocalNamespace("aurora")

	spec := itemSpec()
	spec.Domain = DomainHabits
	spec.Reset = &DailyReset[item]{
		Stamp: DomainHabitsLastReset,
		Clear: func(i item) item {
			i.Today = false
			return i
		},
	}
	col := Open(repo, ns, spec)

	_ = col.Save(ctx, []item{{ID: "1", Today: true}, {ID: "2", Today: true}})
	_ = repo.putJSON(ctx, ns.Key(DomainHabitsLastReset), "2026-03-09")

	items, err := col.Load(ctx)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	for _, it := range items {
		if it.Today {
			t.Fatalf("expected flags cleared, got %+v", items)
		}
	}

	_, _ = col.Update(ctx, "1", func(i item) (item, error) {
		i.Today = true
		return i, nil
	})
	items, _ = col.Load(ctx)
	if !items[0].Today {
		t.Fatalf("second load on the same day must not clear again")
	}

	c.now = c.now.Add(24 * time.Hour)
	items, _ = col.Load(ctx)
	if items[0].Today {
		t.Fatalf("expected clear on the next day")
	}
}

func TestDailyResetStampFollowsSave(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	repo := newTestRepo(store, &clock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)})
	ns := LocalNamespace("aurora")

	spec := itemSpec()
	spec.Domain = DomainHabits
	spec.Reset = &DailyReset[item]{
		Stamp: DomainHabitsLastReset,
		Clear: func(i item) item {
			i.Today = false
			return i
		},
	}
	col := Open(repo, ns, spec)
	_ = col.Save(ctx, []item{{ID: "1", Today: true}})
	_ = repo.putJSON(ctx, ns.Key(DomainHabitsLastReset), "2026-03-09")

	store.failPut = col.Key()
	if _, err := col.Load(ctx); err == nil {
		t.Fatalf("expected the failed save to surface")
	}
	var stamp string
	_, _ = repo.getJSON(ctx, ns.Key(DomainHabitsLastReset), &stamp)
	if stamp != "2026-03-09" {
		t.Fatalf("stamp moved to %q although the cleared list was not stored", stamp)
	}

	store.failPut = ""
	items, err := col.Load(ctx)
	if err != nil || items[0].Today {
		t.Fatalf("retry must clear the flags: %+v %v", items, err)
	}
	_, _ = repo.getJSON(ctx, ns.Key(DomainHabitsLastReset), &stamp)
	if stamp != "2026-03-10" {
		t.Fatalf("stamp = %q, want today", stamp)
	}
}

func TestDailyResetUnstamped(t *testing.T) {
	ctx := context.Background()
	c := &clock{now: time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)}
	clear := func(i item) item {
		i.Today = false
		return i
	}

	tests := []struct {
		name        string
		whenMissing bool
		wantToday   bool
	}{
		{"keeps flags without stamp", false, true},
		{"clears flags without stamp", true, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			store := newFakeStore()
			repo := newTestRepo(store, c)
			ns := LocalNamespace("aurora")
			spec := itemSpec()
			spec.Domain = DomainMeals
			spec.Reset = &DailyReset[item]{Stamp: DomainNutritionLastReset, Clear: clear, ClearWhenUnstamped: tc.whenMissing}
			col := Open(repo, ns, spec)
			_ = repo.putJSON(ctx, col.Key(), []item{{ID: "1", Today: true}})

			items, err := col.Load(ctx)
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if items[0].Today != tc.wantToday {
				t.Fatalf("today = %v, want %v", items[0].Today, tc.wantToday)
			}
			if _, ok := store.items[ns.Key(DomainNutritionLastReset)]; !ok {
				t.Fatalf("expected stamp to be written")
			}
		})
	}
}

func TestValueDefaultAndMutate(t *testing.T) {
	ctx := context.Background()
	repo := newTestRepo(newFakeStore(), &clock{now: time.Now()})
	goal := OpenValue(repo, LocalNamespace("aurora"), ValueSpec[int]{
		Domain:  DomainHabitsGoal,
		Default: func() int { return 3 },
	})

	value, found, err := goal.Lookup(ctx)
	if err != nil || found || value != 3 {
		t.Fatalf("expected default 3, got %d found=%v err=%v", value, found, err)
	}
	next, err := goal.Mutate(ctx, func(v int) (int, error) { return v + 2, nil })
	if err != nil || next != 5 {
		t.Fatalf("mutate: %d %v", next, err)
	}
	if value, _ := goal.Get(ctx); value != 5 {
		t.Fatalf("expected persisted 5, got %d", value)
	}
}

func TestExportAndReset(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	repo := newTestRepo(store, &clock{now: time.Now()})
	mine := NewNamespace("aurora", "me@x.com")
	other := NewNamespace("aurora", "other@x.com")

	_ = Open(repo, mine, itemSpec()).Append(ctx, item{ID: "1"})
	_ = Open(repo, other, itemSpec()).Append(ctx, item{ID: "2"})
	_ = store.Put(ctx, ProfileKey("aurora"), []byte(`{}`))

	exported, err := repo.Export(ctx, mine)
	if err != nil {
		t.Fatalf("export: %v", err)
	}
	if len(exported) != 1 || exported[DomainReminders] == nil {
		t.Fatalf("unexpected export %v", exported)
	}

	deleted, err := repo.Reset(ctx, mine)
	if err != nil || deleted != 1 {
		t.Fatalf("reset: deleted=%d err=%v", deleted, err)
	}
	if len(store.items) != 2 {
		t.Fatalf("reset must only touch its namespace, left %d keys", len(store.items))
	}
}

func TestLocalResetLeavesProfileKey(t *testing.T) {
	ctx := context.Background()
	store := newFakeStore()
	repo := newTestRepo(store, &clock{now: time.Now()})
	local := LocalNamespace("aurora")

	if strings.HasPrefix(ProfileKey("aurora"), local.Prefix()) {
		t.Fatalf("profile key %q falls inside the local namespace", ProfileKey("aurora"))
	}

	_ = Open(repo, local, itemSpec()).Append(ctx, item{ID: "1"})
	_ = store.Put(ctx, ProfileKey("aurora"), []byte(`{"subscription":"pro"}`))

	if exported, _ := repo.Export(ctx, local); len(exported) != 1 {
		t.Fatalf("export must hold only the reminders, got %v", exported)
	}
	deleted, err := repo.Reset(ctx, local)
	if err != nil || deleted != 1 {
		t.Fatalf("reset: deleted=%d err=%v", deleted, err)
	}
	if _, ok := store.items[ProfileKey("aurora")]; !ok {
		t.Fatalf("records reset must not remove the profile")
	}
}
