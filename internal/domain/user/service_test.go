package user

import (
	"context"
	"errors"
	"net/url"
	"strings"
	"testing"
	"time"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/domain/subscription"
	"aurora-app-go/internal/repository/inmemory"
)

type fakeRemote struct {
	profiles  map[string]Profile
	getErr    error
	createErr error
	block     bool
	gets      int
	creates   int
}

func newFakeRemote() *fakeRemote {
	return &fakeRemote{profiles: map[string]Profile{}}
}

func (f *fakeRemote) GetProfile(ctx context.Context, id string) (*Profile, error) {
	f.gets++
	if f.block {
		<-ctx.Done()
		return nil, ctx.Err()
	}
	if f.getErr != nil {
		return nil, f.getErr
	}
	profile, ok := f.profiles[id]
	if !ok {
		return nil, ErrProfileNotFound
	}
	return &profile, nil
}

func (f *fakeRemote) CreateProfile(_ context.Context, profile *Profile) error {
	f.creates++
	if f.createErr != nil {
		return f.createErr
	}
	f.profiles[profile.ID] = *profile
	return nil
}

func (f *fakeRemote) UpdateSubscription(_ context.Context, id string, plan subscription.Plan) error {
	profile, ok := f.profiles[id]
	if !ok {
		return ErrProfileNotFound
	}
	profile.Subscription = plan
	f.profiles[id] = profile
	return nil
}

var fixedNow = time.Date(2026, 2, 10, 12, 0, 0, 0, time.UTC)

func newTestService(remote Repository, cache Cache, opts Options) (*Service, *records.Repository) {
	repo := records.NewRepository(inmemory.NewRecordStore(), records.WithClock(func() time.Time { return fixedNow }))
	opts.App = "aurora"
	return NewService(repo, remote, cache, opts, nil), repo
}

var remoteIdentity = Identity{ID: "u-1", Email: "Ana@Example.com", Name: ""}

func TestLocalProfileDefaultsAndPersists(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(nil, nil, Options{})

	resolved, err := service.Resolve(ctx, Identity{})
	if err != nil {
		t.Fatalf("resolve: %v", err)
	}
	p := resolved.Profile
	if resolved.Source != SourceLocal || p.ID != LocalUserID || p.Name != LocalUserName || p.Email != LocalUserEmail || p.Subscription != subscription.PlanFree {
		t.Fatalf("unexpected local profile %+v", resolved)
	}
	if _, found, _ := repo.Store().Get(ctx, records.ProfileKey("aurora")); !found {
		t.Fatalf("local profile must be persisted under the unprefixed key")
	}
}

func TestResolveFetchesExistingProfile(t *testing.T) {
	remote := newFakeRemote()
	remote.profiles["u-1"] = Profile{ID: "u-1", Name: "Ana", Subscription: subscription.PlanPro}
	service, _ := newTestService(remote, inmemory.NewUserCache[Profile](), Options{})

	resolved, _ := service.Resolve(context.Background(), remoteIdentity)
	if resolved.Source != SourceRemote || resolved.Profile.Name != "Ana" || !resolved.Profile.IsPro() {
		t.Fatalf("unexpected resolution %+v", resolved)
	}

	again, _ := service.Resolve(context.Background(), remoteIdentity)
	if again.Source != SourceCache || remote.gets != 1 {
		t.Fatalf("second resolve must hit the cache: %+v gets=%d", again, remote.gets)
	}
}

func TestResolveCreatesMissingProfile(t *testing.T) {
	remote := newFakeRemote()
	service, _ := newTestService(remote, nil, Options{})

	resolved, _ := service.Resolve(context.Background(), remoteIdentity)
	if resolved.Source != SourceCreated || remote.creates != 1 {
		t.Fatalf("expected created profile, got %+v", resolved)
	}
	if resolved.Profile.Name != "Ana" || resolved.Profile.Subscription != subscription.PlanFree {
		t.Fatalf("unexpected created profile %+v", resolved.Profile)
	}
}

func TestResolveFallsBackToIdentity(t *testing.T) {
	tests := []struct {
		name    string
		prepare func(*fakeRemote)
		creates int
	}{
		{"permission denied", func(f *fakeRemote) { f.getErr = errors.New("permission denied") }, 0},
		{"create fails", func(f *fakeRemote) { f.createErr = errors.New("insert rejected") }, 1},
		{"hung service", func(f *fakeRemote) { f.block = true }, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			remote := newFakeRemote()
			tc.prepare(remote)
			service, _ := newTestService(remote, inmemory.NewUserCache[Profile](), Options{Timeout: 20 * time.Millisecond})

			resolved, err := service.Resolve(context.Background(), Identity{ID: "u-1", Email: "ana@example.com", Name: "Ana Souza"})
			if err != nil {
				t.Fatalf("resolve must not fail: %v", err)
			}
			if resolved.Source != SourceSynthesized || resolved.Profile.Name != "Ana Souza" || resolved.Profile.Subscription != subscription.PlanFree {
				t.Fatalf("unexpected fallback %+v", resolved)
			}
			if remote.creates != tc.creates {
				t.Fatalf("creates = %d, want %d", remote.creates, tc.creates)
			}

			_, _ = service.Resolve(context.Background(), Identity{ID: "u-1", Email: "ana@example.com"})
			if remote.gets != 2 {
				t.Fatalf("synthesized profiles must not be cached, gets=%d", remote.gets)
			}
		})
	}
}

func TestSynthesizeName(t *testing.T) {
	if got := Synthesize(Identity{ID: "x", Email: "bob@mail.com"}, fixedNow).Name; got != "bob" {
		t.Fatalf("name = %q, want bob", got)
	}
	if got := Synthesize(Identity{ID: "x"}, fixedNow).Name; got != FallbackName {
		t.Fatalf("name = %q, want fallback", got)
	}
}

func TestNamespace(t *testing.T) {
	service, _ := newTestService(nil, nil, Options{})
	if ns := service.Namespace(Identity{}); ns != records.LocalNamespace("aurora") {
		t.Fatalf("unexpected local namespace %+v", ns)
	}
	if ns := service.Namespace(remoteIdentity); ns.Owner != "ana@example.com" {
		t.Fatalf("unexpected owner %q", ns.Owner)
	}
	if ns := service.Namespace(Identity{ID: "u-9"}); ns.Owner != "u-9" {
		t.Fatalf("identity without email must use its id, got %q", ns.Owner)
	}
}

func TestUpgradeLocalNeverReverts(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(nil, nil, Options{})

	first, err := service.Upgrade(ctx, Identity{})
	if err != nil || !first.Profile.IsPro() {
		t.Fatalf("upgrade: %+v %v", first, err)
	}
	second, _ := service.Upgrade(ctx, Identity{})
	if !second.Profile.IsPro() {
		t.Fatalf("second upgrade must stay pro")
	}
	stored, _ := service.LocalProfile(ctx)
	if !stored.IsPro() {
		t.Fatalf("upgrade must persist")
	}
}

func TestUpgradeRemote(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	service, _ := newTestService(remote, inmemory.NewUserCache[Profile](), Options{})

	resolved, err := service.Upgrade(ctx, remoteIdentity)
	if err != nil {
		t.Fatalf("upgrade: %v", err)
	}
	if !resolved.Profile.IsPro() || remote.profiles["u-1"].Subscription != subscription.PlanPro {
		t.Fatalf("remote profile not upgraded: %+v", remote.profiles["u-1"])
	}
	cached, _ := service.Resolve(ctx, remoteIdentity)
	if !cached.Profile.IsPro() {
		t.Fatalf("cache must reflect the upgrade")
	}

	offline, _ := newTestService(nil, nil, Options{})
	if _, err := offline.Upgrade(ctx, remoteIdentity); !errors.Is(err, ErrRemoteDisabled) {
		t.Fatalf("expected ErrRemoteDisabled, got %v", err)
	}
}

func TestUpgradeRemoteDeniedIsNotReported(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	remote.createErr = errors.New("new row violates row-level security policy")
	cache := inmemory.NewUserCache[Profile]()
	service, _ := newTestService(remote, cache, Options{})

	resolved, err := service.Upgrade(ctx, remoteIdentity)
	if !errors.Is(err, ErrUpgradeNotSaved) {
		t.Fatalf("expected ErrUpgradeNotSaved, got %+v %v", resolved, err)
	}
	if _, ok := cache.GetByUserID(remoteIdentity.ID); ok {
		t.Fatalf("a plan that was not saved must not be cached")
	}

	later, _ := service.Resolve(ctx, remoteIdentity)
	if later.Profile.IsPro() {
		t.Fatalf("nothing was stored, the plan must still read free: %+v", later)
	}
}

func TestUpgradeRemoteStoresMissingRow(t *testing.T) {
	ctx := context.Background()
	remote := newFakeRemote()
	remote.getErr = errors.New("profiles: connection reset")
	service, _ := newTestService(remote, inmemory.NewUserCache[Profile](), Options{})

	resolved, err := service.Upgrade(ctx, remoteIdentity)
	if err != nil || !resolved.Profile.IsPro() {
		t.Fatalf("upgrade: %+v %v", resolved, err)
	}
	stored, ok := remote.profiles[remoteIdentity.ID]
	if !ok || stored.Subscription != subscription.PlanPro {
		t.Fatalf("missing row must be created as pro, got %+v", stored)
	}
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()
	service, _ := newTestService(nil, nil, Options{})

	profile, changed, err := service.ConfirmPayment(ctx, Identity{}, url.Values{"status": {"cancelled"}})
	if err != nil || changed || profile.IsPro() {
		t.Fatalf("non-success return must not upgrade: %+v %v %v", profile, changed, err)
	}

	profile, changed, _ = service.ConfirmPayment(ctx, Identity{}, url.Values{"status": {"success"}})
	if !changed || !profile.IsPro() {
		t.Fatalf("success return must upgrade: %+v", profile)
	}

	_, changed, _ = service.ConfirmPayment(ctx, Identity{}, url.Values{"status": {"success"}})
	if changed {
		t.Fatalf("a second confirmation must not report a change")
	}
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()

	demo, _ := newTestService(nil, nil, Options{})
	checkout, err := demo.Checkout(ctx, Identity{})
	if err != nil || !checkout.Upgraded || !checkout.Profile.IsPro() {
		t.Fatalf("demo checkout must upgrade directly: %+v %v", checkout, err)
	}

	linked, _ := newTestService(nil, nil, Options{Billing: BillingOptions{PaymentLink: "https://pay.example.com/aurora"}})
	checkout, err = linked.Checkout(ctx, Identity{})
	if err != nil {
		t.Fatalf("checkout: %v", err)
	}
	if checkout.Upgraded || !strings.HasPrefix(checkout.URL, "https://pay.example.com/aurora?prefilled_email=local%40device") {
		t.Fatalf("unexpected checkout %+v", checkout)
	}
	if checkout.RedirectDelayMS != 1500 {
		t.Fatalf("delay = %d, want 1500", checkout.RedirectDelayMS)
	}
}

func TestResetData(t *testing.T) {
	ctx := context.Background()
	service, repo := newTestService(nil, nil, Options{})
	ns := records.LocalNamespace("aurora")

	_, _ = service.Upgrade(ctx, Identity{})
	if err := repo.Store().Put(ctx, ns.Key(records.DomainReminders), []byte(`[]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}
	other := records.NewNamespace("aurora", "ana@example.com")
	if err := repo.Store().Put(ctx, other.Key(records.DomainReminders), []byte(`[]`)); err != nil {
		t.Fatalf("seed: %v", err)
	}

	if _, err := service.ResetData(ctx, Identity{}); err != nil {
		t.Fatalf("reset: %v", err)
	}
	profile, _ := service.LocalProfile(ctx)
	if profile.IsPro() {
		t.Fatalf("local reset must drop the profile")
	}
	if _, found, _ := repo.Store().Get(ctx, ns.Key(records.DomainReminders)); found {
		t.Fatalf("local records must be gone")
	}
	if _, found, _ := repo.Store().Get(ctx, other.Key(records.DomainReminders)); !found {
		t.Fatalf("other namespaces must be untouched")
	}
}
