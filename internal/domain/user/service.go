package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"aurora-app-go/internal/domain/records"
	"aurora-app-go/internal/domain/subscription"
	"aurora-app-go/pkg/logger"
)

const (
	defaultCacheTTL = time.Minute
	defaultTimeout  = 4 * time.Second
)

type Options struct {
	App      string
	CacheTTL time.Duration
	Timeout  time.Duration
	Billing  BillingOptions
}

type Service struct {
	records *records.Repository
	remote  Repository
	cache   Cache
	opts    Options
	log     logger.Logger
}

// NewService wires the profile pipeline. remote may be nil, in which case
// authenticated callers always get a synthesized profile.
func NewService(recs *records.Repository, remote Repository, cache Cache, opts Options, log logger.Logger) *Service {
	if cache == nil {
		cache = noopCache{}
	}
	if log == nil {
		log = logger.Nop()
	}
	if opts.CacheTTL == 0 {
		opts.CacheTTL = defaultCacheTTL
	}
	if opts.Timeout <= 0 {
		opts.Timeout = defaultTimeout
	}
	opts.Billing = opts.Billing.withDefaults()

	return &Service{
		records: recs,
		remote:  remote,
		cache:   cache,
		opts:    opts,
		log:     log,
	}
}

// Namespace is the record namespace owned by identity.
func (s *Service) Namespace(identity Identity) records.Namespace {
	if identity.IsLocal() {
		return records.LocalNamespace(s.opts.App)
	}
	owner := identity.Email
	if strings.TrimSpace(owner) == "" {
		owner = identity.ID
	}
	return records.NewNamespace(s.opts.App, owner)
}

func (s *Service) local() *records.Value[Profile] {
	return records.OpenValueAt(s.records, records.ProfileKey(s.opts.App), func() Profile {
		return defaultLocalProfile(s.records.Now())
	})
}

// LocalProfile returns the device-local profile, persisting the default on
// first use so its creation time stays stable.
func (s *Service) LocalProfile(ctx context.Context) (Profile, error) {
	value := s.local()
	profile, found, err := value.Lookup(ctx)
	if err != nil {
		return Profile{}, err
	}
	if !found {
		if err := value.Set(ctx, profile); err != nil {
			return Profile{}, err
		}
	}
	return profile, nil
}

func (s *Service) Resolve(ctx context.Context, identity Identity) (Resolved, error) {
	if identity.IsLocal() {
		profile, err := s.LocalProfile(ctx)
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Profile: profile, Source: SourceLocal}, nil
	}

	if cached, ok := s.cache.GetByUserID(identity.ID); ok {
		return Resolved{Profile: *cached, Source: SourceCache}, nil
	}
	return s.resolveRemote(ctx, identity), nil
}

type profileStep struct {
	source Source
	run    func(ctx context.Context, identity Identity) (*Profile, error)
}

// resolveRemote tries each step in order. A step reporting ErrProfileNotFound
// hands over to the next one; any other failure ends the chain and the
// profile is synthesized from the identity.
func (s *Service) resolveRemote(ctx context.Context, identity Identity) Resolved {
	if s.remote == nil {
		return Resolved{Profile: Synthesize(identity, s.records.Now()), Source: SourceSynthesized}
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()

	steps := []profileStep{
		{source: SourceRemote, run: s.fetchProfile},
		{source: SourceCreated, run: s.createProfile},
	}
	for _, step := range steps {
		profile, err := step.run(ctx, identity)
		if err == nil {
			s.cache.SetByUserID(identity.ID, profile, s.opts.CacheTTL)
			return Resolved{Profile: *profile, Source: step.source}
		}
		if !errors.Is(err, ErrProfileNotFound) {
			s.log.BusinessError("profile lookup failed, using auth identity", err,
				"step", string(step.source),
				"user_id", identity.ID,
			)
			break
		}
	}

	return Resolved{Profile: Synthesize(identity, s.records.Now()), Source: SourceSynthesized}
}

func (s *Service) fetchProfile(ctx context.Context, identity Identity) (*Profile, error) {
	profile, err := s.remote.GetProfile(ctx, identity.ID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return profile, nil
}

func (s *Service) createProfile(ctx context.Context, identity Identity) (*Profile, error) {
	profile := Synthesize(identity, s.records.Now())
	if err := s.remote.CreateProfile(ctx, &profile); err != nil {
		return nil, fmt.Errorf("create profile: %w", err)
	}
	return &profile, nil
}

// Upgrade moves the caller to the pro plan. It is a no-op for a profile
// that is already pro. A remote plan is only reported and cached once the
// profile store has accepted it; otherwise the error wraps
// ErrUpgradeNotSaved.
func (s *Service) Upgrade(ctx context.Context, identity Identity) (Resolved, error) {
	if identity.IsLocal() {
		profile, err := s.local().Mutate(ctx, func(p Profile) (Profile, error) {
			p.Subscription = subscription.Upgrade(p.Subscription)
			return p, nil
		})
		if err != nil {
			return Resolved{}, err
		}
		return Resolved{Profile: profile, Source: SourceLocal}, nil
	}

	if s.remote == nil {
		return Resolved{}, ErrRemoteDisabled
	}
	resolved, err := s.Resolve(ctx, identity)
	if err != nil {
		return Resolved{}, err
	}
	if resolved.Profile.IsPro() {
		return resolved, nil
	}

	ctx, cancel := context.WithTimeout(ctx, s.opts.Timeout)
	defer cancel()
	profile := resolved.Profile
	profile.Subscription = subscription.Upgrade(profile.Subscription)

	err = s.remote.UpdateSubscription(ctx, identity.ID, profile.Subscription)
	if errors.Is(err, ErrProfileNotFound) {
		// the resolved profile was synthesized, store it already upgraded
		err = s.remote.CreateProfile(ctx, &profile)
	}
	if err != nil {
		s.cache.DeleteByUserID(identity.ID)
		return Resolved{}, fmt.Errorf("%w: %w", ErrUpgradeNotSaved, err)
	}
	s.cache.SetByUserID(identity.ID, &profile, s.opts.CacheTTL)
	return Resolved{Profile: profile, Source: SourceRemote}, nil
}

// ResetData deletes every record of the caller. For the local user the
// profile singleton goes too.
func (s *Service) ResetData(ctx context.Context, identity Identity) (int, error) {
	deleted, err := s.records.Reset(ctx, s.Namespace(identity))
	if err != nil {
		return 0, err
	}
	if identity.IsLocal() {
		if err := s.local().Delete(ctx); err != nil {
			return deleted, err
		}
	} else {
		s.cache.DeleteByUserID(identity.ID)
	}
	return deleted, nil
}
