package user

import (
	"context"
	"fmt"
	"net/url"
	"time"
)

const (
	defaultRedirectDelay = 1500 * time.Millisecond
	defaultSuccessParam  = "status"
	defaultSuccessValue  = "success"
)

// BillingOptions describe the hosted payment link. With an empty
// PaymentLink checkout upgrades immediately.
type BillingOptions struct {
	PaymentLink   string
	ReturnURL     string
	RedirectDelay time.Duration
	SuccessParam  string
	SuccessValue  string
}

func (o BillingOptions) withDefaults() BillingOptions {
	if o.RedirectDelay <= 0 {
		o.RedirectDelay = defaultRedirectDelay
	}
	if o.SuccessParam == "" {
		o.SuccessParam = defaultSuccessParam
	}
	if o.SuccessValue == "" {
		o.SuccessValue = defaultSuccessValue
	}
	return o
}

type Checkout struct {
	URL             string  `json:"url,omitempty"`
	ReturnURL       string  `json:"returnUrl,omitempty"`
	RedirectDelayMS int64   `json:"redirectDelayMs"`
	Upgraded        bool    `json:"upgraded"`
	Profile         Profile `json:"profile"`
}

// Checkout returns where to send the caller to pay. The client waits
// RedirectDelayMS before following the link.
func (s *Service) Checkout(ctx context.Context, identity Identity) (Checkout, error) {
	billing := s.opts.Billing
	if billing.PaymentLink == "" {
		resolved, err := s.Upgrade(ctx, identity)
		if err != nil {
			return Checkout{}, err
		}
		return Checkout{Upgraded: true, Profile: resolved.Profile}, nil
	}

	resolved, err := s.Resolve(ctx, identity)
	if err != nil {
		return Checkout{}, err
	}

	link, err := url.Parse(billing.PaymentLink)
	if err != nil {
		return Checkout{}, fmt.Errorf("parse payment link: %w", err)
	}
	if resolved.Profile.Email != "" {
		query := link.Query()
		query.Set("prefilled_email", resolved.Profile.Email)
		link.RawQuery = query.Encode()
	}

	return Checkout{
		URL:             link.String(),
		ReturnURL:       billing.ReturnURL,
		RedirectDelayMS: billing.RedirectDelay.Milliseconds(),
		Profile:         resolved.Profile,
	}, nil
}

// ConfirmPayment upgrades the caller when the payment provider's return
// parameters carry the success marker. The boolean reports whether the plan
// changed.
func (s *Service) ConfirmPayment(ctx context.Context, identity Identity, params url.Values) (Profile, bool, error) {
	resolved, err := s.Resolve(ctx, identity)
	if err != nil {
		return Profile{}, false, err
	}

	billing := s.opts.Billing
	if params.Get(billing.SuccessParam) != billing.SuccessValue || resolved.Profile.IsPro() {
		return resolved.Profile, false, nil
	}

	upgraded, err := s.Upgrade(ctx, identity)
	if err != nil {
		return Profile{}, false, err
	}
	return upgraded.Profile, true, nil
}
