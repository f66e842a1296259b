package user

import (
	"strings"
	"time"

	"aurora-app-go/internal/domain/subscription"
)

const (
	LocalUserID    = "local-user"
	LocalUserName  = "Visitante"
	LocalUserEmail = "local@device"
	FallbackName   = "Usuário"
)

// Profile is the user record shared by the local singleton and the remote
// profiles table.
type Profile struct {
	ID           string            `json:"id" gorm:"primaryKey"`
	Name         string            `json:"name" gorm:"not null"`
	Email        string            `json:"email" gorm:"type:text"`
	CreatedAt    time.Time         `json:"created_at" gorm:"autoCreateTime"`
	Subscription subscription.Plan `json:"subscription" gorm:"type:text;not null;default:free"`
}

func (Profile) TableName() string {
	return "profiles"
}

func (p Profile) IsPro() bool {
	return p.Subscription == subscription.PlanPro
}

// Identity is what the authentication layer knows about a caller. An empty
// ID means the single device-local user.
type Identity struct {
	ID    string
	Email string
	Name  string
}

func (i Identity) IsLocal() bool {
	return strings.TrimSpace(i.ID) == ""
}

type Source string

const (
	SourceLocal       Source = "local"
	SourceCache       Source = "cache"
	SourceRemote      Source = "remote"
	SourceCreated     Source = "created"
	SourceSynthesized Source = "synthesized"
)

// Resolved is a profile plus where it came from.
type Resolved struct {
	Profile Profile `json:"profile"`
	Source  Source  `json:"source"`
}

func defaultLocalProfile(now time.Time) Profile {
	return Profile{
		ID:           LocalUserID,
		Name:         LocalUserName,
		Email:        LocalUserEmail,
		CreatedAt:    now,
		Subscription: subscription.PlanFree,
	}
}

// Synthesize builds a free profile from the authentication identity alone.
func Synthesize(identity Identity, now time.Time) Profile {
	return Profile{
		ID:           identity.ID,
		Name:         displayName(identity),
		Email:        identity.Email,
		CreatedAt:    now,
		Subscription: subscription.PlanFree,
	}
}

func displayName(identity Identity) string {
	if name := strings.TrimSpace(identity.Name); name != "" {
		return name
	}
	if local, _, ok := strings.Cut(identity.Email, "@"); ok && local != "" {
		return local
	}
	return FallbackName
}
