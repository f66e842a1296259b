package user

import "time"

type Cache interface {
	GetByUserID(userID string) (*Profile, bool)
	SetByUserID(userID string, profile *Profile, ttl time.Duration)
	DeleteByUserID(userID string)
	Clear()
}

type noopCache struct{}

func (noopCache) GetByUserID(string) (*Profile, bool) {
	return nil, false
}

func (noopCache) SetByUserID(string, *Profile, time.Duration) {}

func (noopCache) DeleteByUserID(string) {}

func (noopCache) Clear() {}
