package user

import "errors"

var (
	ErrProfileNotFound = errors.New("profile not found")
	ErrRemoteDisabled  = errors.New("remote profile store not configured")
	ErrIdentityMissing = errors.New("identity is required")
	ErrUpgradeNotSaved = errors.New("subscription change was not saved")
)
