package model

import (
	"strings"
	"time"
)

// SubscriberStatus - subscriptions are soft-deleted, never removed on
// unsubscribe, so a returning reader can be reactivated
type SubscriberStatus string

const (
	StatusActive       SubscriberStatus = "active"
	StatusUnsubscribed SubscriberStatus = "unsubscribed"
)

func (s SubscriberStatus) IsValid() bool {
	switch s {
	case StatusActive, StatusUnsubscribed:
		return true
	}
	return false
}

func (s SubscriberStatus) String() string {
	return string(s)
}

// Subscriber is one newsletter signup
type Subscriber struct {
	ID           string           `json:"id" db:"id"`
	Email        string           `json:"email" db:"email"`
	SubscribedAt time.Time        `json:"subscribed_at" db:"subscribed_at"`
	Status       SubscriberStatus `json:"status" db:"status"`
	Source       string           `json:"source" db:"source"`
}

// NormalizeEmail canonicalizes an address for storage and lookups.
// The invariant "at most one active record per email" holds over the
// normalized form.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
