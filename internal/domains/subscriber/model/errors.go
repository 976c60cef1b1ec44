package model

import "errors"

var (
	ErrAlreadySubscribed  = errors.New("email is already subscribed")
	ErrSubscriberNotFound = errors.New("subscriber not found")
	ErrInvalidEmail       = errors.New("invalid email address")
)
