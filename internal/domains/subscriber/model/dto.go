package model

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"
)

// SubscribeRequest - public newsletter signup
type SubscribeRequest struct {
	Email  string `json:"email" binding:"required"`
	Source string `json:"source"`
}

func (r SubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email,
			validation.Required.Error("email is required"),
			is.Email.Error("invalid email format"),
		),
		validation.Field(&r.Source, validation.Length(0, 100)),
	)
}

// UnsubscribeRequest - public one-click unsubscribe
type UnsubscribeRequest struct {
	Email string `json:"email" binding:"required"`
}

func (r UnsubscribeRequest) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
	)
}

// SubscribeResult tells the frontend which message to show
type SubscribeResult struct {
	Reactivated bool   `json:"reactivated"`
	Message     string `json:"message"`
}

// ListSubscribersQuery - admin listing filters
type ListSubscribersQuery struct {
	Search string `form:"search"`
	Status string `form:"status"`
}

func (q ListSubscribersQuery) Validate() error {
	return validation.ValidateStruct(&q,
		validation.Field(&q.Status,
			validation.In("", string(StatusActive), string(StatusUnsubscribed)),
		),
	)
}

// SubscriberStats - dashboard counters
type SubscriberStats struct {
	Total  int `json:"total"`
	Active int `json:"active"`
}
