package model

import "errors"

var (
	ErrPostNotFound      = errors.New("post not found")
	ErrSlugAlreadyExists = errors.New("slug already exists")
	ErrInvalidCategory   = errors.New("invalid category")
	ErrInvalidStatus     = errors.New("invalid status")
	ErrInvalidPageLimit  = errors.New("page and limit must be positive")
)
