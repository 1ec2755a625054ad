package entity

import "errors"

var (
	ErrContactNotFound   = errors.New("contact not found")
	ErrAlreadyRegistered = errors.New("contact already registered for this workshop")
	ErrWorkshopFull      = errors.New("workshop is at capacity")
)
