package services

import "errors"

// Sentinel errors the handlers translate into HTTP responses. A record
// owned by someone else is reported as ErrNotFound, never as a distinct
// "forbidden" condition.
var (
	ErrNotFound           = errors.New("record not found")
	ErrEmailTaken         = errors.New("user already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrNotEditable        = errors.New("resume has no builder data")
)
