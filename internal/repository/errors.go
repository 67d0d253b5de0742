package repository

import "errors"

var (
	ErrNotFound  = errors.New("not found")
	ErrConflict  = errors.New("conflict")
	ErrNoSession = errors.New("no session")
	ErrNoToken   = errors.New("token not found or expired")
)
