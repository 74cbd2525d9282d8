package domain

import "errors"

var (
	// ErrConflict marks a transition that was already applied or is blocked
	// by another session (open session exists, break repeated, double end).
	ErrConflict = errors.New("conflict")

	// ErrIllegalState marks an action invoked while the session is in a
	// state that does not permit it.
	ErrIllegalState = errors.New("illegal state")
)
