package domain

import "errors"

var (
	// ErrNoActiveQuestion is the expected outcome of answering or giving up
	// while no question is outstanding. It is user-facing, not a failure.
	ErrNoActiveQuestion = errors.New("no active question")
	// ErrEmptyBank indicates the question source yielded no questions.
	ErrEmptyBank = errors.New("question bank is empty")
	// ErrBackendUnavailable wraps transport-level failures of the session
	// backend. Callers must not assume any state mutation occurred.
	ErrBackendUnavailable = errors.New("session backend unavailable")
)
