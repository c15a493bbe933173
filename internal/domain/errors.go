package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrUnknownStudyMode is returned when a study mode string does not name
	// one of the supported modes.
	ErrUnknownStudyMode = errors.New("unknown study mode")

	// ErrEmptyTopic is returned when a topic is empty or only whitespace.
	ErrEmptyTopic = errors.New("topic cannot be empty")
)
