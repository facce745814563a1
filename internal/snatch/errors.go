package snatch

import "errors"

var (
	// ErrInvalidAPIKey indicates SABnzbd rejected the configured API key.
	ErrInvalidAPIKey = errors.New("invalid api key")

	// ErrClientUnavailable indicates SABnzbd could not be reached.
	ErrClientUnavailable = errors.New("download client unavailable")
)
