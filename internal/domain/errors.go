package domain

import "errors"

var (
	ErrEngineClosed       = errors.New("conversion engine is closed")
	ErrEmptyDocument      = errors.New("document has no pages")
	ErrUnknownAccelerator = errors.New("unknown accelerator provider")
	ErrDiscoveryFailed    = errors.New("document discovery failed")
)
