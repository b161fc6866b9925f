package helix

import "errors"

// Sentinel errors for runtime operations.
var (
	ErrNoRuntime = errors.New("helix: no runtime installed")
	ErrBadProps  = errors.New("helix: property extraction failed")
)

// IsNoRuntime checks if err was caused by a missing host runtime.
func IsNoRuntime(err error) bool {
	return errors.Is(err, ErrNoRuntime)
}

// IsBadProps checks if err is a property extraction error.
func IsBadProps(err error) bool {
	return errors.Is(err, ErrBadProps)
}
