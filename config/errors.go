package config

import "errors"

// ErrConfig indicates bad or missing configuration: an unreadable settings
// file, invalid YAML, an unknown provider name, or missing credentials.
// Callers treat it as fatal before any external call is made.
var ErrConfig = errors.New("invalid configuration")
