package config

import "errors"

var (
	ErrNilPointer     = errors.New("nil pointer provided to config loader")
	ErrParsingConfig  = errors.New("failed to parse environment variables into config")
	ErrInvalidConfig  = errors.New("invalid configuration")
	ErrLoadingEnvFile = errors.New("failed to load env file")
)
