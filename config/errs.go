package config

import "errors"

var (
	ErrFormat = errors.New("unsupported configuration file")
	ErrColor  = errors.New("invalid color mode")
)
