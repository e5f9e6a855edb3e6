// SPDX-License-Identifier: MIT
// Package: paamg/config
//
// errors.go: sentinel errors for configuration loading.

package config

import "errors"

var (
	// ErrInvalidConfig indicates a value outside its documented range.
	ErrInvalidConfig = errors.New("config: invalid configuration")

	// ErrConfigFile indicates an explicitly requested file that could not be
	// read or parsed.
	ErrConfigFile = errors.New("config: cannot load file")
)
