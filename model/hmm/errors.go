// Copyright (c) 2015 AKUALAB INC., All rights reserved.
//
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hmm

import (
	"errors"
	"fmt"
)

// ConfigError reports malformed probability tables or dimensions when a
// model is created.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "hmm: config error: " + e.Msg }

// DomainError reports training or decoding input that is not valid for the
// model: length mismatches, out of range ids, or empty data.
type DomainError struct {
	Msg string
}

func (e *DomainError) Error() string { return "hmm: domain error: " + e.Msg }

func configErrorf(format string, args ...interface{}) error {
	return &ConfigError{Msg: fmt.Sprintf(format, args...)}
}

func domainErrorf(format string, args ...interface{}) error {
	return &DomainError{Msg: fmt.Sprintf(format, args...)}
}

// IsConfigError returns true if err or any error it wraps is a *ConfigError.
func IsConfigError(err error) bool {
	var ce *ConfigError
	return errors.As(err, &ce)
}

// IsDomainError returns true if err or any error it wraps is a *DomainError.
func IsDomainError(err error) bool {
	var de *DomainError
	return errors.As(err, &de)
}
