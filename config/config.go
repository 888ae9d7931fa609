/*
   Copyright 2025 The DIRPX Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package config

import (
	"log/slog"

	"dirpx.dev/facet/apis"
)

const (
	// DefaultPattern represents the default for Pattern.
	// It admits every name that does not start with an underscore, the
	// conventional marker for internal members of maps and custom targets.
	DefaultPattern = `[^_].*`
	// DefaultCollision represents the default for Collision.
	DefaultCollision = apis.FirstWins
	// DefaultEngine represents the default for Engine.
	DefaultEngine = apis.RE2
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
)

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap is valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.Pattern == "" {
		cfg.Pattern = DefaultPattern
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		Pattern:   DefaultPattern,
		Collision: DefaultCollision,
		Engine:    DefaultEngine,
		MaxUnwrap: DefaultMaxUnwrap,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithPattern sets the default qualifier pattern.
// An empty pattern resets to the default.
func WithPattern(pattern string) Option {
	return func(c *apis.Config) {
		if pattern == "" {
			c.Pattern = DefaultPattern
			return
		}
		c.Pattern = pattern
	}
}

// WithCollision sets the collision policy.
func WithCollision(policy apis.Collision) Option {
	return func(c *apis.Config) {
		c.Collision = policy
	}
}

// WithEngine sets the pattern engine.
func WithEngine(engine apis.Engine) Option {
	return func(c *apis.Config) {
		c.Engine = engine
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithLogger sets the logger. Nil discards records.
func WithLogger(logger *slog.Logger) Option {
	return func(c *apis.Config) {
		c.Logger = logger
	}
}
