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

package apis

import "log/slog"

// Config carries read-only knobs that influence adaptation and resolution.
// It is passed by value and should be treated as immutable by implementations.
type Config struct {
	// Pattern is the default qualifier pattern used by convenience
	// constructors when a route does not name one. It must match the
	// whole candidate name.
	Pattern string

	// Collision decides what happens when two candidates resolve to the
	// same visible name.
	Collision Collision

	// Engine selects the regular expression implementation used to
	// compile route patterns.
	Engine Engine

	// MaxUnwrap limits how many pointer/interface layers are peeled off a
	// target before it is inspected. If <= 0, implementations should fall
	// back to a sane default.
	MaxUnwrap int

	// Logger receives debug records about swallowed qualifier/transform
	// failures and collisions. Nil discards them.
	Logger *slog.Logger
}

// Log returns the configured logger, or a logger that discards everything.
func (c Config) Log() *slog.Logger {
	if c.Logger == nil {
		return discard
	}
	return c.Logger
}

var discard = slog.New(slog.DiscardHandler)
