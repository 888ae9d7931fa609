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

package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"
)

// ErrNotMapping is returned when a route path does not lead to a mapping.
var ErrNotMapping = errors.New("not a mapping")

// Format is the on-disk encoding of a document.
type Format int

const (
	// YAML documents use .yaml or .yml.
	YAML Format = iota
	// JSON documents use .json or .jsonc. Comments and trailing commas are
	// accepted on read and dropped on write.
	JSON
)

// FormatOf picks the format from a file extension. Unknown extensions are
// read as YAML, which also accepts plain JSON.
func FormatOf(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json", ".jsonc":
		return JSON
	default:
		return YAML
	}
}

// Document is a decoded YAML or JSON file whose root is a mapping.
type Document struct {
	Path   string
	Format Format
	Root   map[string]any
}

// LoadDocument reads and decodes the document at path.
func LoadDocument(path string) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	doc := &Document{Path: path, Format: FormatOf(path)}
	if err := doc.decode(data); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if doc.Root == nil {
		doc.Root = make(map[string]any)
	}
	return doc, nil
}

func (d *Document) decode(data []byte) error {
	switch d.Format {
	case JSON:
		if err := json.Unmarshal(jsonc.ToJSON(data), &d.Root); err != nil {
			return fmt.Errorf("parsing json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &d.Root); err != nil {
			return fmt.Errorf("parsing yaml: %w", err)
		}
	}
	return nil
}

// Encode renders the document in its own format.
func (d *Document) Encode() ([]byte, error) {
	switch d.Format {
	case JSON:
		out, err := json.MarshalIndent(d.Root, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	default:
		return yaml.Marshal(d.Root)
	}
}

// Save writes the document back to its path.
func (d *Document) Save() error {
	out, err := d.Encode()
	if err != nil {
		return fmt.Errorf("encoding %s: %w", d.Path, err)
	}
	if err := os.WriteFile(d.Path, out, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", d.Path, err)
	}
	return nil
}

// Lookup follows a dotted path of mapping keys from the root. The empty
// path is the root itself.
func (d *Document) Lookup(path string) (map[string]any, error) {
	node := d.Root
	if path == "" {
		return node, nil
	}
	for _, key := range strings.Split(path, ".") {
		next, ok := node[key].(map[string]any)
		if !ok {
			return nil, fmt.Errorf("path %q at %q: %w", path, key, ErrNotMapping)
		}
		node = next
	}
	return node, nil
}

// ParseValue decodes a command-line value as a YAML scalar or flow
// collection, so 8080 is an int, true a bool and [a, b] a list.
func ParseValue(s string) (any, error) {
	var v any
	if err := yaml.Unmarshal([]byte(s), &v); err != nil {
		return nil, fmt.Errorf("parsing value %q: %w", s, err)
	}
	return v, nil
}

// FormatValue renders a value for output on a single line where possible.
func FormatValue(v any) (string, error) {
	out, err := yaml.Marshal(v)
	if err != nil {
		return "", err
	}
	return strings.TrimSuffix(string(out), "\n"), nil
}
