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
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dirpx.dev/facet/apis"
)

const appYAML = `name: demo
_secret: hunter2
server:
  host: localhost
  port: 8080
  _debug: true
db:
  host: db.local
  port: 5432
`

const routesYAML = `kind: eager
routes:
  - path: server
    match: "host|port"
    rename: "^(.*)$"
    template: 'server_\1'
  - path: db
    rename: "^(.*)$"
    template: 'db_\g<1>'
`

// writeFile creates a file under a per-test temp directory.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// run executes the command tree and returns stdout.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand("test")
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestMembers(t *testing.T) {
	doc := writeFile(t, "app.yaml", appYAML)
	routes := writeFile(t, "routes.yaml", routesYAML)

	out, err := run(t, "members", "--doc", doc, "--routes", routes)
	require.NoError(t, err)
	assert.Equal(t, "db_host\ndb_port\nserver_host\nserver_port\n", out)
}

func TestMembers_DefaultRoutesHideUnderscoreKeys(t *testing.T) {
	doc := writeFile(t, "app.yaml", appYAML)

	out, err := run(t, "members", "-d", doc)
	require.NoError(t, err)
	assert.Equal(t, "db\nname\nserver\n", out)
}

func TestGet(t *testing.T) {
	doc := writeFile(t, "app.yaml", appYAML)
	routes := writeFile(t, "routes.yaml", routesYAML)

	out, err := run(t, "get", "server_port", "--doc", doc, "--routes", routes)
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)

	out, err = run(t, "get", "server_host", "db_host", "--doc", doc, "--routes", routes)
	require.NoError(t, err)
	assert.Equal(t, "server_host: localhost\ndb_host: db.local\n", out)

	_, err = run(t, "get", "server__debug", "--doc", doc, "--routes", routes)
	assert.True(t, errors.Is(err, apis.ErrMemberNotFound), "%v", err)
}

func TestSet_PrintsDocument(t *testing.T) {
	doc := writeFile(t, "app.yaml", appYAML)
	routes := writeFile(t, "routes.yaml", routesYAML)

	out, err := run(t, "set", "server_port", "9090", "--doc", doc, "--routes", routes)
	require.NoError(t, err)
	assert.Contains(t, out, "port: 9090")
	assert.Contains(t, out, "port: 5432")

	// The file is untouched without --write.
	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Equal(t, appYAML, string(data))
}

func TestSet_WriteRoundTrip(t *testing.T) {
	doc := writeFile(t, "app.yaml", appYAML)
	routes := writeFile(t, "routes.yaml", routesYAML)

	_, err := run(t, "set", "db_host", "db.remote", "--write", "--doc", doc, "--routes", routes)
	require.NoError(t, err)

	out, err := run(t, "get", "db_host", "--doc", doc, "--routes", routes)
	require.NoError(t, err)
	assert.Equal(t, "db.remote\n", out)
}

func TestJSONCDocument(t *testing.T) {
	doc := writeFile(t, "app.jsonc", `{
  // service settings
  "server": {"port": 8080, "host": "h",},
}`)
	routes := writeFile(t, "routes.json", `{"kind": "lazy", "routes": [{"path": "server", "match": "port"}]}`)

	out, err := run(t, "get", "port", "--doc", doc, "--routes", routes)
	require.NoError(t, err)
	assert.Equal(t, "8080\n", out)

	_, err = run(t, "set", "port", "1", "-w", "--doc", doc, "--routes", routes)
	require.NoError(t, err)
	data, err := os.ReadFile(doc)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"port": 1`)
	assert.NotContains(t, string(data), "//")
}

func TestErrors(t *testing.T) {
	doc := writeFile(t, "app.yaml", appYAML)

	_, err := run(t, "members")
	assert.ErrorIs(t, err, ErrNoDocument)

	bad := writeFile(t, "bad.yaml", "kind: sideways\n")
	_, err = run(t, "members", "--doc", doc, "--routes", bad)
	assert.ErrorContains(t, err, "unknown router kind")

	badPath := writeFile(t, "path.yaml", "routes:\n  - path: name\n")
	_, err = run(t, "members", "--doc", doc, "--routes", badPath)
	assert.ErrorIs(t, err, ErrNotMapping)

	badPattern := writeFile(t, "pattern.yaml", "routes:\n  - match: \"(\"\n")
	_, err = run(t, "members", "--doc", doc, "--routes", badPattern)
	assert.ErrorContains(t, err, "invalid pattern")
}

func TestCollisionPolicy(t *testing.T) {
	doc := writeFile(t, "app.yaml", appYAML)
	routes := `collision: %s
routes:
  - path: server
    match: host
  - path: db
    match: host
`
	for policy, want := range map[string]string{
		"first-wins": "localhost\n",
		"last-wins":  "db.local\n",
	} {
		t.Run(policy, func(t *testing.T) {
			path := writeFile(t, "routes.yaml", strings.Replace(routes, "%s", policy, 1))
			out, err := run(t, "get", "host", "--doc", doc, "--routes", path)
			require.NoError(t, err)
			assert.Equal(t, want, out)
		})
	}

	path := writeFile(t, "routes.yaml", strings.Replace(routes, "%s", "exclude", 1))
	_, err := run(t, "get", "host", "--doc", doc, "--routes", path)
	assert.ErrorIs(t, err, apis.ErrMemberNotFound)
}

func TestParseValue(t *testing.T) {
	cases := map[string]any{
		"8080":   8080,
		"true":   true,
		"x":      "x",
		`"8080"`: "8080",
		"[a, b]": []any{"a", "b"},
	}
	for in, want := range cases {
		got, err := ParseValue(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}
}

func TestFormatOf(t *testing.T) {
	assert.Equal(t, JSON, FormatOf("a.JSON"))
	assert.Equal(t, JSON, FormatOf("a.jsonc"))
	assert.Equal(t, YAML, FormatOf("a.yml"))
	assert.Equal(t, YAML, FormatOf("a"))
}
