package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer
	root := NewRootCmd()
	root.SetArgs(args)
	root.SetOut(&stdout)
	root.SetErr(&stderr)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func writeContext(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "ctx.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestRunCmd(t *testing.T) {
	t.Parallel()

	cases := map[string]struct {
		expected    string
		expectedErr error
		args        []string
		context     string
	}{
		"sum": {
			expected: "7\n",
			args:     []string{"run", "sum", "3", "4"},
		},
		"range-forward": {
			expected: "0\n5\n10\n",
			args:     []string{"run", "range", "0", "15", "5"},
		},
		"range-limited": {
			expected: "0\n5\n",
			args:     []string{"run", "range", "0", "100", "5", "--method", "limit", "--limit", "2"},
		},
		"range-skipped-first": {
			expected: "10\n",
			args:     []string{"run", "range", "0", "100", "5", "--method", "first", "--skip", "2"},
		},
		"repeat": {
			expected: "go\ngo\ngo\n",
			args:     []string{"run", "repeat", "go", "3"},
		},
		"even-squares": {
			expected: "0\n4\n16\n",
			args:     []string{"run", "even-squares", "5"},
		},
		"echo-emits-nothing-but-runs": {
			expected: "hello\n",
			args:     []string{"run", "echo", "hello"},
		},
		"count-with-state-and-method-from-context": {
			expected: "10\n13\n",
			args:     []string{"run", "count", "5"},
			context: `
state:
  start: 10
  step: 3
traverse:
  method: limit
  limit: 2
`,
		},
		"flag-overrides-context-method": {
			expected: "10\n",
			args:     []string{"run", "count", "5", "--method", "first"},
			context: `
state:
  start: 10
traverse:
  method: limit
  limit: 2
`,
		},
		"unknown-route": {
			expectedErr: ErrUnknownRoute,
			args:        []string{"run", "nope"},
		},
		"wrong-arity": {
			expectedErr: ErrBadArgument,
			args:        []string{"run", "sum", "3"},
		},
		"not-an-integer": {
			expectedErr: ErrBadArgument,
			args:        []string{"run", "sum", "3", "four"},
		},
		"route-failure": {
			expectedErr: ErrBadArgument,
			args:        []string{"run", "range", "0", "10", "0"},
		},
	}

	for name, c := range cases {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			// Given
			args := c.args
			if c.context != "" {
				args = append(args, "--context", writeContext(t, c.context))
			}

			// When
			stdout, _, err := execute(t, args...)

			// Then
			if c.expectedErr != nil {
				assert.ErrorIs(t, err, c.expectedErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, c.expected, stdout)
		})
	}
}

func TestRunCmd_Metrics(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "run", "sum", "1", "2", "--metrics")

	require.NoError(t, err)
	assert.Equal(t, "3\n", stdout)
	assert.Contains(t, stderr, `route_traversals_total{method="forward",result="exhausted"} 1`)
	assert.Contains(t, stderr, `route_elements_total{method="forward"} 1`)
}

func TestRunCmd_DebugLogsToStderr(t *testing.T) {
	t.Parallel()

	stdout, stderr, err := execute(t, "--debug", "--color", "never", "run", "sum", "1", "1")

	require.NoError(t, err)
	assert.Equal(t, "2\n", stdout)
	assert.Contains(t, stderr, "running route")
	assert.Contains(t, stderr, "traversal finished")
}

func TestListCmd(t *testing.T) {
	t.Parallel()

	stdout, _, err := execute(t, "list")

	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(stdout), "\n")
	assert.Len(t, lines, len(catalog))
	assert.True(t, strings.HasPrefix(lines[0], "count <n>"))
	assert.Contains(t, stdout, "sum <a> <b>")
}

func TestVersionCmd(t *testing.T) {
	t.Parallel()

	short, _, err := execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, Version+"\n", short)

	asJSON, _, err := execute(t, "version", "-o", "json")
	require.NoError(t, err)
	assert.Contains(t, asJSON, `"version": "`+Version+`"`)

	_, _, err = execute(t, "version", "-o", "xml")
	assert.Error(t, err)
}
