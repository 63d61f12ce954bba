package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/percona-lab/slist/config"
	"github.com/percona-lab/slist/script"
)

func TestRunScript(t *testing.T) {
	t.Parallel()

	t.Run("scenario", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runScript(t.Context(), &out, "1,2,3", "insert:0:42")
		require.NoError(t, err)
		assert.Equal(t, "[1 42 2 3] (4 elements)\n", out.String())
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		require.NoError(t, runScript(t.Context(), &out, "", ""))
		assert.Equal(t, "[] (0 elements)\n", out.String())
	})

	t.Run("rejected operation", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runScript(t.Context(), &out, "1", "erase:0")
		require.ErrorIs(t, err, script.ErrOutOfRange)
		assert.Empty(t, out.String())
	})

	t.Run("bad values", func(t *testing.T) {
		t.Parallel()

		var out bytes.Buffer

		err := runScript(t.Context(), &out, "1,x", "")
		assert.ErrorContains(t, err, "parse values")
	})
}

func TestCompareLists(t *testing.T) {
	t.Parallel()

	tests := []struct {
		left, right string
		want        string
	}{
		{"1,2,3", "1,2,3", "[1 2 3] == [1 2 3]\n"},
		{"1,2", "1,2,3", "[1 2] < [1 2 3]\n"},
		{"1,3", "1,2,3", "[1 3] > [1 2 3]\n"},
		{"", "", "[] == []\n"},
	}

	for _, tt := range tests {
		var out bytes.Buffer

		require.NoError(t, compareLists(t.Context(), &out, tt.left, tt.right))
		assert.Equal(t, tt.want, out.String())
	}

	var out bytes.Buffer

	err := compareLists(t.Context(), &out, "1", "a")
	assert.ErrorContains(t, err, "right")
}

func TestRunBench(t *testing.T) {
	t.Parallel()

	var out bytes.Buffer

	require.NoError(t, runBench(t.Context(), &out, 1000))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.True(t, strings.HasPrefix(lines[0], "build"))
	assert.Contains(t, lines[0], "1,000 elements")

	assert.Error(t, runBench(t.Context(), &out, 0))
}

func TestAddLogFlags(t *testing.T) {
	t.Parallel()

	var (
		level         string
		json, noColor bool
	)

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	addLogFlags(fs, &level, &json, &noColor)

	require.NoError(t, fs.Parse([]string{"--log-level", "debug", "--no-color"}))
	assert.Equal(t, "debug", level)
	assert.True(t, noColor)

	fs = pflag.NewFlagSet("test", pflag.ContinueOnError)
	addLogFlags(fs, &level, &json, &noColor)
	require.NoError(t, fs.Parse(nil))
	assert.Equal(t, config.DefaultLogLevel, level)
}
