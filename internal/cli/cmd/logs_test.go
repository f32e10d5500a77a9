package cmd

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/darkscreen/internal/cli/styles"
)

func TestLastLines(t *testing.T) {
	input := "one\ntwo\nthree\nfour\n"

	tests := []struct {
		name string
		n    int
		want []string
	}{
		{name: "fewer than available", n: 2, want: []string{"three", "four"}},
		{name: "more than available", n: 10, want: []string{"one", "two", "three", "four"}},
		{name: "zero", n: 0, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := lastLines(strings.NewReader(input), tt.n)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestColorizeLogLine(t *testing.T) {
	theme := styles.NewTheme()

	t.Run("plain text is left alone", func(t *testing.T) {
		assert.Equal(t, "not json", colorizeLogLine("not json", theme))
	})

	t.Run("json entry", func(t *testing.T) {
		line := `{"level":"warn","time":"2026-03-01T12:30:05Z","component":"session","message":"failed to keep screen on","error":"no backend"}`
		out := colorizeLogLine(line, theme)

		assert.Contains(t, out, "12:30:05")
		assert.Contains(t, out, "WRN")
		assert.Contains(t, out, "[session]")
		assert.Contains(t, out, "failed to keep screen on")
		assert.Contains(t, out, "no backend")
	})

	t.Run("unknown level passes through", func(t *testing.T) {
		out := colorizeLogLine(`{"level":"fatal","message":"boom"}`, theme)
		assert.Contains(t, out, "fatal")
		assert.Contains(t, out, "boom")
	})
}

func appendLog(t *testing.T, path, text string) {
	t.Helper()
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	require.NoError(t, err)
	_, err = f.WriteString(text)
	require.NoError(t, err)
	require.NoError(t, f.Close())
}

func TestLogFollower(t *testing.T) {
	path := filepath.Join(t.TempDir(), "darkscreen.log")
	appendLog(t, path, "before\n")

	follower, err := openLogFollower(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = follower.Close() })

	lines, err := follower.poll()
	require.NoError(t, err)
	assert.Empty(t, lines, "existing content is skipped")

	appendLog(t, path, "first\nsec")
	lines, err = follower.poll()
	require.NoError(t, err)
	assert.Equal(t, []string{"first"}, lines)

	appendLog(t, path, "ond\n")
	lines, err = follower.poll()
	require.NoError(t, err)
	assert.Equal(t, []string{"second"}, lines)

	t.Run("rotation", func(t *testing.T) {
		require.NoError(t, os.Rename(path, path+".1"))
		appendLog(t, path, "rotated\n")

		lines, err := follower.poll()
		require.NoError(t, err)
		assert.Equal(t, []string{"rotated"}, lines)

		appendLog(t, path, "after rotation\n")
		lines, err = follower.poll()
		require.NoError(t, err)
		assert.Equal(t, []string{"after rotation"}, lines)
	})

	t.Run("truncation", func(t *testing.T) {
		require.NoError(t, os.WriteFile(path, []byte("fresh\n"), 0o600))

		lines, err := follower.poll()
		require.NoError(t, err)
		assert.Equal(t, []string{"fresh"}, lines)
	})

	t.Run("missing path waits", func(t *testing.T) {
		require.NoError(t, os.Rename(path, path+".2"))

		lines, err := follower.poll()
		require.NoError(t, err)
		assert.Empty(t, lines)

		appendLog(t, path, "recreated\n")
		lines, err = follower.poll()
		require.NoError(t, err)
		assert.Equal(t, []string{"recreated"}, lines)
	})
}
