package hosts

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveArgs(t *testing.T) {
	targets, err := Resolve([]string{" FW01.Example.COM ", "fw02.example.com", "fw01.example.com"}, nil, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"fw01.example.com", "fw02.example.com"}, targets)
}

func TestResolveStdin(t *testing.T) {
	stdin := strings.NewReader("fw01.example.com\n\nfw02.example.com\r\nfw02.example.com\n")
	targets, err := Resolve(nil, stdin, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"fw01.example.com", "fw02.example.com"}, targets)
}

func TestResolveArgsWinOverStdin(t *testing.T) {
	stdin := strings.NewReader("piped01\npiped02\n")
	targets, err := Resolve([]string{"fw01"}, stdin, "default-fw")
	require.NoError(t, err)
	assert.Equal(t, []string{"fw01"}, targets)
}

func TestResolveFallback(t *testing.T) {
	targets, err := Resolve(nil, nil, "fw01.example.com")
	require.NoError(t, err)
	assert.Equal(t, []string{"fw01.example.com"}, targets)
}

func TestResolveNoTargets(t *testing.T) {
	_, err := Resolve(nil, nil, "")
	assert.ErrorIs(t, err, ErrNoTargets)

	_, err = Resolve(nil, strings.NewReader("\n  \n"), "fallback-ignored-when-stdin-present")
	assert.ErrorIs(t, err, ErrNoTargets)
}
