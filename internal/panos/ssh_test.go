//go:build !windows
// +build !windows

package panos

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTrimOutput(t *testing.T) {
	out := "show system info\nhostname: fw01\nuptime: 10 days\nadmin@fw01> "
	assert.Equal(t, "hostname: fw01\nuptime: 10 days", TrimOutput(out))
}

func TestSetConfigCommands(t *testing.T) {
	assert.Equal(t, []string{"set cli config-output-format set", "configure", "show"}, SetConfigCommands(""))
	assert.Equal(t, []string{"set cli config-output-format set", "configure", "show | match 'address'"}, SetConfigCommands("address"))
}
