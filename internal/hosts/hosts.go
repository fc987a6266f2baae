// Package hosts resolves the list of target firewalls for a command
// invocation from arguments, piped standard input or a saved default.
package hosts

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// ErrNoTargets is returned when no targets could be determined from any
// source.
var ErrNoTargets = errors.New("no hosts specified")

// FromPipe reports whether f is receiving piped input rather than a
// terminal.
func FromPipe(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice == 0
}

// Resolve determines the target list. Explicit arguments win, then lines
// read from stdin (nil when input is a terminal), then the saved default.
// Targets are trimmed, lowercased and de-duplicated preserving first-seen
// order.
func Resolve(args []string, stdin io.Reader, fallback string) ([]string, error) {
	var raw []string
	switch {
	case len(args) > 0:
		raw = args
	case stdin != nil:
		scanner := bufio.NewScanner(bufio.NewReader(stdin))
		for scanner.Scan() {
			raw = append(raw, scanner.Text())
		}
		if err := scanner.Err(); err != nil {
			return nil, err
		}
	case fallback != "":
		raw = []string{fallback}
	}

	seen := make(map[string]struct{}, len(raw))
	targets := make([]string, 0, len(raw))
	for _, h := range raw {
		h = strings.ToLower(strings.TrimSpace(h))
		if h == "" {
			continue
		}
		if _, ok := seen[h]; ok {
			continue
		}
		seen[h] = struct{}{}
		targets = append(targets, h)
	}

	if len(targets) == 0 {
		return nil, ErrNoTargets
	}
	return targets, nil
}
