package runtime

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

// NodeBinary is the executable name of the Node.js runtime.
const NodeBinary = "node"

// ErrNodeNotFound is returned when node is not on PATH.
var ErrNodeNotFound = errors.New("node runtime requires Node.js: node not found on PATH")

// NodeVersion returns the version reported by `node --version` without the
// leading "v" (e.g. "20.11.1").
func NodeVersion(ctx context.Context, r Runner) (string, error) {
	if _, err := r.LookPath(NodeBinary); err != nil {
		return "", ErrNodeNotFound
	}

	out, err := r.Output(ctx, Command{Name: NodeBinary, Args: []string{"--version"}})
	if err != nil {
		return "", fmt.Errorf("querying node version: %w", err)
	}

	version := strings.TrimPrefix(strings.TrimSpace(out), "v")
	if version == "" {
		return "", fmt.Errorf("node --version printed nothing")
	}
	return version, nil
}
