//go:build !windows

package mcp

import (
	"os"
	"syscall"
)

// shutdownSignals stop Run gracefully.
var shutdownSignals = []os.Signal{os.Interrupt, syscall.SIGTERM}
