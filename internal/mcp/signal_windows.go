//go:build windows

package mcp

import "os"

// shutdownSignals stop Run gracefully. Windows only delivers os.Interrupt.
var shutdownSignals = []os.Signal{os.Interrupt}
