//go:build windows

package main

import "os"

// shutdownSignals cancel a running command.
// On Windows, only os.Interrupt (Ctrl+C) is supported.
var shutdownSignals = []os.Signal{os.Interrupt}
