// Command maniacpanel runs the maniac control panel: a small always-on
// window with theme, accent, humanization and gameplay controls backed by
// maniac-config.json.
//
// Usage:
//
//	maniacpanel [--backend auto|win32|headless] [--settings path] [--config file]
//	maniacpanel snapshot --out panel.png
//	maniacpanel backends
package main

import (
	"errors"
	"fmt"
	"os"
	"runtime"

	"github.com/gogpu/overlay"

	_ "github.com/gogpu/overlay/window/headless"
	_ "github.com/gogpu/overlay/window/win32"
)

// Window messages are delivered to the thread that created the window, so
// the frame loop stays on the main thread.
func init() {
	runtime.LockOSThread()
}

func main() {
	os.Exit(run(os.Args[1:]))
}

// Exit codes.
const (
	exitOK      = 0
	exitError   = 1
	exitStartup = 2
)

func run(args []string) int {
	cmd := newRootCmd()
	cmd.SetArgs(args)
	err := cmd.Execute()
	if err == nil {
		return exitOK
	}
	fmt.Fprintf(os.Stderr, "Error: %v\n", err)
	return exitCode(err)
}

func exitCode(err error) int {
	var oe *overlay.Error
	if errors.As(err, &oe) && oe.Kind == overlay.KindFatal {
		return exitStartup
	}
	return exitError
}
