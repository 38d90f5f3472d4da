// Package notify provides cross-platform desktop notifications for pomodoro.
//
// The timer announces every phase change through a Handler. The Handler asks
// for permission once at startup and then dispatches each notification on
// its own goroutine, so the timer's event loop never waits on the OS.
// Delivery failures are logged and otherwise ignored.
//
// # Backends
//
//   - native: shells out to OS tools (osascript/afplay on macOS,
//     notify-send/paplay on Linux, PowerShell on Windows)
//   - beeep: uses the github.com/gen2brain/beeep library
//
// # Usage
//
//	config := notify.DefaultConfig()
//	handler := notify.NewHandler(config, logger)
//	if !handler.RequestPermission() {
//		// notifications stay disabled; the timer still works
//	}
//	handler.Notify("Break Time!", "Step away for 5 minutes.")
//	defer handler.Wait()
package notify
