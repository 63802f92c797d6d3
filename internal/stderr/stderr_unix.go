//go:build unix

// ABOUTME: Redirects the process stderr to /dev/null on unix
// ABOUTME: Audio drivers print device probing noise there from C code
package stderr

import (
	"fmt"
	"os"

	"golang.org/x/sys/unix"
)

// Silence points file descriptor 2 at /dev/null, returning a function that
// restores the original stderr.
func Silence() (restore func(), err error) {
	devNull, err := os.OpenFile(os.DevNull, os.O_WRONLY, 0)
	if err != nil {
		return func() {}, fmt.Errorf("failed to open %s: %w", os.DevNull, err)
	}
	defer devNull.Close()

	saved, err := unix.Dup(unix.Stderr)
	if err != nil {
		return func() {}, fmt.Errorf("failed to duplicate stderr: %w", err)
	}

	if err := unix.Dup2(int(devNull.Fd()), unix.Stderr); err != nil {
		unix.Close(saved)
		return func() {}, fmt.Errorf("failed to redirect stderr: %w", err)
	}

	return func() {
		_ = unix.Dup2(saved, unix.Stderr)
		_ = unix.Close(saved)
	}, nil
}
