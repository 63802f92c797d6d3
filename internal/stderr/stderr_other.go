//go:build !unix

// ABOUTME: No-op stderr redirection for platforms without dup2
// ABOUTME: Keeps the same API as the unix implementation
package stderr

// Silence does nothing on this platform
func Silence() (restore func(), err error) {
	return func() {}, nil
}
