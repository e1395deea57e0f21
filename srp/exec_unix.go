//go:build linux || darwin || freebsd
// +build linux darwin freebsd

package srp

import (
	"os"

	"golang.org/x/sys/unix"
)

// Exec replaces the current process image with the target executable,
// forwarding the current environment. It only returns on failure.
func Exec(targetPath string, argv []string) error {
	return unix.Exec(targetPath, argv, os.Environ())
}
