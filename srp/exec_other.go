//go:build !linux && !darwin && !freebsd
// +build !linux,!darwin,!freebsd

package srp

import "errors"

// Exec is unavailable on platforms without process replacement.
func Exec(targetPath string, argv []string) error {
	return errors.New("process replacement is not supported on this platform")
}
