//go:build !windows

package scan

import "github.com/google/shlex"

// Split tokenizes a command string into arguments using POSIX shell word
// splitting rules.
func Split(s string) ([]string, error) {
	return shlex.Split(s)
}
