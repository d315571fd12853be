//go:build !windows
// +build !windows

package output

// enableANSI returns true on Unix-like systems; terminals support escape
// sequences out of the box there.
func enableANSI() bool {
	return true
}
