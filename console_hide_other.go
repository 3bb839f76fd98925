//go:build !windows && !darwin
// +build !windows,!darwin

package main

// hideConsole is a no-op outside Windows and macOS; staying attached to the
// launching terminal is normal there.
func hideConsole() {}
