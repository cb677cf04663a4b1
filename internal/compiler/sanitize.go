package compiler

import "strings"

// Sanitize derives a C++ identifier from a file base name by replacing every
// '.' with '_'. Other characters are kept as is, so "logo.png" becomes
// "logo_png". The result is not validated.
func Sanitize(fileName string) string {
	return strings.ReplaceAll(fileName, ".", "_")
}
