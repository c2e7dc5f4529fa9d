package healthcheck

import (
	"regexp"
	"strconv"
	"strings"
)

// MinSupportedVersion is the newest document server version that is
// rejected. Versions that cannot be parsed (0) are accepted.
const MinSupportedVersion = 6.0

var leadingNumber = regexp.MustCompile(`^[+-]?(\d+(\.\d*)?|\.\d+)`)

// ParseVersion returns the leading decimal number of a version string:
// "8.1.0.169" gives 8.1. Strings without a leading number give 0.
func ParseVersion(v string) float64 {
	m := leadingNumber.FindString(strings.TrimSpace(v))
	if m == "" {
		return 0
	}
	f, err := strconv.ParseFloat(m, 64)
	if err != nil {
		return 0
	}
	return f
}

// Supported reports whether version passes the minimum version check.
func Supported(version string, minimum float64) bool {
	v := ParseVersion(version)
	return v <= 0 || v > minimum
}
