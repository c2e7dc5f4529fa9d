package document

import (
	"regexp"
	"strings"
)

var pathInfoRe = regexp.MustCompile(`^(.*?)[\\/]*(([^/\\]*?)(\.([^.\\/]+?)|))[\\/.]*$`)

// PathInfo holds the components of a file path. Both separators are
// accepted; trailing separators and dots are ignored.
type PathInfo struct {
	Dirname   string
	Basename  string
	Extension string // lower-cased, without the dot
	Filename  string // basename without extension
}

// ParsePath splits p into its components.
func ParsePath(p string) PathInfo {
	m := pathInfoRe.FindStringSubmatch(p)
	if m == nil {
		return PathInfo{}
	}
	return PathInfo{
		Dirname:   m[1],
		Basename:  m[2],
		Extension: strings.ToLower(m[5]),
		Filename:  m[3],
	}
}

// Ext returns the lower-cased extension of p.
func Ext(p string) string { return ParsePath(p).Extension }

// BaseName returns the last element of p.
func BaseName(p string) string { return ParsePath(p).Basename }
