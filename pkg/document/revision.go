package document

import (
	"hash/crc32"
	"regexp"
	"strconv"
)

const maxRevisionIDLen = 20

var revisionDisallowed = regexp.MustCompile(`[^0-9\-.a-zA-Z_=]`)

// GenerateRevisionID turns an arbitrary key (usually a URL or a file id with
// a version) into a document-service cache key. Keys longer than 20 bytes are
// replaced by their CRC-32 checksum in decimal; disallowed characters become
// underscores and the result is capped at 20 bytes.
func GenerateRevisionID(expected string) string {
	if len(expected) > maxRevisionIDLen {
		expected = strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(expected))), 10)
	}
	key := revisionDisallowed.ReplaceAllString(expected, "_")
	if len(key) > maxRevisionIDLen {
		key = key[:maxRevisionIDLen]
	}
	return key
}
