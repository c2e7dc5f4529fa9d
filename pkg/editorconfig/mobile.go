package editorconfig

import (
	"fmt"
	"regexp"
)

// DefaultMobilePattern matches user agents of mobile browsers.
const DefaultMobilePattern = `android|avantgo|playbook|blackberry|blazer|compal|elaine|fennec|hiptop|iemobile|ip(hone|od|ad)|iris|kindle|lge |maemo|midp|mmp|opera m(ob|in)i|palm( os)?|phone|p(ixi|re)\/|plucker|pocket|psp|symbian|treo|up\.(browser|link)|vodafone|wap|windows (ce|phone)|xda|xiino`

var defaultMobile = regexp.MustCompile("(?i)" + DefaultMobilePattern)

// compileMobile builds the case-insensitive user agent matcher. An empty
// pattern yields the default.
func compileMobile(pattern string) (*regexp.Regexp, error) {
	if pattern == "" {
		return defaultMobile, nil
	}
	re, err := regexp.Compile("(?i)" + pattern)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidMobilePattern, err)
	}
	return re, nil
}

// IsMobile reports whether userAgent matches DefaultMobilePattern.
func IsMobile(userAgent string) bool {
	return defaultMobile.MatchString(userAgent)
}
