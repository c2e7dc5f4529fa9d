package settings

import (
	"strings"
	"time"
)

// Provider is the read-only view of document-server endpoints and JWT
// configuration consumed by the rest of the SDK.
type Provider interface {
	DocumentServerURL() string
	DocumentServerInternalURL() string
	HealthcheckURL(internal bool) string
	ConvertServiceURL(internal bool) string
	CommandServiceURL(internal bool) string
	JWTKey() string
	JWTHeader() string
	JWTPrefix() string
	JWTLeeway() time.Duration
	IgnoreSSL() bool
	UseDemo() bool
}

// Default endpoint paths relative to the document server URL.
const (
	DefaultAPIPath         = "web-apps/apps/api/documents/api.js"
	DefaultPreloaderPath   = "web-apps/apps/api/documents/cache-scripts.html"
	DefaultHealthcheckPath = "healthcheck"
	DefaultConvertPath     = "ConvertService.ashx"
	DefaultCommandPath     = "coauthoring/CommandService.ashx"
)

// Snapshot is an immutable set of resolved settings. It implements Provider.
type Snapshot struct {
	ServerURL         string
	ServerInternalURL string
	APIPath           string
	PreloaderPath     string
	HealthcheckPath   string
	ConvertPath       string
	CommandPath       string
	Key               string
	Header            string
	Prefix            string
	Leeway            time.Duration
	SkipTLSVerify     bool
	Demo              bool
	MobileUserAgent   string
}

var _ Provider = Snapshot{}

// DocumentServerURL returns the public document server address, normalised.
func (s Snapshot) DocumentServerURL() string {
	return NormalizeURL(s.ServerURL)
}

// DocumentServerInternalURL returns the address the host uses to reach the
// document server, falling back to the public one.
func (s Snapshot) DocumentServerInternalURL() string {
	if s.Demo || s.ServerInternalURL == "" {
		return s.DocumentServerURL()
	}
	return NormalizeURL(s.ServerInternalURL)
}

func (s Snapshot) baseURL(internal bool) string {
	if internal {
		return s.DocumentServerInternalURL()
	}
	return s.DocumentServerURL()
}

func (s Snapshot) customURL(path string, internal bool) string {
	if path == "" {
		return ""
	}
	return joinURL(s.baseURL(internal), path)
}

// DocumentServerAPIURL returns the editor API script address.
func (s Snapshot) DocumentServerAPIURL(internal bool) string {
	return s.customURL(s.APIPath, internal)
}

// DocumentServerPreloaderURL returns the preloader page address.
func (s Snapshot) DocumentServerPreloaderURL(internal bool) string {
	return s.customURL(s.PreloaderPath, internal)
}

func (s Snapshot) HealthcheckURL(internal bool) string {
	return s.customURL(s.HealthcheckPath, internal)
}

func (s Snapshot) ConvertServiceURL(internal bool) string {
	return s.customURL(s.ConvertPath, internal)
}

func (s Snapshot) CommandServiceURL(internal bool) string {
	return s.customURL(s.CommandPath, internal)
}

func (s Snapshot) JWTKey() string           { return s.Key }
func (s Snapshot) JWTHeader() string        { return s.Header }
func (s Snapshot) JWTPrefix() string        { return s.Prefix }
func (s Snapshot) JWTLeeway() time.Duration { return s.Leeway }
func (s Snapshot) UseDemo() bool            { return s.Demo }

// MobileUserAgentPattern returns the configured mobile user agent regexp,
// or "" for the built-in one.
func (s Snapshot) MobileUserAgentPattern() string { return s.MobileUserAgent }

// IgnoreSSL is always false for the demo server.
func (s Snapshot) IgnoreSSL() bool {
	return !s.Demo && s.SkipTLSVerify
}

// ReplaceDocumentServerURLToInternal rewrites a URL produced by the document
// server (for example a converted file link) so the host can fetch it
// through the internal address.
func (s Snapshot) ReplaceDocumentServerURLToInternal(raw string) string {
	internal := s.DocumentServerInternalURL()
	if internal == "" {
		return raw
	}
	from := s.DocumentServerURL()
	if !hasScheme(from) {
		// Relative public address: resolve it against the link's own origin.
		from = originOf(raw) + from
	}
	if from == internal {
		return raw
	}
	return strings.Replace(raw, ProcessURL(from), ProcessURL(internal), 1)
}
