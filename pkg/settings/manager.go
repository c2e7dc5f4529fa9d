package settings

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"github.com/dmitrymomot/docsdk/pkg/config"
)

// EnvPrefix is prepended to every environment key read by FromEnv.
const EnvPrefix = "DOCS_INTEGRATION_SDK_"

// Demo server parameters.
const (
	DemoURL         = "https://onlinedocs.onlyoffice.com/"
	DemoJWTHeader   = "AuthorizationJWT"
	DemoJWTKey      = "sn2puSUF7muF5Jas"
	DemoJWTPrefix   = "Bearer "
	DemoTrialPeriod = 30 * 24 * time.Hour
)

// EnvConfig holds values read from DOCS_INTEGRATION_SDK_* variables.
type EnvConfig struct {
	DocumentServerURL         string `env:"DOCUMENT_SERVER_URL"`
	DocumentServerInternalURL string `env:"DOCUMENT_SERVER_INTERNAL_URL"`
	APIPath                   string `env:"DOCUMENT_SERVER_API_URL" envDefault:"web-apps/apps/api/documents/api.js"`
	PreloaderPath             string `env:"DOCUMENT_SERVER_API_PRELOADER_URL" envDefault:"web-apps/apps/api/documents/cache-scripts.html"`
	HealthcheckPath           string `env:"DOCUMENT_SERVER_HEALTHCHECK_URL" envDefault:"healthcheck"`
	ConvertPath               string `env:"CONVERT_SERVICE_URL" envDefault:"ConvertService.ashx"`
	CommandPath               string `env:"COMMAND_SERVICE_URL" envDefault:"coauthoring/CommandService.ashx"`
	JWTKey                    string `env:"JWT_KEY"`
	JWTHeader                 string `env:"JWT_HEADER" envDefault:"Authorization"`
	JWTPrefix                 string `env:"JWT_PREFIX" envDefault:"Bearer "`
	JWTLeeway                 int    `env:"JWT_LEEWAY" envDefault:"0"`
	IgnoreSSL                 bool   `env:"HTTP_IGNORE_SSL"`
	MobileUserAgent           string `env:"EDITING_SERVICE_MOBILE_USER_AGENT"`
}

// FromEnv loads EnvConfig from the process environment (and .env).
func FromEnv() (EnvConfig, error) {
	var cfg EnvConfig
	if err := config.LoadWithPrefix(EnvPrefix, &cfg); err != nil {
		return EnvConfig{}, err
	}
	return cfg, nil
}

// DemoState describes the demo trial.
type DemoState int

const (
	DemoDisabled DemoState = iota
	DemoAvailable
	DemoExpired
)

func (s DemoState) String() string {
	switch s {
	case DemoAvailable:
		return "available"
	case DemoExpired:
		return "expired"
	default:
		return "disabled"
	}
}

// Manager resolves settings from a Store, the environment and the demo
// server defaults. Stored values win over environment values; the demo
// server overrides both while the trial is available.
type Manager struct {
	store  Store
	env    EnvConfig
	now    func() time.Time
	logger *slog.Logger
}

// ManagerOption configures a Manager.
type ManagerOption func(*Manager)

// WithClock overrides the time source used for the demo trial.
func WithClock(now func() time.Time) ManagerOption {
	return func(m *Manager) {
		if now != nil {
			m.now = now
		}
	}
}

func WithLogger(l *slog.Logger) ManagerOption {
	return func(m *Manager) {
		if l != nil {
			m.logger = l
		}
	}
}

// NewManager creates a Manager over store and env.
func NewManager(store Store, env EnvConfig, opts ...ManagerOption) (*Manager, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	m := &Manager{
		store:  store,
		env:    env,
		now:    time.Now,
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Snapshot resolves every setting at once. The result does not change when
// the store is modified afterwards.
func (m *Manager) Snapshot(ctx context.Context) (Snapshot, error) {
	state, err := m.DemoStatus(ctx)
	if err != nil {
		return Snapshot{}, err
	}
	demo := state == DemoAvailable

	get := func(key, envValue, demoValue string) (string, error) {
		if demo && demoValue != "" {
			return demoValue, nil
		}
		v, err := m.store.Get(ctx, key)
		if err != nil {
			return "", fmt.Errorf("settings: read %q: %w", key, err)
		}
		if v == "" {
			v = envValue
		}
		return v, nil
	}

	snap := Snapshot{
		APIPath:         m.env.APIPath,
		PreloaderPath:   m.env.PreloaderPath,
		HealthcheckPath: m.env.HealthcheckPath,
		ConvertPath:     m.env.ConvertPath,
		CommandPath:     m.env.CommandPath,
		Demo:            demo,
		MobileUserAgent: m.env.MobileUserAgent,
	}

	if snap.ServerURL, err = get(KeyDocumentServerURL, m.env.DocumentServerURL, DemoURL); err != nil {
		return Snapshot{}, err
	}
	if snap.ServerInternalURL, err = get(KeyDocumentServerInternalURL, m.env.DocumentServerInternalURL, ""); err != nil {
		return Snapshot{}, err
	}
	if snap.Key, err = get(KeyJWTKey, m.env.JWTKey, DemoJWTKey); err != nil {
		return Snapshot{}, err
	}
	if snap.Header, err = get(KeyJWTHeader, m.env.JWTHeader, DemoJWTHeader); err != nil {
		return Snapshot{}, err
	}
	if snap.Prefix, err = get(KeyJWTPrefix, m.env.JWTPrefix, DemoJWTPrefix); err != nil {
		return Snapshot{}, err
	}

	leeway, err := get(KeyJWTLeeway, strconv.Itoa(m.env.JWTLeeway), "")
	if err != nil {
		return Snapshot{}, err
	}
	if snap.Leeway, err = parseLeeway(leeway); err != nil {
		return Snapshot{}, err
	}

	ignore, err := get(KeyIgnoreSSL, strconv.FormatBool(m.env.IgnoreSSL), "")
	if err != nil {
		return Snapshot{}, err
	}
	snap.SkipTLSVerify = parseBool(ignore)

	return snap, nil
}

// Set stores a setting value.
func (m *Manager) Set(ctx context.Context, key, value string) error {
	return m.store.Set(ctx, key, value)
}

// DemoStatus reports the demo trial state without modifying anything.
func (m *Manager) DemoStatus(ctx context.Context) (DemoState, error) {
	enabled, err := m.store.Get(ctx, KeyDemo)
	if err != nil {
		return DemoDisabled, fmt.Errorf("settings: read demo flag: %w", err)
	}
	start, err := m.demoStart(ctx)
	if err != nil {
		return DemoDisabled, err
	}
	if !start.IsZero() && m.now().Sub(start) > DemoTrialPeriod {
		return DemoExpired, nil
	}
	if !parseBool(enabled) {
		return DemoDisabled, nil
	}
	return DemoAvailable, nil
}

// EnableDemo switches the integration to the demo server and starts the
// trial on first use. It fails with ErrDemoExpired once the trial is over.
func (m *Manager) EnableDemo(ctx context.Context) error {
	state, err := m.DemoStatus(ctx)
	if err != nil {
		return err
	}
	if state == DemoExpired {
		return ErrDemoExpired
	}
	start, err := m.demoStart(ctx)
	if err != nil {
		return err
	}
	if start.IsZero() {
		if err := m.store.Set(ctx, KeyDemoStart, strconv.FormatInt(m.now().Unix(), 10)); err != nil {
			return fmt.Errorf("settings: store demo start: %w", err)
		}
	}
	return m.store.Set(ctx, KeyDemo, "true")
}

// DisableDemo switches back to the configured document server. The trial
// start is kept so the period cannot be restarted.
func (m *Manager) DisableDemo(ctx context.Context) error {
	return m.store.Set(ctx, KeyDemo, "false")
}

// ExpireDemo turns demo mode off when the trial period has elapsed. It
// reports whether the stored flag was changed.
func (m *Manager) ExpireDemo(ctx context.Context) (bool, error) {
	state, err := m.DemoStatus(ctx)
	if err != nil || state != DemoExpired {
		return false, err
	}
	enabled, err := m.store.Get(ctx, KeyDemo)
	if err != nil {
		return false, fmt.Errorf("settings: read demo flag: %w", err)
	}
	if !parseBool(enabled) {
		return false, nil
	}
	if err := m.store.Set(ctx, KeyDemo, "false"); err != nil {
		return false, err
	}
	m.logger.InfoContext(ctx, "demo trial expired, switched back to configured document server")
	return true, nil
}

func (m *Manager) demoStart(ctx context.Context) (time.Time, error) {
	raw, err := m.store.Get(ctx, KeyDemoStart)
	if err != nil {
		return time.Time{}, fmt.Errorf("settings: read demo start: %w", err)
	}
	if raw == "" {
		return time.Time{}, nil
	}
	sec, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, fmt.Errorf("settings: parse demo start %q: %w", raw, err)
	}
	return time.Unix(sec, 0), nil
}

func parseBool(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}

// parseLeeway reads a leeway given in seconds.
func parseLeeway(v string) (time.Duration, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return 0, nil
	}
	sec, err := strconv.Atoi(v)
	if err != nil || sec < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidLeeway, v)
	}
	return time.Duration(sec) * time.Second, nil
}
