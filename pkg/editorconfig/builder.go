package editorconfig

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/dmitrymomot/docsdk/pkg/document"
	"github.com/dmitrymomot/docsdk/pkg/jwt"
	"github.com/dmitrymomot/docsdk/pkg/logger"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

// Source supplies the host's view of a document.
type Source interface {
	DocumentName(ctx context.Context, fileID string) (string, error)
	// DocumentKey returns the raw revision key; embedded views may use a
	// different key than editors.
	DocumentKey(ctx context.Context, fileID string, embedded bool) (string, error)
	// FileURL must be reachable by the document server.
	FileURL(ctx context.Context, fileID string) (string, error)
	CallbackURL(ctx context.Context, fileID string) (string, error)
}

// GoBackSource is implemented by sources that know where the "Open file
// location" button leads.
type GoBackSource interface {
	GoBackURL(ctx context.Context, fileID string) (string, error)
}

// PermissionsSource is implemented by sources with per-file permissions.
// Without it DefaultPermissions apply.
type PermissionsSource interface {
	Permissions(ctx context.Context, fileID string) (Permissions, error)
}

// Request describes one editor opening.
type Request struct {
	FileID    string
	UserAgent string
	Embedded  bool
	User      *User
	Lang      string
	Region    string
	// Mode forces ModeView when set; edit is used whenever permitted otherwise.
	Mode Mode
}

// Builder assembles editor configurations.
type Builder struct {
	codec         *jwt.Codec
	catalog       document.Catalog
	source        Source
	mobile        *regexp.Regexp
	mobilePattern string
	customization Customization
	logger        *slog.Logger
}

// Option configures a Builder.
type Option func(*Builder)

// WithMobilePattern overrides the mobile user agent regexp. It takes
// precedence over the pattern from settings.
func WithMobilePattern(pattern string) Option {
	return func(b *Builder) { b.mobilePattern = pattern }
}

// WithCustomization replaces DefaultCustomization as the base of every
// config. GoBack is still filled from a GoBackSource.
func WithCustomization(c Customization) Option {
	return func(b *Builder) { b.customization = c }
}

func WithLogger(l *slog.Logger) Option {
	return func(b *Builder) {
		if l != nil {
			b.logger = l
		}
	}
}

// New creates a Builder. Configs are signed with the JWT secret of p when
// one is set.
func New(p settings.Provider, catalog document.Catalog, source Source, opts ...Option) (*Builder, error) {
	if catalog == nil {
		return nil, ErrNilCatalog
	}
	if source == nil {
		return nil, ErrNilSource
	}

	b := &Builder{
		codec:         jwt.NewCodec(p),
		catalog:       catalog,
		source:        source,
		customization: DefaultCustomization(),
		logger:        slog.Default(),
	}
	if mp, ok := p.(interface{ MobileUserAgentPattern() string }); ok {
		b.mobilePattern = mp.MobileUserAgentPattern()
	}
	for _, opt := range opts {
		opt(b)
	}

	re, err := compileMobile(b.mobilePattern)
	if err != nil {
		return nil, err
	}
	b.mobile = re
	b.logger = b.logger.With(logger.Component("editorconfig"))
	return b, nil
}

// EditorType picks the layout for a user agent.
func (b *Builder) EditorType(userAgent string, embedded bool) EditorType {
	switch {
	case embedded:
		return TypeEmbedded
	case b.mobile.MatchString(userAgent):
		return TypeMobile
	default:
		return TypeDesktop
	}
}

// Build assembles and, when JWT is enabled, signs the editor config.
// Unknown or non-viewable formats fail with document.ErrUnknownExtension
// and ErrNotViewable.
func (b *Builder) Build(ctx context.Context, req Request) (*Config, error) {
	name, err := b.source.DocumentName(ctx, req.FileID)
	if err != nil {
		return nil, fmt.Errorf("editorconfig: document name: %w", err)
	}
	format, err := document.FormatOf(b.catalog, name)
	if err != nil {
		return nil, err
	}
	if !format.IsViewable() {
		return nil, ErrNotViewable
	}

	key, err := b.source.DocumentKey(ctx, req.FileID, req.Embedded)
	if err != nil {
		return nil, fmt.Errorf("editorconfig: document key: %w", err)
	}
	fileURL, err := b.source.FileURL(ctx, req.FileID)
	if err != nil {
		return nil, fmt.Errorf("editorconfig: file url: %w", err)
	}

	perms, err := b.permissions(ctx, req.FileID)
	if err != nil {
		return nil, err
	}
	if !format.IsEditable() {
		perms.Edit = false
		if !format.IsFillable() {
			perms.FillForms = false
		}
	}
	mode := ModeView
	if req.Mode != ModeView && !req.Embedded && (perms.Edit || perms.FillForms) {
		mode = ModeEdit
	}
	if mode == ModeView {
		perms = perms.ReadOnly()
	}

	editor := Editor{
		Lang:   req.Lang,
		Mode:   mode,
		Region: req.Region,
		User:   req.User,
	}
	if mode == ModeEdit {
		if editor.CallbackURL, err = b.source.CallbackURL(ctx, req.FileID); err != nil {
			return nil, fmt.Errorf("editorconfig: callback url: %w", err)
		}
	}
	if editor.Customization, err = b.customize(ctx, req.FileID); err != nil {
		return nil, err
	}

	cfg := &Config{
		DocumentType: format.Type,
		Type:         b.EditorType(req.UserAgent, req.Embedded),
		Document: Document{
			FileType:    document.Ext(name),
			Key:         document.GenerateRevisionID(key),
			Title:       document.BaseName(name),
			URL:         fileURL,
			Permissions: perms,
		},
		EditorConfig: editor,
	}
	if req.Embedded {
		cfg.Width, cfg.Height = "100%", "100%"
	}

	if err := b.Sign(cfg); err != nil {
		return nil, err
	}

	b.logger.DebugContext(ctx, "editor config built",
		logger.FileID(req.FileID),
		logger.DocumentKey(cfg.Document.Key),
		slog.String("mode", string(mode)),
		slog.String("type", string(cfg.Type)),
	)
	return cfg, nil
}

// Sign sets cfg.Token to a token over the rest of cfg. It is a no-op when
// JWT is disabled.
func (b *Builder) Sign(cfg *Config) error {
	if !b.codec.Enabled() {
		return nil
	}
	cfg.Token = ""
	token, err := b.codec.Encode(cfg)
	if err != nil {
		return fmt.Errorf("editorconfig: sign config: %w", err)
	}
	cfg.Token = token
	return nil
}

func (b *Builder) permissions(ctx context.Context, fileID string) (Permissions, error) {
	ps, ok := b.source.(PermissionsSource)
	if !ok {
		return DefaultPermissions(), nil
	}
	p, err := ps.Permissions(ctx, fileID)
	if err != nil {
		return Permissions{}, fmt.Errorf("editorconfig: permissions: %w", err)
	}
	return p, nil
}

func (b *Builder) customize(ctx context.Context, fileID string) (*Customization, error) {
	c := b.customization
	gs, ok := b.source.(GoBackSource)
	if !ok {
		return &c, nil
	}
	url, err := gs.GoBackURL(ctx, fileID)
	if err != nil {
		return nil, fmt.Errorf("editorconfig: goback url: %w", err)
	}
	if url != "" {
		goback := GoBack{}
		if c.GoBack != nil {
			goback = *c.GoBack
		}
		goback.URL = url
		c.GoBack = &goback
	}
	return &c, nil
}
