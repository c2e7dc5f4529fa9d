package editorconfig_test

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsdk/pkg/document"
	"github.com/dmitrymomot/docsdk/pkg/editorconfig"
	"github.com/dmitrymomot/docsdk/pkg/errcode"
	"github.com/dmitrymomot/docsdk/pkg/jwt"
	"github.com/dmitrymomot/docsdk/pkg/logger"
	"github.com/dmitrymomot/docsdk/pkg/settings"
)

var catalog = document.MapCatalog{
	"docx": {Name: "docx", Type: document.TypeWord, Actions: []string{"view", "edit"}},
	"pdf":  {Name: "pdf", Type: document.TypePDF, Actions: []string{"view", "fill"}},
	"djvu": {Name: "djvu", Type: document.TypePDF, Actions: []string{"view"}},
	"bin":  {Name: "bin", Type: document.TypeWord},
}

type source struct {
	name   string
	goback string
	perms  *editorconfig.Permissions
	err    error
}

func (s source) DocumentName(context.Context, string) (string, error) { return s.name, s.err }
func (s source) DocumentKey(_ context.Context, id string, embedded bool) (string, error) {
	if embedded {
		return id + " embedded", nil
	}
	return id + " rev 1", nil
}
func (s source) FileURL(_ context.Context, id string) (string, error) {
	return "https://host/files/" + id, nil
}
func (s source) CallbackURL(_ context.Context, id string) (string, error) {
	return "https://host/callback/" + id, nil
}

type richSource struct{ source }

func (s richSource) GoBackURL(context.Context, string) (string, error) { return s.goback, nil }
func (s richSource) Permissions(context.Context, string) (editorconfig.Permissions, error) {
	return *s.perms, nil
}

func newBuilder(t *testing.T, p settings.Provider, src editorconfig.Source, opts ...editorconfig.Option) *editorconfig.Builder {
	t.Helper()
	b, err := editorconfig.New(p, catalog, src, append([]editorconfig.Option{editorconfig.WithLogger(logger.Discard())}, opts...)...)
	require.NoError(t, err)
	return b
}

func TestNew_Validation(t *testing.T) {
	t.Parallel()

	_, err := editorconfig.New(settings.Snapshot{}, nil, source{})
	assert.ErrorIs(t, err, editorconfig.ErrNilCatalog)

	_, err = editorconfig.New(settings.Snapshot{}, catalog, nil)
	assert.ErrorIs(t, err, editorconfig.ErrNilSource)

	_, err = editorconfig.New(settings.Snapshot{}, catalog, source{}, editorconfig.WithMobilePattern("("))
	assert.ErrorIs(t, err, editorconfig.ErrInvalidMobilePattern)
	assert.ErrorIs(t, err, errcode.ErrConfig)

	_, err = editorconfig.New(settings.Snapshot{MobileUserAgent: "(["}, catalog, source{})
	assert.ErrorIs(t, err, editorconfig.ErrInvalidMobilePattern)
}

func TestBuild_Editable(t *testing.T) {
	t.Parallel()

	b := newBuilder(t, settings.Snapshot{}, source{name: "reports/Q3 Report.DOCX"})
	cfg, err := b.Build(context.Background(), editorconfig.Request{
		FileID:    "42",
		UserAgent: "Mozilla/5.0 (X11; Linux x86_64)",
		User:      &editorconfig.User{ID: "u1", Name: "Jane"},
		Lang:      "en",
	})
	require.NoError(t, err)

	assert.Equal(t, document.TypeWord, cfg.DocumentType)
	assert.Equal(t, editorconfig.TypeDesktop, cfg.Type)
	assert.Equal(t, "docx", cfg.Document.FileType)
	assert.Equal(t, "42_rev_1", cfg.Document.Key)
	assert.Equal(t, "Q3 Report.DOCX", cfg.Document.Title)
	assert.Equal(t, "https://host/files/42", cfg.Document.URL)
	assert.True(t, cfg.Document.Permissions.Edit)
	assert.Equal(t, editorconfig.ModeEdit, cfg.EditorConfig.Mode)
	assert.Equal(t, "https://host/callback/42", cfg.EditorConfig.CallbackURL)
	assert.Equal(t, "Jane", cfg.EditorConfig.User.Name)
	require.NotNil(t, cfg.EditorConfig.Customization)
	assert.Equal(t, "Guest", cfg.EditorConfig.Customization.Anonymous.Label)
	assert.Nil(t, cfg.EditorConfig.Customization.GoBack)
	assert.Empty(t, cfg.Token, "no token without a secret")
}

func TestBuild_ModeAndPermissions(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		file     string
		req      editorconfig.Request
		wantMode editorconfig.Mode
		wantEdit bool
		wantFill bool
	}{
		{"fillable form", "form.pdf", editorconfig.Request{}, editorconfig.ModeEdit, false, true},
		{"view only format", "scan.djvu", editorconfig.Request{}, editorconfig.ModeView, false, false},
		{"forced view", "a.docx", editorconfig.Request{Mode: editorconfig.ModeView}, editorconfig.ModeView, false, false},
		{"embedded", "a.docx", editorconfig.Request{Embedded: true}, editorconfig.ModeView, false, false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfg, err := newBuilder(t, settings.Snapshot{}, source{name: tt.file}).Build(context.Background(), tt.req)
			require.NoError(t, err)
			assert.Equal(t, tt.wantMode, cfg.EditorConfig.Mode)
			assert.Equal(t, tt.wantEdit, cfg.Document.Permissions.Edit)
			assert.Equal(t, tt.wantFill, cfg.Document.Permissions.FillForms)
			if tt.wantMode == editorconfig.ModeView {
				assert.Empty(t, cfg.EditorConfig.CallbackURL)
				assert.True(t, cfg.Document.Permissions.Download)
			}
		})
	}
}

func TestBuild_Embedded(t *testing.T) {
	t.Parallel()

	cfg, err := newBuilder(t, settings.Snapshot{}, source{name: "a.docx"}).Build(context.Background(), editorconfig.Request{FileID: "7", Embedded: true})
	require.NoError(t, err)
	assert.Equal(t, editorconfig.TypeEmbedded, cfg.Type)
	assert.Equal(t, "7_embedded", cfg.Document.Key)
	assert.Equal(t, "100%", cfg.Width)
}

func TestBuild_Errors(t *testing.T) {
	t.Parallel()

	_, err := newBuilder(t, settings.Snapshot{}, source{name: "movie.mkv"}).Build(context.Background(), editorconfig.Request{})
	assert.ErrorIs(t, err, document.ErrUnknownExtension)

	_, err = newBuilder(t, settings.Snapshot{}, source{name: "blob.bin"}).Build(context.Background(), editorconfig.Request{})
	assert.ErrorIs(t, err, editorconfig.ErrNotViewable)
	assert.ErrorIs(t, err, errcode.ErrNotFound)

	boom := errors.New("db down")
	_, err = newBuilder(t, settings.Snapshot{}, source{err: boom}).Build(context.Background(), editorconfig.Request{})
	assert.ErrorIs(t, err, boom)
}

func TestBuild_SourceExtensions(t *testing.T) {
	t.Parallel()

	perms := editorconfig.DefaultPermissions()
	perms.Edit = false
	perms.FillForms = false
	src := richSource{source{name: "a.docx", goback: "https://host/folder/1", perms: &perms}}

	custom := editorconfig.DefaultCustomization()
	custom.GoBack = &editorconfig.GoBack{Text: "Back to folder", Blank: true}
	cfg, err := newBuilder(t, settings.Snapshot{}, src, editorconfig.WithCustomization(custom)).Build(context.Background(), editorconfig.Request{FileID: "1"})
	require.NoError(t, err)

	assert.Equal(t, editorconfig.ModeView, cfg.EditorConfig.Mode)
	assert.False(t, cfg.Document.Permissions.Comment)
	require.NotNil(t, cfg.EditorConfig.Customization.GoBack)
	assert.Equal(t, "https://host/folder/1", cfg.EditorConfig.Customization.GoBack.URL)
	assert.Equal(t, "Back to folder", cfg.EditorConfig.Customization.GoBack.Text)
	assert.Empty(t, custom.GoBack.URL, "base customization must not be modified")
}

func TestBuild_SignedToken(t *testing.T) {
	t.Parallel()

	snap := settings.Snapshot{Key: "secret"}
	cfg, err := newBuilder(t, snap, source{name: "a.docx"}).Build(context.Background(), editorconfig.Request{FileID: "9"})
	require.NoError(t, err)
	require.NotEmpty(t, cfg.Token)

	claims, err := jwt.NewCodec(snap).Decode(cfg.Token)
	require.NoError(t, err)
	assert.NotContains(t, claims, "token")
	doc, ok := claims["document"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "9_rev_1", doc["key"])
	assert.Equal(t, "https://host/files/9", doc["url"])

	raw, err := json.Marshal(cfg)
	require.NoError(t, err)
	assert.Contains(t, string(raw), `"token":"`+cfg.Token+`"`)
}

func TestEditorType(t *testing.T) {
	t.Parallel()

	iphone := "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)"
	b := newBuilder(t, settings.Snapshot{}, source{})
	assert.Equal(t, editorconfig.TypeMobile, b.EditorType(iphone, false))
	assert.Equal(t, editorconfig.TypeMobile, b.EditorType("Mozilla/5.0 (Linux; ANDROID 14)", false))
	assert.Equal(t, editorconfig.TypeDesktop, b.EditorType("Mozilla/5.0 (Windows NT 10.0)", false))
	assert.Equal(t, editorconfig.TypeEmbedded, b.EditorType(iphone, true))
	assert.True(t, editorconfig.IsMobile(iphone))

	custom := newBuilder(t, settings.Snapshot{MobileUserAgent: "kiosk"}, source{})
	assert.Equal(t, editorconfig.TypeMobile, custom.EditorType("Kiosk/1.0", false))
	assert.Equal(t, editorconfig.TypeDesktop, custom.EditorType(iphone, false))

	override := newBuilder(t, settings.Snapshot{MobileUserAgent: "kiosk"}, source{}, editorconfig.WithMobilePattern("tablet"))
	assert.Equal(t, editorconfig.TypeDesktop, override.EditorType("Kiosk/1.0", false))
}
