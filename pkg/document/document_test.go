package document_test

import (
	"archive/zip"
	"bytes"
	"context"
	"errors"
	"hash/crc32"
	"io"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsdk/pkg/document"
	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

func TestParsePath(t *testing.T) {
	t.Parallel()

	tests := []struct {
		path string
		want document.PathInfo
	}{
		{"dir/sub/Report.DOCX", document.PathInfo{Dirname: "dir/sub", Basename: "Report.DOCX", Extension: "docx", Filename: "Report"}},
		{"/a/b/archive.tar.gz", document.PathInfo{Dirname: "/a/b", Basename: "archive.tar.gz", Extension: "gz", Filename: "archive.tar"}},
		{"noext", document.PathInfo{Basename: "noext", Filename: "noext"}},
		{`C:\docs\plan.xlsx`, document.PathInfo{Dirname: `C:\docs`, Basename: "plan.xlsx", Extension: "xlsx", Filename: "plan"}},
		{"dir/file.pptx/", document.PathInfo{Dirname: "dir", Basename: "file.pptx", Extension: "pptx", Filename: "file"}},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.path, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, document.ParsePath(tt.path))
		})
	}

	assert.Equal(t, "docx", document.Ext("x/Y.Docx"))
	assert.Equal(t, "Y.Docx", document.BaseName("x/Y.Docx"))
}

func TestGenerateRevisionID(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "file_1.docx", document.GenerateRevisionID("file 1.docx"))
	assert.Equal(t, "abc-123=v2", document.GenerateRevisionID("abc-123=v2"))

	long := "https://example.com/files/report.docx?version=3"
	want := strconv.FormatUint(uint64(crc32.ChecksumIEEE([]byte(long))), 10)
	got := document.GenerateRevisionID(long)
	assert.Equal(t, want, got)
	assert.LessOrEqual(t, len(got), 20)

	assert.Equal(t, got, document.GenerateRevisionID(long), "key must be stable")
}

func TestCatalog(t *testing.T) {
	t.Parallel()

	catalog := document.MapCatalog{
		"docx": {Name: "docx", Type: document.TypeWord, Actions: []string{"view", "edit"}, Mimes: []string{document.DocxMimeType}},
		"doc":  {Name: "doc", Type: document.TypeWord, Actions: []string{"view", "auto-convert"}},
		"form": {Name: "pdf", Type: document.TypePDF, Actions: []string{"view", "fill"}},
	}

	f, err := document.FormatOf(catalog, "a/b/Test.DOCX")
	require.NoError(t, err)
	assert.True(t, f.IsViewable())
	assert.True(t, f.IsEditable())
	assert.False(t, f.IsFillable())
	assert.Equal(t, document.DocxMimeType, f.MimeType())

	f, err = document.FormatOf(catalog, "legacy.doc")
	require.NoError(t, err)
	assert.True(t, f.IsAutoConvertable())
	assert.Empty(t, f.MimeType())

	docType, err := document.DocType(catalog, "scan.pdf")
	require.NoError(t, err)
	assert.Equal(t, document.TypePDF, docType)

	_, err = document.DocType(catalog, "movie.mkv")
	assert.ErrorIs(t, err, document.ErrUnknownExtension)
	assert.ErrorIs(t, err, errcode.ErrNotFound)
	assert.Equal(t, "Unknown file extension", err.Error())
}

func TestLoadCatalog(t *testing.T) {
	t.Parallel()

	asset := `[
		{"name":"docx","type":"word","actions":["view","edit"],"convert":["pdf","odt"],"mime":["application/vnd.openxmlformats-officedocument.wordprocessingml.document"]},
		{"name":"xlsx","type":"cell","actions":["view","edit"],"convert":["pdf"],"mime":[]}
	]`
	c, err := document.LoadCatalog(strings.NewReader(asset))
	require.NoError(t, err)
	require.Len(t, c, 2)

	f, err := document.FormatOf(c, "book.xlsx")
	require.NoError(t, err)
	assert.Equal(t, document.TypeCell, f.Type)
	assert.Equal(t, []string{"pdf", "odt"}, c["docx"].Convert)

	for name, in := range map[string]string{"empty": "", "empty array": "[]"} {
		_, err := document.LoadCatalog(strings.NewReader(in))
		assert.ErrorIs(t, err, errcode.ErrConfig, name)
		assert.Equal(t, errcode.CommonEmptyFormatsAsset.Message(), errcode.Message(err), name)
	}

	_, err = document.LoadCatalog(strings.NewReader("{"))
	assert.Error(t, err)
}

func TestEmptyDocx(t *testing.T) {
	t.Parallel()

	data, err := document.EmptyDocx()
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(zr.File))
	for _, f := range zr.File {
		names = append(names, f.Name)
	}
	assert.ElementsMatch(t, []string{"[Content_Types].xml", "_rels/.rels", "word/document.xml"}, names)
}

type memOpener map[string]string

func (m memOpener) Open(_ context.Context, path string) (io.ReadCloser, error) {
	body, ok := m[path]
	if !ok {
		return nil, errors.New("missing")
	}
	return io.NopCloser(strings.NewReader(body)), nil
}

func TestStorageResolver(t *testing.T) {
	t.Parallel()

	_, err := document.NewStorageResolver(nil, nil)
	assert.ErrorIs(t, err, document.ErrNilOpener)

	files := memOpener{"docs/42.docx": "content"}
	r, err := document.NewStorageResolver(files, func(_ context.Context, id string) (string, error) {
		if id == "42" {
			return "docs/42.docx", nil
		}
		return "", nil
	})
	require.NoError(t, err)

	ctx := context.Background()
	path, err := r.FilePath(ctx, "42")
	require.NoError(t, err)
	assert.Equal(t, "docs/42.docx", path)

	rc, err := r.Open(ctx, path)
	require.NoError(t, err)
	body, err := io.ReadAll(rc)
	require.NoError(t, err)
	assert.Equal(t, "content", string(body))

	path, err = r.FilePath(ctx, "7")
	require.NoError(t, err)
	assert.Empty(t, path)

	identity, err := document.NewStorageResolver(files, nil)
	require.NoError(t, err)
	path, err = identity.FilePath(ctx, "docs/42.docx")
	require.NoError(t, err)
	assert.Equal(t, "docs/42.docx", path)
}

func TestDefaultCatalog(t *testing.T) {
	t.Parallel()

	c := document.DefaultCatalog()
	for ext, f := range c {
		assert.Equal(t, ext, f.Name)
		assert.True(t, f.IsViewable(), ext)
		assert.NotEmpty(t, f.MimeType(), ext)
	}

	f, err := document.FormatOf(c, "form.pdf")
	require.NoError(t, err)
	assert.True(t, f.IsFillable())
	assert.False(t, f.IsEditable())

	docType, err := document.DocType(c, "deck.pptx")
	require.NoError(t, err)
	assert.Equal(t, document.TypeSlide, docType)
}
