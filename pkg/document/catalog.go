package document

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

// Document types reported by the catalog.
const (
	TypeWord  = "word"
	TypeCell  = "cell"
	TypeSlide = "slide"
	TypePDF   = "pdf"
)

// Format describes one file format known to the document service.
type Format struct {
	Name    string   `json:"name"`
	Type    string   `json:"type"`
	Actions []string `json:"actions"`
	Convert []string `json:"convert"`
	Mimes   []string `json:"mime"`
}

func (f Format) IsViewable() bool        { return slices.Contains(f.Actions, "view") }
func (f Format) IsEditable() bool        { return slices.Contains(f.Actions, "edit") }
func (f Format) IsAutoConvertable() bool { return slices.Contains(f.Actions, "auto-convert") }
func (f Format) IsFillable() bool        { return slices.Contains(f.Actions, "fill") }

// MimeType returns the primary mime type, or "" when none is known.
func (f Format) MimeType() string {
	if len(f.Mimes) == 0 {
		return ""
	}
	return f.Mimes[0]
}

// Catalog looks formats up by extension (without the dot).
type Catalog interface {
	Lookup(ext string) (Format, bool)
}

// MapCatalog is a Catalog backed by a map keyed by extension.
type MapCatalog map[string]Format

// Lookup finds ext by key first and by format name second.
func (c MapCatalog) Lookup(ext string) (Format, bool) {
	if f, ok := c[ext]; ok {
		return f, true
	}
	for _, f := range c {
		if f.Name == ext {
			return f, true
		}
	}
	return Format{}, false
}

// FormatOf returns the catalog entry for the extension of path.
func FormatOf(c Catalog, path string) (Format, error) {
	f, ok := c.Lookup(Ext(path))
	if !ok {
		return Format{}, ErrUnknownExtension
	}
	return f, nil
}

// DocType returns the document type (word, cell, slide, pdf) of path.
func DocType(c Catalog, path string) (string, error) {
	f, err := FormatOf(c, path)
	if err != nil {
		return "", err
	}
	return f.Type, nil
}

// LoadCatalog reads a JSON array of formats (the document-formats asset)
// into a MapCatalog keyed by format name. An empty or missing asset fails
// with CommonEmptyFormatsAsset.
func LoadCatalog(r io.Reader) (MapCatalog, error) {
	if r == nil {
		return nil, errcode.Config(errcode.CommonEmptyFormatsAsset)
	}
	var formats []Format
	if err := json.NewDecoder(r).Decode(&formats); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, errcode.Config(errcode.CommonEmptyFormatsAsset)
		}
		return nil, fmt.Errorf("document: decode formats: %w", err)
	}
	if len(formats) == 0 {
		return nil, errcode.Config(errcode.CommonEmptyFormatsAsset)
	}

	c := make(MapCatalog, len(formats))
	for _, f := range formats {
		if f.Name != "" {
			c[f.Name] = f
		}
	}
	return c, nil
}
