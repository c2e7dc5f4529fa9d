package document

import (
	"errors"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

var (
	ErrUnknownExtension = errcode.New(errcode.ErrNotFound, errcode.CommonUnknownExt)
	ErrFileNotFound     = errcode.New(errcode.ErrNotFound, errcode.CommonFileNotFound)
	ErrNilOpener        = errors.New("document: opener is required")
)
