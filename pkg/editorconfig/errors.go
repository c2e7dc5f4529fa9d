package editorconfig

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

var (
	ErrNilSource            = errors.New("editorconfig: document source is required")
	ErrNilCatalog           = errors.New("editorconfig: format catalog is required")
	ErrInvalidMobilePattern = fmt.Errorf("editorconfig: invalid mobile user agent pattern: %w", errcode.ErrConfig)
	ErrNotViewable          = fmt.Errorf("editorconfig: format cannot be opened: %w", errcode.ErrNotFound)
)
