package errcode_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/docsdk/pkg/errcode"
)

func TestCommandError(t *testing.T) {
	t.Parallel()

	t.Run("success code yields no error", func(t *testing.T) {
		assert.NoError(t, errcode.CommandError(0))
	})

	t.Run("known code", func(t *testing.T) {
		err := errcode.CommandError(1)
		require.Error(t, err)
		assert.Equal(t, "Document key is missing or no document with such key could be found", err.Error())
		assert.ErrorIs(t, err, errcode.ErrDocService)
	})

	t.Run("unknown code", func(t *testing.T) {
		err := errcode.CommandError(42)
		require.Error(t, err)
		assert.Equal(t, "ErrorCode = 42", err.Error())

		var se *errcode.ServiceError
		require.True(t, errors.As(err, &se))
		assert.Equal(t, 42, se.Code)
	})
}

func TestConvertError(t *testing.T) {
	t.Parallel()

	cases := map[int]string{
		-1: "Unknown error",
		-2: "Timeout conversion error",
		-3: "Conversion error",
		-4: "Error while downloading the document file to be converted",
		-5: "Incorrect password",
		-6: "Error while accessing the conversion result database",
		-7: "Error document request",
		-8: "Invalid token",
		-9: "ErrorCode = -9",
		3:  "ErrorCode = 3",
	}
	for code, want := range cases {
		t.Run(fmt.Sprint(code), func(t *testing.T) {
			assert.Equal(t, want, errcode.ConvertError(code).Error())
		})
	}
}

func TestCommonErrorMessages(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "There is no document server URL in the application configuration", errcode.CommonNoDocumentServerURL.Message())
	assert.Equal(t, "Mixed Active Content is not allowed. HTTPS address for ONLYOFFICE Docs is required", errcode.CommonMixedContent.Message())
	assert.Equal(t, "Not supported version", errcode.CommonNotSupportedVersion.Message())
	assert.True(t, errcode.CommonNoJwtPrefix.Known())
	assert.False(t, errcode.CommonError(999).Known())
	assert.Equal(t, "ErrorCode = 999", errcode.CommonError(999).Message())
}

func TestTaxonomy(t *testing.T) {
	t.Parallel()

	assert.ErrorIs(t, errcode.ErrMissingToken, errcode.ErrAuth)
	assert.ErrorIs(t, errcode.ErrInvalidToken, errcode.ErrAuth)
	assert.ErrorIs(t, errcode.ErrUnknownStatus, errcode.ErrProtocol)
	assert.NotErrorIs(t, errcode.ErrMissingToken, errcode.ErrInvalidToken)

	cause := errors.New("dial tcp: refused")
	err := errcode.Wrap(errcode.ErrTransport, errcode.CommonBadHealthcheckStatus, cause)
	assert.ErrorIs(t, err, errcode.ErrTransport)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "Bad healthcheck status", errcode.Message(fmt.Errorf("wrapped: %w", err)))

	cfg := errcode.Config(errcode.CommonNoJwtHeader)
	assert.ErrorIs(t, cfg, errcode.ErrConfig)
	assert.Equal(t, "There is no JWT header in the application configuration", cfg.Error())
}
