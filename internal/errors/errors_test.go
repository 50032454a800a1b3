package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"testing"

	"orchidbreed/domain/core"

	"github.com/stretchr/testify/assert"
)

func TestWrapKeepsDomainCodes(t *testing.T) {
	err := Wrap(core.NewNotFoundError("specimen", "abc"), "assess pair")
	assert.Equal(t, CodeNotFound, GetCode(err))
	assert.True(t, core.IsNotFoundError(err))
	assert.Equal(t, http.StatusNotFound, HTTPStatus(err))

	err = Wrapf(core.NewInsufficientInputError(1, 2), "program of %d", 1)
	assert.Equal(t, CodeInsufficientInput, GetCode(err))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(err))

	assert.Equal(t, CodeInternalError, GetCode(Wrap(stderrors.New("boom"), "ctx")))
	assert.Nil(t, Wrap(nil, "ignored"))
}

func TestFromDomain(t *testing.T) {
	appErr := FromDomain(fmt.Errorf("lookup: %w", core.NewProgramTooLargeError(300, 200)))
	assert.Equal(t, CodeProgramTooLarge, appErr.Code)
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(appErr))

	invalid := InvalidInput("bad id")
	assert.Same(t, invalid, FromDomain(invalid))
	assert.Nil(t, FromDomain(nil))
}

func TestHTTPStatusDefaults(t *testing.T) {
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(stderrors.New("boom")))
	assert.Equal(t, http.StatusBadGateway, HTTPStatus(core.NewEnrichmentError(stderrors.New("timeout"))))
	assert.Equal(t, CodeExternalService, GetCode(ExternalServiceError("openai", stderrors.New("503"))))
}
