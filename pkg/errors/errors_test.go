package errors_test

import (
	"database/sql"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/breeew/datas-api/pkg/errors"
	"github.com/breeew/datas-api/pkg/i18n"
)

func TestNewDefaultsToInternal(t *testing.T) {
	err := errors.New("DataLogic.Get", i18n.ERROR_INTERNAL, sql.ErrConnDone)

	assert.Equal(t, http.StatusInternalServerError, err.HttpCode())
	assert.Equal(t, i18n.ERROR_INTERNAL, err.Message())
	assert.ErrorIs(t, err, sql.ErrConnDone)
}

func TestTraceChain(t *testing.T) {
	inner := errors.New("DataStore.Get", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound)
	outer := errors.Trace("handler.GetData", inner)

	assert.Equal(t, "handler.GetData -> DataStore.Get", outer.TraceString())
	assert.Equal(t, http.StatusNotFound, outer.HttpCode())
	assert.True(t, errors.Is(outer, http.StatusNotFound))
}

func TestTraceWrapsPlainError(t *testing.T) {
	err := errors.Trace("core.Ping", fmt.Errorf("dial tcp: refused"))

	assert.Equal(t, http.StatusInternalServerError, err.HttpCode())
	assert.Contains(t, err.Error(), "dial tcp: refused")
	assert.Nil(t, errors.Trace("x", nil))
}

func TestAsThroughWrapping(t *testing.T) {
	base := errors.New("a", i18n.ERROR_INVALIDARGUMENT, nil).Code(http.StatusUnprocessableEntity).Detail([]string{"x"})
	wrapped := fmt.Errorf("wrap: %w", base)

	ce, ok := errors.As(wrapped)
	assert.True(t, ok)
	assert.Equal(t, []string{"x"}, ce.Details())
}
