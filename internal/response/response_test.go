package response

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/breeew/datas-api/pkg/errors"
	"github.com/breeew/datas-api/pkg/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func serve(t *testing.T, lang string, h gin.HandlerFunc) (int, map[string]any) {
	t.Helper()
	e := gin.New()
	e.Use(ProvideResponseLocalizer(i18n.NewLocalizer("en", "ko")))
	e.GET("/", h)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if lang != "" {
		req.Header.Set("Accept-Language", lang)
	}
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return w.Code, body
}

func TestAPIErrorNotFound(t *testing.T) {
	code, body := serve(t, "", func(c *gin.Context) {
		APIError(c, errors.New("test", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound))
	})
	assert.Equal(t, http.StatusNotFound, code)
	assert.Equal(t, "Data not found", body["detail"])

	_, body = serve(t, "ko", func(c *gin.Context) {
		APIError(c, errors.New("test", i18n.ERROR_NOTFOUND, nil).Code(http.StatusNotFound))
	})
	assert.Equal(t, "데이터를 찾을 수 없습니다", body["detail"])
}

func TestAPIErrorPlain(t *testing.T) {
	code, body := serve(t, "", func(c *gin.Context) {
		APIError(c, fmt.Errorf("boom"))
	})
	assert.Equal(t, http.StatusInternalServerError, code)
	assert.Equal(t, "Internal server error", body["detail"])
}

func TestAPIErrorDetail(t *testing.T) {
	code, body := serve(t, "", func(c *gin.Context) {
		APIError(c, errors.New("test", i18n.ERROR_INVALIDARGUMENT, nil).
			Code(http.StatusUnprocessableEntity).Detail([]string{"sender"}))
	})
	assert.Equal(t, http.StatusUnprocessableEntity, code)
	assert.Equal(t, []any{"sender"}, body["detail"])
}

func TestAPIMessage(t *testing.T) {
	_, body := serve(t, "", func(c *gin.Context) {
		APIMessage(c, "Data created successfully", nil)
	})
	assert.Equal(t, map[string]any{"message": "Data created successfully"}, body)
}
