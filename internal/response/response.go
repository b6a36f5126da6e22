package response

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/breeew/datas-api/pkg/errors"
	"github.com/breeew/datas-api/pkg/i18n"
)

const localizerKey = "__datas.localizer"

// ProvideResponseLocalizer makes l available to APIError for the rest of the chain.
func ProvideResponseLocalizer(l *i18n.Localizer) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set(localizerKey, l)
	}
}

func localize(c *gin.Context, id string) string {
	v, _ := c.Get(localizerKey)
	l, ok := v.(*i18n.Localizer)
	if !ok {
		return id
	}
	return l.Get(c.GetHeader("Accept-Language"), id)
}

type Message struct {
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

type ErrorBody struct {
	Detail any `json:"detail"`
}

// APISuccess writes data as the 200 response body.
func APISuccess(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// APIMessage writes a {"message": ...} acknowledgment, with data attached when non-nil.
func APIMessage(c *gin.Context, msg string, data any) {
	c.JSON(http.StatusOK, Message{Message: msg, Data: data})
}

// APIError aborts the chain and renders err. Customized errors keep their
// http code and carry either their detail or their localized message;
// anything else is a 500.
func APIError(c *gin.Context, err error) {
	ce, ok := errors.As(err)
	if !ok {
		ce = errors.New("response.APIError", i18n.ERROR_INTERNAL, err)
	}

	code := ce.HttpCode()
	switch {
	case code >= http.StatusInternalServerError:
		slog.Error("request failed", slog.String("path", c.Request.URL.Path), slog.String("error", ce.Error()))
	default:
		slog.Debug("request rejected", slog.String("path", c.Request.URL.Path), slog.String("error", ce.Error()))
	}

	var detail any = localize(c, ce.Message())
	if d := ce.Details(); d != nil {
		detail = d
	}
	c.AbortWithStatusJSON(code, ErrorBody{Detail: detail})
}
