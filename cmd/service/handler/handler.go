package handler

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/breeew/datas-api/internal/core"
	"github.com/breeew/datas-api/internal/response"
	"github.com/breeew/datas-api/pkg/errors"
	"github.com/breeew/datas-api/pkg/i18n"
)

type HttpSrv struct {
	Core   *core.Core
	Engine *gin.Engine
}

type HealthResponse struct {
	Status string `json:"status"`
}

func (s *HttpSrv) Health(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c, time.Second*3)
	defer cancel()

	if err := s.Core.Store().Ping(ctx); err != nil {
		response.APIError(c, errors.New("HttpSrv.Health.Store.Ping", i18n.ERROR_UNAVAILABLE, err).Code(http.StatusServiceUnavailable))
		return
	}
	response.APISuccess(c, HealthResponse{Status: "ok"})
}
