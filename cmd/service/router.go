package service

import (
	"log/slog"

	"github.com/gin-gonic/gin"

	"github.com/breeew/datas-api/cmd/service/handler"
	"github.com/breeew/datas-api/cmd/service/middleware"
	"github.com/breeew/datas-api/internal/core"
)

func GetIPLimitBuilder(core *core.Core) func(key string) gin.HandlerFunc {
	return func(key string) gin.HandlerFunc {
		perMinute := core.Cfg().RateLimit.PerMinute
		if perMinute <= 0 {
			return func(c *gin.Context) {}
		}
		return middleware.UseLimit(core, key, perMinute, func(c *gin.Context) string {
			return c.ClientIP()
		})
	}
}

func setupHttpRouter(s *handler.HttpSrv) {
	ipLimit := GetIPLimitBuilder(s.Core)

	s.Engine.Use(middleware.RequestLogger(slog.Default()), middleware.Metrics(s.Core))
	s.Engine.Use(middleware.I18n(), middleware.Cors)

	s.Engine.GET("/healthz", s.Health)
	if cfg := s.Core.Cfg().Metrics; cfg.Enabled {
		s.Engine.GET(cfg.Path, gin.WrapH(s.Core.Metrics().Handler()))
	}

	api := s.Engine.Group("")
	api.Use(ipLimit("datas"))
	{
		api.GET("/datas", s.ListDatas)
		api.GET("/data/:id", s.GetData)
		api.POST("/data", s.CreateData)
		api.PUT("/data/:id", s.UpdateData)
		api.DELETE("/data/:id", s.DeleteData)
	}
}
