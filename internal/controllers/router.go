package controllers

import (
	"github.com/fsdevblog/smartlinks/internal/controllers/middlewares"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"
)

const DefaultAPIPrefix = "/api"

type RouterParams struct {
	SmartlinkStore    SmartlinkStore
	ConnectionChecker ConnectionChecker
	Logger            *logrus.Logger
	// APIPrefix префикс маршрутов API. Пустая строка заменяется на DefaultAPIPrefix.
	APIPrefix string
}

func SetupRouter(params RouterParams) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestIDMiddleware())
	r.Use(middlewares.LoggerMiddleware(params.Logger))
	r.Use(middlewares.MetricsMiddleware())

	// promhttp сам сжимает ответ, поэтому /metrics вне gzip middleware.
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	gz := r.Group("/", middlewares.GzipMiddleware())

	pingController := NewPingController(params.ConnectionChecker)
	gz.GET("/ping", pingController.Ping)

	prefix := params.APIPrefix
	if prefix == "" {
		prefix = DefaultAPIPrefix
	}
	smartlinks := NewSmartlinksController(params.SmartlinkStore)

	api := gz.Group(prefix)
	api.POST("/smartlinks", smartlinks.Create)
	api.GET("/smartlinks", smartlinks.List)
	api.GET("/smartlinks/:id", smartlinks.Get)
	api.PUT("/smartlinks/:id", smartlinks.Update)
	api.DELETE("/smartlinks/:id", smartlinks.Delete)
	api.POST("/smartlinks/:id/click", smartlinks.TrackClick)
	api.GET("/smartlinks/:id/landing", smartlinks.Landing)
	api.POST("/smartlinks/:id/platforms/:index/click", smartlinks.TrackPlatformClick)

	return r
}
