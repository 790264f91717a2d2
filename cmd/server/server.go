package server

import (
	"context"
	"fmt"
	"log/slog"

	"campus-activity-system/config"
	"campus-activity-system/internal/global/cache"
	"campus-activity-system/internal/global/database"
	"campus-activity-system/internal/global/logger"
	"campus-activity-system/internal/global/middleware"
	internalOtel "campus-activity-system/internal/global/otel"
	internalSentry "campus-activity-system/internal/global/sentry"
	"campus-activity-system/internal/global/webhook"
	"campus-activity-system/internal/module"
	"campus-activity-system/tools"

	"github.com/gin-gonic/gin"
)

var log *slog.Logger

func Init() {
	config.Init()

	if err := internalSentry.Init(); err != nil {
		fmt.Printf("Sentry 初始化失败: %v\n", err)
	}

	log = logger.New("Server")

	database.Init()
	cache.Init()
	webhook.Init()

	if config.Get().OTel.Enable {
		log.Info("OTel Enabled")
		internalOtel.Init()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Module: %s", m.GetName()))
		m.Init()
	}
}

func Run() {
	gin.SetMode(string(config.Get().Mode))
	r := gin.New()

	switch config.Get().Mode {
	case config.ModeRelease:
		r.Use(middleware.Logger(logger.Get()))
	case config.ModeDebug:
		r.Use(gin.Logger())
	}
	r.Use(middleware.Cors())
	r.Use(middleware.Recovery())
	r.Use(middleware.Sentry())

	if config.Get().OTel.Enable {
		r.Use(middleware.Trace())
		defer func() {
			if err := internalOtel.Shutdown(context.Background()); err != nil {
				log.Error("Failed to shutdown TracerProvider", "error", err)
			}
		}()
	}

	for _, m := range module.Modules {
		log.Info(fmt.Sprintf("Init Router: %s", m.GetName()))
		m.InitRouter(r.Group("/" + config.Get().Prefix))
	}
	err := r.Run(config.Get().Host + ":" + config.Get().Port)
	tools.PanicOnErr(err)
}
