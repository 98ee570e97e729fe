package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	httpadapter "github.com/suchimauz/medcenter-scheduling-service/internal/adapters/in/http"
	"github.com/suchimauz/medcenter-scheduling-service/internal/adapters/out/cache"
	"github.com/suchimauz/medcenter-scheduling-service/internal/adapters/out/logger"
	"github.com/suchimauz/medcenter-scheduling-service/internal/adapters/out/rabbitmq"
	"github.com/suchimauz/medcenter-scheduling-service/internal/config"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/ports/out"
	"github.com/suchimauz/medcenter-scheduling-service/internal/core/services/scheduling_service"
)

func main() {
	// Загрузка конфигурации
	cfg, err := config.NewConfig()
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализация логгера с таймзоной
	mainLogger, err := logger.NewConsoleLogger(cfg.App.Timezone)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	log := mainLogger.WithModule("Main")

	log.Info("app.starting", out.LogFields{
		"version":         cfg.App.Version,
		"env":             cfg.App.Env,
		"timezone":        cfg.App.Timezone,
		"rabbitmqEnabled": cfg.RabbitMQ.Enabled,
		"cacheEnabled":    cfg.Cache.Enabled,
	})

	// Настройка Gin в зависимости от окружения
	if cfg.IsNotLocal() {
		gin.SetMode(gin.ReleaseMode)
	}

	// Инициализация адаптеров
	var cacheAdapter out.CachePort
	if cfg.Cache.Enabled {
		adapter, err := cache.NewCacheAdapter(cfg, log.WithModule("CacheAdapter"))
		if err != nil {
			log.Error("app.cache.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		cacheAdapter = adapter
	}

	var eventPublisher out.EventPort
	if cfg.RabbitMQ.Enabled {
		publisher, err := rabbitmq.NewEventPublisher(cfg, log.WithModule("EventPublisher"))
		if err != nil {
			log.Error("app.rabbitmq.init_failed", out.LogFields{
				"error": err.Error(),
			})
			os.Exit(1)
		}
		eventPublisher = publisher

		defer func() {
			if err := publisher.Stop(); err != nil {
				log.Error("app.rabbitmq.stop_failed", out.LogFields{
					"error": err.Error(),
				})
			}
		}()
	}

	// Инициализация сервиса
	schedulingService := scheduling_service.NewSchedulingService(
		cfg,
		cacheAdapter,
		eventPublisher,
		log.WithModule("SchedulingService"),
	)

	// Настройка HTTP сервера
	router := gin.Default()
	controller := httpadapter.NewSchedulingController(schedulingService, cfg)
	controller.RegisterRoutes(router)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		log.Info("app.http.starting", out.LogFields{
			"host": cfg.HTTP.Host,
			"port": cfg.HTTP.Port,
		})

		if err := router.Run(cfg.HTTP.Host + ":" + cfg.HTTP.Port); err != nil {
			log.Error("app.http.failed", out.LogFields{
				"error": err.Error(),
			})
			sigChan <- syscall.SIGTERM
		}
	}()

	sig := <-sigChan
	log.Info("app.shutdown.initiated", out.LogFields{
		"signal": sig.String(),
	})
}
