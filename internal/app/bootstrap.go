package app

import (
	"fmt"
	"log"
	"strings"

	"skill-bridge/internal/config"
	"skill-bridge/internal/delivery/http/handler"
	"skill-bridge/internal/delivery/http/middleware"
	"skill-bridge/internal/delivery/http/routes"
	"skill-bridge/internal/infrastructure/persistence/postgres"
	ucauth "skill-bridge/internal/usecase/auth"
	ucrec "skill-bridge/internal/usecase/recommendation"
	"skill-bridge/internal/ws"

	"github.com/gofiber/fiber/v3"
)

type App struct {
	Fiber *fiber.App
}

func Bootstrap(cfg config.Config) (*App, func() error, error) {
	logger := log.Default()

	container, err := NewContainer(cfg, logger)
	if err != nil {
		return nil, nil, err
	}

	ws.SetDefaultHub(container.Hub)
	go container.Hub.Run()

	accountRepo := postgres.NewAccountRepository(container.DB)
	recRepo := postgres.NewRecommendationRepository(container.DB)

	authUC := ucauth.NewService(accountRepo)
	recUC := ucrec.NewService(recRepo, recRepo, container.Cache, container.Cache.DefaultTTL())

	registry := &routes.Registry{
		Health:          handler.NewHealthHandler(),
		Auth:            handler.NewAuthHandler(authUC),
		Recommendations: handler.NewRecommendationHandler(recUC),
		Events:          ws.NewHandler(container.Hub, logger),
	}

	f := fiber.New(fiber.Config{AppName: cfg.App.AppName})
	f.Use(middleware.NewErrorMiddleware(logger).Middleware())
	f.Use(middleware.NewAccessLogMiddleware(logger).Middleware())
	registry.Register(f)

	return &App{Fiber: f}, container.Close, nil
}

func ListenAddr(port string) (string, error) {
	p := strings.TrimSpace(port)
	if p == "" {
		return "", fmt.Errorf("empty HTTP port")
	}
	if strings.HasPrefix(p, ":") {
		return p, nil
	}
	return ":" + p, nil
}
