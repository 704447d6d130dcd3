// @title         folio API
// @version       1.0
// @description   Генерация резюме из данных портфолио: HTML, Markdown и текст с отчётами ATS, качества и ключевых слов.
// @BasePath      /
// @schemes       http
// @host          localhost:8080
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Токен авторизации. Поддерживаются форматы: "Bearer <JWT>" или "<JWT>".
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/artem13815/folio/docs"

	// внутренние пакеты
	apihttp "github.com/artem13815/folio/api/http"
	"github.com/artem13815/folio/api/http/handlers"
	"github.com/artem13815/folio/pkg/auth"
	"github.com/artem13815/folio/pkg/config"
	"github.com/artem13815/folio/pkg/generator"
	"github.com/artem13815/folio/pkg/health"
	healthpg "github.com/artem13815/folio/pkg/health/checkers"
	"github.com/artem13815/folio/pkg/logger"
	pgrepo "github.com/artem13815/folio/pkg/repository/postgres"
	"github.com/artem13815/folio/pkg/resume"
	"github.com/artem13815/folio/pkg/security/jwt"
	"github.com/artem13815/folio/pkg/storage/postgres"
)

func main() {
	// Конфигурация из env/.env
	cfg := config.Load()

	lg, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		log.Fatalf("init logger: %v", err)
	}
	defer func() { _ = lg.Sync() }()

	classifier, err := resume.LoadAliases(cfg.SkillCategoryAliases)
	if err != nil {
		lg.Fatal("load skill category aliases", zap.String("path", cfg.SkillCategoryAliases), zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	h := apihttp.Handlers{
		Resume: handlers.NewResumeHandler(lg),
	}
	var (
		source   resume.Source
		checkers []health.Checker
	)

	// Без DATABASE_URL сервер работает только с customData.
	if cfg.DatabaseURL != "" {
		pool, err := postgres.Connect(ctx, cfg.DatabaseURL, postgres.Options{
			MaxConns:       int32(cfg.DBMaxConns),
			ConnectTimeout: cfg.RequestTimeout(),
		})
		if err != nil {
			lg.Fatal("postgres connect", zap.Error(err))
		}
		defer pool.Close()

		userRepo, err := pgrepo.NewUserRepository(ctx, pool)
		if err != nil {
			lg.Fatal("init user repo", zap.Error(err))
		}
		profileRepo, err := pgrepo.NewProfileRepository(ctx, pool)
		if err != nil {
			lg.Fatal("init profile repo", zap.Error(err))
		}
		source = profileRepo
		checkers = append(checkers, healthpg.NewPostgresChecker(pool, time.Second))

		// Генератор токенов
		jwtGen := jwt.NewGenerator(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTTTL())
		h.Auth = handlers.NewAuthHandler(auth.NewAuthService(userRepo, jwtGen, cfg.AdminEmail))
		h.Admin = handlers.NewAdminHandler(profileRepo, lg)
		h.AuthMW = jwt.NewAuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer)
		h.AdminMW = jwt.RequireAdmin()
	} else {
		lg.Warn("DATABASE_URL is empty: stored resume data, auth and admin routes are disabled")
	}

	h.Health = handlers.NewHealthHandler(health.NewService(checkers...))
	h.Generate = handlers.NewGenerateHandler(
		generator.NewService(source, classifier, lg),
		lg,
		cfg.RequestTimeout(),
	)

	app := apihttp.NewApp(cfg.RequestTimeout(), lg)
	apihttp.Register(app, h, lg)

	go func() {
		<-ctx.Done()
		lg.Info("shutting down")
		if err := app.Shutdown(); err != nil {
			lg.Error("shutdown", zap.Error(err))
		}
	}()

	// Запуск сервера
	lg.Info("HTTP server listening", zap.String("port", cfg.Port))
	if err := app.Listen(":" + cfg.Port); err != nil {
		lg.Fatal("server stopped", zap.Error(err))
	}
}
