package main

import (
	"context"
	"fmt"
	"net/http"
	"os"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/abenov/authweb/internal/auth/service"
	"github.com/abenov/authweb/internal/common/clock"
	"github.com/abenov/authweb/internal/common/config"
	"github.com/abenov/authweb/internal/common/crypto"
	"github.com/abenov/authweb/internal/common/db"
	commonhttp "github.com/abenov/authweb/internal/common/http"
	"github.com/abenov/authweb/internal/common/logger"
	srv "github.com/abenov/authweb/internal/common/server"
	userrepo "github.com/abenov/authweb/internal/user/repository"
	"github.com/abenov/authweb/internal/web"
)

func main() {
	log, err := logger.New(os.Getenv("LOG_DIR"), "web", os.Getenv("LOG_LEVEL"))
	if err != nil {
		os.Stderr.WriteString(fmt.Sprintf("failed to initialize logger: %v\n", err))
		os.Exit(1)
	}

	cfg, err := config.LoadWebConfig()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if err := db.RunMigrations(context.Background(), cfg.DatabaseURL); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	pool := db.NewPool(log, cfg.DatabaseURL)
	defer pool.Close()

	userRepo := userrepo.NewPgRepository(pool)
	hasher := crypto.NewBcryptHasher()
	idGenerator := crypto.NewUUIDGenerator()
	authService := service.NewAuthService(userRepo, hasher, idGenerator, clock.NewRealClock(), log)

	sessions := web.NewSessions(cfg.SessionSecret, cfg.CookieSecure)
	templates, err := web.NewTemplates(log)
	if err != nil {
		log.Fatalf("failed to load templates: %v", err)
	}

	routes := web.DefaultRoutes()
	handler := web.NewHandler(authService, sessions, templates, routes, cfg.RequestTimeout, log)

	mux := http.NewServeMux()
	mux.Handle("/", handler)
	mux.Handle(routes.Metrics, promhttp.Handler())

	finalHandler := commonhttp.BuildBaseHandler(log, mux)

	server := srv.NewServer(srv.DefaultServerConfig(cfg.HTTPPort), finalHandler)
	srv.StartWithGracefulShutdown(server, log, nil)
}
