package main

import (
	"context"
	"net/http"
	"os"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Thilina-Shamika/property-stable-sub000/api/routes"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/auth"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/catalog"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/inquiries"
	"github.com/Thilina-Shamika/property-stable-sub000/internal/media"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/auth/session"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/config"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/db/models"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/logger"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/metrics"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/migrate"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/redis"
	"github.com/Thilina-Shamika/property-stable-sub000/pkg/storage/disk"
)

func main() {
	logg := logger.New(logger.Options{ServiceName: "api"})

	if err := godotenv.Load(); err != nil {
		logg.Warn(context.Background(), ".env file not found, relying on environment")
	}

	cfg, err := config.Load()
	if err != nil {
		logg.Error(context.Background(), "failed to load config", err)
		os.Exit(1)
	}

	logg = logger.New(logger.Options{
		ServiceName: "api",
		Level:       logger.ParseLevel(cfg.App.LogLevel),
		WarnStack:   cfg.App.LogWarnStack,
	})

	dbClient, err := db.New(context.Background(), cfg.DB, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap database", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing database", err)
		}
	}()

	if err := migrate.MaybeRunDev(context.Background(), cfg, logg, dbClient); err != nil {
		logg.Error(context.Background(), "failed to run dev migrations", err)
		os.Exit(1)
	}

	redisClient, err := redis.New(context.Background(), cfg.Redis)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap redis", err)
		os.Exit(1)
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			logg.Error(context.Background(), "error closing redis", err)
		}
	}()

	store, err := disk.NewStore(context.Background(), cfg.Uploads, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to bootstrap media store", err)
		os.Exit(1)
	}

	sessionManager, err := session.NewManager(redisClient, cfg.JWT)
	if err != nil {
		logg.Error(context.Background(), "failed to create session manager", err)
		os.Exit(1)
	}

	authService, err := auth.NewService(auth.ServiceParams{
		UserRepo:       auth.NewUserRepository(dbClient.DB()),
		SessionManager: sessionManager,
		JWTConfig:      cfg.JWT,
	})
	if err != nil {
		logg.Error(context.Background(), "failed to create auth service", err)
		os.Exit(1)
	}

	lifecycle, err := media.NewLifecycle(store, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create media lifecycle", err)
		os.Exit(1)
	}

	buyService, err := catalog.NewService(catalog.BuySchema(), catalog.NewRepo[models.BuyListing](dbClient.DB()), lifecycle, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create buy catalog service", err)
		os.Exit(1)
	}
	commercialService, err := catalog.NewService(catalog.CommercialSchema(), catalog.NewRepo[models.CommercialListing](dbClient.DB()), lifecycle, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create commercial catalog service", err)
		os.Exit(1)
	}
	offPlanService, err := catalog.NewService(catalog.OffPlanSchema(), catalog.NewRepo[models.OffPlanListing](dbClient.DB()), lifecycle, logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create offplan catalog service", err)
		os.Exit(1)
	}
	catalogs := map[string]catalog.Service{
		"buy":        buyService,
		"commercial": commercialService,
		"offplan":    offPlanService,
	}

	inquiryService, err := inquiries.NewService(inquiries.NewRepository(dbClient.DB()), logg)
	if err != nil {
		logg.Error(context.Background(), "failed to create inquiry service", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	httpMetrics := metrics.NewHTTPMetrics(registry)

	port := os.Getenv("PORT")
	if port == "" {
		port = cfg.App.Port
	}
	addr := ":" + port
	ctx := logg.WithFields(context.Background(), map[string]any{
		"env":  cfg.App.Env,
		"addr": addr,
	})
	logg.Info(ctx, "starting api server")

	server := &http.Server{
		Addr: addr,
		Handler: routes.NewRouter(routes.Params{
			Config:         cfg,
			Logger:         logg,
			Metrics:        httpMetrics,
			Registry:       registry,
			DB:             dbClient,
			Redis:          redisClient,
			Store:          store,
			Sessions:       sessionManager,
			AuthService:    authService,
			InquiryService: inquiryService,
			Catalogs:       catalogs,
		}),
	}

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logg.Error(ctx, "api server stopped unexpectedly", err)
		os.Exit(1)
	}
}
