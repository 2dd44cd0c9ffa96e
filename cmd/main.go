package main

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/robfig/cron/v3"
	"github.com/rs/cors"
	_ "time/tzdata"

	"github.com/poofware/revenue-service/internal/app"
	"github.com/poofware/revenue-service/internal/config"
	"github.com/poofware/revenue-service/internal/constants"
	"github.com/poofware/revenue-service/internal/controllers"
	"github.com/poofware/revenue-service/internal/middleware"
	"github.com/poofware/revenue-service/internal/repositories"
	"github.com/poofware/revenue-service/internal/routes"
	"github.com/poofware/revenue-service/internal/services"
	"github.com/poofware/revenue-service/internal/utils"
)

func main() {
	utils.InitLogger(config.AppName)
	cfg := config.LoadConfig()

	application := app.NewApp(cfg)
	defer application.Close()

	// Repositories
	propRepo := repositories.NewPropertyRepository(application.Store)
	resvRepo := repositories.NewReservationRepository(application.Store)

	if cfg.SeedTestData {
		if err := app.SeedAllTestData(context.Background(), propRepo, resvRepo); err != nil {
			utils.Logger.WithError(err).Warn("Failed to seed test data; continuing without it")
		}
	}

	// Services
	fallbackService := services.NewFallbackService()
	revenueService := services.NewRevenueService(propRepo, resvRepo, fallbackService)

	// Controllers
	healthController := controllers.NewHealthController(application)
	dashboardController := controllers.NewDashboardController(revenueService)

	// Router setup
	router := mux.NewRouter()

	// Public Routes
	router.HandleFunc(routes.Health, healthController.HealthCheckHandler).Methods(http.MethodGet)

	// Secured routes for tenant dashboards
	secured := router.NewRoute().Subrouter()
	secured.Use(middleware.AuthMiddleware(cfg.RSAPublicKey))
	secured.HandleFunc(routes.DashboardSummary, dashboardController.GetDashboardSummaryHandler).Methods(http.MethodGet)
	secured.HandleFunc(routes.DashboardProperties, dashboardController.GetDashboardPropertiesHandler).Methods(http.MethodGet)

	// Cron job setup: while degraded, keep retrying store initialization so
	// requests stop serving fallback data as soon as the DB is back.
	c := cron.New(cron.WithLocation(time.UTC))
	_, err := c.AddFunc(constants.StoreRetryCronSpec, func() {
		if application.Store.Ready() {
			return
		}
		ctx, cancel := context.WithTimeout(context.Background(), constants.StoreRetryTimeout)
		defer cancel()
		if err := application.Store.EnsureReady(ctx); err != nil {
			utils.Logger.WithError(err).Debug("Store still unavailable")
			return
		}
		utils.Logger.Info("Store connection restored")
	})
	if err != nil {
		utils.Logger.WithError(err).Fatal("Failed to schedule store retry cron")
	}
	c.Start()

	allowedOrigins := []string{constants.CORSAllowedOriginLocalhost}
	if cfg.AppUrl != "" {
		allowedOrigins = append(allowedOrigins, cfg.AppUrl)
	}

	co := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   []string{"GET", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	utils.Logger.Infof("Starting %s on port: %s", cfg.AppName, cfg.AppPort)
	if err := http.ListenAndServe(":"+cfg.AppPort, co.Handler(router)); err != nil {
		utils.Logger.Fatal("revenue-service failed to start:", err)
	}
}
