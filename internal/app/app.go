package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/WesleyJeean/Animeflix/internal/config"
	"github.com/WesleyJeean/Animeflix/internal/handler"
	"github.com/WesleyJeean/Animeflix/internal/repository"
	"github.com/WesleyJeean/Animeflix/internal/service"
	"github.com/WesleyJeean/Animeflix/pkg/observability"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.uber.org/zap"
)

const shutdownTimeout = 5 * time.Second

type App struct {
	infra  Infrastructure
	config *config.Config
	router *gin.Engine
	server *http.Server
}

func NewApp(infra Infrastructure, cfg *config.Config) *App {
	repos := repository.NewRepositories(infra.Postgres())

	rateLimiter := service.NewRateLimiter(infra.Redis())
	healthChecker := NewHealthChecker(infra)

	exchanger := service.NewProviderClient(
		cfg.Auth.ProviderURL,
		cfg.Auth.ProviderTimeout.Duration,
		infra.Logger(),
	)

	authService := service.NewAuthService(
		repos.User,
		repos.Session,
		exchanger,
		cfg.Security.BCryptCost,
		cfg.Auth.SessionTTL.Duration,
	)
	profileService := service.NewProfileService(repos.Profile)
	catalogService := service.NewCatalogService(repos.Anime, repos.Episode)
	libraryService := service.NewLibraryService(
		profileService,
		repos.WatchHistory,
		repos.MyList,
		repos.Rating,
		repos.Review,
	)

	authHandler := handler.NewAuthHandler(authService)
	profileHandler := handler.NewProfileHandler(profileService)
	catalogHandler := handler.NewCatalogHandler(catalogService)
	libraryHandler := handler.NewLibraryHandler(libraryService)

	router := gin.Default()
	router.Use(otelgin.Middleware("animeflix"))
	router.Use(handler.LoggerMiddleware(infra.Logger()))
	router.Use(handler.CORSMiddleware(cfg.CORS.AllowedOrigins, cfg.CORS.AllowedMethods, cfg.CORS.AllowedHeaders))

	setupRoutes(router, cfg, authHandler, profileHandler, catalogHandler, libraryHandler, authService, rateLimiter, healthChecker, infra.MetricsHandler())

	srv := &http.Server{
		Addr:         fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port),
		Handler:      router,
		ReadTimeout:  cfg.Server.ReadTimeout.Duration,
		WriteTimeout: cfg.Server.WriteTimeout.Duration,
	}

	return &App{
		infra:  infra,
		config: cfg,
		router: router,
		server: srv,
	}
}

func (a *App) Router() *gin.Engine {
	return a.router
}

func setupRoutes(
	router *gin.Engine,
	cfg *config.Config,
	authHandler *handler.AuthHandler,
	profileHandler *handler.ProfileHandler,
	catalogHandler *handler.CatalogHandler,
	libraryHandler *handler.LibraryHandler,
	authService service.AuthService,
	rateLimiter *service.RateLimiter,
	healthChecker *HealthChecker,
	metricsHandler http.Handler,
) {
	router.GET("/metrics", observability.PrometheusHandler(metricsHandler))
	router.GET("/health", healthChecker.Handler)

	api := router.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup",
				handler.RateLimitMiddleware(rateLimiter, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration, handler.IPBasedKey),
				authHandler.Signup,
			)
			auth.POST("/login",
				handler.RateLimitMiddleware(rateLimiter, cfg.Security.RateLimitRequests, cfg.Security.RateLimitWindow.Duration, handler.IPBasedKey),
				authHandler.Login,
			)
			auth.POST("/session", authHandler.ExchangeSession)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", handler.SessionMiddleware(authService), authHandler.Me)
		}

		profiles := api.Group("/profiles", handler.SessionMiddleware(authService))
		{
			profiles.GET("", profileHandler.List)
			profiles.POST("", profileHandler.Create)
			profiles.DELETE("/:profile_id", profileHandler.Delete)
		}

		anime := api.Group("/anime")
		{
			anime.GET("", catalogHandler.List)
			anime.GET("/trending", catalogHandler.Trending)
			anime.GET("/new-releases", catalogHandler.NewReleases)
			anime.GET("/:anime_id", catalogHandler.Get)
			anime.GET("/:anime_id/episodes", catalogHandler.Episodes)
			anime.GET("/:anime_id/recommendations", catalogHandler.Recommendations)
		}

		api.GET("/search", catalogHandler.Search)

		watchHistory := api.Group("/watch-history", handler.SessionMiddleware(authService))
		{
			watchHistory.POST("", libraryHandler.SaveProgress)
			watchHistory.GET("/:profile_id/continue-watching", libraryHandler.ContinueWatching)
		}

		myList := api.Group("/my-list", handler.SessionMiddleware(authService))
		{
			myList.POST("", libraryHandler.AddToList)
			myList.GET("/:profile_id", libraryHandler.GetList)
			myList.DELETE("/:profile_id/:anime_id", libraryHandler.RemoveFromList)
		}

		ratings := api.Group("/ratings", handler.SessionMiddleware(authService))
		{
			ratings.POST("", libraryHandler.SaveRating)
			ratings.GET("/:anime_id/:profile_id", libraryHandler.GetRating)
		}

		reviews := api.Group("/reviews")
		{
			reviews.POST("", handler.SessionMiddleware(authService), libraryHandler.CreateReview)
			reviews.GET("/:anime_id", libraryHandler.GetReviews)
		}
	}
}

func (a *App) Run(ctx context.Context) error {
	errChan := make(chan error, 1)

	go func() {
		a.infra.Logger().Info("Application starting",
			zap.String("host", a.config.Server.Host),
			zap.String("port", a.config.Server.Port),
		)

		if err := a.server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.infra.Logger().Error("Server error", zap.Error(err))
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case err := <-errChan:
		a.infra.Logger().Error("Application failed to start", zap.Error(err))
		serverErr = err
	case <-ctx.Done():
		a.infra.Logger().Info("Application stopped by context")
	}

	if err := a.Shutdown(); err != nil {
		a.infra.Logger().Error("Shutdown error", zap.Error(err))
		if serverErr != nil {
			return errors.Join(serverErr, err)
		}
		return err
	}

	return serverErr
}

func (a *App) Shutdown() error {
	a.infra.Logger().Info("Application shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	errs := make(chan error, 2)

	go func() {
		errs <- a.server.Shutdown(ctx)
	}()

	go func() {
		errs <- a.infra.Shutdown(ctx)
	}()

	err := errors.Join(<-errs, <-errs)
	if err != nil {
		a.infra.Logger().Error("Shutdown failed", zap.Error(err))
		return err
	}

	a.infra.Logger().Info("Application exited successfully")
	return nil
}
