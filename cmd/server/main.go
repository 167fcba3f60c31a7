package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/rs/cors"
	"go.uber.org/zap"

	"github.com/mahathirrr/portfolio/adapters/cache"
	"github.com/mahathirrr/portfolio/adapters/event"
	httpAdapter "github.com/mahathirrr/portfolio/adapters/http"
	"github.com/mahathirrr/portfolio/adapters/media_storage"
	"github.com/mahathirrr/portfolio/adapters/persistence"
	"github.com/mahathirrr/portfolio/internal/application/service"
	"github.com/mahathirrr/portfolio/internal/application/session"
	authUC "github.com/mahathirrr/portfolio/internal/application/usecase/auth"
	contactUC "github.com/mahathirrr/portfolio/internal/application/usecase/contact"
	dashboardUC "github.com/mahathirrr/portfolio/internal/application/usecase/dashboard"
	educationUC "github.com/mahathirrr/portfolio/internal/application/usecase/education"
	experienceUC "github.com/mahathirrr/portfolio/internal/application/usecase/experience"
	pageUC "github.com/mahathirrr/portfolio/internal/application/usecase/page"
	personalinfoUC "github.com/mahathirrr/portfolio/internal/application/usecase/personalinfo"
	projectUC "github.com/mahathirrr/portfolio/internal/application/usecase/project"
	searchUC "github.com/mahathirrr/portfolio/internal/application/usecase/search"
	serviceUC "github.com/mahathirrr/portfolio/internal/application/usecase/service"
	sitesettingUC "github.com/mahathirrr/portfolio/internal/application/usecase/sitesetting"
	uploadUC "github.com/mahathirrr/portfolio/internal/application/usecase/upload"
	"github.com/mahathirrr/portfolio/internal/config"
	"github.com/mahathirrr/portfolio/pkg/auth"
	"github.com/mahathirrr/portfolio/pkg/logger"
	"github.com/mahathirrr/portfolio/pkg/tracing"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		logger.NewZapLogger("development").Fatal("cannot load config", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Start Portfolio API Server...", zap.String("env", cfg.App.Env))

	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	shutdownTracing, err := tracing.Setup(cfg, appLogger, "portfolio-api")
	if err != nil {
		appLogger.Fatal("cannot init tracing", err)
	}

	// Database
	if cfg.DB.AutoMigrate {
		if err := persistence.Migrate(cfg.DB.DSN, appLogger); err != nil {
			appLogger.Fatal("cannot run migrations", err)
		}
	}
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	// Sessions
	var sessionStore session.Store
	switch cfg.Auth.SessionStore {
	case config.SessionStoreMemory:
		sessionStore = session.NewMemoryStore(10 * time.Minute)
	default:
		redisClient, err := persistence.NewRedisClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis", err)
		}
		defer redisClient.Close()
		sessionStore = persistence.NewRedisSessionStore(redisClient)
	}
	sessions := session.NewManager(sessionStore, cfg.Auth.TokenLifespan, appLogger)
	unsubscribeAudit := sessions.Subscribe(session.AuditListener(appLogger))
	defer sessions.Close()
	defer unsubscribeAudit()

	// Page cache
	var cacheRedis *redis.Client
	if cfg.Cache.Type == config.CacheTypeRedis {
		cacheRedis, err = persistence.NewRedisCacheClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot connect Redis cache", err)
		}
		defer cacheRedis.Close()
	}
	cacheEngine, err := cache.NewEngine(cfg, cacheRedis, appLogger)
	if err != nil {
		appLogger.Fatal("cannot init page cache", err)
	}

	// Events
	var publisher service.EventPublisher
	if len(cfg.Kafka.Brokers) > 0 {
		kafkaClient, err := event.NewKafkaProducerClient(cfg, appLogger)
		if err != nil {
			appLogger.Fatal("cannot init Kafka", err)
		}
		defer kafkaClient.Close()
		publisher = kafkaClient
	} else {
		appLogger.Warn("Kafka brokers not configured, contact notifications are disabled")
	}

	uploader, err := media_storage.NewCloudinaryAdapter(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("Failed to initialize uploader", err)
	}

	// Repositories
	personalInfoRepo := persistence.NewPostgresPersonalInfoRepo(dbPool, appLogger)
	serviceRepo := persistence.NewPostgresServiceRepo(dbPool, appLogger)
	projectRepo := persistence.NewPostgresProjectRepo(dbPool, appLogger)
	experienceRepo := persistence.NewPostgresExperienceRepo(dbPool, appLogger)
	educationRepo := persistence.NewPostgresEducationRepo(dbPool, appLogger)
	settingRepo := persistence.NewPostgresSiteSettingRepo(dbPool, appLogger)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	contactRepo := persistence.NewPostgresContactRepo(dbPool, appLogger)
	searchRepo := persistence.NewPostgresSearchRepo(dbPool, appLogger)

	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)

	// Use Cases
	loginUseCase := authUC.NewLoginUseCase(profileRepo, sessions, jwtSvc, appLogger)
	logoutUseCase := authUC.NewLogoutUseCase(sessions, appLogger)
	getSessionUseCase := authUC.NewGetSessionUseCase(sessions)

	pageUseCase := pageUC.NewPageUseCase(
		pageUC.Sources{
			PersonalInfo: personalInfoRepo,
			Services:     serviceRepo,
			Projects:     projectRepo,
			Experiences:  experienceRepo,
			Education:    educationRepo,
			Settings:     settingRepo,
		},
		pageUC.Caches{
			Home:       cache.NewPrefixedCache[pageUC.HomeView](cacheEngine, "page:home:"),
			Services:   cache.NewPrefixedCache[pageUC.ServicesView](cacheEngine, "page:services:"),
			References: cache.NewPrefixedCache[pageUC.ReferencesView](cacheEngine, "page:references:"),
			Experience: cache.NewPrefixedCache[pageUC.ExperienceView](cacheEngine, "page:experience:"),
		},
		appLogger,
	)
	dashboardUseCase := dashboardUC.NewDashboardUseCase(dashboardUC.Repositories{
		PersonalInfo: personalInfoRepo,
		Services:     serviceRepo,
		Projects:     projectRepo,
		Experiences:  experienceRepo,
		Education:    educationRepo,
		Settings:     settingRepo,
	}, appLogger)

	// HTTP Handlers
	handlers := httpAdapter.Handlers{
		Auth: httpAdapter.NewAuthHandler(loginUseCase, logoutUseCase, getSessionUseCase, httpAdapter.CookieOptions{
			Name:   cfg.Auth.CookieName,
			Secure: cfg.App.Env == "production",
		}, appLogger),
		Services: httpAdapter.NewServiceHandler(serviceUC.NewServiceUseCase(serviceRepo, appLogger), appLogger),
		Projects: httpAdapter.NewProjectHandler(
			projectUC.NewCreateProjectUseCase(projectRepo, appLogger),
			projectUC.NewListProjectsUseCase(projectRepo),
			projectUC.NewGetProjectUseCase(projectRepo),
			projectUC.NewUpdateProjectUseCase(projectRepo, appLogger),
			projectUC.NewDeleteProjectUseCase(projectRepo),
			projectUC.NewRSSUseCase(projectRepo, cfg.App.PublicURL, cfg.App.OwnerName, appLogger),
			appLogger,
		),
		Experiences:  httpAdapter.NewExperienceHandler(experienceUC.NewExperienceUseCase(experienceRepo, appLogger), appLogger),
		Education:    httpAdapter.NewEducationHandler(educationUC.NewEducationUseCase(educationRepo, appLogger), appLogger),
		PersonalInfo: httpAdapter.NewPersonalInfoHandler(personalinfoUC.NewPersonalInfoUseCase(personalInfoRepo, appLogger), appLogger),
		Settings:     httpAdapter.NewSiteSettingHandler(sitesettingUC.NewSiteSettingUseCase(settingRepo, appLogger), appLogger),
		Dashboard:    httpAdapter.NewDashboardHandler(dashboardUseCase),
		Pages:        httpAdapter.NewPageHandler(pageUseCase),
		Uploads: httpAdapter.NewUploadHandler(
			uploadUC.NewUploadImageUseCase(uploader, cfg.Cloudinary.Bucket, cfg.Upload.MaxBytes, appLogger),
			appLogger,
		),
		Contact: httpAdapter.NewContactHandler(
			contactUC.NewSubmitMessageUseCase(contactRepo, publisher, appLogger),
			contactUC.NewListMessagesUseCase(contactRepo, appLogger),
			appLogger,
		),
		Search: httpAdapter.NewSearchHandler(searchUC.NewSearchUseCase(searchRepo, appLogger), appLogger),
		Cache:  httpAdapter.NewCacheHandler(pageUseCase, appLogger),
		Web:    httpAdapter.NewWebHandler(cfg.Web.DistDir),
	}

	router := httpAdapter.NewRouter(handlers, httpAdapter.RouterDeps{
		JWT:        jwtSvc,
		Sessions:   sessions,
		CookieName: cfg.Auth.CookieName,
		Pages:      pageUseCase,
		Logger:     appLogger,
	})

	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   cfg.CORS.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Authorization", "Content-Type"},
		AllowCredentials: true,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           corsHandler.Handler(router),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		appLogger.Info("Server running", zap.String("port", cfg.App.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			appLogger.Fatal("Cannot run server", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Error("Server forced to shutdown", err)
	}
	if err := shutdownTracing(ctx); err != nil {
		appLogger.Error("Failed to shutdown tracer provider", err)
	}
	appLogger.Info("Server exited")
}
