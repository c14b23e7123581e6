package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mediatrack/media-watchlist/internal/facades"
	"github.com/mediatrack/media-watchlist/internal/handlers"
	"github.com/mediatrack/media-watchlist/internal/jwt"
	"github.com/mediatrack/media-watchlist/internal/logger"
	"github.com/mediatrack/media-watchlist/internal/middlewares"
	"github.com/mediatrack/media-watchlist/internal/repositories"
	"github.com/mediatrack/media-watchlist/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title media-watchlist API
// @version 1.0.0
// @description Personal media tracking: aggregated movie/book search and per-user watchlists
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, searchCacheTTL,
		kafkaBrokers, kafkaTopic,
		tmdbAPIKey, googleBooksAPIKey,
		jwtSecret, jwtExp,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword, searchCacheTTL,
		kafkaBrokers, kafkaTopic,
		tmdbAPIKey, googleBooksAPIKey,
		jwtSecret, jwtExp,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, provider, and JWT configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, searchCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	tmdbAPIKey, googleBooksAPIKey string,
	jwtSecret string, jwtExp time.Duration,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "database")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	redisHost = getEnv("REDIS_HOST", "localhost")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")
	var cacheTTLSecond int
	if cacheTTLSecond, err = strconv.Atoi(getEnv("SEARCH_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}
	searchCacheTTL = time.Duration(cacheTTLSecond) * time.Second

	// Kafka config; empty brokers disable activity publishing
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		kafkaBrokers = strings.Split(brokers, ",")
	}
	kafkaTopic = getEnv("KAFKA_TOPIC", "watchlist-activity")

	// Catalog provider config
	tmdbAPIKey = getEnv("TMDB_API_KEY", "")
	googleBooksAPIKey = getEnv("GOOGLE_BOOKS_API_KEY", "")

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "")
	if jwtSecret == "" {
		err = fmt.Errorf("JWT_SECRET_KEY is required")
		return
	}
	var jwtExpSecond int
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}
	jwtExp = time.Duration(jwtExpSecond) * time.Second

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string, searchCacheTTL time.Duration,
	kafkaBrokers []string, kafkaTopic string,
	tmdbAPIKey, googleBooksAPIKey string,
	jwtSecret string, jwtExp time.Duration,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
		Password: redisPassword,
		DB:       redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		logger.Log.Errorw("Redis connection error", "error", err)
		return err
	}
	defer rdb.Close()

	// Kafka writer for watchlist activity events, optional
	var kafkaWriter services.KafkaWriter
	if len(kafkaBrokers) > 0 {
		w := &kafka.Writer{
			Addr:     kafka.TCP(kafkaBrokers...),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer w.Close()
		kafkaWriter = w
	}

	// Initialize JWT service
	jwtSvc := jwt.New(jwt.WithSecretKey(jwtSecret), jwt.WithExpiration(jwtExp))

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext
	userReadRepo := repositories.NewUserReadRepository(db, txGetter)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	itemWriteRepo := repositories.NewItemWriteRepository(db, txGetter)
	watchlistReadRepo := repositories.NewWatchlistReadRepository(db, txGetter)
	watchlistWriteRepo := repositories.NewWatchlistWriteRepository(db, txGetter)
	searchCacheRepo := repositories.NewSearchCacheRepository(rdb, searchCacheTTL)

	// Initialize provider facades
	tmdbFacade := facades.NewTMDBFacade(tmdbAPIKey)
	booksFacade := facades.NewGoogleBooksFacade(googleBooksAPIKey)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, jwtSvc)
	searchService := services.NewSearchService(tmdbFacade, booksFacade, searchCacheRepo)
	watchlistService := services.NewWatchlistService(itemWriteRepo, watchlistReadRepo, watchlistWriteRepo, kafkaWriter)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler()
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	searchHandler := handlers.NewSearchHandler(searchService, jwtSvc, authService)
	watchlistAddHandler := handlers.NewWatchlistAddHandler(watchlistService, jwtSvc, authService)
	watchlistListHandler := handlers.NewWatchlistListHandler(watchlistService, jwtSvc, authService)
	watchlistUpdateHandler := handlers.NewWatchlistUpdateHandler(watchlistService, jwtSvc, authService)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	txMiddleware := middlewares.TxMiddleware(db)
	authMiddleware := middlewares.AuthMiddleware(jwtSvc)

	r.Get("/health", healthHandler)

	r.Route("/api/v1", func(r chi.Router) {
		// Public routes
		r.With(txMiddleware).Post("/register", registerHandler)
		r.Post("/login", loginHandler)

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/search", searchHandler)
			r.Get("/watchlist", watchlistListHandler)
			r.With(txMiddleware).Post("/watchlist", watchlistAddHandler)
			r.With(txMiddleware).Patch("/watchlist/{id}", watchlistUpdateHandler)
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
