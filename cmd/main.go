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
	"syscall"
	"time"

	"github.com/gagliardetto/solana-go"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/vibegame/pixey-backend/internal/facades"
	"github.com/vibegame/pixey-backend/internal/handlers"
	"github.com/vibegame/pixey-backend/internal/jobs"
	"github.com/vibegame/pixey-backend/internal/jwt"
	"github.com/vibegame/pixey-backend/internal/logger"
	"github.com/vibegame/pixey-backend/internal/middlewares"
	"github.com/vibegame/pixey-backend/internal/repositories"
	"github.com/vibegame/pixey-backend/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title pixey-backend API
// @version 1.0.0
// @description Collaborative pixel-art game backend with Solana wallet auth and token-burn credits
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
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

// config holds all application, database, Redis, Kafka, chain, and JWT
// configuration.
type config struct {
	appHost  string
	appPort  string
	logLevel string

	pgHost         string
	pgPort         int
	pgUser         string
	pgPassword     string
	pgDB           string
	pgMaxOpenConns int
	pgMaxIdleConns int

	redisHost     string
	redisPort     int
	redisDB       int
	redisPassword string

	kafkaBrokers string
	kafkaTopic   string

	solanaRPC  string
	tokenMint  string
	jupiterURL string

	jwtSecretKey string
	jwtExpSecond int

	nonceTTLSecond     int
	settingsTTLSecond  int
	leaderboardRefresh string
}

// parseConfig loads environment variables from a file and returns the
// full application configuration.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	cfg.appHost = getEnv("APP_HOST", "localhost")
	cfg.appPort = getEnv("APP_PORT", "8080")
	cfg.logLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.pgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.pgUser = getEnv("POSTGRES_USER", "user")
	cfg.pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.pgDB = getEnv("POSTGRES_DB", "pixey")
	if cfg.pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if cfg.pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if cfg.pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config
	cfg.redisHost = getEnv("REDIS_HOST", "localhost")
	if cfg.redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if cfg.redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	cfg.redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config
	cfg.kafkaBrokers = getEnv("KAFKA_BROKERS", "localhost:9092")
	cfg.kafkaTopic = getEnv("KAFKA_TOPIC", "pixey.events")

	// Solana config
	cfg.solanaRPC = getEnv("SOLANA_RPC_ENDPOINT", "https://api.mainnet-beta.solana.com")
	cfg.tokenMint = getEnv("SOLANA_TOKEN_MINT", "")
	cfg.jupiterURL = getEnv("JUPITER_BASE_URL", "https://quote-api.jup.ag/v6")

	// JWT config
	cfg.jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "604800")); err != nil {
		return
	}

	// Cache and job config
	if cfg.nonceTTLSecond, err = strconv.Atoi(getEnv("AUTH_NONCE_TTL_SECOND", "300")); err != nil {
		return
	}
	if cfg.settingsTTLSecond, err = strconv.Atoi(getEnv("SETTINGS_CACHE_TTL_SECOND", "60")); err != nil {
		return
	}
	cfg.leaderboardRefresh = getEnv("LEADERBOARD_REFRESH_SPEC", "@every 5m")

	return
}

// run initializes the logger, database, Redis, Kafka, chain facades, and
// HTTP server. It sets up routes, applies middleware, and handles
// graceful shutdown.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	zl, err := logger.Initialize(cfg.logLevel)
	if err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer zl.Sync()
	zl.Infof("Logger initialized with level %s", cfg.logLevel)

	mint, err := solana.PublicKeyFromBase58(cfg.tokenMint)
	if err != nil {
		return fmt.Errorf("invalid SOLANA_TOKEN_MINT: %w", err)
	}

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.pgUser, cfg.pgPassword, cfg.pgHost, cfg.pgPort, cfg.pgDB)
	zl.Infof("Connecting to PostgreSQL at %s:%d", cfg.pgHost, cfg.pgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.pgMaxOpenConns)
	db.SetMaxIdleConns(cfg.pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("PostgreSQL ping failed: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:     fmt.Sprintf("%s:%d", cfg.redisHost, cfg.redisPort),
		Password: cfg.redisPassword,
		DB:       cfg.redisDB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka event writer
	kafkaWriter := &kafka.Writer{
		Addr:     kafka.TCP(cfg.kafkaBrokers),
		Topic:    cfg.kafkaTopic,
		Balancer: &kafka.LeastBytes{},
	}
	defer kafkaWriter.Close()

	// Chain facades
	solanaFacade := facades.NewSolanaFacade(cfg.solanaRPC)
	jupiterFacade := facades.NewJupiterFacade(cfg.jupiterURL, cfg.tokenMint)

	// Initialize JWT service
	jwtService := jwt.New(
		jwt.WithSecretKey(cfg.jwtSecretKey),
		jwt.WithExpiration(time.Duration(cfg.jwtExpSecond)*time.Second),
	)

	// Initialize repositories
	txGetter := middlewares.GetTxFromContext

	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, txGetter)
	pixelReadRepo := repositories.NewPixelReadRepository(db)
	pixelWriteRepo := repositories.NewPixelWriteRepository(db, txGetter)
	eggRepo := repositories.NewEasterEggRepository(db, txGetter)
	settingsReadRepo := repositories.NewGameSettingsReadRepository(db)
	settingsWriteRepo := repositories.NewGameSettingsWriteRepository(db, txGetter)
	burnWriteRepo := repositories.NewBurnWriteRepository(db, txGetter)
	notificationReadRepo := repositories.NewNotificationReadRepository(db)
	notificationWriteRepo := repositories.NewNotificationWriteRepository(db, txGetter)
	commentReadRepo := repositories.NewCommentReadRepository(db)
	commentWriteRepo := repositories.NewCommentWriteRepository(db, txGetter)
	artworkReadRepo := repositories.NewArtworkReadRepository(db)
	leaderboardRepo := repositories.NewLeaderboardRepository(db)
	challengeRepo := repositories.NewChallengeCacheRepository(rdb, time.Duration(cfg.nonceTTLSecond)*time.Second)
	settingsCacheRepo := repositories.NewGameSettingsCacheRepository(rdb, time.Duration(cfg.settingsTTLSecond)*time.Second)

	// Initialize services
	authService := services.NewAuthService(challengeRepo, userReadRepo, userWriteRepo, jwtService, solanaFacade)
	placementService := services.NewPlacementService(pixelWriteRepo, userWriteRepo, eggRepo, settingsReadRepo, notificationWriteRepo, kafkaWriter)
	burnService := services.NewBurnService(solanaFacade, burnWriteRepo, userWriteRepo, settingsWriteRepo, settingsCacheRepo, notificationWriteRepo, kafkaWriter, mint)
	boardService := services.NewBoardService(pixelReadRepo, settingsReadRepo, settingsCacheRepo, leaderboardRepo, artworkReadRepo)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo)
	communityService := services.NewCommunityService(commentReadRepo, commentWriteRepo, notificationReadRepo, notificationWriteRepo)

	// Leaderboard refresh scheduler
	scheduler, err := jobs.NewScheduler(leaderboardRepo, cfg.leaderboardRefresh)
	if err != nil {
		return fmt.Errorf("failed to create scheduler: %w", err)
	}
	scheduler.Start()
	defer scheduler.Stop()

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(zl))

	authMiddleware := middlewares.AuthMiddleware(jwtService)
	txMiddleware := middlewares.TxMiddleware(db)

	// Public routes
	r.Group(func(r chi.Router) {
		r.Use(txMiddleware)
		r.Post("/api/auth/challenge", handlers.NewChallengeHandler(authService))
		r.Post("/api/auth/login", handlers.NewLoginHandler(authService))
		r.Post("/api/users", handlers.NewCreateUserHandler(profileService))
	})

	r.Get("/api/pixels", handlers.NewListPixelsHandler(boardService))
	r.Get("/api/game/settings", handlers.NewGameSettingsHandler(boardService))
	r.Get("/api/leaderboard", handlers.NewLeaderboardHandler(boardService))
	r.Get("/api/artworks", handlers.NewFeaturedArtworksHandler(boardService))
	r.Get("/api/comments", handlers.NewListCommentsHandler(communityService))
	r.Get("/api/notifications", handlers.NewListNotificationsHandler(communityService))
	r.Get("/api/users/{wallet}", handlers.NewGetUserHandler(profileService))
	r.Get("/api/swap/quote", handlers.NewSwapQuoteHandler(jupiterFacade))

	// Protected routes with JWT and transaction middleware
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware)
		r.Use(txMiddleware)
		r.Post("/api/pixels/place", handlers.NewPlacePixelHandler(placementService))
		r.Post("/api/pixels/place-bulk", handlers.NewPlacePixelsHandler(placementService))
		r.Post("/api/burns/verify", handlers.NewBurnTokensHandler(burnService))
		r.Put("/api/users/profile", handlers.NewUpdateProfileHandler(profileService))
		r.Post("/api/comments", handlers.NewAddCommentHandler(communityService))
		r.Post("/api/notifications", handlers.NewCreateNotificationHandler(communityService))
		r.Put("/api/notifications/{id}/read", handlers.NewMarkNotificationReadHandler(communityService))
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.appHost, cfg.appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.appHost, cfg.appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		zl.Infof("HTTP server listening on %s:%s", cfg.appHost, cfg.appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		zl.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		zl.Errorw("HTTP server shutdown error", "error", err)
	}

	zl.Info("HTTP server stopped gracefully")
	return nil
}
