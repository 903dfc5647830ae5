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

	"github.com/sbilibin2017/gw-gift-ledger/internal/handlers"
	"github.com/sbilibin2017/gw-gift-ledger/internal/jwt"
	"github.com/sbilibin2017/gw-gift-ledger/internal/logger"
	"github.com/sbilibin2017/gw-gift-ledger/internal/middlewares"
	"github.com/sbilibin2017/gw-gift-ledger/internal/repositories"
	"github.com/sbilibin2017/gw-gift-ledger/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds everything read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int
	MigrationsDir  string

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	RedisExpSecond    int

	KafkaBrokers []string
	KafkaTopic   string

	JWTSecretKey string
	JWTExpSecond int

	GiftTTLSecond int
	StartingCoins int
	StartingGems  int
}

// @title gw-gift-ledger API
// @version 1.0.0
// @description Microservice for player balances and claimable gifts of coins and gems
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
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, JWT and gift configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	getInt := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var v int
		if v, err = strconv.Atoi(getEnv(key, defaultValue)); err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return v
	}

	cfg := &config{
		// Application config
		AppHost:  getEnv("APP_HOST", "localhost"),
		AppPort:  getEnv("APP_PORT", "8080"),
		LogLevel: getEnv("APP_LOG_LEVEL", "info"),

		// PostgreSQL config
		PGHost:         getEnv("POSTGRES_HOST", "localhost"),
		PGPort:         getInt("POSTGRES_PORT", "5432"),
		PGUser:         getEnv("POSTGRES_USER", "user"),
		PGPassword:     getEnv("POSTGRES_PASSWORD", "password"),
		PGDB:           getEnv("POSTGRES_DB", "database"),
		PGMaxOpenConns: getInt("POSTGRES_MAX_OPEN_CONNS", "16"),
		PGMaxIdleConns: getInt("POSTGRES_MAX_IDLE_CONNS", "8"),
		MigrationsDir:  getEnv("MIGRATIONS_DIR", "migrations"),

		// Redis config
		RedisHost:         getEnv("REDIS_HOST", "localhost"),
		RedisPort:         getInt("REDIS_PORT", "6379"),
		RedisDB:           getInt("REDIS_DB", "0"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisPoolSize:     getInt("REDIS_POOL_SIZE", "10"),
		RedisMinIdleConns: getInt("REDIS_MIN_IDLE_CONNS", "2"),
		RedisExpSecond:    getInt("REDIS_EXP_SECOND", "60"),

		// Kafka config, publishing is disabled without brokers
		KafkaBrokers: splitList(getEnv("KAFKA_BROKERS", "")),
		KafkaTopic:   getEnv("KAFKA_TOPIC", "gift-events"),

		// JWT config
		JWTSecretKey: getEnv("JWT_SECRET_KEY", "my_super_secret_key"),
		JWTExpSecond: getInt("JWT_EXP_SECOND", "3600"),

		// Gift config
		GiftTTLSecond: getInt("GIFT_TTL_SECOND", "604800"),
		StartingCoins: getInt("STARTING_COINS", "100"),
		StartingGems:  getInt("STARTING_GEMS", "0"),
	}
	if err != nil {
		return nil, err
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

// newKafkaWriter returns the gift event writer, or nil when no brokers are configured.
func newKafkaWriter(cfg *config) *kafka.Writer {
	if len(cfg.KafkaBrokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:     kafka.TCP(cfg.KafkaBrokers...),
		Topic:    cfg.KafkaTopic,
		Balancer: &kafka.Hash{},

		// WriteMessages blocks until the batch flushes.
		BatchTimeout: 10 * time.Millisecond,
	}
}

// run initializes the logger, database, Redis, Kafka writer, and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d/%s", cfg.PGHost, cfg.PGPort, cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("postgres connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("postgres ping failed: %w", err)
	}

	if err := repositories.ApplyMigrations(ctx, db, cfg.MigrationsDir); err != nil {
		return fmt.Errorf("apply migrations: %w", err)
	}

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writer
	var kafkaWriter services.KafkaWriter
	if w := newKafkaWriter(cfg); w != nil {
		defer w.Close()
		kafkaWriter = w
		logger.Log.Infow("Kafka publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	} else {
		logger.Log.Warn("KAFKA_BROKERS not set, gift events will not be published")
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.JWTSecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	// Initialize repositories
	txManager := repositories.NewTxManager(db)
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db, repositories.GetTxFromContext)
	userCacheRepo := repositories.NewUserCacheRepository(rdb, time.Duration(cfg.RedisExpSecond)*time.Second)
	walletRepo := repositories.NewWalletRepository(db, repositories.GetTxFromContext)
	giftRepo := repositories.NewGiftRepository(db, repositories.GetTxFromContext)

	// Initialize services
	authService := services.NewAuthService(
		userReadRepo,
		userWriteRepo,
		tokens,
		walletRepo,
		txManager,
		services.StartingBalance{Coins: int64(cfg.StartingCoins), Gems: int64(cfg.StartingGems)},
	)
	walletService := services.NewWalletService(walletRepo)
	giftService := services.NewGiftService(
		giftRepo,
		walletRepo,
		userReadRepo,
		userCacheRepo,
		txManager,
		kafkaWriter,
		time.Duration(cfg.GiftTTLSecond)*time.Second,
	)

	// Initialize handlers
	registerHandler := handlers.NewRegisterHandler(authService)
	loginHandler := handlers.NewLoginHandler(authService)
	balanceHandler := handlers.NewGetBalanceHandler(walletService, tokens)
	sendGiftHandler := handlers.NewSendGiftHandler(giftService, tokens)
	listGiftsHandler := handlers.NewListGiftsHandler(giftService, tokens)
	claimGiftHandler := handlers.NewClaimGiftHandler(giftService, tokens)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	// Public routes
	r.Post("/register", registerHandler)
	r.Post("/login", loginHandler)

	// Protected routes with JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/balance", balanceHandler)
		r.Post("/gifts", sendGiftHandler)
		r.Get("/gifts", listGiftsHandler)
		r.Post("/gifts/{giftID}/claim", claimGiftHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("http server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
