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

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/sbilibin2017/studydesk/internal/database"
	"github.com/sbilibin2017/studydesk/internal/facades"
	"github.com/sbilibin2017/studydesk/internal/jwt"
	"github.com/sbilibin2017/studydesk/internal/logger"
	"github.com/sbilibin2017/studydesk/internal/repositories"
	"github.com/sbilibin2017/studydesk/internal/router"
	"github.com/sbilibin2017/studydesk/internal/services"
	"github.com/sbilibin2017/studydesk/internal/storage"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

const (
	storageLocal = "local"
	storageS3    = "s3"
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	DatabaseURL    string
	DBMaxOpenConns int
	DBMaxIdleConns int

	SecretKey    string
	JWTExpSecond int

	MaxContentLength int64
	CORSOrigins      []string

	StorageBackend string
	UploadFolder   string
	S3             storage.S3Config

	GeminiAPIKey        string
	GeminiModel         string
	GeminiTimeoutSecond int

	RedisAddr           string
	RedisPassword       string
	RedisDB             int
	RedisCacheTTLSecond int

	KafkaBrokers []string
	KafkaTopic   string
}

// @title studydesk API
// @version 1.0.0
// @description Study assistant: document upload, AI summaries, quizzes and progress tracking
// @host localhost:8080
// @BasePath /api
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

// parseConfig loads environment variables from a file and returns
// the application, database, storage, provider, cache and event settings.
func parseConfig(path string) (cfg config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getInt := func(key, defaultValue string) (int, error) {
		v, err := strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			return 0, fmt.Errorf("%s: %w", key, err)
		}
		return v, nil
	}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.CORSOrigins = splitList(getEnv("CORS_ORIGINS", "*"))

	// Database config
	cfg.DatabaseURL = getEnv("DATABASE_URL", "sqlite://study.db")
	if cfg.DBMaxOpenConns, err = getInt("DB_MAX_OPEN_CONNS", "16"); err != nil {
		return
	}
	if cfg.DBMaxIdleConns, err = getInt("DB_MAX_IDLE_CONNS", "8"); err != nil {
		return
	}

	// JWT config
	cfg.SecretKey = getEnv("SECRET_KEY", "dev-secret")
	if cfg.JWTExpSecond, err = getInt("JWT_EXP_SECOND", "86400"); err != nil {
		return
	}

	// Upload config
	if cfg.MaxContentLength, err = strconv.ParseInt(getEnv("MAX_CONTENT_LENGTH", "52428800"), 10, 64); err != nil {
		err = fmt.Errorf("MAX_CONTENT_LENGTH: %w", err)
		return
	}
	cfg.StorageBackend = getEnv("STORAGE_BACKEND", storageLocal)
	if cfg.StorageBackend != storageLocal && cfg.StorageBackend != storageS3 {
		err = fmt.Errorf("STORAGE_BACKEND: unknown backend %q", cfg.StorageBackend)
		return
	}
	cfg.UploadFolder = getEnv("UPLOAD_FOLDER", "uploads")
	cfg.S3 = storage.S3Config{
		Bucket:    getEnv("S3_BUCKET", "materials"),
		Region:    getEnv("S3_REGION", "us-east-1"),
		Endpoint:  getEnv("S3_ENDPOINT", ""),
		AccessKey: getEnv("S3_ACCESS_KEY", ""),
		SecretKey: getEnv("S3_SECRET_KEY", ""),
	}

	// Gemini config
	cfg.GeminiAPIKey = getEnv("GEMINI_API_KEY", "")
	cfg.GeminiModel = getEnv("GEMINI_MODEL", "gemini-2.0-flash")
	if cfg.GeminiTimeoutSecond, err = getInt("GEMINI_TIMEOUT_SECOND", "60"); err != nil {
		return
	}

	// Redis config
	cfg.RedisAddr = getEnv("REDIS_ADDR", "")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisDB, err = getInt("REDIS_DB", "0"); err != nil {
		return
	}
	if cfg.RedisCacheTTLSecond, err = getInt("REDIS_CACHE_TTL_SECOND", "3600"); err != nil {
		return
	}

	// Kafka config
	cfg.KafkaBrokers = splitList(getEnv("KAFKA_BROKERS", ""))
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "study-events")

	return
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

// run initializes the logger, database, storage, provider, optional Redis
// and Kafka, and the HTTP server. It blocks until ctx is cancelled or a
// shutdown signal arrives.
func run(ctx context.Context, cfg config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to the database and apply migrations
	db, err := database.Open(ctx, cfg.DatabaseURL, cfg.DBMaxOpenConns, cfg.DBMaxIdleConns)
	if err != nil {
		return err
	}
	defer db.Close()
	logger.Log.Infow("Database ready", "driver", db.DriverName())

	// Artifact storage
	var artifacts services.ArtifactStorage
	switch cfg.StorageBackend {
	case storageS3:
		client, err := storage.NewS3Client(ctx, cfg.S3)
		if err != nil {
			return err
		}
		artifacts = storage.NewS3Storage(client, cfg.S3.Bucket)
		logger.Log.Infow("Using S3 storage", "bucket", cfg.S3.Bucket, "endpoint", cfg.S3.Endpoint)
	default:
		local, err := storage.NewLocalStorage(cfg.UploadFolder)
		if err != nil {
			return err
		}
		artifacts = local
		logger.Log.Infow("Using local storage", "folder", cfg.UploadFolder)
	}

	// Gemini provider
	var generator facades.ContentGenerator
	if cfg.GeminiAPIKey != "" {
		client, err := facades.NewGeminiClient(ctx, cfg.GeminiAPIKey)
		if err != nil {
			return fmt.Errorf("gemini client error: %w", err)
		}
		generator = client.Models
	} else {
		logger.Log.Warn("GEMINI_API_KEY is not set, generation requests will degrade")
	}
	provider := facades.NewGeminiFacade(generator, cfg.GeminiModel, time.Duration(cfg.GeminiTimeoutSecond)*time.Second)

	// Connect to Redis
	var cache services.GenerationCache
	if cfg.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			return fmt.Errorf("redis connection error: %w", err)
		}
		defer rdb.Close()
		cache = repositories.NewGenerationCacheRepository(rdb, time.Duration(cfg.RedisCacheTTLSecond)*time.Second)
		logger.Log.Infow("Generation cache enabled", "addr", cfg.RedisAddr)
	}

	// Kafka writer
	var writer services.KafkaWriter
	if len(cfg.KafkaBrokers) > 0 {
		kw := &kafka.Writer{
			Addr:                   kafka.TCP(cfg.KafkaBrokers...),
			Topic:                  cfg.KafkaTopic,
			Balancer:               &kafka.Hash{},
			AllowAutoTopicCreation: true,
		}
		defer kw.Close()
		writer = kw
		logger.Log.Infow("Event publishing enabled", "brokers", cfg.KafkaBrokers, "topic", cfg.KafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(cfg.SecretKey),
		jwt.WithExpiration(time.Duration(cfg.JWTExpSecond)*time.Second),
	)

	handler := router.New(router.Deps{
		DB:        db,
		Tokens:    tokens,
		Storage:   artifacts,
		Provider:  provider,
		Cache:     cache,
		Publisher: services.NewEventPublisher(writer),
	}, router.Options{
		MaxUploadSize: cfg.MaxContentLength,
		CORSOrigins:   cfg.CORSOrigins,
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler: handler,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s", srv.Addr)
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

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
