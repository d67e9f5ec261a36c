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

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/mshulgin/go-account-service/internal/captcha"
	"github.com/mshulgin/go-account-service/internal/email"
	"github.com/mshulgin/go-account-service/internal/handlers"
	"github.com/mshulgin/go-account-service/internal/jwt"
	"github.com/mshulgin/go-account-service/internal/logger"
	"github.com/mshulgin/go-account-service/internal/middlewares"
	"github.com/mshulgin/go-account-service/internal/migrations"
	"github.com/mshulgin/go-account-service/internal/repositories"
	"github.com/mshulgin/go-account-service/internal/services"
	"github.com/mshulgin/go-account-service/internal/storage"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mshulgin/go-account-service/docs"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// Config holds all runtime configuration, loaded from the environment.
type Config struct {
	AppName  string
	AppHost  string
	AppPort  string
	LogLevel string

	PgHost         string
	PgPort         int
	PgUser         string
	PgPassword     string
	PgDB           string
	PgMaxOpenConns int
	PgMaxIdleConns int

	RedisEnabled  bool
	RedisHost     string
	RedisPort     int
	RedisDB       int
	RedisPassword string

	KafkaAddr  string
	KafkaTopic string

	SMTPHost     string
	SMTPPort     int
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string

	JWTSecret             string
	TokenExpMinute        int
	EmailCodeMaxAgeSecond int
	CookieMaxAgeSecond    int

	CaptchaLength  int
	CaptchaNumeric bool

	AvatarDir string
}

// @title account-service API
// @version 1.0.0
// @description Microservice for user accounts: registration, login, password reset and profile management
// @host localhost:8080
// @BasePath /api/v1/users
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
	fmt.Printf("Starting service Version: %s, Commit: %s, Build: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the full
// application configuration.
func parseConfig(path string) (cfg Config, err error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}
	getEnvInt := func(key string, defaultValue int) (int, error) {
		return strconv.Atoi(getEnv(key, strconv.Itoa(defaultValue)))
	}
	getEnvBool := func(key string, defaultValue bool) (bool, error) {
		return strconv.ParseBool(getEnv(key, strconv.FormatBool(defaultValue)))
	}

	// Application config
	cfg.AppName = getEnv("APP_NAME", "account")
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PgHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PgUser = getEnv("POSTGRES_USER", "user")
	cfg.PgPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PgDB = getEnv("POSTGRES_DB", "accounts")
	if cfg.PgPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return
	}
	if cfg.PgMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return
	}
	if cfg.PgMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return
	}

	// Redis config
	if cfg.RedisEnabled, err = getEnvBool("REDIS_ENABLED", true); err != nil {
		return
	}
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return
	}

	// Kafka config, publishing is off when no address is given
	cfg.KafkaAddr = getEnv("KAFKA_ADDR", "")
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "user-events")

	// SMTP config
	cfg.SMTPHost = getEnv("SMTP_HOST", "")
	cfg.SMTPUser = getEnv("SMTP_USER", "")
	cfg.SMTPPassword = getEnv("SMTP_PASSWORD", "")
	cfg.SMTPFrom = getEnv("SMTP_FROM", cfg.SMTPUser)
	if cfg.SMTPPort, err = getEnvInt("SMTP_PORT", 465); err != nil {
		return
	}

	// Session and cookie lifetimes
	cfg.JWTSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if cfg.TokenExpMinute, err = getEnvInt("TOKEN_EXP_MINUTE", 1440); err != nil {
		return
	}
	if cfg.EmailCodeMaxAgeSecond, err = getEnvInt("EMAIL_CODE_MAX_AGE_SECOND", 120); err != nil {
		return
	}
	if cfg.CookieMaxAgeSecond, err = getEnvInt("COOKIE_MAX_AGE_SECOND", 300); err != nil {
		return
	}

	// Verification code shape
	if cfg.CaptchaLength, err = getEnvInt("CAPTCHA_LENGTH", 4); err != nil {
		return
	}
	if cfg.CaptchaNumeric, err = getEnvBool("CAPTCHA_NUMERIC", false); err != nil {
		return
	}

	cfg.AvatarDir = getEnv("AVATAR_DIR", "./static/avatar")

	return
}

// run initializes the logger, database, caches, event writer, and HTTP
// server. It sets up routes, applies middleware, and handles graceful
// shutdown.
func run(ctx context.Context, cfg Config) error {
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PgUser, cfg.PgPassword, cfg.PgHost, cfg.PgPort, cfg.PgDB)
	logger.Log.Infof("Connecting to PostgreSQL at %s:%d", cfg.PgHost, cfg.PgPort)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		logger.Log.Errorw("PostgreSQL connection error", "error", err)
		return err
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PgMaxOpenConns)
	db.SetMaxIdleConns(cfg.PgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		logger.Log.Errorw("PostgreSQL ping failed", "error", err)
		return err
	}

	// Apply migrations
	goose.SetBaseFS(migrations.Migrations)
	if err := goose.SetDialect("pgx"); err != nil {
		return err
	}
	if err := goose.UpContext(ctx, db.DB, "."); err != nil {
		logger.Log.Errorw("migrations failed", "error", err)
		return err
	}

	// Connect to Redis when the session cache is enabled
	var tokens services.TokenCache
	var codes services.CodeCache
	if cfg.RedisEnabled {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			logger.Log.Errorw("Redis connection error", "error", err)
			return err
		}
		defer rdb.Close()

		tokens = repositories.NewTokenCacheRepository(rdb)
		codes = repositories.NewCodeCacheRepository(rdb)
	} else {
		logger.Log.Info("Session cache disabled, tokens are minted per login and email-code login is unavailable")
	}

	// Kafka event writer
	var events services.KafkaWriter
	if cfg.KafkaAddr != "" {
		writer := &kafka.Writer{
			Addr:     kafka.TCP(cfg.KafkaAddr),
			Topic:    cfg.KafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer writer.Close()
		events = writer
	}

	// Initialize token and capsule signers
	tokenTTL := time.Duration(cfg.TokenExpMinute) * time.Minute
	codeTTL := time.Duration(cfg.EmailCodeMaxAgeSecond) * time.Second
	cookieTTL := time.Duration(cfg.CookieMaxAgeSecond) * time.Second
	tokenSigner := jwt.New(cfg.JWTSecret, tokenTTL)
	capsuleSigner := jwt.NewCapsule(cfg.JWTSecret, cookieTTL)

	// Initialize repositories and supporting components
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	codeGen := captcha.New(cfg.CaptchaLength, cfg.CaptchaNumeric)
	sender := email.NewSender(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPassword, cfg.SMTPFrom)
	avatars := storage.NewAvatarStore(cfg.AvatarDir)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokenSigner, tokens, codes, codeGen, sender, events, tokenTTL, codeTTL)
	passwordService := services.NewPasswordService(userReadRepo, userWriteRepo, codeGen, sender, capsuleSigner)
	profileService := services.NewProfileService(userReadRepo, userWriteRepo, avatars, events)
	adminService := services.NewAdminService(userReadRepo, userWriteRepo)

	// Cookie names carry the application name as prefix
	emailLoginCookie := cfg.AppName + "_email_login_id"
	resetCookies := handlers.ResetCookies{
		CodeName:     cfg.AppName + "_reset_pwd_code",
		UsernameName: cfg.AppName + "_reset_pwd_username",
		MaxAge:       cfg.CookieMaxAgeSecond,
	}

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware())

	authMiddleware := middlewares.AuthMiddleware(tokenSigner, userReadRepo)

	r.Route("/api/v1/users", func(r chi.Router) {
		// Public routes
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/login/email/captcha", handlers.NewEmailCaptchaHandler(authService, emailLoginCookie, cfg.CookieMaxAgeSecond))
		r.Post("/login/email", handlers.NewEmailLoginHandler(authService, emailLoginCookie))
		r.Post("/password/reset/code", handlers.NewResetCodeHandler(passwordService, resetCookies))
		r.Post("/password/reset", handlers.NewPasswordResetHandler(passwordService, resetCookies))
		r.Get("/password/reset/done", handlers.NewResetDoneHandler())

		// Routes for the authenticated user
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/logout", handlers.NewLogoutHandler())
			r.Get("/me", handlers.NewGetMeHandler())
			r.Put("/me", handlers.NewUpdateMeHandler(profileService))
			r.Delete("/me", handlers.NewDeleteMeHandler(profileService))
			r.Delete("/me/avatar", handlers.NewDeleteMyAvatarHandler(profileService))
		})

		// Superuser-only routes
		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Use(middlewares.SuperuserMiddleware())
			r.Get("/", handlers.NewListUsersHandler(adminService))
			r.Post("/{id}/super", handlers.NewToggleSuperHandler(adminService))
			r.Post("/{id}/active", handlers.NewToggleActiveHandler(adminService))
		})
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
