package main

import (
	"bytes"
	"context"
	"flag"
	"os"
	"testing"
	"time"

	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// resetFlags resets the global flag.CommandLine to avoid "flag redefined" panic
func resetFlags() {
	flag.CommandLine = flag.NewFlagSet(os.Args[0], flag.ExitOnError)
}

// resetEnv clears env vars used by parseConfig
func resetEnv() {
	os.Clearenv()
}

func TestParseFlags_Default(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd"}
	configPath := parseFlags()
	expected := "config.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

func TestParseFlags_Custom(t *testing.T) {
	resetFlags()
	oldArgs := os.Args
	defer func() { os.Args = oldArgs }()

	os.Args = []string{"cmd", "-c", "myconfig.env"}
	configPath := parseFlags()
	expected := "myconfig.env"

	if configPath != expected {
		t.Errorf("expected %s, got %s", expected, configPath)
	}
}

// ----------------- Tests for printBuildInfo -----------------

func TestPrintBuildInfo_Output(t *testing.T) {
	// Capture stdout
	oldStdout := os.Stdout
	r, w, _ := os.Pipe()
	os.Stdout = w

	// Set build info variables
	buildVersion = "v1.0.0"
	buildCommit = "abcd1234"
	buildDate = "2026-01-15"

	printBuildInfo()

	w.Close()
	var buf bytes.Buffer
	_, _ = buf.ReadFrom(r)
	output := buf.String()
	os.Stdout = oldStdout

	// Check if all expected strings are present
	if !contains(output, "Version: v1.0.0") ||
		!contains(output, "Commit: abcd1234") ||
		!contains(output, "Build: 2026-01-15") {
		t.Errorf("printBuildInfo output unexpected:\n%s", output)
	}
}

// Helper function to check substring
func contains(s, substr string) bool {
	return bytes.Contains([]byte(s), []byte(substr))
}

func TestParseConfig_Defaults(t *testing.T) {
	resetEnv()

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	// Application
	if cfg.AppName != "account" || cfg.AppHost != "localhost" || cfg.AppPort != "8080" || cfg.LogLevel != "info" {
		t.Errorf("unexpected app config: %+v", cfg)
	}

	// PostgreSQL
	if cfg.PgHost != "localhost" || cfg.PgPort != 5432 || cfg.PgUser != "user" || cfg.PgPassword != "password" ||
		cfg.PgDB != "accounts" || cfg.PgMaxOpenConns != 16 || cfg.PgMaxIdleConns != 8 {
		t.Errorf("unexpected postgres config: %+v", cfg)
	}

	// Redis
	if !cfg.RedisEnabled || cfg.RedisHost != "localhost" || cfg.RedisPort != 6379 || cfg.RedisDB != 0 || cfg.RedisPassword != "" {
		t.Errorf("unexpected redis config: %+v", cfg)
	}

	// Kafka
	if cfg.KafkaAddr != "" || cfg.KafkaTopic != "user-events" {
		t.Errorf("unexpected kafka config: %+v", cfg)
	}

	// Sessions, codes and cookies
	if cfg.JWTSecret != "my_super_secret_key" || cfg.TokenExpMinute != 1440 ||
		cfg.EmailCodeMaxAgeSecond != 120 || cfg.CookieMaxAgeSecond != 300 {
		t.Errorf("unexpected session config: %+v", cfg)
	}
	if cfg.CaptchaLength != 4 || cfg.CaptchaNumeric {
		t.Errorf("unexpected captcha config: %+v", cfg)
	}

	if cfg.AvatarDir != "./static/avatar" {
		t.Errorf("unexpected avatar dir: %s", cfg.AvatarDir)
	}
}

func TestParseConfig_CustomEnv(t *testing.T) {
	resetEnv()
	os.Setenv("APP_NAME", "myapp")
	os.Setenv("APP_HOST", "127.0.0.1")
	os.Setenv("APP_PORT", "9090")
	os.Setenv("APP_LOG_LEVEL", "debug")

	os.Setenv("POSTGRES_HOST", "pg.example.com")
	os.Setenv("POSTGRES_PORT", "5433")
	os.Setenv("POSTGRES_USER", "admin")
	os.Setenv("POSTGRES_PASSWORD", "secret")
	os.Setenv("POSTGRES_DB", "mydb")
	os.Setenv("POSTGRES_MAX_OPEN_CONNS", "20")
	os.Setenv("POSTGRES_MAX_IDLE_CONNS", "10")

	os.Setenv("REDIS_ENABLED", "false")

	os.Setenv("KAFKA_ADDR", "kafka.example.com:9092")
	os.Setenv("KAFKA_TOPIC", "account-events")

	os.Setenv("SMTP_HOST", "smtp.example.com")
	os.Setenv("SMTP_PORT", "587")
	os.Setenv("SMTP_USER", "mailer@example.com")
	os.Setenv("SMTP_PASSWORD", "mailpass")

	os.Setenv("JWT_SECRET_KEY", "supersecret")
	os.Setenv("TOKEN_EXP_MINUTE", "60")
	os.Setenv("EMAIL_CODE_MAX_AGE_SECOND", "90")
	os.Setenv("COOKIE_MAX_AGE_SECOND", "600")

	os.Setenv("CAPTCHA_LENGTH", "6")
	os.Setenv("CAPTCHA_NUMERIC", "true")

	os.Setenv("AVATAR_DIR", "/srv/avatars")

	cfg, err := parseConfig("nonexistent.env")
	if err != nil {
		t.Fatalf("parseConfig returned error: %v", err)
	}

	if cfg.AppName != "myapp" || cfg.AppHost != "127.0.0.1" || cfg.AppPort != "9090" || cfg.LogLevel != "debug" {
		t.Errorf("unexpected app config: %+v", cfg)
	}
	if cfg.PgHost != "pg.example.com" || cfg.PgPort != 5433 || cfg.PgUser != "admin" || cfg.PgPassword != "secret" ||
		cfg.PgDB != "mydb" || cfg.PgMaxOpenConns != 20 || cfg.PgMaxIdleConns != 10 {
		t.Errorf("unexpected postgres config: %+v", cfg)
	}
	if cfg.RedisEnabled {
		t.Errorf("expected redis to be disabled")
	}
	if cfg.KafkaAddr != "kafka.example.com:9092" || cfg.KafkaTopic != "account-events" {
		t.Errorf("unexpected kafka config: %+v", cfg)
	}
	if cfg.SMTPHost != "smtp.example.com" || cfg.SMTPPort != 587 || cfg.SMTPUser != "mailer@example.com" ||
		cfg.SMTPPassword != "mailpass" || cfg.SMTPFrom != "mailer@example.com" {
		t.Errorf("unexpected smtp config: %+v", cfg)
	}
	if cfg.JWTSecret != "supersecret" || cfg.TokenExpMinute != 60 ||
		cfg.EmailCodeMaxAgeSecond != 90 || cfg.CookieMaxAgeSecond != 600 {
		t.Errorf("unexpected session config: %+v", cfg)
	}
	if cfg.CaptchaLength != 6 || !cfg.CaptchaNumeric {
		t.Errorf("unexpected captcha config: %+v", cfg)
	}
	if cfg.AvatarDir != "/srv/avatars" {
		t.Errorf("unexpected avatar dir: %s", cfg.AvatarDir)
	}
}

func TestParseConfig_BadInt(t *testing.T) {
	resetEnv()
	os.Setenv("POSTGRES_PORT", "not-a-number")

	if _, err := parseConfig("nonexistent.env"); err == nil {
		t.Fatal("expected parseConfig to fail on a non-numeric port")
	}
}

// ------------------ Full integration test ------------------
func TestRun_Success(t *testing.T) {
	ctx := context.Background()

	// ------------------ Postgres container ------------------
	pgReq := testcontainers.ContainerRequest{
		Image:        "postgres:15",
		Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "user"},
		ExposedPorts: []string{"5432/tcp"},
		WaitingFor:   wait.ForListeningPort("5432/tcp"),
	}
	pgContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: pgReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer pgContainer.Terminate(ctx)

	pgHost, _ := pgContainer.Host(ctx)
	pgPort, _ := pgContainer.MappedPort(ctx, "5432")

	// ------------------ Redis container ------------------
	redisReq := testcontainers.ContainerRequest{
		Image:        "redis:7",
		ExposedPorts: []string{"6379/tcp"},
		WaitingFor:   wait.ForListeningPort("6379/tcp"),
	}
	redisContainer, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{ContainerRequest: redisReq, Started: true})
	if err != nil {
		t.Fatal(err)
	}
	defer redisContainer.Terminate(ctx)

	redisHost, _ := redisContainer.Host(ctx)
	redisPort, _ := redisContainer.MappedPort(ctx, "6379")

	cfg := Config{
		AppName:  "account",
		AppHost:  "127.0.0.1",
		AppPort:  "8086",
		LogLevel: "debug",

		PgHost:         pgHost,
		PgPort:         pgPort.Int(),
		PgUser:         "user",
		PgPassword:     "password",
		PgDB:           "testdb",
		PgMaxOpenConns: 5,
		PgMaxIdleConns: 2,

		RedisEnabled: true,
		RedisHost:    redisHost,
		RedisPort:    redisPort.Int(),

		JWTSecret:             "testsecret",
		TokenExpMinute:        60,
		EmailCodeMaxAgeSecond: 120,
		CookieMaxAgeSecond:    300,

		CaptchaLength: 4,

		AvatarDir: t.TempDir(),
	}

	// run exits cleanly when the parent context is cancelled
	testCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	errCh := make(chan error, 1)
	go func() {
		errCh <- run(testCtx, cfg)
	}()

	select {
	case <-time.After(15 * time.Second):
		t.Fatal("test timed out")
	case err := <-errCh:
		if err != nil {
			t.Fatalf("expected run to succeed, got error: %v", err)
		}
	}
}
