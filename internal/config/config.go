package config

import (
	"errors"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"
)

type Config struct {
	AppPort string

	DBDriver string
	DBHost   string
	DBPort   string
	DBName   string
	DBUser   string
	DBPass   string

	DBAutoMigrate bool

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	IdempTTLSecs int

	JWTSecret    string
	JWTExpiresIn time.Duration

	FirebaseCredentials     string
	FirebaseCredentialsPath string
	NotifyTimeout           time.Duration

	DeactivationCron string

	LogLevel string
	LogFile  string
}

func getenv(k, d string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return d
}

func getint(k string, d int) int {
	if v := os.Getenv(k); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return d
}

// LoadDotEnv reads KEY=VALUE files into the process env without overriding
// variables that are already set. Missing files are skipped.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, p := range paths {
		if err := godotenv.Load(p); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", p, err)
		}
	}
	return nil
}

func Load() *Config {
	c := &Config{
		AppPort:  getenv("APP_PORT", "8080"),
		DBDriver: strings.ToLower(getenv("DB_DRIVER", "mysql")),
		DBHost:   getenv("DB_HOST", "mysql"),
		DBName:   getenv("DB_NAME", "autogiro"),
		DBUser:   getenv("DB_USER", "autogiro"),
		DBPass:   getenv("DB_PASS", "autogiro"),

		DBAutoMigrate: getenv("DB_AUTO_MIGRATE", "true") == "true",

		RedisAddr:     getenv("REDIS_ADDR", "redis:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       getint("REDIS_DB", 0),
		IdempTTLSecs:  getint("IDEMPOTENCY_TTL_SECONDS", 300),

		JWTSecret:    os.Getenv("JWT_SECRET"),
		JWTExpiresIn: 7 * 24 * time.Hour,

		FirebaseCredentials:     os.Getenv("FIREBASE_CREDENTIALS"),
		FirebaseCredentialsPath: os.Getenv("FIREBASE_CREDENTIALS_PATH"),
		NotifyTimeout:           time.Duration(getint("NOTIFY_TIMEOUT_SECONDS", 10)) * time.Second,

		DeactivationCron: getenv("DEACTIVATION_CRON", "0 17 * * *"),

		LogLevel: getenv("LOG_LEVEL", "info"),
		LogFile:  os.Getenv("LOG_FILE"),
	}
	defPort := "3306"
	if c.DBDriver == "postgres" {
		defPort = "5432"
	}
	c.DBPort = getenv("DB_PORT", defPort)
	if v := os.Getenv("JWT_EXPIRES_IN"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			c.JWTExpiresIn = d
		}
	}
	return c
}

func (c *Config) Validate() error {
	if c.DBDriver != "mysql" && c.DBDriver != "postgres" {
		return fmt.Errorf("unsupported DB_DRIVER %q (mysql|postgres)", c.DBDriver)
	}
	if c.DBHost == "" || c.DBPort == "" || c.DBName == "" || c.DBUser == "" {
		return errors.New("missing database config (DB_HOST/PORT/NAME/USER)")
	}
	if _, err := net.LookupPort("tcp", c.DBPort); err != nil {
		return fmt.Errorf("invalid DB_PORT %q: %w", c.DBPort, err)
	}
	if c.AppPort == "" {
		return errors.New("missing APP_PORT")
	}
	if c.JWTSecret == "" {
		return errors.New("missing JWT_SECRET")
	}
	if c.JWTExpiresIn <= 0 {
		return errors.New("JWT_EXPIRES_IN must be positive")
	}
	if _, err := cron.ParseStandard(c.DeactivationCron); err != nil {
		return fmt.Errorf("invalid DEACTIVATION_CRON %q: %w", c.DeactivationCron, err)
	}
	return nil
}

func (c *Config) dbAddr() string { return net.JoinHostPort(c.DBHost, c.DBPort) }

func (c *Config) DSN() string {
	if c.DBDriver == "postgres" {
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
			c.DBHost, c.DBPort, c.DBUser, c.DBPass, c.DBName)
	}
	// parseTime needed for DATETIME
	return fmt.Sprintf("%s:%s@tcp(%s)/%s?parseTime=true&loc=UTC&charset=utf8mb4,utf8",
		c.DBUser, c.DBPass, c.dbAddr(), c.DBName)
}

// FirebaseCredentialsJSON returns inline credentials if set, otherwise the
// content of the credentials file. Both empty means push is disabled.
func (c *Config) FirebaseCredentialsJSON() ([]byte, error) {
	if c.FirebaseCredentials != "" {
		return []byte(c.FirebaseCredentials), nil
	}
	if c.FirebaseCredentialsPath == "" {
		return nil, nil
	}
	return os.ReadFile(c.FirebaseCredentialsPath)
}
