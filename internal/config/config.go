package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite3"

	SessionBackendMemory = "memory"
	SessionBackendRedis  = "redis"
)

type Config struct {
	AppPort           string
	DbDriver          string
	SqlitePath        string
	DbHost            string
	DbPort            string
	DbUser            string
	DbPassword        string
	DbName            string
	DbParams          string
	SessionSecret     string
	SessionTTL        time.Duration
	SessionBackend    string
	SessionSecure     bool
	RedisAddr         string
	RedisPassword     string
	RedisDB           int
	LoginRatePerMin   int
	LoginBurst        int
	BcryptCost        int
	TranslationFolder string
	TrustedProxies    []string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbDriver:          parseDriver(getEnv("DB_DRIVER", DriverSQLite)),
		SqlitePath:        getEnv("SQLITE_PATH", "tasks.db"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "todo"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "todo"),
		DbName:            getEnv("MYSQL_DATABASE", "todo"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		SessionSecret:     getEnv("SESSION_SECRET", "change-me"),
		SessionTTL:        getDuration("SESSION_TTL", 24*time.Hour),
		SessionBackend:    parseSessionBackend(getEnv("SESSION_BACKEND", SessionBackendMemory)),
		SessionSecure:     getBool("SESSION_COOKIE_SECURE", false),
		RedisAddr:         getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:     getEnv("REDIS_PASSWORD", ""),
		RedisDB:           getInt("REDIS_DB", 0),
		LoginRatePerMin:   getInt("LOGIN_RATE_PER_MINUTE", 10),
		LoginBurst:        getInt("LOGIN_BURST", 5),
		BcryptCost:        getInt("BCRYPT_COST", 10),
		TranslationFolder: getEnv("TRANSLATION_FOLDER", "pkg/translator/translation"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getInt(key string, fallback int) int {
	value, err := strconv.Atoi(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getBool(key string, fallback bool) bool {
	value, err := strconv.ParseBool(strings.TrimSpace(os.Getenv(key)))
	if err != nil {
		return fallback
	}
	return value
}

func getDuration(key string, fallback time.Duration) time.Duration {
	value, err := time.ParseDuration(strings.TrimSpace(os.Getenv(key)))
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}

func parseDriver(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), DriverMySQL) {
		return DriverMySQL
	}
	return DriverSQLite
}

func parseSessionBackend(value string) string {
	if strings.EqualFold(strings.TrimSpace(value), SessionBackendRedis) {
		return SessionBackendRedis
	}
	return SessionBackendMemory
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
