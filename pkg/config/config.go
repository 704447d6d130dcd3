package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DatabaseURL   string
	DBMaxConns    int
	JWTSecret     string
	JWTIssuer     string
	JWTTTLMinutes int
	AdminEmail    string

	LogLevel  string
	LogFormat string

	// Путь к YAML с алиасами категорий навыков; если пусто, только канонические ключи.
	SkillCategoryAliases string

	RequestTimeoutSeconds int
}

// RequestTimeout: таймаут чтения HTTP и бюджет запроса
// на чтение из хранилища.
func (c Config) RequestTimeout() time.Duration {
	return time.Duration(c.RequestTimeoutSeconds) * time.Second
}

// JWTTTL возвращает время жизни токена.
func (c Config) JWTTTL() time.Duration {
	return time.Duration(c.JWTTTLMinutes) * time.Minute
}

// Load читает переменные окружения, при наличии также из .env.
func Load() Config {
	// .env необязателен, ошибку отсутствия файла игнорируем
	_ = godotenv.Load()

	cfg := Config{
		Port:                  getEnv("PORT", "8080"),
		DatabaseURL:           os.Getenv("DATABASE_URL"),
		DBMaxConns:            getEnvInt("DB_MAX_CONNS", 10),
		JWTSecret:             getEnv("JWT_SECRET", "dev-secret-change"),
		JWTIssuer:             getEnv("JWT_ISSUER", "folio"),
		JWTTTLMinutes:         getEnvInt("JWT_TTL_MINUTES", 60),
		AdminEmail:            os.Getenv("ADMIN_EMAIL"),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
		LogFormat:             getEnv("LOG_FORMAT", "json"),
		SkillCategoryAliases:  os.Getenv("SKILL_CATEGORY_ALIASES"),
		RequestTimeoutSeconds: getEnvInt("REQUEST_TIMEOUT_SECONDS", 10),
	}
	return cfg
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
