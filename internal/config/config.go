package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	StoragePostgres = "postgres"
	StorageMemory   = "memory"
)

type Config struct {
	Port    string
	Storage string // postgres|memory

	DbHost    string
	DbPort    string
	DbUser    string
	DbPass    string
	DbName    string
	DbSSLMode string

	JWTSecret      string
	AccessTokenTTL time.Duration

	Log      string
	LogLevel string
	Env      string // dev|prod

	SMTPHost           string
	SMTPPort           string
	SMTPUser           string
	SMTPPassword       string
	ContactNotifyEmail string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CacheTTL      time.Duration

	// Yazı oluşturma yetkisi: "user" (her oturum açmış kullanıcı) ya da "admin".
	PostCreateRole string
	CORSOrigins    []string
}

// LoadConfig .env dosyasını yükler, ortam değişkenlerini okur ve varsayılanları atar.
// Logger'a bağımlı olmaması için hiçbir şey loglamaz.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load(".env")

	def := func(v, d string) string {
		v = strings.TrimSpace(v)
		if v == "" {
			return d
		}
		return v
	}

	accessTTL, err := time.ParseDuration(def(os.Getenv("ACCESS_TOKEN_EXPIRY"), "24h"))
	if err != nil {
		return nil, fmt.Errorf("ACCESS_TOKEN_EXPIRY: %w", err)
	}
	cacheTTL, err := time.ParseDuration(def(os.Getenv("CACHE_TTL"), "60s"))
	if err != nil {
		return nil, fmt.Errorf("CACHE_TTL: %w", err)
	}
	redisDB, err := strconv.Atoi(def(os.Getenv("REDIS_DB"), "0"))
	if err != nil {
		return nil, fmt.Errorf("REDIS_DB: %w", err)
	}

	cfg := &Config{
		Port:    def(os.Getenv("PORT"), "8080"),
		Storage: strings.ToLower(def(os.Getenv("STORAGE"), StoragePostgres)),

		DbHost:    os.Getenv("DB_HOST"),
		DbPort:    def(os.Getenv("DB_PORT"), "5432"),
		DbUser:    os.Getenv("DB_USER"),
		DbPass:    os.Getenv("DB_PASSWORD"),
		DbName:    os.Getenv("DB_NAME"),
		DbSSLMode: def(os.Getenv("DB_SSLMODE"), "disable"),

		JWTSecret:      os.Getenv("JWT_SECRET"),
		AccessTokenTTL: accessTTL,

		Log:      os.Getenv("LOG"),
		LogLevel: strings.ToLower(def(os.Getenv("LOGLEVEL"), "info")),
		Env:      strings.ToLower(def(os.Getenv("ENV"), "prod")),

		SMTPHost:           os.Getenv("SMTP_HOST"),
		SMTPPort:           def(os.Getenv("SMTP_PORT"), "587"),
		SMTPUser:           os.Getenv("SMTP_USER"),
		SMTPPassword:       os.Getenv("SMTP_PASSWORD"),
		ContactNotifyEmail: os.Getenv("CONTACT_NOTIFY_EMAIL"),

		RedisAddr:     os.Getenv("REDIS_ADDR"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		RedisDB:       redisDB,
		CacheTTL:      cacheTTL,

		PostCreateRole: strings.ToLower(def(os.Getenv("POST_CREATE_ROLE"), "user")),
		CORSOrigins:    splitList(def(os.Getenv("CORS_ORIGINS"), "*")),
	}

	return cfg, nil
}

// Validate uyarıları ve (kritikse) fatal hatayı döner.
func (c *Config) Validate() (warnings []string, err error) {
	switch c.Storage {
	case StoragePostgres:
		if c.DbHost == "" || c.DbUser == "" || c.DbName == "" {
			return nil, fmt.Errorf("incomplete DB config (DB_HOST/DB_USER/DB_NAME)")
		}
	case StorageMemory:
		warnings = append(warnings, "STORAGE=memory: data is lost on restart")
	default:
		return nil, fmt.Errorf("unknown STORAGE %q (postgres|memory)", c.Storage)
	}

	if c.PostCreateRole != "user" && c.PostCreateRole != "admin" {
		return nil, fmt.Errorf("POST_CREATE_ROLE must be user or admin, got %q", c.PostCreateRole)
	}

	if strings.TrimSpace(c.JWTSecret) == "" {
		warnings = append(warnings, "JWT_SECRET is empty")
	}

	if c.ContactNotifyEmail != "" && (c.SMTPHost == "" || c.SMTPUser == "") {
		warnings = append(warnings, "CONTACT_NOTIFY_EMAIL is set but SMTP is not fully configured")
	}

	if c.RedisAddr == "" {
		warnings = append(warnings, "REDIS_ADDR is empty, response cache disabled")
	}

	return warnings, nil
}

// GetDSN: tam DSN (parolalı)
func (c *Config) GetDSN() string {
	return fmt.Sprintf(
		"postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbPass, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

// GetDSNSafe: loglar için parolasız DSN
func (c *Config) GetDSNSafe() string {
	return fmt.Sprintf(
		"postgres://%s:***@%s:%s/%s?sslmode=%s",
		c.DbUser, c.DbHost, c.DbPort, c.DbName, c.DbSSLMode,
	)
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
