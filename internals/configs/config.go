package configs

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	gormLogger "gorm.io/gorm/logger"
	"gorm.io/gorm/utils"
)

// Settings is built once in main (or a CLI command) and passed down to every
// component. Recognized env keys and their defaults live here and nowhere else.
type Settings struct {
	Env  string
	Host string
	Port string

	DatabaseURL string

	AdminUsername     string
	AdminPasswordHash string

	JWTSecret    string
	JWTExpireMin int

	CORSOrigins []string
	EnableHSTS  bool

	// OC credential for the national law OpenAPI (ingest-laws only)
	LawOC string
}

// =======================
// ENV LOADER
// =======================
func LoadEnv() {
	if os.Getenv("RAILWAY_ENVIRONMENT") == "" {
		if err := godotenv.Load(); err != nil {
			log.Println("[INFO] no .env file, using system env")
		} else {
			log.Println("[INFO] .env file loaded")
		}
	} else {
		log.Println("[INFO] running on Railway, using system env")
	}
}

// LoadSettings reads every recognized key. It never fails: missing values fall
// back to dev defaults, and components that truly require a key (e.g. LAW_OC
// for ingestion) check for emptiness themselves.
func LoadSettings() Settings {
	s := Settings{
		Env:  firstNonEmpty(os.Getenv("ENV"), os.Getenv("APP_ENV"), "dev"),
		Host: GetEnv("HOST", "0.0.0.0"),
		Port: GetEnv("PORT", "8000"),

		DatabaseURL: GetEnv("DATABASE_URL", "sqlite://./worklaw.db"),

		AdminUsername:     GetEnv("ADMIN_USERNAME", "admin"),
		AdminPasswordHash: GetEnv("ADMIN_PASSWORD_HASH", ""),

		JWTSecret:    GetEnv("JWT_SECRET", "change-me"),
		JWTExpireMin: GetEnvInt("JWT_EXPIRE_MIN", 120),

		EnableHSTS: strings.EqualFold(GetEnv("ENABLE_HSTS", "false"), "true"),

		LawOC: GetEnv("LAW_OC", ""),
	}

	s.CORSOrigins = ParseOrigins(
		os.Getenv("CORS_ORIGINS"),
		[]string{"http://localhost:3000"},
	)

	if s.JWTSecret == "change-me" {
		log.Println("[WARNING] JWT_SECRET not set, using dev default")
	}
	if s.AdminPasswordHash == "" {
		log.Println("[WARNING] ADMIN_PASSWORD_HASH not set, admin login will always fail")
	}
	return s
}

func GetEnv(key string, defaultValue ...string) string {
	value, exists := os.LookupEnv(key)
	if !exists && len(defaultValue) > 0 {
		return defaultValue[0]
	}
	return value
}

func GetEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
		log.Printf("[WARNING] %s=%q is not an int, using %d", key, v, def)
	}
	return def
}

// ParseOrigins accepts a JSON array string (["http://..."]) or a comma list.
func ParseOrigins(raw string, fallback []string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return fallback
	}
	if strings.HasPrefix(raw, "[") {
		var parsed []string
		if err := json.Unmarshal([]byte(raw), &parsed); err == nil {
			out := make([]string, 0, len(parsed))
			for _, o := range parsed {
				if o = strings.TrimSpace(o); o != "" {
					out = append(out, o)
				}
			}
			if len(out) > 0 {
				return out
			}
		}
		return fallback
	}
	var out []string
	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			out = append(out, o)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}

// =======================
// GORM LOGGER CUSTOM
// =======================
type GormLogger struct {
	SlowThreshold time.Duration
	LogLevel      gormLogger.LogLevel
}

func NewGormLogger() gormLogger.Interface {
	return &GormLogger{
		SlowThreshold: 200 * time.Millisecond,
		LogLevel:      gormLogger.Warn,
	}
}

func (l *GormLogger) LogMode(level gormLogger.LogLevel) gormLogger.Interface {
	l.LogLevel = level
	return l
}

func (l *GormLogger) Info(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Info {
		log.Printf("[INFO] "+msg, data...)
	}
}

func (l *GormLogger) Warn(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Warn {
		log.Printf("[WARN] "+msg, data...)
	}
}

func (l *GormLogger) Error(ctx context.Context, msg string, data ...interface{}) {
	if l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] "+msg, data...)
	}
}

func (l *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	elapsed := time.Since(begin)
	sql, rows := fc()
	file := utils.FileWithLineNum()

	if err != nil && l.LogLevel >= gormLogger.Error {
		log.Printf("[ERROR] %s | %v | %s | %d rows | %s", file, err, elapsed, rows, sql)
	} else if elapsed > l.SlowThreshold && l.LogLevel >= gormLogger.Warn {
		log.Printf("[SLOW SQL] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	} else if l.LogLevel >= gormLogger.Info {
		log.Printf("[QUERY] %s | %s | %d rows | %s", file, elapsed, rows, sql)
	}
}
