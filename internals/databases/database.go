package database

import (
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"

	"worklaw_backend/internals/configs"
)

// Connect opens the database named by DATABASE_URL. Postgres URLs go through
// the pgx-based driver with the simple protocol (PgBouncer friendly); anything
// else is treated as a sqlite path, which is also the dev default.
func Connect(s configs.Settings) (*gorm.DB, error) {
	dial := dialectorFor(s.DatabaseURL)

	db, err := gorm.Open(dial, &gorm.Config{
		Logger: configs.NewGormLogger(),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", redactDSN(s.DatabaseURL), err)
	}
	log.Println("[INFO] DB connected.")
	return db, nil
}

func dialectorFor(url string) gorm.Dialector {
	switch {
	case strings.HasPrefix(url, "postgres://"), strings.HasPrefix(url, "postgresql://"):
		return postgres.New(postgres.Config{
			DSN:                  url,
			PreferSimpleProtocol: true,
		})
	case strings.HasPrefix(url, "sqlite://"):
		return sqlite.Open(strings.TrimPrefix(url, "sqlite://"))
	default:
		// bare file path
		return sqlite.Open(url)
	}
}

func TunePool(db *gorm.DB) {
	sqlDB, err := db.DB()
	if err != nil {
		log.Printf("pool tune err: %v", err)
		return
	}
	sqlDB.SetMaxOpenConns(20)
	sqlDB.SetMaxIdleConns(10)
	sqlDB.SetConnMaxIdleTime(60 * time.Second)
	sqlDB.SetConnMaxLifetime(10 * time.Minute)
}

// WarmUp pings in the background so the pool is filled by the time the first
// request arrives.
func WarmUp(db *gorm.DB) {
	go func() {
		time.Sleep(500 * time.Millisecond)
		if err := Ping(db); err != nil {
			log.Printf("warm-up ping err: %v", err)
		}
	}()
}

func Ping(db *gorm.DB) error {
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func redactDSN(url string) string {
	if i := strings.Index(url, "@"); i >= 0 {
		if j := strings.Index(url, "://"); j >= 0 && j < i {
			return url[:j+3] + "***" + url[i:]
		}
	}
	return url
}
