// Package db opens the GORM connection used by both stores.
package db

import (
	"fmt"
	"log"
	"os"
	"time"

	gpostgres "gorm.io/driver/postgres"
	gsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"

	moviesentity "github.com/ghostmaruko/myFlix-API/internal/feature/movies/domain/entity"
	usersentity "github.com/ghostmaruko/myFlix-API/internal/feature/users/domain/entity"
)

// OpenDB connects to the configured database, retrying for up to a minute.
// Set DB_DRIVER=sqlite with DB_PATH for local runs; the default is Postgres
// over DB_HOST/DB_PORT/DB_USER/DB_PASSWORD/DB_NAME. TranslateError is on so
// duplicate-key violations surface as gorm.ErrDuplicatedKey regardless of
// engine.
func OpenDB() *gorm.DB {
	dial := dialector()
	cfg := &gorm.Config{TranslateError: true}

	var (
		db  *gorm.DB
		err error
	)

	deadline := time.Now().Add(60 * time.Second)
	for {
		db, err = gorm.Open(dial, cfg)
		if err == nil {
			break
		}
		if time.Now().After(deadline) {
			log.Fatalf("DB connect failed after 60s: %v", err)
		}
		log.Printf("DB connect failed, retrying...: %v", err)
		time.Sleep(3 * time.Second)
	}

	if os.Getenv("RUN_MIGRATIONS") == "true" {
		if err := db.AutoMigrate(
			&usersentity.User{},
			&usersentity.FavoriteMovie{},
			&moviesentity.Movie{},
		); err != nil {
			log.Fatalf("failed to migrate: %v", err)
		}
	}

	return db
}

func dialector() gorm.Dialector {
	if os.Getenv("DB_DRIVER") == "sqlite" {
		path := os.Getenv("DB_PATH")
		if path == "" {
			path = "myflix.db"
		}
		return gsqlite.Open(path)
	}

	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=disable TimeZone=UTC",
		os.Getenv("DB_HOST"),
		os.Getenv("DB_PORT"),
		os.Getenv("DB_USER"),
		os.Getenv("DB_PASSWORD"),
		os.Getenv("DB_NAME"),
	)
	return gpostgres.Open(dsn)
}
