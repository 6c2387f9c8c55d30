package main

import (
	"log"

	redisv9 "github.com/redis/go-redis/v9"

	"github.com/ghostmaruko/myFlix-API/internal/app/config"
	"github.com/ghostmaruko/myFlix-API/internal/app/router"
	authhandler "github.com/ghostmaruko/myFlix-API/internal/feature/auth/transport/handler"
	authusecase "github.com/ghostmaruko/myFlix-API/internal/feature/auth/usecase"
	moviesadapters "github.com/ghostmaruko/myFlix-API/internal/feature/movies/adapters"
	movieshandler "github.com/ghostmaruko/myFlix-API/internal/feature/movies/transport/handler"
	moviesusecase "github.com/ghostmaruko/myFlix-API/internal/feature/movies/usecase"
	usersadapters "github.com/ghostmaruko/myFlix-API/internal/feature/users/adapters"
	usershandler "github.com/ghostmaruko/myFlix-API/internal/feature/users/transport/handler"
	usersusecase "github.com/ghostmaruko/myFlix-API/internal/feature/users/usecase"
	"github.com/ghostmaruko/myFlix-API/internal/platform/cache"
	infradb "github.com/ghostmaruko/myFlix-API/internal/platform/db"
	infraredis "github.com/ghostmaruko/myFlix-API/internal/platform/redis"
	jwtmw "github.com/ghostmaruko/myFlix-API/internal/platform/jwt"
)

func main() {
	// Config: a missing signing secret aborts startup
	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	// db
	db := infradb.OpenDB()

	// Redis (optional: the catalog cache degrades to pass-through)
	var rdb *redisv9.Client
	if tmp, err := infraredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Repository
	userRepo := usersadapters.NewUserGorm(db)
	movieRepo := moviesadapters.NewMovieGorm(db)
	cachedMovieRepo := cache.NewCachingMovieRepository(rdb, 0, movieRepo, "movies")

	// Usecase
	issuer := jwtmw.NewGenerator(cfg.JWTSecret, cfg.TokenTTL)
	userUC := usersusecase.NewUserUsecase(userRepo)
	authUC := authusecase.NewAuthUsecase(userRepo, issuer)
	movieUC := moviesusecase.NewMovieUsecase(cachedMovieRepo, cfg.ImageBaseURL)

	// Handler
	authH := authhandler.NewAuthHandler(authUC)
	usersH := usershandler.NewUserHandler(userUC)
	moviesH := movieshandler.NewMovieHandler(movieUC)

	r := router.NewRouter(cfg, userRepo, authH, usersH, moviesH)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
