// Package router wires handlers and middleware into the HTTP route table.
package router

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/ghostmaruko/myFlix-API/internal/app/config"
	authhandler "github.com/ghostmaruko/myFlix-API/internal/feature/auth/transport/handler"
	movieshandler "github.com/ghostmaruko/myFlix-API/internal/feature/movies/transport/handler"
	usershandler "github.com/ghostmaruko/myFlix-API/internal/feature/users/transport/handler"
	platformhandler "github.com/ghostmaruko/myFlix-API/internal/platform/http/handler"
	platformjwt "github.com/ghostmaruko/myFlix-API/internal/platform/jwt"
)

// NewRouter builds the route table. The CORS allow-list comes from the
// immutable startup config; the core never consults it.
func NewRouter(
	cfg *config.Config,
	resolver platformjwt.UserResolver,
	authH *authhandler.AuthHandler,
	usersH *usershandler.UserHandler,
	moviesH *movieshandler.MovieHandler,
) *gin.Engine {
	r := gin.Default()
	r.Use(RequestID())

	if len(cfg.AllowedOrigins) > 0 {
		cc := cors.DefaultConfig()
		cc.AllowOrigins = cfg.AllowedOrigins
		cc.AllowCredentials = true
		r.Use(cors.New(cc))
	}

	// Public routes
	r.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "myFlix API is running"})
	})
	r.GET("/healthz", platformhandler.Health)
	r.POST("/users", usersH.Register)
	r.POST("/login", authH.Login)
	// Catalog listing is public; every other catalog read needs a token
	r.GET("/movies", moviesH.List)

	// Protected routes: bearer token required, identity resolved against the
	// user store before any handler runs
	auth := r.Group("/")
	auth.Use(platformjwt.AuthRequired(cfg.JWTSecret, resolver))
	{
		auth.GET("/movies/:title", moviesH.GetByTitle)
		auth.GET("/genres/:name", moviesH.GetGenre)
		auth.GET("/directors/:name", moviesH.GetDirector)

		auth.GET("/users", usersH.List)
		auth.GET("/users/:username", usersH.Get)
		auth.PUT("/users/:username", usersH.Update)
		auth.DELETE("/users/:username", usersH.Delete)
		auth.POST("/users/:username/movies/:movieID", usersH.AddFavorite)
		auth.DELETE("/users/:username/movies/:movieID", usersH.RemoveFavorite)
	}

	return r
}
