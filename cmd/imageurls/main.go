// Command imageurls rewrites every stored movie image reference onto a new
// base URL. One-shot maintenance tool for when the image host moves.
package main

import (
	"context"
	"flag"
	"log"
	"os"
	"strings"

	moviesadapters "github.com/ghostmaruko/myFlix-API/internal/feature/movies/adapters"
	moviesusecase "github.com/ghostmaruko/myFlix-API/internal/feature/movies/usecase"
	infradb "github.com/ghostmaruko/myFlix-API/internal/platform/db"
)

func main() {
	base := flag.String("base", os.Getenv("IMAGE_BASE_URL"), "new image base URL, e.g. https://myflix-api.example.com/img")
	flag.Parse()

	if *base == "" {
		log.Fatal("image base URL required (-base flag or IMAGE_BASE_URL)")
	}

	db := infradb.OpenDB()
	movies := moviesusecase.NewMovieUsecase(moviesadapters.NewMovieGorm(db), "")

	updated, err := movies.RewriteImageURLs(context.Background(), strings.TrimRight(*base, "/"))
	if err != nil {
		log.Fatalf("rewrite failed after %d updates: %v", updated, err)
	}
	log.Printf("all image URLs updated (%d records)", updated)
}
