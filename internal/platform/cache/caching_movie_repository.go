// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/ghostmaruko/myFlix-API/internal/feature/movies/domain/entity"
	"github.com/ghostmaruko/myFlix-API/internal/feature/movies/usecase"
)

// CachingMovieRepository decorates a movie Repository with Redis caching.
// The catalog is read-mostly, so every lookup is read-through; the only write
// path (image-URL rewriting) invalidates the whole namespace.
type CachingMovieRepository struct {
	inner     usecase.Repository
	rdb       *redis.Client
	ttl       time.Duration
	namespace string
}

// Compile-time check that the decorator still satisfies usecase.Repository.
var _ usecase.Repository = (*CachingMovieRepository)(nil)

// NewCachingMovieRepository decorates a movie Repository with Redis caching.
// If ttl is 0, it defaults to 5 minutes. If namespace is empty, it uses "movies".
func NewCachingMovieRepository(rdb *redis.Client, ttl time.Duration, inner usecase.Repository, namespace string) *CachingMovieRepository {
	if ttl <= 0 {
		ttl = 5 * time.Minute
	}
	if namespace == "" {
		namespace = "movies"
	}
	return &CachingMovieRepository{
		inner:     inner,
		rdb:       rdb,
		ttl:       ttl,
		namespace: namespace,
	}
}

// FindAll retrieves the catalog, checking cache first then falling back to
// the database.
func (c *CachingMovieRepository) FindAll(ctx context.Context) ([]entity.Movie, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.FindAll(ctx)
	}

	key := c.namespace + ":all"

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// FindByTitle retrieves one movie by title through the cache.
func (c *CachingMovieRepository) FindByTitle(ctx context.Context, title string) (*entity.Movie, error) {
	return c.findOne(ctx, c.cacheKey("title", title), func() (*entity.Movie, error) {
		return c.inner.FindByTitle(ctx, title)
	})
}

// FindByGenreName retrieves one movie by genre name through the cache.
func (c *CachingMovieRepository) FindByGenreName(ctx context.Context, name string) (*entity.Movie, error) {
	return c.findOne(ctx, c.cacheKey("genre", name), func() (*entity.Movie, error) {
		return c.inner.FindByGenreName(ctx, name)
	})
}

// FindByDirectorName retrieves one movie by director name through the cache.
func (c *CachingMovieRepository) FindByDirectorName(ctx context.Context, name string) (*entity.Movie, error) {
	return c.findOne(ctx, c.cacheKey("director", name), func() (*entity.Movie, error) {
		return c.inner.FindByDirectorName(ctx, name)
	})
}

// UpdateImageURL writes through to the database and invalidates every cached
// catalog entry.
func (c *CachingMovieRepository) UpdateImageURL(ctx context.Context, id, imageURL string) error {
	if err := c.inner.UpdateImageURL(ctx, id, imageURL); err != nil {
		return err
	}
	if c.rdb == nil {
		return nil
	}
	_ = c.deleteByPattern(ctx, c.namespace+":*") // Best effort: don't fail if cache deletion fails
	return nil
}

// findOne is the shared read-through path for single-movie lookups.
// Misses from the underlying repository are not cached.
func (c *CachingMovieRepository) findOne(ctx context.Context, key string, load func() (*entity.Movie, error)) (*entity.Movie, error) {
	if c.rdb == nil {
		return load()
	}

	if b, err := c.rdb.Get(ctx, key).Bytes(); err == nil && len(b) > 0 {
		var out entity.Movie
		if err := json.Unmarshal(b, &out); err == nil {
			return &out, nil
		}
		_ = c.rdb.Del(ctx, key).Err()
	}

	out, err := load()
	if err != nil {
		return nil, err
	}

	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, key, b, c.ttl).Err()
	}

	return out, nil
}

// cacheKey generates a cache key for a single-movie lookup.
func (c *CachingMovieRepository) cacheKey(kind, value string) string {
	return fmt.Sprintf("%s:%s:%s", c.namespace, kind, safeKey(value))
}

// deleteByPattern deletes all cache keys matching a given pattern using SCAN.
func (c *CachingMovieRepository) deleteByPattern(ctx context.Context, pattern string) error {
	var cursor uint64
	for {
		keys, cur, err := c.rdb.Scan(ctx, cursor, pattern, 200).Result()
		if err != nil {
			return err
		}
		if len(keys) > 0 {
			if err := c.rdb.Del(ctx, keys...).Err(); err != nil {
				return err
			}
		}
		cursor = cur
		if cursor == 0 {
			break
		}
	}
	return nil
}
