package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"geosolar-backoffice/internal/config"
	"geosolar-backoffice/internal/models"

	"github.com/go-redis/redis/v8"
)

const (
	productListKey = "catalog:products"
	productListTTL = 5 * time.Minute
)

var rdb *redis.Client

// Init connects the optional product cache. With no REDIS_HOST configured
// every cache call becomes a no-op and the catalog is served from the
// database directly.
func Init(cfg config.RedisConfig) {
	if cfg.Host == "" {
		log.Println("REDIS_HOST not set, product cache disabled")
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%s", cfg.Host, cfg.Port),
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
	})

	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Printf("Redis unreachable, product cache disabled: %v", err)
		return
	}

	rdb = client
	log.Println("✅ Redis product cache connected")
}

// GetProductList returns the cached catalog, if present.
func GetProductList(ctx context.Context) ([]models.Product, bool) {
	if rdb == nil {
		return nil, false
	}
	raw, err := rdb.Get(ctx, productListKey).Result()
	if err != nil {
		return nil, false
	}
	var products []models.Product
	if err := json.Unmarshal([]byte(raw), &products); err != nil {
		return nil, false
	}
	return products, true
}

// SetProductList stores the catalog snapshot.
func SetProductList(ctx context.Context, products []models.Product) {
	if rdb == nil {
		return
	}
	raw, err := json.Marshal(products)
	if err != nil {
		return
	}
	rdb.Set(ctx, productListKey, raw, productListTTL)
}

// InvalidateProducts drops the snapshot after any catalog write.
func InvalidateProducts(ctx context.Context) {
	if rdb == nil {
		return
	}
	rdb.Del(ctx, productListKey)
}
