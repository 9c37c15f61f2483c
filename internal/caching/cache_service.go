package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"stockwatch/internal/models"
)

// CacheService fronts redis for the catalog read surfaces and the request
// rate limiter. The alert derivation itself never reads from here; every
// alert request recomputes from the store.
type CacheService interface {
	// Product caching
	GetProduct(ctx context.Context, productID int64) (*models.Product, error)
	SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error

	// Supplier caching
	GetSupplier(ctx context.Context, supplierID int64) (*models.Supplier, error)
	SetSupplier(ctx context.Context, supplier *models.Supplier, ttl time.Duration) error

	// Rate limiting
	IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
	IncrementRateLimit(ctx context.Context, key string, window time.Duration) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &redisCacheService{client: client}
}

func (r *redisCacheService) GetProduct(ctx context.Context, productID int64) (*models.Product, error) {
	key := fmt.Sprintf("stockwatch:product:%d", productID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var product models.Product
	if err := json.Unmarshal(data, &product); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *redisCacheService) SetProduct(ctx context.Context, product *models.Product, ttl time.Duration) error {
	key := fmt.Sprintf("stockwatch:product:%d", product.ID)
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) GetSupplier(ctx context.Context, supplierID int64) (*models.Supplier, error) {
	key := fmt.Sprintf("stockwatch:supplier:%d", supplierID)
	data, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var supplier models.Supplier
	if err := json.Unmarshal(data, &supplier); err != nil {
		return nil, err
	}
	return &supplier, nil
}

func (r *redisCacheService) SetSupplier(ctx context.Context, supplier *models.Supplier, ttl time.Duration) error {
	key := fmt.Sprintf("stockwatch:supplier:%d", supplier.ID)
	data, err := json.Marshal(supplier)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

func (r *redisCacheService) IsRateLimited(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	rateKey := fmt.Sprintf("stockwatch:ratelimit:%s", key)
	count, err := r.client.Get(ctx, rateKey).Int()
	if err != nil {
		if err == redis.Nil {
			return false, nil
		}
		return false, err
	}
	return count >= limit, nil
}

func (r *redisCacheService) IncrementRateLimit(ctx context.Context, key string, window time.Duration) error {
	rateKey := fmt.Sprintf("stockwatch:ratelimit:%s", key)
	pipe := r.client.TxPipeline()
	pipe.Incr(ctx, rateKey)
	pipe.Expire(ctx, rateKey, window)
	_, err := pipe.Exec(ctx)
	return err
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
