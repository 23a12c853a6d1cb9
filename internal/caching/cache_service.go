package caching

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"renthub/internal/models"
)

type CacheService interface {
	// Membership status caching
	GetMembershipStatus(ctx context.Context, landlordID uuid.UUID) (*models.MembershipStatus, error)
	SetMembershipStatus(ctx context.Context, landlordID uuid.UUID, status *models.MembershipStatus, ttl time.Duration) error
	DeleteMembershipStatus(ctx context.Context, landlordID uuid.UUID) error

	// Generic string operations
	SetString(ctx context.Context, key string, value string, ttl time.Duration) error
	GetString(ctx context.Context, key string) (string, error)
	Delete(ctx context.Context, key string) error

	Ping(ctx context.Context) error
}

type redisCacheService struct {
	client *redis.Client
}

func NewRedisCacheService(addr, password string, db int) CacheService {
	// Accept both host:port and redis://host:port forms
	parsedAddr := addr
	if strings.HasPrefix(addr, "redis://") || strings.HasPrefix(addr, "rediss://") {
		parsedAddr = strings.TrimPrefix(strings.TrimPrefix(addr, "redis://"), "rediss://")
	}

	client := redis.NewClient(&redis.Options{
		Addr:     parsedAddr,
		Password: password,
		DB:       db,
	})

	return &redisCacheService{client: client}
}

func membershipKey(landlordID uuid.UUID) string {
	return fmt.Sprintf("renthub:membership:%s", landlordID.String())
}

func (r *redisCacheService) GetMembershipStatus(ctx context.Context, landlordID uuid.UUID) (*models.MembershipStatus, error) {
	data, err := r.client.Get(ctx, membershipKey(landlordID)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil // cache miss
		}
		return nil, err
	}

	var status models.MembershipStatus
	if err := json.Unmarshal(data, &status); err != nil {
		return nil, err
	}
	return &status, nil
}

func (r *redisCacheService) SetMembershipStatus(ctx context.Context, landlordID uuid.UUID, status *models.MembershipStatus, ttl time.Duration) error {
	data, err := json.Marshal(status)
	if err != nil {
		return err
	}
	return r.client.Set(ctx, membershipKey(landlordID), data, ttl).Err()
}

func (r *redisCacheService) DeleteMembershipStatus(ctx context.Context, landlordID uuid.UUID) error {
	return r.client.Del(ctx, membershipKey(landlordID)).Err()
}

func (r *redisCacheService) SetString(ctx context.Context, key string, value string, ttl time.Duration) error {
	return r.client.Set(ctx, key, value, ttl).Err()
}

func (r *redisCacheService) GetString(ctx context.Context, key string) (string, error) {
	value, err := r.client.Get(ctx, key).Result()
	if err != nil {
		if err == redis.Nil {
			return "", nil
		}
		return "", err
	}
	return value, nil
}

func (r *redisCacheService) Delete(ctx context.Context, key string) error {
	return r.client.Del(ctx, key).Err()
}

func (r *redisCacheService) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}
