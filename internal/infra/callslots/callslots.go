// Package callslots считает активные голосовые звонки ресторана в redis.
// Каждый звонок - member в sorted set со score = unix-время регистрации.
// Протухшие звонки вычищаются по score при каждом обращении, так что
// зависший звонок освобождает слот сам по истечении TTL.
package callslots

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Limiter ограничитель числа одновременных звонков на ресторан
type Limiter struct {
	client       *redis.Client
	maxCalls     int
	ttl          time.Duration
	timeProvider TimeProvider
}

// NewLimiter создает лимитер. maxCalls - максимум одновременных звонков,
// ttl - время, после которого незавершенный звонок считается мертвым.
func NewLimiter(client *redis.Client, maxCalls int, ttl time.Duration) *Limiter {
	return &Limiter{
		client:       client,
		maxCalls:     maxCalls,
		ttl:          ttl,
		timeProvider: &RealTimeProvider{},
	}
}

func (l *Limiter) key(restaurantID int64) string {
	return "voice:calls:" + strconv.FormatInt(restaurantID, 10)
}

// prune убирает из set'а звонки старше TTL
func (l *Limiter) prune(ctx context.Context, key string, now time.Time) error {
	cutoff := now.Add(-l.ttl).Unix()
	return l.client.ZRemRangeByScore(ctx, key, "-inf", strconv.FormatInt(cutoff, 10)).Err()
}

// Acquire пытается занять слот под звонок callID.
// Возвращает false, если все слоты заняты.
func (l *Limiter) Acquire(ctx context.Context, restaurantID int64, callID string) (bool, error) {
	key := l.key(restaurantID)
	now := l.timeProvider.Now()

	if err := l.prune(ctx, key, now); err != nil {
		return false, fmt.Errorf("callslots: Acquire - prune stale calls: %w", err)
	}

	active, err := l.client.ZCard(ctx, key).Result()
	if err != nil {
		return false, fmt.Errorf("callslots: Acquire - count active calls: %w", err)
	}
	if active >= int64(l.maxCalls) {
		return false, nil
	}

	if err := l.client.ZAdd(ctx, key, redis.Z{
		Score:  float64(now.Unix()),
		Member: callID,
	}).Err(); err != nil {
		return false, fmt.Errorf("callslots: Acquire - register call: %w", err)
	}

	// страховочный TTL на весь ключ, чтобы пустые set'ы не жили вечно
	if err := l.client.Expire(ctx, key, l.ttl*2).Err(); err != nil {
		return false, fmt.Errorf("callslots: Acquire - set key ttl: %w", err)
	}

	return true, nil
}

// Release освобождает слот завершившегося звонка
func (l *Limiter) Release(ctx context.Context, restaurantID int64, callID string) error {
	if err := l.client.ZRem(ctx, l.key(restaurantID), callID).Err(); err != nil {
		return fmt.Errorf("callslots: Release - remove call: %w", err)
	}
	return nil
}

// Active возвращает число активных звонков ресторана
func (l *Limiter) Active(ctx context.Context, restaurantID int64) (int, error) {
	key := l.key(restaurantID)

	if err := l.prune(ctx, key, l.timeProvider.Now()); err != nil {
		return 0, fmt.Errorf("callslots: Active - prune stale calls: %w", err)
	}

	active, err := l.client.ZCard(ctx, key).Result()
	if err != nil {
		return 0, fmt.Errorf("callslots: Active - count active calls: %w", err)
	}

	return int(active), nil
}
