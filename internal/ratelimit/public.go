package ratelimit

import (
	"context"
	"fmt"
	"strings"

	"github.com/Chibschibs-tech/fitnest-monorepo-sub004/internal/config"
	redis "github.com/redis/go-redis/v9"
)

const (
	keyQuote    = "pricing:quote:ip:%s"
	keyWaitlist = "waitlist:signup:ip:%s"
)

// PublicLimiter throttles the unauthenticated storefront endpoints per
// client IP. Without Redis configured it admits everything, so local
// development needs no extra services.
type PublicLimiter struct {
	bucket  *TokenBucket
	pricing *config.PricingConfigHolder
}

func NewPublicLimiter(cfg config.Config, pricing *config.PricingConfigHolder) *PublicLimiter {
	addr := strings.TrimSpace(cfg.RedisAddr)
	if addr == "" {
		return &PublicLimiter{pricing: pricing}
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: strings.TrimSpace(cfg.RedisPassword),
	})
	return &PublicLimiter{
		bucket:  NewTokenBucket(client),
		pricing: pricing,
	}
}

func (l *PublicLimiter) Enabled() bool {
	return l != nil && l.bucket != nil
}

func (l *PublicLimiter) AllowQuote(ctx context.Context, clientIP string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	quoteCfg := l.pricing.Get()
	rate := float64(quoteCfg.QuoteRatePerMin) / 60.0
	return l.bucket.Allow(ctx, fmt.Sprintf(keyQuote, strings.TrimSpace(clientIP)), rate, quoteCfg.QuoteBurst)
}

func (l *PublicLimiter) AllowWaitlist(ctx context.Context, clientIP string) (bool, error) {
	if !l.Enabled() {
		return true, nil
	}
	quoteCfg := l.pricing.Get()
	rate := float64(quoteCfg.QuoteRatePerMin) / 60.0
	return l.bucket.Allow(ctx, fmt.Sprintf(keyWaitlist, strings.TrimSpace(clientIP)), rate, quoteCfg.QuoteBurst)
}
