package db

import (
	"log"

	"github.com/go-redis/redis/v8"

	"github.com/vbfcarvalho/barber-agenda/internal/config"
)

// NewRedis abre o cliente usado pelo rate limit. Redis é opcional:
// sem REDIS_URL a função devolve nil e o limitador é desligado.
func NewRedis(cfg *config.Config) *redis.Client {
	if cfg.RedisURL == "" {
		return nil
	}

	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, rate limit disabled: %v", err)
		return nil
	}

	return redis.NewClient(opts)
}
