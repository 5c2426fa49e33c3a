package middleware

import (
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/vbfcarvalho/barber-agenda/internal/httperr"
)

// INCR e PEXPIRE precisam ser atômicos: separados, uma falha entre os
// dois deixa a chave sem TTL e a janela nunca reinicia para aquele IP.
var fixedWindowScript = redis.NewScript(`
local current = redis.call("INCR", KEYS[1])
if current == 1 then
  redis.call("PEXPIRE", KEYS[1], ARGV[1])
end
return current
`)

// RateLimit aplica uma janela fixa por IP sobre o endpoint de
// agendamento, contada no Redis para valer entre instâncias.
// Sem cliente configurado, ou com o Redis fora do ar, o limitador
// abre (fail-open): indisponibilidade de Redis não derruba reservas.
func RateLimit(rdb *redis.Client, limit int, window time.Duration) gin.HandlerFunc {
	if rdb == nil || limit <= 0 {
		return func(c *gin.Context) {
			c.Next()
		}
	}

	if window <= 0 {
		window = time.Minute
	}

	return func(c *gin.Context) {
		ctx := c.Request.Context()
		key := "rl:booking:" + c.ClientIP()

		res, err := fixedWindowScript.Run(ctx, rdb, []string{key}, window.Milliseconds()).Result()
		if err != nil {
			log.Println("rate limiter unavailable:", err)
			c.Next()
			return
		}

		count, ok := res.(int64)
		if !ok {
			c.Next()
			return
		}

		if count > int64(limit) {
			httperr.TooManyRequests(c, "rate_limited", "Muitas tentativas. Aguarde um instante.")
			c.Abort()
			return
		}

		c.Next()
	}
}
