package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/vbfcarvalho/barber-agenda/internal/config"
	dbpkg "github.com/vbfcarvalho/barber-agenda/internal/db"
	"github.com/vbfcarvalho/barber-agenda/internal/middleware"
	"github.com/vbfcarvalho/barber-agenda/internal/routes"
)

func main() {

	cfg := config.Load()
	db := dbpkg.NewDB(cfg)
	rdb := dbpkg.NewRedis(cfg)

	r := gin.Default()

	r.Use(middleware.CORSMiddleware())
	r.Use(middleware.RequestID())

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}
