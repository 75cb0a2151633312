package main

import (
	"log"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"spicestore-backend/internal/config"
	"spicestore-backend/internal/handlers"
	"spicestore-backend/internal/mailer"
	"spicestore-backend/internal/routes"
	"spicestore-backend/internal/store"
)

func main() {
	cfg := config.Load()

	log.Printf("Connecting to MongoDB at: %s", cfg.MongoURI)
	st, err := store.Connect(cfg.MongoURI, cfg.MongoDB)
	if err != nil {
		log.Fatalf("mongo connect failed: %v", err)
	}

	mail := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.EmailUser, cfg.EmailPass)
	h := handlers.New(st, mail, cfg)

	r := gin.Default()
	r.Use(cors.New(corsConfig(cfg)))
	routes.Register(r, h)

	log.Printf("Starting server on :%s", cfg.AppPort)
	if err := r.Run(":" + cfg.AppPort); err != nil {
		log.Fatalf("gin.Run error: %v", err)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	conf := cors.Config{
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type", "Authorization"},
	}
	if cfg.AllowOrigins == "*" {
		conf.AllowAllOrigins = true
		return conf
	}
	conf.AllowOrigins = strings.Split(cfg.AllowOrigins, ",")
	conf.AllowCredentials = true
	return conf
}
