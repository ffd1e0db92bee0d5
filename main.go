package main

import (
	"log"
	"os"
	"strings"
	"time"

	"github.com/Adiru352/luxmeet3.0/config"
	"github.com/Adiru352/luxmeet3.0/routes"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/go-gormigrate/gormigrate/v2"
)

func main() {
	DB := config.InitDB()
	mig := gormigrate.New(DB, gormigrate.DefaultOptions, config.GetMigrations())
	if err := mig.Migrate(); err != nil {
		log.Fatalf("❌ Migration Failed: %v", err)
	}

	router := gin.Default()

	router.Use(cors.New(cors.Config{
		AllowOrigins:     allowedOrigins(),
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(router)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	router.Run(":" + port)
}

func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return strings.Split(origins, ",")
	}
	return []string{"http://localhost:5173", "http://localhost:3000"}
}
