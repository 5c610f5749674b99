package main

import (
	"fmt"
	"log"

	"qrmenu/configs"
	"qrmenu/middlewares"
	"qrmenu/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if cfg.SeedDemo {
		if err := configs.SeedDemo(); err != nil {
			log.Fatalf("seed demo failed: %v", err)
		}
	}

	// HTTP
	r := gin.Default()

	r.Use(middlewares.CORSMiddleware())

	// serve uploaded product/logo images
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	port := cfg.Port
	addr := fmt.Sprintf(":%s", port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
