package main

import (
	"fmt"
	"log"

	"github.com/IshuIsSleepy/KhanaKhalo/configs"
	"github.com/IshuIsSleepy/KhanaKhalo/middlewares"
	"github.com/IshuIsSleepy/KhanaKhalo/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	db := configs.DB()

	// migrate
	configs.SetupDatabase()

	if err := configs.SeedUniversities(); err != nil {
		log.Fatalf("seed universities failed: %v", err)
	}
	if err := configs.SeedDemoVendor(); err != nil {
		log.Fatalf("seed demo vendor failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.HandleMethodNotAllowed = true

	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
