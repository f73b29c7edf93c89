package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/Zeldean/DBD-Project/internal/config"
	"github.com/Zeldean/DBD-Project/internal/database"
	"github.com/Zeldean/DBD-Project/internal/routes"
)

func main() {
	cfg := config.LoadConfig()

	client := database.Connect(cfg.MongoURI)
	db := client.Database(cfg.MongoDB)

	if err := database.EnsureIndexes(db); err != nil {
		log.Fatal("ensure indexes:", err)
	}

	if cfg.AdminToken == "" {
		log.Println("ADMIN_TOKEN not set; admin routes will reject every request")
	}

	router := gin.Default()
	routes.RegisterRoutes(router, db, cfg)

	log.Println("server running on port", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
