package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	MongoURI   string
	MongoDB    string
	Port       string
	AdminToken string
}

func LoadConfig() *Config {
	// .env only exists in local development; deployed environments inject
	// everything through the process environment.
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(); err != nil {
			log.Println("error loading .env file:", err)
		}
	}

	return &Config{
		// Default points at the mongos router of the sharded cluster,
		// not at a bare mongod.
		MongoURI:   getEnv("MONGO_URI", "mongodb://localhost:30000/ecommerce"),
		MongoDB:    getEnv("MONGO_DB", "ecommerce"),
		Port:       getEnv("PORT", "5000"),
		AdminToken: getEnv("ADMIN_TOKEN", ""),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
