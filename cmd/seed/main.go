// Seeds the products collection with generated fixtures spread round-robin
// across the three regions. The canonical API has no product-create route,
// so the seeder writes through the repository layer directly.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"math/rand"

	"github.com/Zeldean/DBD-Project/internal/config"
	"github.com/Zeldean/DBD-Project/internal/database"
	"github.com/Zeldean/DBD-Project/internal/models"
	"github.com/Zeldean/DBD-Project/internal/repository"
)

func main() {
	count := flag.Int("count", 100, "number of products to insert")
	flag.Parse()

	cfg := config.LoadConfig()
	client := database.Connect(cfg.MongoURI)
	defer client.Disconnect(context.Background())

	products := repository.NewProductRepository(
		client.Database(cfg.MongoDB).Collection("products"))

	inserted := 0
	for i := 0; i < *count; i++ {
		region := models.Regions[i%len(models.Regions)]

		category := "electronics"
		if i%2 != 0 {
			category = "clothing"
		}

		product := models.Product{
			Name:        fmt.Sprintf("Sharded Product %d", i),
			Description: fmt.Sprintf("Auto-generated product %d for seeding", i),
			Price:       float64(rand.Intn(901) + 100),
			Stock:       rand.Intn(50) + 1,
			Category:    category,
			Regions:     []string{region},
		}

		if err := products.Insert(context.Background(), &product); err != nil {
			log.Printf("insert product %d: %v", i+1, err)
			continue
		}
		inserted++
		log.Printf("inserted product %d into %s", i+1, region)
	}

	log.Printf("done: %d/%d products inserted", inserted, *count)
}
