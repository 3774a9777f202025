// Command main seeds the database with the curated catalog and generated
// demo content. Intended for development environments only.
package main

import (
	"flag"
	"log"

	"tinkerlab/internal/config"
	"tinkerlab/internal/database"
	"tinkerlab/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", 25, "number of community posts to generate")
	maxComments := flag.Int("max-comments", 6, "maximum comments per post")
	numListings := flag.Int("listings", 8, "number of team-up listings to generate")
	clean := flag.Bool("clean", false, "delete existing rows before seeding")
	catalogOnly := flag.Bool("catalog-only", false, "seed only the curated catalog, skip generated content")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Env == "production" {
		log.Fatal("Refusing to seed a production database")
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	err = seed.Seed(db, seed.Options{
		NumPosts:      *numPosts,
		MaxComments:   *maxComments,
		NumListings:   *numListings,
		ShouldClean:   *clean,
		SkipGenerated: *catalogOnly,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("Seeding complete")
}
