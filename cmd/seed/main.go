// Command main fills the blog database with demo posts and comments.
package main

import (
	"context"
	"flag"
	"log"

	"blogapi/internal/config"
	"blogapi/internal/database"
	"blogapi/internal/seed"
)

func main() {
	numPosts := flag.Int("posts", 25, "Number of posts to create")
	numComments := flag.Int("comments", 4, "Number of comments per post")
	maxDays := flag.Int("days", 90, "Spread creation dates over this many past days")
	randSeed := flag.Int64("seed", 0, "Random seed for reproducible content (0 = random)")
	shouldClean := flag.Bool("clean", false, "Delete every post and comment before seeding")
	flag.Parse()

	log.Printf("Target: %d posts, %d comments each, clean=%v", *numPosts, *numComments, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	ctx := context.Background()
	s := seed.NewSeeder(db)

	if *shouldClean {
		if err := s.ClearAll(ctx); err != nil {
			log.Fatalf("Cleanup failed: %v", err)
		}
	}

	sum, err := s.Seed(ctx, seed.Options{
		NumPosts:        *numPosts,
		CommentsPerPost: *numComments,
		MaxDays:         *maxDays,
		RandSeed:        *randSeed,
	})
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Created %d posts and %d comments", sum.Posts, sum.Comments)
}
