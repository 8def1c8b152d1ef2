// Command seed populates the database with demo users, posts, likes,
// comments and a few reports for local development.
package main

import (
	"flag"
	"log"
	"math/rand"
	"time"

	"notebooks/internal/config"
	"notebooks/internal/database"
	"notebooks/internal/models"
	"notebooks/internal/seed"
)

func main() {
	users := flag.Int("users", 15, "number of users to create")
	posts := flag.Int("posts", 60, "number of posts to create")
	maxDays := flag.Int("max-days", 30, "spread post creation over the last N days")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	factory := seed.NewFactory(db, seed.SeedOptions{
		MaxDays:       *maxDays,
		StorageOrigin: cfg.StorageOriginURL,
	})

	// #nosec G404: acceptable for seeding
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	createdUsers := make([]*models.User, 0, *users)
	for i := 0; i < *users; i++ {
		u, err := factory.CreateUser()
		if err != nil {
			log.Fatalf("Failed to create user: %v", err)
		}
		createdUsers = append(createdUsers, u)
	}
	log.Printf("Created %d users", len(createdUsers))

	createdPosts := make([]*models.Post, 0, *posts)
	for i := 0; i < *posts; i++ {
		author := createdUsers[rng.Intn(len(createdUsers))]
		p, err := factory.CreatePost(author)
		if err != nil {
			log.Fatalf("Failed to create post: %v", err)
		}
		createdPosts = append(createdPosts, p)
	}
	log.Printf("Created %d posts", len(createdPosts))

	likes, comments, reports := 0, 0, 0
	for _, p := range createdPosts {
		for _, u := range createdUsers {
			if rng.Intn(3) == 0 {
				if err := factory.CreateLike(u, p); err != nil {
					log.Fatalf("Failed to create like: %v", err)
				}
				likes++
			}
			if rng.Intn(5) == 0 {
				if _, err := factory.CreateComment(u, p); err != nil {
					log.Fatalf("Failed to create comment: %v", err)
				}
				comments++
			}
		}
		// a sprinkle of reports, always below the removal threshold
		if rng.Intn(10) == 0 {
			reporter := createdUsers[rng.Intn(len(createdUsers))]
			if _, err := factory.CreateReport(reporter, p, ""); err != nil {
				log.Fatalf("Failed to create report: %v", err)
			}
			reports++
		}
	}
	log.Printf("Created %d likes, %d comments, %d reports", likes, comments, reports)
	log.Println("Seeding complete")
}
