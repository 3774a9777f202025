// Package seed loads the curated starter catalog and generates demo
// community content for development and testing.
package seed

import (
	"fmt"
	"log"

	"gorm.io/gorm"

	"tinkerlab/internal/models"
)

// Options configuration for the seeder
type Options struct {
	NumPosts      int
	MaxComments   int
	NumListings   int
	ShouldClean   bool
	SkipGenerated bool
}

// Seed populates the database: curated catalog entries from the embedded
// file, then generated community posts, comments and team-up listings.
func Seed(db *gorm.DB, opts Options) error {
	if opts.NumPosts <= 0 {
		opts.NumPosts = 25
	}
	if opts.MaxComments <= 0 {
		opts.MaxComments = 6
	}
	if opts.NumListings <= 0 {
		opts.NumListings = 8
	}

	if opts.ShouldClean {
		if err := clean(db); err != nil {
			return fmt.Errorf("clean tables: %w", err)
		}
	}

	curated, err := LoadCurated()
	if err != nil {
		return err
	}

	if err := db.Create(&curated.Projects).Error; err != nil {
		return fmt.Errorf("seed projects: %w", err)
	}
	if err := db.Create(&curated.PremadeProjects).Error; err != nil {
		return fmt.Errorf("seed premade projects: %w", err)
	}
	if err := db.Create(&curated.Tutorials).Error; err != nil {
		return fmt.Errorf("seed tutorials: %w", err)
	}
	log.Printf("Seeded %d projects, %d premade projects, %d tutorials",
		len(curated.Projects), len(curated.PremadeProjects), len(curated.Tutorials))

	if opts.SkipGenerated {
		return nil
	}

	factory := NewFactory()

	for i := 0; i < opts.NumPosts; i++ {
		post := factory.BuildCommunityPost()
		if err := db.Create(post).Error; err != nil {
			return fmt.Errorf("seed community post: %w", err)
		}
		numComments := factory.rng.Intn(opts.MaxComments + 1)
		for j := 0; j < numComments; j++ {
			comment := factory.BuildComment(post.ID, post.CreatedAt)
			if err := db.Create(comment).Error; err != nil {
				return fmt.Errorf("seed comment: %w", err)
			}
		}
	}
	log.Printf("Seeded %d community posts", opts.NumPosts)

	for i := 0; i < opts.NumListings; i++ {
		listing := factory.BuildTeamUpListing()
		if err := db.Create(listing).Error; err != nil {
			return fmt.Errorf("seed team-up listing: %w", err)
		}
	}
	log.Printf("Seeded %d team-up listings", opts.NumListings)

	return nil
}

func clean(db *gorm.DB) error {
	// Delete in dependency order; comments reference posts.
	for _, model := range []interface{}{
		&models.CommunityComment{},
		&models.CommunityPost{},
		&models.TeamUpListing{},
		&models.Tutorial{},
		&models.PremadeProject{},
		&models.Project{},
	} {
		if err := db.Session(&gorm.Session{AllowGlobalUpdate: true}).
			Unscoped().Delete(model).Error; err != nil {
			return err
		}
	}
	return nil
}
