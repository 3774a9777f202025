package seed

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"tinkerlab/internal/models"
)

var (
	postCategories = []string{"builds", "questions", "show-and-tell", "competitions"}

	postTopics = []string{
		"line follower", "weather station", "solar tracker", "robot arm",
		"quadcopter", "rc car", "cnc router", "3d printer mod", "rocket altimeter",
	}

	listingDurations = []string{"2 weeks", "1 month", "3 months", "one semester"}

	listingSkills = []string{
		"CAD", "soldering", "PCB layout", "embedded C", "3D printing",
		"welding", "control theory", "machining", "technical writing",
	}
)

// Factory builds demo entities. It is intended for development and testing
// only.
type Factory struct {
	rng *rand.Rand
}

// NewFactory creates a Factory with its own RNG so parallel seeds do not
// interleave.
func NewFactory() *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{rng: rand.New(rand.NewSource(time.Now().UnixNano()))}
}

// spreadCreatedAt returns a timestamp up to maxDays in the past so feeds look
// lived-in rather than all stamped at seed time.
func (f *Factory) spreadCreatedAt(maxDays int) time.Time {
	if maxDays <= 0 {
		maxDays = 60
	}
	back := time.Duration(f.rng.Intn(maxDays))*24*time.Hour +
		time.Duration(f.rng.Intn(24))*time.Hour +
		time.Duration(f.rng.Intn(60))*time.Minute
	return time.Now().Add(-back)
}

func (f *Factory) pick(values []string) string {
	return values[f.rng.Intn(len(values))]
}

// BuildCommunityPost constructs an unpersisted community post.
func (f *Factory) BuildCommunityPost() *models.CommunityPost {
	topic := f.pick(postTopics)
	return &models.CommunityPost{
		Title:     fmt.Sprintf("My %s %s", topic, f.pick([]string{"build log", "questions", "results", "rebuild"})),
		Content:   gofakeit.Paragraph(1, 3, 6, "\n"),
		Author:    gofakeit.Username(),
		Category:  f.pick(postCategories),
		Tags:      models.StringList{topic},
		Likes:     f.rng.Intn(120),
		Views:     f.rng.Intn(2000),
		ImageURL:  fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		CreatedAt: f.spreadCreatedAt(60),
	}
}

// BuildComment constructs an unpersisted comment for the given post.
func (f *Factory) BuildComment(postID uint, postCreatedAt time.Time) *models.CommunityComment {
	created := postCreatedAt.Add(time.Duration(1+f.rng.Intn(72)) * time.Hour)
	if created.After(time.Now()) {
		created = time.Now()
	}
	return &models.CommunityComment{
		PostID:    postID,
		Author:    gofakeit.Username(),
		Content:   gofakeit.Sentence(8 + f.rng.Intn(10)),
		CreatedAt: created,
	}
}

// BuildTeamUpListing constructs an unpersisted collaboration listing.
func (f *Factory) BuildTeamUpListing() *models.TeamUpListing {
	teamSize := 2 + f.rng.Intn(5)
	skills := models.StringList{f.pick(listingSkills), f.pick(listingSkills)}
	difficulties := []models.Difficulty{
		models.DifficultyBeginner, models.DifficultyIntermediate, models.DifficultyAdvanced,
	}
	return &models.TeamUpListing{
		Title:          fmt.Sprintf("%s team for a %s", gofakeit.HackerAdjective(), f.pick(postTopics)),
		Description:    gofakeit.Paragraph(1, 2, 6, "\n"),
		Difficulty:     difficulties[f.rng.Intn(len(difficulties))],
		Duration:       f.pick(listingDurations),
		TeamSize:       teamSize,
		OpenPositions:  1 + f.rng.Intn(teamSize),
		SkillsRequired: skills,
		ImageURL:       fmt.Sprintf("https://picsum.photos/seed/%s/800/600", gofakeit.UUID()),
		CreatedAt:      f.spreadCreatedAt(30),
	}
}
