package seed

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"tinkerlab/internal/database"
	"tinkerlab/internal/models"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(database.PersistentModels()...))
	return db
}

func TestLoadCurated(t *testing.T) {
	curated, err := LoadCurated()
	require.NoError(t, err)

	assert.NotEmpty(t, curated.Projects)
	assert.NotEmpty(t, curated.PremadeProjects)
	assert.NotEmpty(t, curated.Tutorials)

	for _, p := range curated.Projects {
		assert.True(t, p.Difficulty.Valid(), "project %q has invalid difficulty", p.Title)
		assert.NotNil(t, p.Tags)
	}
}

func TestSeed(t *testing.T) {
	db := openTestDB(t)

	err := Seed(db, Options{NumPosts: 5, MaxComments: 3, NumListings: 2})
	require.NoError(t, err)

	var projectCount, postCount, listingCount int64
	require.NoError(t, db.Model(&models.Project{}).Count(&projectCount).Error)
	require.NoError(t, db.Model(&models.CommunityPost{}).Count(&postCount).Error)
	require.NoError(t, db.Model(&models.TeamUpListing{}).Count(&listingCount).Error)

	assert.Greater(t, projectCount, int64(0))
	assert.Equal(t, int64(5), postCount)
	assert.Equal(t, int64(2), listingCount)
}

func TestSeed_CleanRemovesPreviousRun(t *testing.T) {
	db := openTestDB(t)

	require.NoError(t, Seed(db, Options{NumPosts: 3, NumListings: 2, SkipGenerated: false}))
	require.NoError(t, Seed(db, Options{NumPosts: 3, NumListings: 2, ShouldClean: true}))

	var postCount int64
	require.NoError(t, db.Model(&models.CommunityPost{}).Count(&postCount).Error)
	assert.Equal(t, int64(3), postCount)
}

func TestFactory_BuildCommunityPost(t *testing.T) {
	factory := NewFactory()

	post := factory.BuildCommunityPost()
	require.NoError(t, post.Validate())
	assert.NotEmpty(t, post.Author)
	assert.False(t, post.CreatedAt.After(time.Now()))
}

func TestFactory_BuildTeamUpListing(t *testing.T) {
	factory := NewFactory()

	listing := factory.BuildTeamUpListing()
	require.NoError(t, listing.Validate())
	assert.GreaterOrEqual(t, listing.TeamSize, listing.OpenPositions)
}
