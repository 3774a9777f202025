package database

import "tinkerlab/internal/models"

// PersistentModels returns the authoritative set of schema-managed GORM models.
func PersistentModels() []interface{} {
	return []interface{}{
		&models.Project{},
		&models.PremadeProject{},
		&models.Tutorial{},
		&models.CommunityPost{},
		&models.CommunityComment{},
		&models.TeamUpListing{},
	}
}
