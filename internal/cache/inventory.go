package cache

import (
	"context"
	"fmt"
	"time"
)

// Key templates for cached catalog data. Bulk lists are cached whole; the
// catalog pipeline filters and paginates them in memory per request.
const (
	ProjectsListKey       = "catalog:projects"
	PremadeListKey        = "catalog:premade_projects"
	TutorialsListKey      = "catalog:tutorials"
	CommunityListKey      = "catalog:community"
	TeamUpListKey         = "catalog:team_up"
	ProjectKeyPrefix      = "project:%d"
	TutorialKeyPrefix     = "tutorial:%d"
	PremadeKeyPrefix      = "premade:%d"
)

const (
	ListTTL   = 2 * time.Minute
	DetailTTL = 10 * time.Minute
)

func ProjectKey(id uint) string {
	return fmt.Sprintf(ProjectKeyPrefix, id)
}

func TutorialKey(id uint) string {
	return fmt.Sprintf(TutorialKeyPrefix, id)
}

func PremadeKey(id uint) string {
	return fmt.Sprintf(PremadeKeyPrefix, id)
}

// Invalidate removes a single key, best-effort.
func Invalidate(ctx context.Context, key string) {
	if client != nil {
		client.Del(ctx, key)
	}
}

func InvalidateProject(ctx context.Context, id uint) {
	Invalidate(ctx, ProjectKey(id))
	Invalidate(ctx, ProjectsListKey)
}

func InvalidatePremade(ctx context.Context, id uint) {
	Invalidate(ctx, PremadeKey(id))
	Invalidate(ctx, PremadeListKey)
}

func InvalidateTutorial(ctx context.Context, id uint) {
	Invalidate(ctx, TutorialKey(id))
	Invalidate(ctx, TutorialsListKey)
}

func InvalidateCommunity(ctx context.Context) {
	Invalidate(ctx, CommunityListKey)
}

func InvalidateTeamUp(ctx context.Context) {
	Invalidate(ctx, TeamUpListKey)
}
