package seed

import "tinkerlab/internal/models"

// FallbackProjects is the small built-in sample served when the projects
// table cannot be read. It keeps the main catalog page rendering something
// useful during an outage. Other surfaces have no equivalent and surface the
// error instead.
func FallbackProjects() []models.Project {
	return []models.Project{
		{
			ID:          1,
			Title:       "Line Follower Robot",
			Description: "Build a two-wheel robot that follows a taped track using infrared sensors and a simple PID loop.",
			Category:    "robotics",
			Difficulty:  models.DifficultyBeginner,
			Tags:        models.StringList{"arduino", "sensors", "motors"},
			ImageURL:    "https://images.tinkerlab.dev/projects/line-follower.jpg",
			IsFeatured:  true,
		},
		{
			ID:          2,
			Title:       "Weather Station",
			Description: "Log temperature, humidity and pressure with an ESP32 and chart the readings on a small dashboard.",
			Category:    "electronics",
			Difficulty:  models.DifficultyBeginner,
			Tags:        models.StringList{"esp32", "iot", "sensors"},
			ImageURL:    "https://images.tinkerlab.dev/projects/weather-station.jpg",
		},
		{
			ID:          3,
			Title:       "Drone Navigation Module",
			Description: "Add waypoint navigation to a quadcopter using GPS and a barometer, with a safe return-to-home mode.",
			Category:    "aerospace",
			Difficulty:  models.DifficultyAdvanced,
			Tags:        models.StringList{"drone", "gps", "flight-control"},
			ImageURL:    "https://images.tinkerlab.dev/projects/drone-nav.jpg",
		},
		{
			ID:          4,
			Title:       "Hydraulic Robot Arm",
			Description: "A cardboard and syringe hydraulic arm that teaches the basics of fluid power and linkages.",
			Category:    "mechanical",
			Difficulty:  models.DifficultyIntermediate,
			Tags:        models.StringList{"hydraulics", "mechanisms"},
			ImageURL:    "https://images.tinkerlab.dev/projects/hydraulic-arm.jpg",
		},
	}
}
