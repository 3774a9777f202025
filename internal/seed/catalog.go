package seed

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"tinkerlab/internal/models"
)

//go:embed data/catalog.yml
var catalogYAML []byte

// curatedEntry is the YAML shape of one catalog item. Kept separate from the
// persistence models so the data file stays readable.
type curatedEntry struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Category    string   `yaml:"category"`
	Difficulty  string   `yaml:"difficulty"`
	Tags        []string `yaml:"tags"`
	ImageURL    string   `yaml:"image_url"`
	Featured    bool     `yaml:"featured"`
	ProjectURL  string   `yaml:"project_url"`
	Price       float64  `yaml:"price"`
	Features    []string `yaml:"features"`
	VideoURL    string   `yaml:"video_url"`
	Content     string   `yaml:"content"`
}

type curatedCatalog struct {
	Projects        []curatedEntry `yaml:"projects"`
	PremadeProjects []curatedEntry `yaml:"premade_projects"`
	Tutorials       []curatedEntry `yaml:"tutorials"`
}

// Curated holds the editorial catalog entries shipped with the binary.
type Curated struct {
	Projects        []models.Project
	PremadeProjects []models.PremadeProject
	Tutorials       []models.Tutorial
}

// LoadCurated parses the embedded catalog file and validates every entry.
func LoadCurated() (*Curated, error) {
	var raw curatedCatalog
	if err := yaml.Unmarshal(catalogYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse embedded catalog: %w", err)
	}

	out := &Curated{}

	for i, e := range raw.Projects {
		difficulty, err := models.ParseDifficulty(e.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("projects[%d] %q: %w", i, e.Title, err)
		}
		p := models.Project{
			Title:       e.Title,
			Description: e.Description,
			Category:    e.Category,
			Difficulty:  difficulty,
			Tags:        models.StringList(e.Tags),
			ImageURL:    e.ImageURL,
			IsFeatured:  e.Featured,
			ProjectURL:  e.ProjectURL,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("projects[%d] %q: %w", i, e.Title, err)
		}
		out.Projects = append(out.Projects, p)
	}

	for i, e := range raw.PremadeProjects {
		difficulty, err := models.ParseDifficulty(e.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("premade_projects[%d] %q: %w", i, e.Title, err)
		}
		p := models.PremadeProject{
			Title:       e.Title,
			Description: e.Description,
			Category:    e.Category,
			Difficulty:  difficulty,
			Price:       e.Price,
			Features:    models.StringList(e.Features),
			ImageURL:    e.ImageURL,
		}
		if err := p.Validate(); err != nil {
			return nil, fmt.Errorf("premade_projects[%d] %q: %w", i, e.Title, err)
		}
		out.PremadeProjects = append(out.PremadeProjects, p)
	}

	for i, e := range raw.Tutorials {
		difficulty, err := models.ParseDifficulty(e.Difficulty)
		if err != nil {
			return nil, fmt.Errorf("tutorials[%d] %q: %w", i, e.Title, err)
		}
		tu := models.Tutorial{
			Title:       e.Title,
			Description: e.Description,
			Category:    e.Category,
			Difficulty:  difficulty,
			VideoURL:    e.VideoURL,
			Content:     e.Content,
		}
		if err := tu.Validate(); err != nil {
			return nil, fmt.Errorf("tutorials[%d] %q: %w", i, e.Title, err)
		}
		out.Tutorials = append(out.Tutorials, tu)
	}

	return out, nil
}
