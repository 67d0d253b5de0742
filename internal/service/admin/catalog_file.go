package admin

import (
	"fmt"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/kirinyoku/travelease/internal/domain"
)

type catalogFile struct {
	Tours []tourEntry `yaml:"tours"`
}

type tourEntry struct {
	Title        string  `yaml:"title"`
	Description  string  `yaml:"description"`
	Image        string  `yaml:"image"`
	Price        float64 `yaml:"price"`
	Duration     int     `yaml:"duration"`
	Location     string  `yaml:"location"`
	Rating       float64 `yaml:"rating"`
	StartDate    string  `yaml:"start_date"`
	MaxGroupSize int     `yaml:"max_group_size"`
}

// LoadCatalog reads a YAML tour catalog. ${VAR} references are expanded from
// the environment before parsing, e.g. for an image CDN host.
func LoadCatalog(path string) ([]domain.Tour, error) {
	const op = "admin.LoadCatalog"

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	tours, err := ParseCatalog([]byte(os.ExpandEnv(string(data))))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return tours, nil
}

func ParseCatalog(data []byte) ([]domain.Tour, error) {
	var f catalogFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, err
	}

	if len(f.Tours) == 0 {
		return nil, ErrEmptyCatalog
	}

	seen := make(map[string]bool, len(f.Tours))
	out := make([]domain.Tour, 0, len(f.Tours))

	for i, e := range f.Tours {
		title := strings.TrimSpace(e.Title)

		invalid := func(reason string) error {
			return InvalidTourError{Index: i, Title: title, Reason: reason}
		}

		switch {
		case title == "":
			return nil, invalid("title is required")
		case seen[title]:
			return nil, invalid("duplicate title")
		case e.Price < 0:
			return nil, invalid("price must not be negative")
		case e.Duration <= 0:
			return nil, invalid("duration must be positive")
		case e.MaxGroupSize <= 0:
			return nil, invalid("max_group_size must be positive")
		case e.Rating < 0 || e.Rating > 5:
			return nil, invalid("rating must be between 0 and 5")
		case strings.TrimSpace(e.Location) == "":
			return nil, invalid("location is required")
		}
		seen[title] = true

		start, err := time.Parse(time.DateOnly, e.StartDate)
		if err != nil {
			return nil, invalid("start_date must be YYYY-MM-DD")
		}

		out = append(out, domain.Tour{
			Title:        title,
			Description:  strings.TrimSpace(e.Description),
			Image:        e.Image,
			Price:        e.Price,
			Duration:     e.Duration,
			Location:     strings.TrimSpace(e.Location),
			Rating:       e.Rating,
			StartDate:    start,
			MaxGroupSize: e.MaxGroupSize,
		})
	}

	return out, nil
}
