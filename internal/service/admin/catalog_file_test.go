package admin

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
tours:
  - title: Amalfi Coast
    description: Lemon groves and cliffside villages.
    image: https://${IMG_HOST}/amalfi.jpg
    price: 1299
    duration: 3
    location: Amalfi, Italy
    rating: 4.8
    start_date: "2026-11-01"
    max_group_size: 8
  - title: Kyoto Temples
    price: 899
    duration: 2
    location: Kyoto, Japan
    rating: 4.0
    start_date: "2026-10-07"
    max_group_size: 12
`

func TestLoadCatalogExpandsEnv(t *testing.T) {
	t.Setenv("IMG_HOST", "cdn.travelease.test")

	path := filepath.Join(t.TempDir(), "tours.yaml")
	require.NoError(t, os.WriteFile(path, []byte(sample), 0o600))

	tours, err := LoadCatalog(path)
	require.NoError(t, err)
	require.Len(t, tours, 2)

	assert.Equal(t, "https://cdn.travelease.test/amalfi.jpg", tours[0].Image)
	assert.Equal(t, time.Date(2026, 11, 1, 0, 0, 0, 0, time.UTC), tours[0].StartDate)
	assert.Equal(t, 8, tours[0].MaxGroupSize)
	assert.Equal(t, "Kyoto, Japan", tours[1].Location)
}

func TestParseCatalogRejectsInvalidTours(t *testing.T) {
	tests := []struct {
		name string
		yaml string
	}{
		{"missing title", "tours:\n  - price: 1\n    duration: 1\n    location: x\n    start_date: \"2026-01-01\"\n    max_group_size: 1\n"},
		{"bad date", "tours:\n  - title: A\n    duration: 1\n    location: x\n    start_date: \"01/02/2026\"\n    max_group_size: 1\n"},
		{"zero group", "tours:\n  - title: A\n    duration: 1\n    location: x\n    start_date: \"2026-01-01\"\n"},
		{"rating above five", "tours:\n  - title: A\n    duration: 1\n    location: x\n    rating: 5.5\n    start_date: \"2026-01-01\"\n    max_group_size: 1\n"},
		{"duplicate", "tours:\n  - {title: A, duration: 1, location: x, start_date: \"2026-01-01\", max_group_size: 1}\n  - {title: A, duration: 1, location: x, start_date: \"2026-01-01\", max_group_size: 1}\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseCatalog([]byte(tt.yaml))
			var invalid InvalidTourError
			assert.ErrorAs(t, err, &invalid)
		})
	}

	_, err := ParseCatalog([]byte("tours: []"))
	assert.ErrorIs(t, err, ErrEmptyCatalog)
}
