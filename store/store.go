package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"cinematrix-cli/model"
)

const (
	appDir          = "cinematrix-cli"
	maxRecentVisits = 8
	catalogFileName = "catalog.json"
	historyFileName = "history.json"
)

// RecentShowtime is a movie/showtime pairing the user opened the seat map for. Only the pairing is
// remembered, never seat or booking state.
type RecentShowtime struct {
	MovieID   int       `json:"movie_id"`
	MovieName string    `json:"movie_name"`
	Showtime  string    `json:"showtime"`
	VisitedAt time.Time `json:"visited_at"`
}

type showtimeHistory struct {
	Showtimes []RecentShowtime `json:"showtimes"`
}

// LoadCatalog reads a catalog file. A missing file is not an error; the bool reports whether a
// catalog was read.
func LoadCatalog(path string) (model.Catalog, bool, error) {
	if strings.TrimSpace(path) == "" {
		return model.Catalog{}, false, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return model.Catalog{}, false, nil
		}
		return model.Catalog{}, false, err
	}
	var catalog model.Catalog
	if err := json.Unmarshal(data, &catalog); err != nil {
		return model.Catalog{}, false, fmt.Errorf("invalid catalog file %s: %w", path, err)
	}
	return catalog, true, nil
}

func SaveCatalog(path string, catalog model.Catalog) error {
	if strings.TrimSpace(path) == "" {
		return errors.New("catalog path is required")
	}
	return writeJSON(path, catalog)
}

// DefaultCatalogPath is where a user catalog is looked up when none is configured.
func DefaultCatalogPath() (string, error) {
	return configPath(catalogFileName)
}

func LoadRecentShowtimes() ([]RecentShowtime, error) {
	path, err := configPath(historyFileName)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	var history showtimeHistory
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, errors.New("invalid showtime history format")
	}
	return history.Showtimes, nil
}

func RememberShowtime(movie model.Movie, showtime string) error {
	showtime = strings.TrimSpace(showtime)
	if movie.ID == 0 || showtime == "" {
		return errors.New("movie id and showtime are required")
	}

	history, _ := LoadRecentShowtimes()
	next := []RecentShowtime{{
		MovieID:   movie.ID,
		MovieName: movie.Name,
		Showtime:  showtime,
		VisitedAt: time.Now(),
	}}
	for _, existing := range history {
		if existing.MovieID == movie.ID && existing.Showtime == showtime {
			continue
		}
		next = append(next, existing)
		if len(next) >= maxRecentVisits {
			break
		}
	}

	path, err := configPath(historyFileName)
	if err != nil {
		return err
	}
	return writeJSON(path, showtimeHistory{Showtimes: next})
}

// LastShowtime returns the most recently opened showtime of a movie.
func LastShowtime(recents []RecentShowtime, movieID int) (string, bool) {
	for _, recent := range recents {
		if recent.MovieID == movieID && recent.Showtime != "" {
			return recent.Showtime, true
		}
	}
	return "", false
}

func writeJSON(path string, value any) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	payload, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, payload, 0o644)
}

func configPath(name string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, appDir, name), nil
}
