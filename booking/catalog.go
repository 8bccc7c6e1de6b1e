package booking

import (
	"fmt"
	"sort"
	"strings"

	"cinematrix-cli/model"
)

const (
	// DefaultCurrencyRate converts the catalog's USD prices to rupees.
	DefaultCurrencyRate   = 83
	DefaultCurrencySymbol = "₹"
)

// DefaultCatalog returns the baked-in catalog: three movies and the economy/regular/premium row split.
func DefaultCatalog() model.Catalog {
	return model.Catalog{
		CurrencyRate:   DefaultCurrencyRate,
		CurrencySymbol: DefaultCurrencySymbol,
		Movies: map[int]model.MovieConfig{
			1: {
				Name:         "Inception",
				Genre:        "Sci-Fi",
				Rating:       9.0,
				Duration:     "148 min",
				BasePriceUSD: 4.00,
				Showtimes:    []string{"2:00 PM", "5:30 PM", "8:00 PM", "10:30 PM"},
				Description:  "A thief who steals corporate secrets through dream-sharing technology",
			},
			2: {
				Name:         "The Dark Knight",
				Genre:        "Action",
				Rating:       9.5,
				Duration:     "152 min",
				BasePriceUSD: 3.00,
				Showtimes:    []string{"1:30 PM", "4:45 PM", "7:15 PM", "9:45 PM"},
				Description:  "Batman faces the Joker in this epic superhero thriller",
			},
			3: {
				Name:         "Interstellar",
				Genre:        "Sci-Fi",
				Rating:       8.6,
				Duration:     "169 min",
				BasePriceUSD: 5,
				Showtimes:    []string{"3:00 PM", "6:30 PM", "9:00 PM"},
				Description:  "A team of explorers travel through a wormhole in space",
			},
		},
		Tiers: []model.TierRule{
			{FromRow: 0, ToRow: 0, Kind: model.TierEconomy, Multiplier: 0.8},
			{FromRow: 1, ToRow: 3, Kind: model.TierRegular, Multiplier: 1.0},
			{FromRow: 4, ToRow: model.TheaterRows - 1, Kind: model.TierPremium, Multiplier: 1.3},
		},
	}
}

// buildMovies validates the movie section of a catalog and returns the movies ordered by id.
func buildMovies(catalog model.Catalog) ([]model.Movie, error) {
	if len(catalog.Movies) == 0 {
		return nil, fmt.Errorf("%w: no movies", ErrInvalidCatalog)
	}
	rate := catalog.CurrencyRate
	if rate == 0 {
		rate = DefaultCurrencyRate
	}
	if rate < 0 {
		return nil, fmt.Errorf("%w: negative currency rate %v", ErrInvalidCatalog, rate)
	}

	movies := make([]model.Movie, 0, len(catalog.Movies))
	for id, cfg := range catalog.Movies {
		if strings.TrimSpace(cfg.Name) == "" {
			return nil, fmt.Errorf("%w: movie %d has no name", ErrInvalidCatalog, id)
		}
		if cfg.BasePriceUSD <= 0 {
			return nil, fmt.Errorf("%w: movie %d has no price", ErrInvalidCatalog, id)
		}
		if len(cfg.Showtimes) == 0 {
			return nil, fmt.Errorf("%w: movie %d has no showtimes", ErrInvalidCatalog, id)
		}
		seen := make(map[string]bool, len(cfg.Showtimes))
		for _, label := range cfg.Showtimes {
			if strings.TrimSpace(label) == "" {
				return nil, fmt.Errorf("%w: movie %d has an empty showtime", ErrInvalidCatalog, id)
			}
			if seen[label] {
				return nil, fmt.Errorf("%w: movie %d lists showtime %q twice", ErrInvalidCatalog, id, label)
			}
			seen[label] = true
		}
		movies = append(movies, model.Movie{
			ID:          id,
			Name:        cfg.Name,
			Genre:       cfg.Genre,
			Rating:      cfg.Rating,
			Duration:    cfg.Duration,
			BasePrice:   cfg.BasePriceUSD * rate,
			Showtimes:   append([]string(nil), cfg.Showtimes...),
			Description: cfg.Description,
		})
	}
	sort.Slice(movies, func(i, j int) bool {
		return movies[i].ID < movies[j].ID
	})
	return movies, nil
}
