package tui

import (
	"fmt"
	"strings"

	"cinematrix-cli/booking"
	"cinematrix-cli/model"
	"cinematrix-cli/store"
	"github.com/charmbracelet/bubbles/list"
)

type movieItem struct {
	movie    model.Movie
	currency string
	recent   bool
}

func (m movieItem) Title() string {
	return m.movie.Name
}

func (m movieItem) Description() string {
	parts := []string{}
	if m.recent {
		parts = append(parts, "Recent")
	}
	if m.movie.Genre != "" {
		parts = append(parts, m.movie.Genre)
	}
	if m.movie.Rating > 0 {
		parts = append(parts, fmt.Sprintf("%.1f★", m.movie.Rating))
	}
	if m.movie.Duration != "" {
		parts = append(parts, m.movie.Duration)
	}
	parts = append(parts, formatPrice(m.currency, m.movie.BasePrice))
	return strings.Join(parts, " • ")
}

func (m movieItem) FilterValue() string {
	return strings.ToLower(strings.Join([]string{m.movie.Name, m.movie.Genre}, " "))
}

type showtimeItem struct {
	label  string
	stats  booking.Stats
	recent bool
}

func (s showtimeItem) Title() string {
	return s.label
}

func (s showtimeItem) Description() string {
	parts := []string{fmt.Sprintf("%d/%d seats available", s.stats.Total-s.stats.Booked, s.stats.Total)}
	if s.stats.Selected > 0 {
		parts = append(parts, fmt.Sprintf("%d selected", s.stats.Selected))
	}
	if s.recent {
		parts = append(parts, "Last visited")
	}
	return strings.Join(parts, " • ")
}

func (s showtimeItem) FilterValue() string {
	return strings.ToLower(s.label)
}

func buildMovieItems(movies []model.Movie, currency string, recents []store.RecentShowtime) []list.Item {
	recent := map[int]bool{}
	for _, r := range recents {
		recent[r.MovieID] = true
	}
	items := make([]list.Item, 0, len(movies))
	for _, movie := range movies {
		items = append(items, movieItem{movie: movie, currency: currency, recent: recent[movie.ID]})
	}
	return items
}

// buildShowtimeItems keeps the catalog's showtime order and reports the index of the showtime the
// user last opened for this movie, or 0.
func buildShowtimeItems(state *booking.State, movie model.Movie, recents []store.RecentShowtime) ([]list.Item, int) {
	last, hasLast := store.LastShowtime(recents, movie.ID)
	items := make([]list.Item, 0, len(movie.Showtimes))
	index := 0
	for i, label := range movie.Showtimes {
		recent := hasLast && label == last
		if recent {
			index = i
		}
		items = append(items, showtimeItem{
			label:  label,
			stats:  state.Stats(movie.ID, label),
			recent: recent,
		})
	}
	return items, index
}
