package cmd

import (
	"fmt"
	"strings"

	"cinematrix-cli/booking"
	"cinematrix-cli/model"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newSeatsCmd(opts *options) *cobra.Command {
	var movieID int
	var showtime string

	seatsCmd := &cobra.Command{
		Use:   "seats",
		Short: "Show the seat tiers and prices for a movie",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			log, err := opts.openLogger(cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			defer log.Close()

			state, err := opts.loadState(log)
			if err != nil {
				return err
			}
			movie, ok := state.Movie(movieID)
			if !ok {
				return fmt.Errorf("unknown movie %d", movieID)
			}
			if showtime != "" && !state.HasShowtime(movie.ID, showtime) {
				return fmt.Errorf("%s has no %s showtime (available: %s)", movie.Name, showtime, strings.Join(movie.Showtimes, ", "))
			}
			renderSeats(cmd, state, movie, showtime)
			return nil
		},
	}
	seatsCmd.Flags().IntVar(&movieID, "movie", 0, "movie id (see the movies command)")
	seatsCmd.Flags().StringVar(&showtime, "showtime", "", "showtime label, e.g. \"2:00 PM\"")
	_ = seatsCmd.MarkFlagRequired("movie")
	return seatsCmd
}

func renderSeats(cmd *cobra.Command, state *booking.State, movie model.Movie, showtime string) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	title := movie.Name
	if showtime != "" {
		title += " • " + showtime
	}
	t.SetTitle(title)
	t.AppendHeader(table.Row{"Row", "Seats", "Tier", "Multiplier", "Price", "Available"})

	for row := 0; row < model.TheaterRows; row++ {
		first := model.Seat{Row: row, Col: 0}
		last := model.Seat{Row: row, Col: model.TheaterCols - 1}
		tier := state.SeatTier(first)

		available := model.TheaterCols
		if showtime != "" {
			for col := 0; col < model.TheaterCols; col++ {
				if state.IsBooked(movie.ID, showtime, model.Seat{Row: row, Col: col}) {
					available--
				}
			}
		}
		t.AppendRow(table.Row{
			string(rune('A' + row)),
			first.Label() + "-" + last.Label(),
			tier.Kind.Title(),
			fmt.Sprintf("×%.1f", tier.Multiplier),
			formatPrice(state.Currency(), state.SeatPrice(movie.ID, first)),
			fmt.Sprintf("%d/%d", available, model.TheaterCols),
		})
	}
	t.AppendFooter(table.Row{"", "", "", "Base", formatPrice(state.Currency(), movie.BasePrice), ""})
	t.Render()
}
