package cmd

import (
	"fmt"
	"strings"

	"cinematrix-cli/booking"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"
)

func newMoviesCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "movies",
		Short: "List the movies now playing",
		Long:  `List every movie in the catalog with its showtimes and base ticket price`,
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
			renderMovies(cmd, state)
			return nil
		},
	}
}

func renderMovies(cmd *cobra.Command, state *booking.State) {
	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.AppendHeader(table.Row{"ID", "Movie", "Genre", "Rating", "Duration", "Price", "Showtimes"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, WidthMax: 20},
		{Number: 7, WidthMax: 24},
	})
	t.Style().Options.SeparateRows = true

	for _, movie := range state.Movies() {
		t.AppendRow(table.Row{
			movie.ID,
			movie.Name,
			movie.Genre,
			fmt.Sprintf("%.1f", movie.Rating),
			movie.Duration,
			formatPrice(state.Currency(), movie.BasePrice),
			strings.Join(movie.Showtimes, ", "),
		})
	}
	t.Render()
}

func formatPrice(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}
