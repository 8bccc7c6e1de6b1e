package cmd

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cinematrix-cli/booking"
	"cinematrix-cli/logger"
	"cinematrix-cli/model"
	"cinematrix-cli/tui"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"
)

var errBookingCancelled = errors.New("booking cancelled")

type bookRequest struct {
	movieID  int
	showtime string
	seats    string
	yes      bool
	noQR     bool
}

func newBookCmd(opts *options) *cobra.Command {
	req := bookRequest{}
	bookCmd := &cobra.Command{
		Use:   "book",
		Short: "Book seats in one go",
		Long:  `Book seats for a movie and showtime and print the ticket. Missing flags are asked for interactively.`,
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
			if err := req.complete(state); err != nil {
				return err
			}
			receipt, err := bookSeats(state, req, log, time.Now)
			if err != nil {
				return err
			}
			renderReceipt(cmd, state, receipt, !req.noQR)
			return nil
		},
	}
	bookCmd.Flags().IntVar(&req.movieID, "movie", 0, "movie id (see the movies command)")
	bookCmd.Flags().StringVar(&req.showtime, "showtime", "", "showtime label, e.g. \"2:00 PM\"")
	bookCmd.Flags().StringVar(&req.seats, "seats", "", "comma separated seats, e.g. A1,F1")
	bookCmd.Flags().BoolVarP(&req.yes, "yes", "y", false, "skip the confirmation prompt")
	bookCmd.Flags().BoolVar(&req.noQR, "no-qr", false, "do not print the ticket QR code")
	return bookCmd
}

// complete prompts for whatever the flags left out.
func (r *bookRequest) complete(state *booking.State) error {
	if r.movieID == 0 {
		id, err := promptMovie(state.Movies())
		if err != nil {
			return err
		}
		r.movieID = id
	}
	movie, ok := state.Movie(r.movieID)
	if !ok {
		return fmt.Errorf("unknown movie %d", r.movieID)
	}

	if r.showtime == "" {
		showtime, err := promptShowtime(movie)
		if err != nil {
			return err
		}
		r.showtime = showtime
	}
	if !state.HasShowtime(movie.ID, r.showtime) {
		return fmt.Errorf("%s has no %s showtime (available: %s)", movie.Name, r.showtime, strings.Join(movie.Showtimes, ", "))
	}

	if r.seats == "" {
		seats, err := promptSeats()
		if err != nil {
			return err
		}
		r.seats = seats
	}
	if _, err := model.ParseSeatList(r.seats); err != nil {
		return err
	}

	if !r.yes {
		confirm := promptui.Prompt{
			Label:     fmt.Sprintf("Book %s at %s for %s", strings.ToUpper(r.seats), r.showtime, movie.Name),
			IsConfirm: true,
		}
		if _, err := confirm.Run(); err != nil {
			return errBookingCancelled
		}
	}
	return nil
}

// bookSeats runs the request through the same select-then-commit flow as the interactive UI.
func bookSeats(state *booking.State, req bookRequest, log *logger.Logger, now func() time.Time) (model.Booking, error) {
	seats, err := model.ParseSeatList(req.seats)
	if err != nil {
		return model.Booking{}, err
	}
	movie, ok := state.Movie(req.movieID)
	if !ok {
		return model.Booking{}, fmt.Errorf("unknown movie %d", req.movieID)
	}

	state.SelectMovie(movie.ID)
	state.SelectShowtime(req.showtime)
	state.ClearSelection(movie.ID, req.showtime)

	for _, seat := range seats {
		if state.IsBooked(movie.ID, req.showtime, seat) {
			return model.Booking{}, fmt.Errorf("seat %s: %w", seat.Label(), booking.ErrSeatAlreadyBooked)
		}
		if state.SeatState(movie.ID, req.showtime, seat) != booking.SeatSelected {
			state.ToggleSeat(movie.ID, req.showtime, seat)
		}
	}

	selected := state.SelectedSeats(movie.ID, req.showtime)
	total := state.TotalPrice()
	if err := state.BookSeats(movie.ID, req.showtime, selected); err != nil {
		log.Error("BOOKING", fmt.Sprintf("rejected %s %s: %v", movie.Name, req.showtime, err))
		return model.Booking{}, err
	}

	createdAt := now()
	receipt := model.Booking{
		ID:        model.NewBookingID(createdAt),
		MovieID:   movie.ID,
		MovieName: movie.Name,
		Showtime:  req.showtime,
		Seats:     selected,
		Total:     total,
		CreatedAt: createdAt,
	}
	log.LogBooking("confirmed", receipt.ID, fmt.Sprintf("%s %s seats %s total %.2f", movie.Name, req.showtime, model.SeatLabels(selected), total))
	return receipt, nil
}

func renderReceipt(cmd *cobra.Command, state *booking.State, receipt model.Booking, withQR bool) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "Booking Confirmed!")

	t := table.NewWriter()
	t.SetOutputMirror(out)
	t.AppendHeader(table.Row{"Seat", "Tier", "Price"})
	for _, seat := range receipt.Seats {
		t.AppendRow(table.Row{
			seat.Label(),
			state.SeatTier(seat).Kind.Title(),
			formatPrice(state.Currency(), state.SeatPrice(receipt.MovieID, seat)),
		})
	}
	t.AppendFooter(table.Row{"", "Total", formatPrice(state.Currency(), receipt.Total)})
	t.SetTitle(fmt.Sprintf("%s • %s • %s", receipt.ID, receipt.MovieName, receipt.Showtime))
	t.Render()

	if withQR {
		if qr, err := tui.TicketQR(receipt); err == nil {
			fmt.Fprintln(out)
			fmt.Fprint(out, qr)
		}
	}
	fmt.Fprintln(out, "Enjoy your movie!")
}

func promptMovie(movies []model.Movie) (int, error) {
	labels := make([]string, 0, len(movies))
	for _, movie := range movies {
		labels = append(labels, fmt.Sprintf("%s (%s, %s)", movie.Name, movie.Genre, movie.Duration))
	}

	searcher := func(input string, index int) bool {
		return strings.Contains(strings.ToLower(labels[index]), strings.ToLower(input))
	}

	selectMovie := promptui.Select{
		Label:    "Select Movie",
		Items:    labels,
		Size:     10,
		Searcher: searcher,
	}
	index, _, err := selectMovie.Run()
	if err != nil {
		return 0, errBookingCancelled
	}
	return movies[index].ID, nil
}

func promptShowtime(movie model.Movie) (string, error) {
	selectShowtime := promptui.Select{
		Label: "Select Showtime",
		Items: movie.Showtimes,
		Size:  10,
	}
	_, showtime, err := selectShowtime.Run()
	if err != nil {
		return "", errBookingCancelled
	}
	return showtime, nil
}

func promptSeats() (string, error) {
	validate := func(input string) error {
		_, err := model.ParseSeatList(input)
		return err
	}
	prompt := promptui.Prompt{
		Label:    "Seats (e.g. A1,F1)",
		Validate: validate,
	}
	seats, err := prompt.Run()
	if err != nil {
		return "", errBookingCancelled
	}
	return seats, nil
}
