package tui

import (
	"fmt"
	"strings"

	"cinematrix-cli/model"
	"github.com/charmbracelet/lipgloss"
	"github.com/skip2/go-qrcode"
)

// TicketQR renders the booking payload as a QR code made of half-block characters.
func TicketQR(b model.Booking) (string, error) {
	return renderQR(b.Payload())
}

func renderQR(payload string) (string, error) {
	code, err := qrcode.New(payload, qrcode.Low)
	if err != nil {
		return "", err
	}
	return code.ToSmallString(false), nil
}

func formatPrice(currency string, amount float64) string {
	return fmt.Sprintf("%s%.2f", currency, amount)
}

func (m appModel) receiptView() string {
	b := m.receipt
	title := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color(colorDarkBg)).
		Background(lipgloss.Color(colorSuccess)).
		Padding(0, 2).
		Render("Booking Confirmed!")

	lines := []string{
		title,
		"",
		fmt.Sprintf("Booking ID: %s", lipgloss.NewStyle().Bold(true).Render(b.ID)),
		fmt.Sprintf("Movie: %s", b.MovieName),
		fmt.Sprintf("Showtime: %s", b.Showtime),
		fmt.Sprintf("Seats: %s", model.SeatLabels(b.Seats)),
		fmt.Sprintf("Total: %s", formatPrice(m.booking.Currency(), b.Total)),
		"",
		"Enjoy your movie!",
	}
	content := strings.Join(lines, "\n")
	if qr, err := TicketQR(b); err == nil {
		content = lipgloss.JoinHorizontal(lipgloss.Top, content, "    ", qr)
	}

	panel := lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorSuccess)).
		Render(content)
	return panel + "\n\n" + hint("enter/esc back to seats • ctrl+c quit")
}

func (m appModel) confirmView() string {
	movieID, showtime, _ := m.booking.Selection()
	movie, _ := m.booking.Movie(movieID)
	seats := m.booking.SelectedSeats(movieID, showtime)
	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)).Render("Confirm Booking"),
		"",
		fmt.Sprintf("Confirm booking for %s?", movie.Name),
		fmt.Sprintf("Seats: %s", model.SeatLabels(seats)),
		fmt.Sprintf("Total: %s", formatPrice(m.booking.Currency(), m.booking.TotalPrice())),
		fmt.Sprintf("Showtime: %s", showtime),
		"",
		hint("y/enter confirm • n/esc cancel"),
	}
	return lipgloss.NewStyle().
		Padding(1, 3).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Render(strings.Join(lines, "\n"))
}
