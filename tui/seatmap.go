package tui

import (
	"fmt"
	"strconv"
	"strings"

	"cinematrix-cli/booking"
	"cinematrix-cli/model"
	"github.com/charmbracelet/lipgloss"
)

const (
	colorDarkBg  = "0"
	colorSuccess = "2"
	colorAccent  = "63"
	colorBooked  = "8"
	colorPicked  = "203"
	colorPremium = "214"
	colorEconomy = "141"
	colorRegular = "252"
)

const (
	symbolRegular  = "□"
	symbolPremium  = "▣"
	symbolEconomy  = "▤"
	symbolSelected = "■"
	symbolBooked   = "▦"
)

func seatSymbol(state booking.SeatState, kind model.TierKind) string {
	switch state {
	case booking.SeatBooked:
		return symbolBooked
	case booking.SeatSelected:
		return symbolSelected
	}
	switch kind {
	case model.TierPremium:
		return symbolPremium
	case model.TierEconomy:
		return symbolEconomy
	default:
		return symbolRegular
	}
}

func seatStyle(state booking.SeatState, kind model.TierKind) lipgloss.Style {
	switch state {
	case booking.SeatBooked:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorBooked))
	case booking.SeatSelected:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorPicked)).Bold(true)
	}
	switch kind {
	case model.TierPremium:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorPremium))
	case model.TierEconomy:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorEconomy))
	default:
		return lipgloss.NewStyle().Foreground(lipgloss.Color(colorRegular))
	}
}

func (m appModel) seatMapView() string {
	grid := m.renderSeatMap()
	summary := m.summaryView()
	if m.width == 0 || m.width >= 100 {
		return lipgloss.JoinHorizontal(lipgloss.Top, grid, "    ", summary)
	}
	return grid + "\n\n" + summary
}

func (m appModel) renderSeatMap() string {
	movieID, showtime, _ := m.booking.Selection()

	cellWidth := 2
	if m.showLabels {
		cellWidth = 3
	}
	rowWidth := 1

	var b strings.Builder
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	for col := 0; col < model.TheaterCols; col++ {
		b.WriteString(hint(padCell(strconv.Itoa(col+1), cellWidth)))
		if col < model.TheaterCols-1 {
			b.WriteString(" ")
		}
	}
	b.WriteString("\n")

	for row := 0; row < model.TheaterRows; row++ {
		label := string(rune('A' + row))
		b.WriteString(label + " ")
		for col := 0; col < model.TheaterCols; col++ {
			b.WriteString(m.seatCell(movieID, showtime, model.Seat{Row: row, Col: col}, cellWidth))
			if col < model.TheaterCols-1 {
				b.WriteString(" ")
			}
		}
		b.WriteString(" " + label + "\n")
	}

	gridWidth := model.TheaterCols*(cellWidth+1) - 1
	screenStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("0")).
		Background(lipgloss.Color("214"))
	screenBorderStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color("214")).
		Background(lipgloss.Color("236"))

	screenBar := screenBarBlock(gridWidth, "SCREEN")

	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBorderStyle.Render(screenBar.top))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenStyle.Render(screenBar.mid))
	b.WriteString("\n")
	b.WriteString(strings.Repeat(" ", rowWidth+1))
	b.WriteString(screenBorderStyle.Render(screenBar.bot))
	b.WriteString("\n\n")

	b.WriteString(m.legendView())
	b.WriteString("\n")
	b.WriteString(m.seatInfoLine(movieID, showtime))
	b.WriteString("\n")
	b.WriteString(hint(statsLine(m.booking.Stats(movieID, showtime))))
	return b.String()
}

func (m appModel) seatCell(movieID int, showtime string, seat model.Seat, width int) string {
	state := m.booking.SeatState(movieID, showtime, seat)
	kind := m.booking.SeatTier(seat).Kind
	text := seatSymbol(state, kind)
	if m.showLabels {
		text = seat.Label()
	}
	style := seatStyle(state, kind)
	if seat == m.cursor {
		style = style.Reverse(true)
	}
	return style.Render(padCell(text, width))
}

func (m appModel) legendView() string {
	entries := []struct {
		state booking.SeatState
		kind  model.TierKind
		label string
	}{
		{booking.SeatAvailable, model.TierRegular, "regular"},
		{booking.SeatAvailable, model.TierPremium, "premium"},
		{booking.SeatAvailable, model.TierEconomy, "economy"},
		{booking.SeatSelected, model.TierRegular, "selected"},
		{booking.SeatBooked, model.TierRegular, "booked"},
	}
	parts := make([]string, 0, len(entries))
	for _, e := range entries {
		parts = append(parts, seatStyle(e.state, e.kind).Render(seatSymbol(e.state, e.kind))+" "+e.label)
	}
	return strings.Join(parts, "  ")
}

func (m appModel) seatInfoLine(movieID int, showtime string) string {
	seat := m.cursor
	if m.booking.IsBooked(movieID, showtime, seat) {
		return fmt.Sprintf("Seat %s • Booked", seat.Label())
	}
	tier := m.booking.SeatTier(seat)
	return fmt.Sprintf("Seat %s • %s • %s", seat.Label(), tier.Kind.Title(), formatPrice(m.booking.Currency(), m.booking.SeatPrice(movieID, seat)))
}

func statsLine(stats booking.Stats) string {
	return fmt.Sprintf("Selected: %d/%d | Booked: %d", stats.Selected, stats.Total, stats.Booked)
}

func (m appModel) summaryView() string {
	movieID, showtime, _ := m.booking.Selection()
	movie, _ := m.booking.Movie(movieID)
	currency := m.booking.Currency()

	lines := []string{
		lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(colorAccent)).Render(movie.Name),
		hint(fmt.Sprintf("%s • %.1f★ • %s", movie.Genre, movie.Rating, movie.Duration)),
		fmt.Sprintf("Showtime: %s", showtime),
		fmt.Sprintf("Base price: %s", formatPrice(currency, movie.BasePrice)),
	}
	if movie.Description != "" {
		lines = append(lines, "", lipgloss.NewStyle().Width(36).Render(movie.Description))
	}

	lines = append(lines, "", "Selected seats:")
	seats := m.booking.SelectedSeats(movieID, showtime)
	if len(seats) == 0 {
		lines = append(lines, hint("  none"))
	}
	for _, seat := range seats {
		tier := m.booking.SeatTier(seat)
		lines = append(lines, fmt.Sprintf("  %-3s %-8s %s", seat.Label(), tier.Kind.Title(), formatPrice(currency, m.booking.SeatPrice(movieID, seat))))
	}
	total := lipgloss.NewStyle().Bold(true).Render(fmt.Sprintf("Total: %s", formatPrice(currency, m.booking.TotalPrice())))
	lines = append(lines, "", total)

	return lipgloss.NewStyle().
		Padding(0, 2).
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(colorAccent)).
		Render(strings.Join(lines, "\n"))
}

func padCell(text string, width int) string {
	if width <= 0 {
		return ""
	}
	if text == "" {
		return strings.Repeat(" ", width)
	}
	w := lipgloss.Width(text)
	if w >= width {
		return text
	}
	padding := width - w
	left := padding / 2
	right := padding - left
	return strings.Repeat(" ", left) + text + strings.Repeat(" ", right)
}

type screenBlock struct {
	top string
	mid string
	bot string
}

func screenBarBlock(width int, label string) screenBlock {
	if width < len(label)+4 {
		width = len(label) + 4
	}
	if width < 10 {
		width = 10
	}

	border := "╭" + strings.Repeat("─", width-2) + "╮"
	bottom := "╰" + strings.Repeat("─", width-2) + "╯"

	labelText := " " + label + " "
	padding := width - len(labelText) - 2
	left := padding / 2
	right := padding - left
	mid := "│" + strings.Repeat(" ", left) + labelText + strings.Repeat(" ", right) + "│"
	return screenBlock{top: border, mid: mid, bot: bottom}
}
