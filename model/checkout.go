package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"
)

type Seat struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

func (s Seat) InGrid() bool {
	return s.Row >= 0 && s.Row < TheaterRows && s.Col >= 0 && s.Col < TheaterCols
}

// Label renders the seat the way it is printed on a ticket: row letter then 1-based column (A1..F8).
func (s Seat) Label() string {
	return fmt.Sprintf("%c%d", rune('A'+s.Row), s.Col+1)
}

// ParseSeat is the inverse of Seat.Label. Lower-case row letters are accepted.
func ParseSeat(label string) (Seat, error) {
	label = strings.ToUpper(strings.TrimSpace(label))
	if len(label) < 2 {
		return Seat{}, fmt.Errorf("invalid seat %q", label)
	}
	row := int(label[0] - 'A')
	col, err := strconv.Atoi(label[1:])
	if err != nil {
		return Seat{}, fmt.Errorf("invalid seat %q: %w", label, err)
	}
	seat := Seat{Row: row, Col: col - 1}
	if !seat.InGrid() {
		return Seat{}, fmt.Errorf("seat %q is outside the %dx%d theater", label, TheaterRows, TheaterCols)
	}
	return seat, nil
}

// ParseSeatList parses a comma or space separated list such as "A1, F1".
func ParseSeatList(raw string) ([]Seat, error) {
	fields := strings.FieldsFunc(raw, func(r rune) bool {
		return r == ',' || r == ' ' || r == ';'
	})
	if len(fields) == 0 {
		return nil, errors.New("no seats given")
	}
	seats := make([]Seat, 0, len(fields))
	for _, field := range fields {
		seat, err := ParseSeat(field)
		if err != nil {
			return nil, err
		}
		seats = append(seats, seat)
	}
	return seats, nil
}

func SeatLabels(seats []Seat) string {
	labels := make([]string, 0, len(seats))
	for _, seat := range seats {
		labels = append(labels, seat.Label())
	}
	return strings.Join(labels, ", ")
}

type Booking struct {
	ID        string    `json:"id"`
	MovieID   int       `json:"movieId"`
	MovieName string    `json:"movieName"`
	Showtime  string    `json:"showtime"`
	Seats     []Seat    `json:"seats"`
	Total     float64   `json:"total"`
	CreatedAt time.Time `json:"createdAt"`
}

// NewBookingID derives a short reference from the wall clock: BK followed by the last six digits
// of the unix time. Two bookings in the same second share an id.
func NewBookingID(now time.Time) string {
	return fmt.Sprintf("BK%06d", now.Unix()%1000000)
}

// Payload is the text encoded in the ticket QR code.
func (b Booking) Payload() string {
	return strings.Join([]string{
		b.ID,
		b.MovieName,
		b.Showtime,
		SeatLabels(b.Seats),
		fmt.Sprintf("%.2f", b.Total),
	}, "|")
}
