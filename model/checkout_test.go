package model

import (
	"strings"
	"testing"
	"time"
)

func TestSeatLabel(t *testing.T) {
	cases := map[Seat]string{
		{Row: 0, Col: 0}: "A1",
		{Row: 2, Col: 4}: "C5",
		{Row: 5, Col: 7}: "F8",
	}
	for seat, want := range cases {
		if got := seat.Label(); got != want {
			t.Fatalf("expected %q, got %q", want, got)
		}
	}
}

func TestParseSeat(t *testing.T) {
	seat, err := ParseSeat(" f8 ")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if seat != (Seat{Row: 5, Col: 7}) {
		t.Fatalf("expected F8, got %+v", seat)
	}

	for _, label := range []string{"", "A", "A0", "A9", "G1", "11", "AB"} {
		if _, err := ParseSeat(label); err == nil {
			t.Fatalf("expected error for %q", label)
		}
	}
}

func TestParseSeatList(t *testing.T) {
	seats, err := ParseSeatList("A1, b2;C3 D4")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if got := SeatLabels(seats); got != "A1, B2, C3, D4" {
		t.Fatalf("expected A1, B2, C3, D4, got %q", got)
	}

	if _, err := ParseSeatList(" , "); err == nil {
		t.Fatal("expected error for empty list")
	}
	if _, err := ParseSeatList("A1,Z1"); err == nil {
		t.Fatal("expected error for out of range seat")
	}
}

func TestNewBookingID(t *testing.T) {
	if got := NewBookingID(time.Unix(1234567890, 0)); got != "BK567890" {
		t.Fatalf("expected BK567890, got %q", got)
	}
	if got := NewBookingID(time.Unix(5, 0)); got != "BK000005" {
		t.Fatalf("expected BK000005, got %q", got)
	}
}

func TestBookingPayload(t *testing.T) {
	b := Booking{
		ID:        "BK000123",
		MovieName: "Inception",
		Showtime:  "2:00 PM",
		Seats:     []Seat{{Row: 0, Col: 0}, {Row: 5, Col: 7}},
		Total:     697.2,
	}
	got := b.Payload()
	if got != "BK000123|Inception|2:00 PM|A1, F8|697.20" {
		t.Fatalf("unexpected payload %q", got)
	}
	if strings.Count(got, "|") != 4 {
		t.Fatalf("expected 5 fields, got %q", got)
	}
}

func TestTierKind(t *testing.T) {
	if TierPremium.Title() != "Premium" || TierEconomy.Title() != "Economy" || TierRegular.Title() != "Regular" {
		t.Fatal("unexpected tier titles")
	}
	if TierKind("vip").Valid() {
		t.Fatal("expected vip to be invalid")
	}
	if !TierRegular.Valid() {
		t.Fatal("expected regular to be valid")
	}
}
