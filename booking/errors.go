package booking

import "errors"

var (
	ErrInvalidCatalog    = errors.New("invalid catalog")
	ErrSeatOutOfRange    = errors.New("seat is outside the theater grid")
	ErrSeatAlreadyBooked = errors.New("seat is already booked")
	ErrNotEnoughSeats    = errors.New("not enough available seats")
)
