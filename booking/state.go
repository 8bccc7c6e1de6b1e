// Package booking holds the seat booking state of the theater: the movie catalog, the seat tier
// layout and one seat grid per movie/showtime pairing.
//
// A State is owned by a single caller. None of its methods block and none are safe for concurrent
// use; the terminal UI drives it from its Update loop only.
package booking

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"cinematrix-cli/model"
)

type SeatState uint8

const (
	SeatAvailable SeatState = iota
	SeatSelected
	SeatBooked
)

func (s SeatState) String() string {
	switch s {
	case SeatAvailable:
		return "available"
	case SeatSelected:
		return "selected"
	case SeatBooked:
		return "booked"
	default:
		return fmt.Sprintf("SeatState(%d)", uint8(s))
	}
}

type showtimeKey struct {
	movieID  int
	showtime string
}

// session is the seat grid of one movie/showtime pairing. Booked is terminal: no operation moves a
// booked cell back to available or selected.
type session struct {
	cells [model.TheaterRows][model.TheaterCols]SeatState
}

func (s *session) at(seat model.Seat) SeatState {
	return s.cells[seat.Row][seat.Col]
}

func (s *session) collect(state SeatState) []model.Seat {
	var seats []model.Seat
	for row := range s.cells {
		for col := range s.cells[row] {
			if s.cells[row][col] == state {
				seats = append(seats, model.Seat{Row: row, Col: col})
			}
		}
	}
	return seats
}

type Stats struct {
	Selected int
	Booked   int
	Total    int
}

// Rand is the subset of *rand.Rand used by RandomSelection.
type Rand interface {
	IntN(n int) int
}

type State struct {
	movies    []model.Movie
	movieByID map[int]int
	layout    Layout
	currency  string

	sessions map[showtimeKey]*session

	movieID  int
	movieSet bool
	showtime string
}

// New builds a State from a catalog. The catalog is copied; later changes to it have no effect.
func New(catalog model.Catalog) (*State, error) {
	movies, err := buildMovies(catalog)
	if err != nil {
		return nil, err
	}
	layout, err := BuildLayout(catalog.Tiers)
	if err != nil {
		return nil, err
	}

	currency := catalog.CurrencySymbol
	if currency == "" {
		currency = DefaultCurrencySymbol
	}
	s := &State{
		movies:    movies,
		movieByID: make(map[int]int, len(movies)),
		layout:    layout,
		currency:  currency,
		sessions:  make(map[showtimeKey]*session),
	}
	for i, movie := range movies {
		s.movieByID[movie.ID] = i
	}
	return s, nil
}

// NewDefault builds a State from DefaultCatalog.
func NewDefault() *State {
	s, err := New(DefaultCatalog())
	if err != nil {
		panic(fmt.Sprintf("default catalog: %v", err))
	}
	return s
}

// Reset forgets every session and clears the selection. The catalog and layout are kept.
func (s *State) Reset() {
	s.sessions = make(map[showtimeKey]*session)
	s.movieID = 0
	s.movieSet = false
	s.showtime = ""
}

func (s *State) Currency() string {
	return s.currency
}

func (s *State) Movies() []model.Movie {
	out := make([]model.Movie, len(s.movies))
	copy(out, s.movies)
	return out
}

func (s *State) Movie(id int) (model.Movie, bool) {
	i, ok := s.movieByID[id]
	if !ok {
		return model.Movie{}, false
	}
	return s.movies[i], true
}

func (s *State) HasShowtime(movieID int, showtime string) bool {
	movie, ok := s.Movie(movieID)
	if !ok {
		return false
	}
	for _, label := range movie.Showtimes {
		if label == showtime {
			return true
		}
	}
	return false
}

func (s *State) SeatTier(seat model.Seat) model.SeatTier {
	return s.layout.Tier(seat)
}

// SeatPrice is the movie's base price scaled by the seat's tier. Unknown movies and seats outside
// the grid price at zero.
func (s *State) SeatPrice(movieID int, seat model.Seat) float64 {
	movie, ok := s.Movie(movieID)
	if !ok || !seat.InGrid() {
		return 0
	}
	return movie.BasePrice * s.layout.Tier(seat).Multiplier
}

// SelectMovie moves the selection to a movie. The id is not checked against the catalog and the
// selected showtime is kept.
func (s *State) SelectMovie(id int) {
	s.movieID = id
	s.movieSet = true
}

// SelectShowtime moves the selection to a showtime label. The label is not checked against the
// selected movie.
func (s *State) SelectShowtime(showtime string) {
	s.showtime = showtime
}

// Selection reports the selected movie and showtime. ok is false until both have been chosen.
func (s *State) Selection() (movieID int, showtime string, ok bool) {
	return s.movieID, s.showtime, s.movieSet && s.showtime != ""
}

func (s *State) SelectedMovie() (int, bool) {
	return s.movieID, s.movieSet
}

func (s *State) session(movieID int, showtime string) *session {
	key := showtimeKey{movieID: movieID, showtime: showtime}
	sess, ok := s.sessions[key]
	if !ok {
		sess = &session{}
		s.sessions[key] = sess
	}
	return sess
}

func (s *State) lookup(movieID int, showtime string) (*session, bool) {
	sess, ok := s.sessions[showtimeKey{movieID: movieID, showtime: showtime}]
	return sess, ok
}

// ToggleSeat flips a seat between available and selected and reports whether it is now selected.
// Booked seats are left untouched and report false, as do seats outside the grid.
func (s *State) ToggleSeat(movieID int, showtime string, seat model.Seat) bool {
	if !seat.InGrid() {
		return false
	}
	sess := s.session(movieID, showtime)
	switch sess.at(seat) {
	case SeatAvailable:
		sess.cells[seat.Row][seat.Col] = SeatSelected
		return true
	case SeatSelected:
		sess.cells[seat.Row][seat.Col] = SeatAvailable
		return false
	default:
		return false
	}
}

func (s *State) SeatState(movieID int, showtime string, seat model.Seat) SeatState {
	sess, ok := s.lookup(movieID, showtime)
	if !ok || !seat.InGrid() {
		return SeatAvailable
	}
	return sess.at(seat)
}

func (s *State) IsBooked(movieID int, showtime string, seat model.Seat) bool {
	return s.SeatState(movieID, showtime, seat) == SeatBooked
}

// SelectedSeats lists the tentatively selected seats in row-major order.
func (s *State) SelectedSeats(movieID int, showtime string) []model.Seat {
	sess, ok := s.lookup(movieID, showtime)
	if !ok {
		return []model.Seat{}
	}
	seats := sess.collect(SeatSelected)
	if seats == nil {
		return []model.Seat{}
	}
	return seats
}

func (s *State) BookedSeats(movieID int, showtime string) []model.Seat {
	sess, ok := s.lookup(movieID, showtime)
	if !ok {
		return []model.Seat{}
	}
	seats := sess.collect(SeatBooked)
	if seats == nil {
		return []model.Seat{}
	}
	return seats
}

func (s *State) Stats(movieID int, showtime string) Stats {
	stats := Stats{Total: model.TotalSeats}
	sess, ok := s.lookup(movieID, showtime)
	if !ok {
		return stats
	}
	for row := range sess.cells {
		for col := range sess.cells[row] {
			switch sess.cells[row][col] {
			case SeatSelected:
				stats.Selected++
			case SeatBooked:
				stats.Booked++
			}
		}
	}
	return stats
}

// TotalPrice sums the price of every selected seat for the selected movie and showtime. It is zero
// until both have been chosen.
func (s *State) TotalPrice() float64 {
	movieID, showtime, ok := s.Selection()
	if !ok {
		return 0
	}
	total := 0.0
	for _, seat := range s.SelectedSeats(movieID, showtime) {
		total += s.SeatPrice(movieID, seat)
	}
	return total
}

// BookSeats commits seats for a movie/showtime. Every seat is checked before any is booked, so a
// rejected call changes nothing. Seats may be selected or available; listing a seat twice is allowed.
func (s *State) BookSeats(movieID int, showtime string, seats []model.Seat) error {
	if len(seats) == 0 {
		return nil
	}
	for _, seat := range seats {
		if !seat.InGrid() {
			return fmt.Errorf("book %s: %w", seat.Label(), ErrSeatOutOfRange)
		}
	}

	sess := s.session(movieID, showtime)
	for _, seat := range seats {
		if sess.at(seat) == SeatBooked {
			return fmt.Errorf("book %s: %w", seat.Label(), ErrSeatAlreadyBooked)
		}
	}
	for _, seat := range seats {
		sess.cells[seat.Row][seat.Col] = SeatBooked
	}
	return nil
}

// ClearSelection returns every selected seat of the pairing to available. Booked seats stay booked.
func (s *State) ClearSelection(movieID int, showtime string) {
	sess, ok := s.lookup(movieID, showtime)
	if !ok {
		return
	}
	for row := range sess.cells {
		for col := range sess.cells[row] {
			if sess.cells[row][col] == SeatSelected {
				sess.cells[row][col] = SeatAvailable
			}
		}
	}
}

// RandomSelection clears the current selection and picks two to four available seats at random.
// When fewer than two seats are available nothing is selected and ErrNotEnoughSeats is returned.
// A nil rng uses the package-level generator.
func (s *State) RandomSelection(movieID int, showtime string, rng Rand) ([]model.Seat, error) {
	intN := rand.IntN
	if rng != nil {
		intN = rng.IntN
	}

	s.ClearSelection(movieID, showtime)
	sess := s.session(movieID, showtime)
	available := sess.collect(SeatAvailable)
	if len(available) < 2 {
		return nil, ErrNotEnoughSeats
	}

	count := min(2+intN(3), len(available))
	for i := 0; i < count; i++ {
		j := i + intN(len(available)-i)
		available[i], available[j] = available[j], available[i]
	}
	picked := available[:count]
	sort.Slice(picked, func(i, j int) bool {
		if picked[i].Row != picked[j].Row {
			return picked[i].Row < picked[j].Row
		}
		return picked[i].Col < picked[j].Col
	})
	for _, seat := range picked {
		sess.cells[seat.Row][seat.Col] = SeatSelected
	}
	return picked, nil
}
