package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"cinematrix-cli/booking"
	"cinematrix-cli/logger"
	"cinematrix-cli/model"
	"cinematrix-cli/store"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type appState int

const (
	stateSelectMovie appState = iota
	stateSelectShowtime
	stateSeatMap
	stateConfirm
	stateConfirmed
	stateError
)

// Options tunes a new application model. The zero value is usable.
type Options struct {
	Logger *logger.Logger
	// MovieID opens the showtime list of this movie on start when it is in the catalog.
	MovieID int
	Now     func() time.Time
	Rand    booking.Rand
}

type appModel struct {
	booking *booking.State
	log     *logger.Logger
	now     func() time.Time
	rng     booking.Rand

	state     appState
	lastState appState
	err       error

	width  int
	height int

	movieList    list.Model
	showtimeList list.Model

	recents []store.RecentShowtime

	cursor     model.Seat
	showLabels bool
	notice     string
	noticeWarn bool
	receipt    model.Booking
	clock      time.Time
}

type errMsg struct {
	err         error
	returnState appState
}

type tickMsg time.Time

// New builds the booking UI on top of state. The model is the only writer of state while the
// program runs.
func New(state *booking.State, opts Options) tea.Model {
	m := appModel{
		booking: state,
		log:     opts.Logger,
		now:     opts.Now,
		rng:     opts.Rand,
		state:   stateSelectMovie,
	}
	if m.now == nil {
		m.now = time.Now
	}
	m.clock = m.now()

	recents, err := store.LoadRecentShowtimes()
	if err != nil {
		m.log.Warn("STORE", fmt.Sprintf("recent showtimes unavailable: %v", err))
	}
	m.recents = recents

	m.movieList = newList("Select Movie")
	m.showtimeList = newList("Select Showtime")
	m.movieList.SetItems(buildMovieItems(state.Movies(), state.Currency(), m.recents))

	if opts.MovieID != 0 {
		if movie, ok := state.Movie(opts.MovieID); ok {
			m.selectMovieItem(movie.ID)
			m.openMovie(movie)
		} else {
			m.log.Warn("TUI", fmt.Sprintf("movie %d is not in the catalog", opts.MovieID))
		}
	}
	return m
}

func (m appModel) Init() tea.Cmd {
	return tickCmd()
}

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLists()
		return m, nil

	case tea.KeyMsg:
		if m.handleFilterInput(msg) {
			return m, nil
		}
		next, cmd, handled := m.handleKey(msg)
		if handled {
			return next, cmd
		}
		m = next

	case tickMsg:
		m.clock = time.Time(msg)
		return m, tickCmd()

	case errMsg:
		m.err = msg.err
		m.lastState = msg.returnState
		m.state = stateError
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case stateSelectMovie:
		m.movieList, cmd = m.movieList.Update(msg)
	case stateSelectShowtime:
		m.showtimeList, cmd = m.showtimeList.Update(msg)
	}
	return m, cmd
}

func (m appModel) View() string {
	header := m.headerView()
	switch m.state {
	case stateSelectMovie:
		return header + "\n\n" + m.movieList.View() + m.noticeView()
	case stateSelectShowtime:
		return header + "\n\n" + m.showtimeList.View() + m.noticeView()
	case stateSeatMap:
		return header + "\n\n" + m.seatMapView() + m.noticeView()
	case stateConfirm:
		return header + "\n\n" + m.confirmView()
	case stateConfirmed:
		return header + "\n\n" + m.receiptView()
	case stateError:
		message := "unknown error"
		if m.err != nil {
			message = m.err.Error()
		}
		return header + "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Render(message) + "\n\n" + hint("Press esc to go back or ctrl+c to quit.")
	default:
		return header
	}
}

func (m appModel) headerView() string {
	title := lipgloss.NewStyle().Bold(true).Render("Cinematrix")
	sub := []string{}
	if movieID, ok := m.booking.SelectedMovie(); ok && m.state != stateSelectMovie {
		if movie, found := m.booking.Movie(movieID); found {
			sub = append(sub, fmt.Sprintf("Movie: %s", movie.Name))
		}
	}
	if _, showtime, ok := m.booking.Selection(); ok && m.state != stateSelectMovie && m.state != stateSelectShowtime {
		sub = append(sub, fmt.Sprintf("Showtime: %s", showtime))
	}
	if !m.clock.IsZero() {
		sub = append(sub, m.clock.Format("Mon Jan 2 15:04:05"))
	}
	meta := strings.Join(sub, " • ")
	if meta != "" {
		meta = "\n" + lipgloss.NewStyle().Faint(true).Render(meta)
	}

	hints := "ctrl+c quit • type to filter • enter select"
	switch m.state {
	case stateSelectShowtime:
		hints = "ctrl+c quit • esc back • type to filter • enter open seats"
	case stateSeatMap:
		hints = "q quit • esc back • arrows/hjkl move • space toggle • c clear • r random • b book • n toggle labels"
	case stateConfirm:
		hints = "y confirm • n cancel"
	case stateConfirmed:
		hints = "ctrl+c quit • enter back to seats"
	}
	filterLine := ""
	if listPtr := m.activeList(); listPtr != nil {
		if filter := listPtr.FilterValue(); filter != "" {
			filterLine = "\n" + hint(fmt.Sprintf("Filter: %s", filter))
		}
	}
	return title + meta + filterLine + "\n" + hint(hints)
}

func (m appModel) noticeView() string {
	if m.notice == "" {
		return ""
	}
	if m.noticeWarn {
		return "\n\n" + lipgloss.NewStyle().Foreground(lipgloss.Color("203")).Bold(true).Render(m.notice)
	}
	return "\n\n" + hint(m.notice)
}

func (m appModel) handleKey(msg tea.KeyMsg) (appModel, tea.Cmd, bool) {
	key := msg.String()
	if key == "ctrl+c" {
		return m, tea.Quit, true
	}
	if key == "q" && m.activeList() == nil && m.state != stateConfirm {
		return m, tea.Quit, true
	}

	switch m.state {
	case stateSelectMovie:
		switch key {
		case "esc":
			m.movieList.ResetFilter()
			return m, nil, true
		case "enter":
			item, ok := m.movieList.SelectedItem().(movieItem)
			if !ok {
				return m, nil, true
			}
			m.openMovie(item.movie)
			return m, nil, true
		}

	case stateSelectShowtime:
		switch key {
		case "esc":
			if m.showtimeList.FilterValue() != "" {
				m.showtimeList.ResetFilter()
				return m, nil, true
			}
			m.notice = ""
			m.state = stateSelectMovie
			return m, nil, true
		case "enter":
			item, ok := m.showtimeList.SelectedItem().(showtimeItem)
			if !ok {
				return m, nil, true
			}
			m.openShowtime(item.label)
			return m, nil, true
		}

	case stateSeatMap:
		return m.handleSeatKey(key)

	case stateConfirm:
		switch key {
		case "y", "enter":
			return m.confirmBooking()
		case "n", "esc":
			m.state = stateSeatMap
			return m, nil, true
		}
		return m, nil, true

	case stateConfirmed:
		switch key {
		case "enter", "esc":
			m.state = stateSeatMap
			return m, nil, true
		}
		return m, nil, true

	case stateError:
		switch key {
		case "enter", "esc":
			m.err = nil
			m.state = m.lastState
			return m, nil, true
		}
		return m, nil, true
	}
	return m, nil, false
}

func (m appModel) handleSeatKey(key string) (appModel, tea.Cmd, bool) {
	switch key {
	case "up", "k":
		m.moveCursor(-1, 0)
	case "down", "j":
		m.moveCursor(1, 0)
	case "left", "h":
		m.moveCursor(0, -1)
	case "right", "l":
		m.moveCursor(0, 1)
	case " ", "enter":
		m.toggleCursorSeat()
	case "c":
		m.clearSelection()
	case "r":
		m.randomSelection()
	case "b":
		m.requestConfirm()
	case "n":
		m.showLabels = !m.showLabels
	case "esc":
		m.notice = ""
		m.refreshShowtimes()
		m.state = stateSelectShowtime
	default:
		return m, nil, false
	}
	return m, nil, true
}

func (m *appModel) openMovie(movie model.Movie) {
	m.booking.SelectMovie(movie.ID)
	m.showtimeList.Title = "Select Showtime • " + movie.Name
	m.showtimeList.ResetFilter()
	m.refreshShowtimes()
	m.notice = ""
	m.state = stateSelectShowtime
}

func (m *appModel) refreshShowtimes() {
	movieID, ok := m.booking.SelectedMovie()
	if !ok {
		return
	}
	movie, found := m.booking.Movie(movieID)
	if !found {
		return
	}
	items, index := buildShowtimeItems(m.booking, movie, m.recents)
	if _, showtime, ok := m.booking.Selection(); ok {
		for i, label := range movie.Showtimes {
			if label == showtime {
				index = i
			}
		}
	}
	m.showtimeList.SetItems(items)
	m.showtimeList.Select(index)
}

func (m *appModel) openShowtime(showtime string) {
	movieID, ok := m.booking.SelectedMovie()
	movie, found := m.booking.Movie(movieID)
	if !ok || !found {
		m.warn("Please select a movie first!")
		return
	}
	m.booking.SelectShowtime(showtime)

	if err := store.RememberShowtime(movie, showtime); err != nil {
		m.log.Warn("STORE", fmt.Sprintf("remember showtime: %v", err))
	} else if recents, err := store.LoadRecentShowtimes(); err == nil {
		m.recents = recents
		m.movieList.SetItems(buildMovieItems(m.booking.Movies(), m.booking.Currency(), m.recents))
	}
	m.log.LogSelection(movie.Name, showtime, "seat map opened")

	m.cursor = model.Seat{}
	m.notice = ""
	m.state = stateSeatMap
}

func (m *appModel) selectMovieItem(movieID int) {
	for i, item := range m.movieList.Items() {
		if movie, ok := item.(movieItem); ok && movie.movie.ID == movieID {
			m.movieList.Select(i)
			return
		}
	}
}

func (m *appModel) moveCursor(dRow, dCol int) {
	m.cursor.Row = clamp(m.cursor.Row+dRow, 0, model.TheaterRows-1)
	m.cursor.Col = clamp(m.cursor.Col+dCol, 0, model.TheaterCols-1)
}

func (m *appModel) toggleCursorSeat() {
	movieID, showtime, ok := m.booking.Selection()
	if !ok {
		m.warn("Please select a movie first!")
		return
	}
	label := m.cursor.Label()
	if m.booking.IsBooked(movieID, showtime, m.cursor) {
		m.warn(fmt.Sprintf("Seat %s is already booked!", label))
		return
	}
	if m.booking.ToggleSeat(movieID, showtime, m.cursor) {
		m.info(fmt.Sprintf("Seat %s selected", label))
	} else {
		m.info(fmt.Sprintf("Seat %s released", label))
	}
}

func (m *appModel) clearSelection() {
	movieID, showtime, ok := m.booking.Selection()
	if !ok {
		m.warn("Please select a movie first!")
		return
	}
	m.booking.ClearSelection(movieID, showtime)
	m.info("Selection cleared")
}

func (m *appModel) randomSelection() {
	movieID, showtime, ok := m.booking.Selection()
	if !ok {
		m.warn("Please select a movie first!")
		return
	}
	seats, err := m.booking.RandomSelection(movieID, showtime, m.rng)
	if errors.Is(err, booking.ErrNotEnoughSeats) {
		m.warn("Not enough seats left for a random pick!")
		return
	}
	if err != nil {
		m.warn(err.Error())
		return
	}
	labels := model.SeatLabels(seats)
	if movie, found := m.booking.Movie(movieID); found {
		m.log.LogSelection(movie.Name, showtime, "random selection "+labels)
	}
	m.info("Random pick: " + labels)
}

func (m *appModel) requestConfirm() {
	movieID, showtime, ok := m.booking.Selection()
	if !ok {
		m.warn("Please select a movie first!")
		return
	}
	if len(m.booking.SelectedSeats(movieID, showtime)) == 0 {
		m.warn("Please select at least one seat!")
		return
	}
	m.notice = ""
	m.state = stateConfirm
}

func (m appModel) confirmBooking() (appModel, tea.Cmd, bool) {
	movieID, showtime, ok := m.booking.Selection()
	seats := m.booking.SelectedSeats(movieID, showtime)
	if !ok || len(seats) == 0 {
		m.warn("Please select at least one seat!")
		m.state = stateSeatMap
		return m, nil, true
	}
	movie, _ := m.booking.Movie(movieID)
	total := m.booking.TotalPrice()

	if err := m.booking.BookSeats(movieID, showtime, seats); err != nil {
		m.log.Error("BOOKING", fmt.Sprintf("rejected %s %s: %v", movie.Name, showtime, err))
		return m, errCmd(err, stateSeatMap), true
	}

	now := m.now()
	m.receipt = model.Booking{
		ID:        model.NewBookingID(now),
		MovieID:   movieID,
		MovieName: movie.Name,
		Showtime:  showtime,
		Seats:     seats,
		Total:     total,
		CreatedAt: now,
	}
	m.log.LogBooking("confirmed", m.receipt.ID, fmt.Sprintf("%s %s seats %s total %.2f", movie.Name, showtime, model.SeatLabels(seats), total))
	m.notice = ""
	m.state = stateConfirmed
	return m, nil, true
}

func (m *appModel) warn(text string) {
	m.notice = text
	m.noticeWarn = true
}

func (m *appModel) info(text string) {
	m.notice = text
	m.noticeWarn = false
}

func (m *appModel) handleFilterInput(msg tea.KeyMsg) bool {
	listPtr := m.activeList()
	if listPtr == nil {
		return false
	}
	if !listPtr.FilteringEnabled() {
		return false
	}
	switch msg.Type {
	case tea.KeyRunes:
		if len(msg.Runes) == 0 {
			return false
		}
		m.appendFilter(listPtr, string(msg.Runes))
		return true
	case tea.KeySpace:
		m.appendFilter(listPtr, " ")
		return true
	case tea.KeyBackspace, tea.KeyDelete:
		if listPtr.FilterValue() == "" {
			return false
		}
		m.popFilter(listPtr)
		return true
	default:
		return false
	}
}

func (m *appModel) appendFilter(listPtr *list.Model, value string) {
	if value == "" {
		return
	}
	current := listPtr.FilterValue()
	listPtr.SetFilterText(current + value)
}

func (m *appModel) popFilter(listPtr *list.Model) {
	value := listPtr.FilterValue()
	if value == "" {
		return
	}
	value = trimLastRune(value)
	if value == "" {
		listPtr.ResetFilter()
		return
	}
	listPtr.SetFilterText(value)
}

func trimLastRune(value string) string {
	runes := []rune(value)
	if len(runes) <= 1 {
		return ""
	}
	return string(runes[:len(runes)-1])
}

func (m *appModel) activeList() *list.Model {
	switch m.state {
	case stateSelectMovie:
		return &m.movieList
	case stateSelectShowtime:
		return &m.showtimeList
	default:
		return nil
	}
}

func (m *appModel) resizeLists() {
	if m.width == 0 || m.height == 0 {
		return
	}
	h := m.height - 8
	if h < 6 {
		h = 6
	}
	m.movieList.SetSize(m.width, h)
	m.showtimeList.SetSize(m.width, h)
}

func newList(title string) list.Model {
	delegate := list.NewDefaultDelegate()
	delegate.ShowDescription = true
	l := list.New([]list.Item{}, delegate, 0, 0)
	l.Title = title
	l.Filter = caseInsensitiveFilter
	l.SetFilteringEnabled(true)
	l.SetShowFilter(true)
	l.SetShowStatusBar(false)
	l.SetShowHelp(false)
	return l
}

func hint(text string) string {
	return lipgloss.NewStyle().Faint(true).Render(text)
}

func errCmd(err error, returnState appState) tea.Cmd {
	return func() tea.Msg {
		return errMsg{err: err, returnState: returnState}
	}
}

func tickCmd() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func caseInsensitiveFilter(term string, targets []string) []list.Rank {
	term = strings.ToLower(term)
	lower := make([]string, len(targets))
	for i, t := range targets {
		lower[i] = strings.ToLower(t)
	}
	return list.DefaultFilter(term, lower)
}

func clamp(value, lo, hi int) int {
	return max(lo, min(value, hi))
}
