package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"cinematrix-cli/booking"
	"cinematrix-cli/logger"
	"cinematrix-cli/model"
	"cinematrix-cli/store"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setTestDirs(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	t.Setenv("HOME", root)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(root, "config"))
	t.Setenv("XDG_CACHE_HOME", filepath.Join(root, "cache"))
	t.Setenv("CINEMATRIX_CATALOG", "")
	t.Setenv("CINEMATRIX_LOG_FILE", "")
	t.Setenv("CINEMATRIX_LOG_LEVEL", "")
	t.Setenv("CINEMATRIX_DEBUG", "")
	t.Setenv("CINEMATRIX_MOVIE", "")
	t.Chdir(root)
	return root
}

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	rootCmd := NewRootCmd(BuildInfo{Version: "1.2.3", Commit: "abc123"})
	var out, errOut bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestVersionCommand(t *testing.T) {
	setTestDirs(t)

	out, err := runCommand(t, "version")
	require.NoError(t, err)
	assert.Equal(t, "cinematrix-cli 1.2.3 (abc123)\n", out)
}

func TestMoviesCommand_DefaultCatalog(t *testing.T) {
	setTestDirs(t)

	out, err := runCommand(t, "movies")
	require.NoError(t, err)
	assert.Contains(t, out, "Inception")
	assert.Contains(t, out, "The Dark Knight")
	assert.Contains(t, out, "Interstellar")
	assert.Contains(t, out, "₹332.00")
}

func TestMoviesCommand_CatalogFromEnv(t *testing.T) {
	root := setTestDirs(t)
	path := filepath.Join(root, "custom.json")
	require.NoError(t, store.SaveCatalog(path, model.Catalog{
		CurrencyRate:   1,
		CurrencySymbol: "$",
		Movies: map[int]model.MovieConfig{
			7: {Name: "Heat", Genre: "Crime", BasePriceUSD: 10, Showtimes: []string{"6:00 PM"}},
		},
	}))
	t.Setenv("CINEMATRIX_CATALOG", path)

	out, err := runCommand(t, "movies")
	require.NoError(t, err)
	assert.Contains(t, out, "Heat")
	assert.Contains(t, out, "$10.00")
	assert.NotContains(t, out, "Inception")
}

func TestMoviesCommand_MissingExplicitCatalog(t *testing.T) {
	root := setTestDirs(t)

	_, err := runCommand(t, "movies", "--catalog", filepath.Join(root, "missing.json"))
	require.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestMoviesCommand_InvalidCatalog(t *testing.T) {
	root := setTestDirs(t)
	path := filepath.Join(root, "empty.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"movies":{}}`), 0o644))

	_, err := runCommand(t, "movies", "--catalog", path)
	require.Error(t, err)
	assert.ErrorIs(t, err, booking.ErrInvalidCatalog)
}

func TestSeatsCommand(t *testing.T) {
	setTestDirs(t)

	out, err := runCommand(t, "seats", "--movie", "1", "--showtime", "2:00 PM")
	require.NoError(t, err)
	assert.Contains(t, out, "Inception • 2:00 PM")
	assert.Contains(t, out, "Economy")
	assert.Contains(t, out, "₹265.60")
	assert.Contains(t, out, "Premium")
	assert.Contains(t, out, "₹431.60")
	assert.Contains(t, out, "F1-F8")
}

func TestSeatsCommand_Errors(t *testing.T) {
	setTestDirs(t)

	_, err := runCommand(t, "seats", "--movie", "42")
	assert.Error(t, err)

	_, err = runCommand(t, "seats", "--movie", "1", "--showtime", "11:00 AM")
	assert.Error(t, err)
}

func TestBookCommand(t *testing.T) {
	setTestDirs(t)

	out, err := runCommand(t, "book", "--movie", "1", "--showtime", "2:00 PM", "--seats", "A1,F8", "--yes", "--no-qr")
	require.NoError(t, err)
	assert.Contains(t, out, "Booking Confirmed!")
	assert.Contains(t, out, "Inception • 2:00 PM")
	assert.Contains(t, out, "A1")
	assert.Contains(t, out, "F8")
	assert.Contains(t, out, "697.20")
	assert.Contains(t, out, "Enjoy your movie!")
}

func TestBookCommand_RejectsBadInput(t *testing.T) {
	setTestDirs(t)

	_, err := runCommand(t, "book", "--movie", "1", "--showtime", "11:00 AM", "--seats", "A1", "--yes")
	assert.Error(t, err)

	_, err = runCommand(t, "book", "--movie", "1", "--showtime", "2:00 PM", "--seats", "Z9", "--yes")
	assert.Error(t, err)

	_, err = runCommand(t, "book", "--movie", "9", "--showtime", "2:00 PM", "--seats", "A1", "--yes")
	assert.Error(t, err)
}

func TestBookSeats(t *testing.T) {
	state := booking.NewDefault()
	now := func() time.Time { return time.Unix(1700000123, 0) }
	req := bookRequest{movieID: 1, showtime: "2:00 PM", seats: "A1, a1, F8"}

	receipt, err := bookSeats(state, req, logger.Discard(), now)
	require.NoError(t, err)

	assert.Equal(t, "BK000123", receipt.ID)
	assert.Equal(t, "Inception", receipt.MovieName)
	assert.Equal(t, []model.Seat{{Row: 0, Col: 0}, {Row: 5, Col: 7}}, receipt.Seats)
	assert.InDelta(t, 697.2, receipt.Total, 1e-9)
	assert.Len(t, state.BookedSeats(1, "2:00 PM"), 2)
	assert.Empty(t, state.SelectedSeats(1, "2:00 PM"))

	_, err = bookSeats(state, bookRequest{movieID: 1, showtime: "2:00 PM", seats: "B2,A1"}, logger.Discard(), now)
	assert.ErrorIs(t, err, booking.ErrSeatAlreadyBooked)
}

func TestCatalogInit(t *testing.T) {
	root := setTestDirs(t)
	path := filepath.Join(root, "catalog.json")

	out, err := runCommand(t, "catalog", "init", path)
	require.NoError(t, err)
	assert.Contains(t, out, path)

	catalog, found, err := store.LoadCatalog(path)
	require.NoError(t, err)
	require.True(t, found)
	assert.Len(t, catalog.Movies, 3)

	_, err = runCommand(t, "catalog", "init", path)
	assert.Error(t, err)

	_, err = runCommand(t, "catalog", "init", path, "--force")
	assert.NoError(t, err)

	out, err = runCommand(t, "movies", "--catalog", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Interstellar")
}

func TestCatalogInit_DefaultLocationIsPickedUp(t *testing.T) {
	setTestDirs(t)

	_, err := runCommand(t, "catalog", "init")
	require.NoError(t, err)

	path, err := store.DefaultCatalogPath()
	require.NoError(t, err)
	_, found, err := store.LoadCatalog(path)
	require.NoError(t, err)
	assert.True(t, found)

	out, err := runCommand(t, "movies")
	require.NoError(t, err)
	assert.Contains(t, out, "Inception")
}
