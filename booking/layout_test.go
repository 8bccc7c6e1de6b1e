package booking

import (
	"testing"

	"cinematrix-cli/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildLayout_Default(t *testing.T) {
	layout, err := BuildLayout(DefaultCatalog().Tiers)
	require.NoError(t, err)

	for col := 0; col < model.TheaterCols; col++ {
		assert.Equal(t, model.SeatTier{Kind: model.TierEconomy, Multiplier: 0.8}, layout.Tier(model.Seat{Row: 0, Col: col}))
		for row := 1; row <= 3; row++ {
			assert.Equal(t, model.SeatTier{Kind: model.TierRegular, Multiplier: 1.0}, layout.Tier(model.Seat{Row: row, Col: col}))
		}
		for row := 4; row <= 5; row++ {
			assert.Equal(t, model.SeatTier{Kind: model.TierPremium, Multiplier: 1.3}, layout.Tier(model.Seat{Row: row, Col: col}))
		}
	}
}

func TestBuildLayout_UncoveredRowsAreRegular(t *testing.T) {
	layout, err := BuildLayout([]model.TierRule{{FromRow: 5, ToRow: 5, Kind: model.TierPremium, Multiplier: 2}})
	require.NoError(t, err)

	assert.Equal(t, model.TierRegular, layout.Tier(model.Seat{Row: 0, Col: 0}).Kind)
	assert.Equal(t, 2.0, layout.Tier(model.Seat{Row: 5, Col: 7}).Multiplier)
}

func TestBuildLayout_InvalidRules(t *testing.T) {
	tests := []struct {
		name string
		rule model.TierRule
	}{
		{name: "row below grid", rule: model.TierRule{FromRow: -1, ToRow: 0, Kind: model.TierEconomy, Multiplier: 1}},
		{name: "row above grid", rule: model.TierRule{FromRow: 4, ToRow: 6, Kind: model.TierPremium, Multiplier: 1}},
		{name: "reversed range", rule: model.TierRule{FromRow: 3, ToRow: 2, Kind: model.TierRegular, Multiplier: 1}},
		{name: "unknown kind", rule: model.TierRule{FromRow: 0, ToRow: 0, Kind: "balcony", Multiplier: 1}},
		{name: "zero multiplier", rule: model.TierRule{FromRow: 0, ToRow: 0, Kind: model.TierEconomy}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := BuildLayout([]model.TierRule{tt.rule})
			assert.ErrorIs(t, err, ErrInvalidCatalog)
		})
	}
}

func TestLayoutTier_OutOfGrid(t *testing.T) {
	layout, err := BuildLayout(nil)
	require.NoError(t, err)

	assert.Equal(t, model.SeatTier{}, layout.Tier(model.Seat{Row: 6, Col: 0}))
}
