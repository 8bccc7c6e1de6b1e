package booking

import (
	"fmt"

	"cinematrix-cli/model"
)

// Layout is the seat tier of every coordinate in the theater. It is computed once and never changes.
type Layout [model.TheaterRows][model.TheaterCols]model.SeatTier

// BuildLayout applies the tier rules row by row. Rows no rule covers are regular seats at full price;
// when rules overlap the later one wins.
func BuildLayout(rules []model.TierRule) (Layout, error) {
	var layout Layout
	for row := range layout {
		for col := range layout[row] {
			layout[row][col] = model.SeatTier{Kind: model.TierRegular, Multiplier: 1.0}
		}
	}

	for i, rule := range rules {
		if rule.FromRow < 0 || rule.ToRow >= model.TheaterRows || rule.FromRow > rule.ToRow {
			return Layout{}, fmt.Errorf("%w: tier rule %d covers rows %d-%d", ErrInvalidCatalog, i, rule.FromRow, rule.ToRow)
		}
		if !rule.Kind.Valid() {
			return Layout{}, fmt.Errorf("%w: tier rule %d has unknown kind %q", ErrInvalidCatalog, i, rule.Kind)
		}
		if rule.Multiplier <= 0 {
			return Layout{}, fmt.Errorf("%w: tier rule %d has multiplier %v", ErrInvalidCatalog, i, rule.Multiplier)
		}
		for row := rule.FromRow; row <= rule.ToRow; row++ {
			for col := range layout[row] {
				layout[row][col] = model.SeatTier{Kind: rule.Kind, Multiplier: rule.Multiplier}
			}
		}
	}
	return layout, nil
}

func (l *Layout) Tier(seat model.Seat) model.SeatTier {
	if !seat.InGrid() {
		return model.SeatTier{}
	}
	return l[seat.Row][seat.Col]
}
