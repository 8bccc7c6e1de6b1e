package model

const (
	TheaterRows = 6
	TheaterCols = 8
	TotalSeats  = TheaterRows * TheaterCols
)

type TierKind string

const (
	TierEconomy TierKind = "economy"
	TierRegular TierKind = "regular"
	TierPremium TierKind = "premium"
)

// Title returns the kind with an upper-case first letter, as shown in seat summaries.
func (k TierKind) Title() string {
	switch k {
	case TierEconomy:
		return "Economy"
	case TierPremium:
		return "Premium"
	case TierRegular:
		return "Regular"
	default:
		return string(k)
	}
}

func (k TierKind) Valid() bool {
	return k == TierEconomy || k == TierRegular || k == TierPremium
}

type SeatTier struct {
	Kind       TierKind `json:"kind"`
	Multiplier float64  `json:"multiplier"`
}

// TierRule classifies every seat in rows FromRow..ToRow (inclusive).
type TierRule struct {
	FromRow    int      `json:"from_row"`
	ToRow      int      `json:"to_row"`
	Kind       TierKind `json:"kind"`
	Multiplier float64  `json:"multiplier"`
}
