package model

type Catalog struct {
	CurrencyRate   float64             `json:"currency_rate"`
	CurrencySymbol string              `json:"currency_symbol"`
	Movies         map[int]MovieConfig `json:"movies"`
	Tiers          []TierRule          `json:"tiers"`
}

type MovieConfig struct {
	Name         string   `json:"name"`
	Genre        string   `json:"genre"`
	Rating       float64  `json:"rating"`
	Duration     string   `json:"duration"`
	BasePriceUSD float64  `json:"base_price_usd"`
	Showtimes    []string `json:"showtimes"`
	Description  string   `json:"description"`
}
