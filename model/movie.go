package model

type Movie struct {
	ID          int      `json:"id"`
	Name        string   `json:"name"`
	Genre       string   `json:"genre"`
	Rating      float64  `json:"rating"`
	Duration    string   `json:"duration"`
	BasePrice   float64  `json:"basePrice"`
	Showtimes   []string `json:"showtimes"`
	Description string   `json:"description"`
}
