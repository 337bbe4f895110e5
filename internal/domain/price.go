package domain

import "time"

// PricePoint is one cached monthly mandi price observation for a crop in a
// state, in INR per quintal.
type PricePoint struct {
	ID         string
	Crop       string
	State      string
	Month      int // 1-12
	Year       int
	MinPrice   int
	MaxPrice   int
	ModalPrice int
	Source     string
	FetchedAt  time.Time
}
