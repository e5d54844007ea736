package domain

// Coordinate is the most recent successful location reading. A new
// reading overwrites the previous one wholesale, never merges.
type Coordinate struct {
	Lat      float64 `json:"lat"`
	Lng      float64 `json:"lng"`
	Accuracy float64 `json:"accuracy"`
}
