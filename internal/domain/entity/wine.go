package entity

// Wine is one catalog row. String fields keep the raw CSV cell for display;
// the numeric twins are normalized at load time and hold -1 when the cell
// could not be parsed.
type Wine struct {
	Winery     string
	Name       string
	Vintage    string
	Country    string
	Region     string
	Color      string
	GrapeTypes string

	ABV        float64
	PriceValue float64
	Price      string

	Rating     float64
	NumRatings int
}
