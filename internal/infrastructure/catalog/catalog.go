// Package catalog loads the scraped wine snapshot the recommender filters
// over. The CSV schema comes from the Vivino scraper that produces it.
package catalog

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

// Column names as written by the scraper.
const (
	colABV        = "Alcohol Level (ABV)"
	colWinery     = "Winery"
	colName       = "Name"
	colVintage    = "Vintage"
	colCountry    = "Country"
	colRegion     = "Region"
	colColor      = "Colour of Wine"
	colGrapeTypes = "Grape Types"
	colRatings    = "Ratings"
	colNumRatings = "Number of Ratings"
	colPrice      = "Price"
)

// LoadFile reads the catalog CSV at path.
func LoadFile(path string) ([]entity.Wine, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer f.Close()

	wines, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog %s: %w", path, err)
	}
	return wines, nil
}

// Load parses catalog rows from r. Rows with malformed numeric cells are
// kept with sentinel values rather than dropped; the filter treats them as
// never matching a range constraint.
func Load(r io.Reader) ([]entity.Wine, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("failed to read header: %w", err)
	}

	idx := make(map[string]int, len(header))
	for i, name := range header {
		idx[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{colWinery, colName, colColor, colCountry, colPrice} {
		if _, ok := idx[required]; !ok {
			return nil, fmt.Errorf("catalog is missing column %q", required)
		}
	}

	cell := func(record []string, name string) string {
		i, ok := idx[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var wines []entity.Wine
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read record: %w", err)
		}

		w := entity.Wine{
			Winery:     cell(record, colWinery),
			Name:       cell(record, colName),
			Vintage:    normalizeVintage(cell(record, colVintage)),
			Country:    cell(record, colCountry),
			Region:     cell(record, colRegion),
			Color:      cell(record, colColor),
			GrapeTypes: cell(record, colGrapeTypes),
			ABV:        parseFloatOr(cell(record, colABV), -1),
			Price:      cell(record, colPrice),
			PriceValue: normalizePrice(cell(record, colPrice)),
			Rating:     parseFloatOr(cell(record, colRatings), 0),
			NumRatings: int(parseFloatOr(cell(record, colNumRatings), 0)),
		}
		wines = append(wines, w)
	}

	return wines, nil
}

func parseFloatOr(s string, fallback float64) float64 {
	v, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return fallback
	}
	return v
}

// normalizePrice strips currency symbols and thousands separators. Values
// above 100 are treated as cents and scaled down, matching how the scraper
// sometimes records them. Unparsable cells become -1.
func normalizePrice(s string) float64 {
	cleaned := strings.NewReplacer("$", "", "€", "", ",", "").Replace(s)
	v, err := strconv.ParseFloat(strings.TrimSpace(cleaned), 64)
	if err != nil {
		return -1
	}
	if v > 100 {
		v = v / 100
	}
	return v
}

// normalizeVintage turns float-ish cells like "2015.0" into "2015".
func normalizeVintage(s string) string {
	if s == "" {
		return ""
	}
	if v, err := strconv.ParseFloat(s, 64); err == nil && v == float64(int64(v)) {
		return strconv.FormatInt(int64(v), 10)
	}
	return s
}
