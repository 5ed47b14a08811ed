package recommender

import (
	"strconv"
	"strings"

	"github.com/Raeus1901/wine-bot/internal/domain/entity"
)

// strictFilter keeps only the wines satisfying every set criterion. Rows
// with unparsable numeric cells (ABV/price sentinel -1) never match a range
// constraint.
func strictFilter(wines []entity.Wine, criteria map[string]string) []entity.Wine {
	out := make([]entity.Wine, 0, len(wines))

	abvMin, abvMax, abvOK := parseRange(criteria[entity.SlotAlcoholLevel], "%")
	priceMin, priceMax, priceOK := parseRange(criteria[entity.SlotPriceRange], "$")

	for _, w := range wines {
		if color := criteria[entity.SlotColor]; color != "" {
			if !strings.Contains(strings.ToLower(w.Color), strings.ToLower(color)) {
				continue
			}
		}

		if abvOK {
			if w.ABV < abvMin || w.ABV > abvMax {
				continue
			}
		}

		if country := criteria[entity.SlotCountry]; country != "" {
			if strings.EqualFold(country, "Others") {
				switch strings.ToLower(w.Country) {
				case "france", "spain", "italy":
					continue
				}
			} else if !strings.EqualFold(w.Country, country) {
				continue
			}
		}

		if priceOK {
			if w.PriceValue < priceMin || w.PriceValue > priceMax {
				continue
			}
		}

		out = append(out, w)
	}

	return out
}

// filterWithFallback tries the strict filter first, then relaxes one
// constraint at a time in fallbackOrder until something matches.
func filterWithFallback(wines []entity.Wine, criteria map[string]string) []entity.Wine {
	if matches := strictFilter(wines, criteria); len(matches) > 0 {
		return matches
	}

	relaxed := make(map[string]string, len(criteria))
	for k, v := range criteria {
		relaxed[k] = v
	}

	for _, slot := range fallbackOrder {
		if relaxed[slot] == "" {
			continue
		}
		saved := relaxed[slot]
		relaxed[slot] = ""
		if matches := strictFilter(wines, relaxed); len(matches) > 0 {
			return matches
		}
		relaxed[slot] = saved
	}

	return nil
}

// parseRange turns "11-12%" or "$10-20" into numeric bounds.
func parseRange(choice, symbol string) (min, max float64, ok bool) {
	if choice == "" {
		return 0, 0, false
	}
	parts := strings.SplitN(strings.ReplaceAll(choice, symbol, ""), "-", 2)
	if len(parts) != 2 {
		return 0, 0, false
	}
	lo, err1 := strconv.ParseFloat(strings.TrimSpace(parts[0]), 64)
	hi, err2 := strconv.ParseFloat(strings.TrimSpace(parts[1]), 64)
	if err1 != nil || err2 != nil {
		return 0, 0, false
	}
	return lo, hi, true
}
