package market

import "strings"

// cropVariants maps vernacular and trade names onto canonical crop names
// so cached price rows key consistently regardless of how the farmer
// phrased the crop.
var cropVariants = map[string][]string{
	"rice":      {"paddy", "rice", "dhan"},
	"wheat":     {"wheat", "gehun"},
	"cotton":    {"cotton", "kapas"},
	"sugarcane": {"sugarcane", "ganna"},
	"maize":     {"maize", "corn", "makka"},
	"soybean":   {"soybean", "soya"},
	"groundnut": {"groundnut", "peanut", "mungphali"},
	"chickpea":  {"chickpea", "chana", "gram"},
	"tomato":    {"tomato", "tamatar"},
	"onion":     {"onion", "pyaz"},
	"potato":    {"potato", "aloo"},
}

// NormalizeCrop returns the canonical crop name for a vernacular variant,
// or the lowercased input when no variant matches.
func NormalizeCrop(crop string) string {
	key := strings.ToLower(strings.TrimSpace(crop))
	for canonical, variants := range cropVariants {
		for _, v := range variants {
			if v == key {
				return canonical
			}
		}
	}
	return key
}

// basePrices are baseline modal prices in INR per quintal, used when no
// historical data exists for a crop.
var basePrices = map[string]int{
	"rice":      2000,
	"wheat":     2100,
	"cotton":    6000,
	"sugarcane": 300,
	"maize":     1800,
	"soybean":   4000,
	"groundnut": 5500,
	"chickpea":  5000,
	"tomato":    1200,
	"onion":     1500,
	"potato":    1000,
}

const defaultBasePrice = 2000

// BasePrice returns the baseline price for a crop in INR per quintal.
func BasePrice(crop string) int {
	if p, ok := basePrices[NormalizeCrop(crop)]; ok {
		return p
	}
	return defaultBasePrice
}

var kharifCrops = map[string]bool{
	"rice": true, "cotton": true, "maize": true, "soybean": true, "groundnut": true,
}

var rabiCrops = map[string]bool{
	"wheat": true, "chickpea": true,
}

// SeasonalFactor returns the month's price multiplier for a crop. Harvest
// months run lower on supply surge, pre-harvest months run higher.
func SeasonalFactor(month int, crop string) float64 {
	switch key := NormalizeCrop(crop); {
	case kharifCrops[key]:
		switch month {
		case 5, 6, 7:
			return 1.25
		case 10, 11, 12:
			return 0.85
		}
		return 1.0
	case rabiCrops[key]:
		switch month {
		case 7, 8, 9:
			return 1.2
		case 3, 4, 5:
			return 0.88
		}
		return 1.0
	default:
		if month == 1 || month == 2 || month == 11 || month == 12 {
			return 1.1
		}
		return 0.95
	}
}
